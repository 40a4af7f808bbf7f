package lab

import (
	"errors"
)

// ErrInvalidModeCombination reports that the mutually exclusive CleanRoles
// and NoRoles modes were both requested.
var ErrInvalidModeCombination = errors.New("lab: clean-roles and no-roles are mutually exclusive")

// Mode selects the membership-assignment policy for a run.
type Mode int

const (
	// ModeDefault places role groups into access groups, and users into one
	// role group plus a random access-group subset.
	ModeDefault Mode = iota

	// ModeCleanRoles places role groups into access groups, but users only
	// into a role group, never into access groups directly.
	ModeCleanRoles

	// ModeNoRoles uses no role groups at all; users go straight into access
	// groups.
	ModeNoRoles
)

func (m Mode) String() string {
	switch m {
	case ModeCleanRoles:
		return "clean-roles"
	case ModeNoRoles:
		return "no-roles"
	default:
		return "default"
	}
}

// ModeFromFlags maps the two CLI switches onto a Mode, rejecting the
// impossible combination before any directory work starts.
func ModeFromFlags(cleanRoles, noRoles bool) (Mode, error) {
	switch {
	case cleanRoles && noRoles:
		return ModeDefault, ErrInvalidModeCombination
	case cleanRoles:
		return ModeCleanRoles, nil
	case noRoles:
		return ModeNoRoles, nil
	default:
		return ModeDefault, nil
	}
}
