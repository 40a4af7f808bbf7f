package lab

import (
	"errors"

	"github.com/isometry/adpop/internal/config"
)

// Classification errors. Both are fatal: a run cannot proceed without at
// least one group in each tier it intends to use.
var (
	ErrNoAccessGroups = errors.New("lab: no access groups configured")
	ErrNoRoleGroups   = errors.New("lab: no role groups configured")
)

// Classified holds the configured group names split by tier.
type Classified struct {
	Access []string
	Role   []string
}

// Classify partitions the group specs into access and role tiers. The access
// tier must always be non-empty; the role tier must be non-empty unless the
// mode skips role groups entirely, in which case it is returned empty even if
// role groups were configured.
func Classify(specs []config.GroupSpec, mode Mode) (Classified, error) {
	var c Classified

	for _, spec := range specs {
		switch spec.Tier {
		case config.TierAccess:
			c.Access = append(c.Access, spec.Name)
		case config.TierRole:
			c.Role = append(c.Role, spec.Name)
		}
	}

	if len(c.Access) == 0 {
		return Classified{}, ErrNoAccessGroups
	}

	if mode == ModeNoRoles {
		c.Role = nil
		return c, nil
	}

	if len(c.Role) == 0 {
		return Classified{}, ErrNoRoleGroups
	}

	return c, nil
}
