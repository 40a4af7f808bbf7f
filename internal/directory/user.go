package directory

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/isometry/adpop/internal/ldap"
)

// userAccountControl flags (subset used here).
const (
	UACAccountDisabled      int32 = 0x00000002
	UACPasswordNotRequired  int32 = 0x00000020
	UACNormalAccount        int32 = 0x00000200
	UACPasswordNeverExpires int32 = 0x00010000
)

// UserRequest describes a user to create.
type UserRequest struct {
	Name                 string // Common name
	SAMAccountName       string
	GivenName            string
	Surname              string
	DisplayName          string
	Description          string
	Container            string // Parent container DN
	Password             string // Initial clear-text password, set as unicodePwd
	Enabled              bool
	PasswordNeverExpires bool
}

// Validate checks a user creation request.
func (req *UserRequest) Validate() error {
	if req == nil {
		return fmt.Errorf("user request cannot be nil")
	}
	if req.Name == "" {
		return fmt.Errorf("user name is required")
	}
	if req.SAMAccountName == "" {
		return fmt.Errorf("SAM account name is required")
	}
	if len(req.SAMAccountName) > 20 {
		// sAMAccountName is capped at 20 characters for user accounts.
		return fmt.Errorf("SAM account name too long: %s", req.SAMAccountName)
	}
	if strings.ContainsAny(req.SAMAccountName, " \t\n\r@\"#$%&'()*+,/:;<=>?[\\]^`{|}~") {
		return fmt.Errorf("SAM account name contains invalid characters: %s", req.SAMAccountName)
	}
	if req.Container == "" {
		return fmt.Errorf("container DN is required")
	}
	if req.Enabled && req.Password == "" {
		return fmt.Errorf("an enabled account requires a password")
	}

	return nil
}

// DN returns the distinguished name the user will be created at.
func (req *UserRequest) DN() string {
	return ldap.JoinDN(req.Name, req.Container)
}

// CreateUser creates a user object with its initial password and account
// control flags set in the same add operation. Setting unicodePwd requires
// a TLS-protected connection; the transport enforces that by default.
func (d *LDAPDirectory) CreateUser(ctx context.Context, req *UserRequest) error {
	if err := req.Validate(); err != nil {
		return ldap.WrapError("create_user_validation", err)
	}

	uac := UACNormalAccount
	if !req.Enabled {
		uac |= UACAccountDisabled
	}
	if req.PasswordNeverExpires {
		uac |= UACPasswordNeverExpires
	}

	attributes := map[string][]string{
		"objectClass":        {"top", "person", "organizationalPerson", "user"},
		"cn":                 {req.Name},
		"sAMAccountName":     {req.SAMAccountName},
		"userAccountControl": {strconv.FormatInt(int64(uac), 10)},
	}

	if d.domain != "" {
		attributes["userPrincipalName"] = []string{req.SAMAccountName + "@" + d.domain}
	}
	if req.GivenName != "" {
		attributes["givenName"] = []string{req.GivenName}
	}
	if req.Surname != "" {
		attributes["sn"] = []string{req.Surname}
	}
	if req.DisplayName != "" {
		attributes["displayName"] = []string{req.DisplayName}
	}
	if req.Description != "" {
		attributes["description"] = []string{req.Description}
	}
	if req.Password != "" {
		attributes["unicodePwd"] = []string{EncodeUnicodePwd(req.Password)}
	}

	if err := d.client.Add(ctx, &ldap.AddRequest{
		DN:         req.DN(),
		Attributes: attributes,
	}); err != nil {
		return ldap.WrapError("create_user", err)
	}

	return nil
}
