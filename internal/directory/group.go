package directory

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/isometry/adpop/internal/ldap"
)

// GroupScope represents the scope of an Active Directory group.
type GroupScope string

const (
	GroupScopeGlobal      GroupScope = "Global"
	GroupScopeUniversal   GroupScope = "Universal"
	GroupScopeDomainLocal GroupScope = "DomainLocal"
)

func (gs GroupScope) String() string {
	return string(gs)
}

// GroupCategory represents the category of an Active Directory group.
type GroupCategory string

const (
	GroupCategorySecurity     GroupCategory = "Security"
	GroupCategoryDistribution GroupCategory = "Distribution"
)

func (gc GroupCategory) String() string {
	return string(gc)
}

// Active Directory groupType bit flags.
const (
	GroupTypeFlagGlobal      int32 = 0x00000002 // ADS_GROUP_TYPE_GLOBAL_GROUP
	GroupTypeFlagDomainLocal int32 = 0x00000004 // ADS_GROUP_TYPE_DOMAIN_LOCAL_GROUP
	GroupTypeFlagUniversal   int32 = 0x00000008 // ADS_GROUP_TYPE_UNIVERSAL_GROUP

	GroupTypeFlagSecurity int32 = -2147483648 // ADS_GROUP_TYPE_SECURITY_ENABLED (0x80000000)
)

// GroupRequest describes a group to create.
type GroupRequest struct {
	Name        string
	Description string
	Container   string // Parent container DN
	Scope       GroupScope
	Category    GroupCategory
}

// Validate checks a group creation request.
func (req *GroupRequest) Validate() error {
	if req == nil {
		return fmt.Errorf("group request cannot be nil")
	}
	if req.Name == "" {
		return fmt.Errorf("group name is required")
	}
	if req.Container == "" {
		return fmt.Errorf("container DN is required")
	}

	switch req.Scope {
	case GroupScopeGlobal, GroupScopeDomainLocal, GroupScopeUniversal:
	default:
		return fmt.Errorf("invalid group scope: %s (valid: Global, DomainLocal, Universal)", req.Scope)
	}

	switch req.Category {
	case GroupCategorySecurity, GroupCategoryDistribution:
	default:
		return fmt.Errorf("invalid group category: %s (valid: Security, Distribution)", req.Category)
	}

	if strings.ContainsAny(req.Name, "\t\n\r@\"#$%&'()*+/:;<=>?[\\]^`{|}~") {
		return fmt.Errorf("group name contains invalid characters: %s", req.Name)
	}

	return nil
}

// DN returns the distinguished name the group will be created at.
func (req *GroupRequest) DN() string {
	return ldap.JoinDN(req.Name, req.Container)
}

// CalculateGroupType computes the AD groupType value from scope and category.
func CalculateGroupType(scope GroupScope, category GroupCategory) int32 {
	var groupType int32

	switch scope {
	case GroupScopeDomainLocal:
		groupType |= GroupTypeFlagDomainLocal
	case GroupScopeUniversal:
		groupType |= GroupTypeFlagUniversal
	default:
		groupType |= GroupTypeFlagGlobal
	}

	if category == GroupCategorySecurity {
		groupType |= GroupTypeFlagSecurity
	}

	return groupType
}

// ParseGroupType extracts scope and category from an AD groupType value.
func ParseGroupType(groupType int32) (GroupScope, GroupCategory) {
	var scope GroupScope
	switch {
	case groupType&GroupTypeFlagDomainLocal != 0:
		scope = GroupScopeDomainLocal
	case groupType&GroupTypeFlagUniversal != 0:
		scope = GroupScopeUniversal
	default:
		scope = GroupScopeGlobal
	}

	category := GroupCategoryDistribution
	if groupType&GroupTypeFlagSecurity != 0 {
		category = GroupCategorySecurity
	}

	return scope, category
}

// CreateGroup creates a group object. The group is a plain container: no
// access-control entries are attached.
func (d *LDAPDirectory) CreateGroup(ctx context.Context, req *GroupRequest) error {
	if err := req.Validate(); err != nil {
		return ldap.WrapError("create_group_validation", err)
	}

	groupType := CalculateGroupType(req.Scope, req.Category)

	attributes := map[string][]string{
		"objectClass":    {"top", "group"},
		"cn":             {req.Name},
		"sAMAccountName": {req.Name},
		"groupType":      {strconv.FormatInt(int64(groupType), 10)},
	}
	if req.Description != "" {
		attributes["description"] = []string{req.Description}
	}

	if err := d.client.Add(ctx, &ldap.AddRequest{
		DN:         req.DN(),
		Attributes: attributes,
	}); err != nil {
		return ldap.WrapError("create_group", err)
	}

	return nil
}
