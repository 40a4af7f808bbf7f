package directory

import (
	"context"
	"fmt"

	"github.com/isometry/adpop/internal/ldap"
)

// ModifyGroupMembership adds or removes a member on a group, both identified
// by DN. An Add for an existing member and a Remove for a non-member are
// reported as ErrInvalidMembershipOp so callers can treat the state as
// already satisfied.
func (d *LDAPDirectory) ModifyGroupMembership(ctx context.Context, groupDN, memberDN string, op MembershipOp) error {
	if groupDN == "" {
		return fmt.Errorf("group DN is required")
	}
	if memberDN == "" {
		return fmt.Errorf("member DN is required")
	}

	req := &ldap.ModifyRequest{DN: groupDN}
	switch op {
	case MembershipAdd:
		req.AddAttributes = map[string][]string{"member": {memberDN}}
	case MembershipRemove:
		req.DeleteAttributes = map[string][]string{"member": {memberDN}}
	default:
		return fmt.Errorf("unsupported membership operation: %d", op)
	}

	if err := d.client.Modify(ctx, req); err != nil {
		switch {
		case op == MembershipAdd && ldap.GetErrorCategory(err) == ldap.ErrorCategoryConflict:
			return fmt.Errorf("%w: %s is already a member of %s", ErrInvalidMembershipOp, memberDN, groupDN)
		case op == MembershipRemove && ldap.IsNotFoundError(err):
			return fmt.Errorf("%w: %s is not a member of %s", ErrInvalidMembershipOp, memberDN, groupDN)
		}
		return ldap.WrapError("modify_group_membership", err)
	}

	return nil
}
