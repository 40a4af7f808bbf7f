// Package directory implements the typed Directory Service Adapter used by
// the lab orchestrator: attribute-based object lookup, group and user
// creation, and membership modification, all expressed as one explicit
// method per operation over the LDAP transport.
package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	ldapv3 "github.com/go-ldap/ldap/v3"

	"github.com/isometry/adpop/internal/ldap"
)

// ErrNotFound reports that an attribute lookup matched no object.
var ErrNotFound = errors.New("directory: object not found")

// ErrInvalidMembershipOp reports a membership Add on an existing member or a
// Remove on a non-member. Callers treat this as an already-satisfied state.
var ErrInvalidMembershipOp = errors.New("directory: invalid membership operation")

// IsNotFound checks whether err is an object-not-found result.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidMembershipOp checks whether err is an already-satisfied or
// never-satisfied membership modification.
func IsInvalidMembershipOp(err error) bool {
	return errors.Is(err, ErrInvalidMembershipOp)
}

// ObjectClass selects the directory object type for lookups.
type ObjectClass string

const (
	ClassGroup ObjectClass = "group"
	ClassUser  ObjectClass = "user"
)

// MembershipOp selects the direction of a membership modification.
type MembershipOp int

const (
	MembershipAdd MembershipOp = iota
	MembershipRemove
)

func (op MembershipOp) String() string {
	if op == MembershipRemove {
		return "remove"
	}
	return "add"
}

// ObjectRecord is the result of an attribute-based lookup.
type ObjectRecord struct {
	DistinguishedName string
	ObjectGUID        string
	ObjectSid         string
	SAMAccountName    string
	CommonName        string
}

// Directory is the capability set the orchestrator consumes. Implementations
// must be safe for concurrent calls against distinct objects.
type Directory interface {
	// QueryObject looks up a single object by attribute value.
	// Returns ErrNotFound (wrapped) when no object matches.
	QueryObject(ctx context.Context, property, value string, class ObjectClass) (*ObjectRecord, error)

	// CreateGroup creates a group object.
	CreateGroup(ctx context.Context, req *GroupRequest) error

	// CreateUser creates a user object with its initial password set.
	CreateUser(ctx context.Context, req *UserRequest) error

	// ModifyGroupMembership adds or removes memberDN on groupDN.
	// Already-satisfied adds and unsatisfied removes surface as
	// ErrInvalidMembershipOp.
	ModifyGroupMembership(ctx context.Context, groupDN, memberDN string, op MembershipOp) error

	// BaseDN reports the directory's default naming context.
	BaseDN(ctx context.Context) (string, error)

	Close() error
}

// LDAPDirectory implements Directory over the pooled LDAP client.
type LDAPDirectory struct {
	client      ldap.Client
	guidHandler *ldap.GUIDHandler
	sidHandler  *ldap.SIDHandler
	baseDN      string
	domain      string
	timeout     time.Duration
}

// New creates an adapter bound to one domain. baseDN may be empty, in which
// case it is discovered from the root DSE on first use.
func New(client ldap.Client, baseDN, domain string) *LDAPDirectory {
	return &LDAPDirectory{
		client:      client,
		guidHandler: ldap.NewGUIDHandler(),
		sidHandler:  ldap.NewSIDHandler(),
		baseDN:      baseDN,
		domain:      domain,
		timeout:     30 * time.Second,
	}
}

// SetTimeout sets the LDAP operation timeout.
func (d *LDAPDirectory) SetTimeout(timeout time.Duration) {
	d.timeout = timeout
}

// BaseDN reports the configured or discovered naming context.
func (d *LDAPDirectory) BaseDN(ctx context.Context) (string, error) {
	if d.baseDN != "" {
		return d.baseDN, nil
	}

	baseDN, err := d.client.BaseDN(ctx)
	if err != nil {
		return "", err
	}

	d.baseDN = baseDN
	return baseDN, nil
}

// Close releases the underlying connection pool.
func (d *LDAPDirectory) Close() error {
	return d.client.Close()
}

// QueryObject looks up a single object by attribute value anywhere under the
// base DN. Existence checks always hit the server; results are never cached.
func (d *LDAPDirectory) QueryObject(ctx context.Context, property, value string, class ObjectClass) (*ObjectRecord, error) {
	if property == "" || value == "" {
		return nil, fmt.Errorf("property and value are required")
	}

	baseDN, err := d.BaseDN(ctx)
	if err != nil {
		return nil, err
	}

	filter := fmt.Sprintf("(&(objectClass=%s)(%s=%s))",
		ldapv3.EscapeFilter(string(class)),
		property,
		ldapv3.EscapeFilter(value))
	if class == ClassUser {
		filter = fmt.Sprintf("(&(objectClass=user)(!(objectClass=computer))(%s=%s))",
			property, ldapv3.EscapeFilter(value))
	}

	result, err := d.client.Search(ctx, &ldap.SearchRequest{
		BaseDN:     baseDN,
		Scope:      ldap.ScopeWholeSubtree,
		Filter:     filter,
		Attributes: []string{"distinguishedName", "objectGUID", "objectSid", "sAMAccountName", "cn"},
		SizeLimit:  1,
		TimeLimit:  d.timeout,
	})
	if err != nil {
		if ldap.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: %s=%s", ErrNotFound, property, value)
		}
		return nil, ldap.WrapError("query_object", err)
	}

	if len(result.Entries) == 0 {
		return nil, fmt.Errorf("%w: %s=%s", ErrNotFound, property, value)
	}

	entry := result.Entries[0]
	return &ObjectRecord{
		DistinguishedName: entry.DN,
		ObjectGUID:        d.guidHandler.ExtractGUIDSafe(entry),
		ObjectSid:         d.sidHandler.ExtractSIDSafe(entry),
		SAMAccountName:    entry.GetAttributeValue("sAMAccountName"),
		CommonName:        entry.GetAttributeValue("cn"),
	}, nil
}
