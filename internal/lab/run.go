package lab

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/google/uuid"
)

// Count and worker bounds for a run.
const (
	MinCount   = 1
	MaxCount   = 10000
	MaxWorkers = 32
)

// RunConfig carries everything the orchestrator needs beyond the directory
// connection itself.
type RunConfig struct {
	// Container is the DN of the container or OU all objects are created in
	// and looked up under. Empty means the domain's default Users container.
	Container string

	// Count is the number of user accounts to create.
	Count int `default:"40"`

	// Mode selects the membership-assignment policy.
	Mode Mode

	// Workers bounds the number of concurrent user-provisioning workers.
	// One means fully sequential.
	Workers int `default:"1"`

	// PasswordLength sizes the generated initial passwords.
	PasswordLength int `default:"16"`

	// ExportPath, when set, receives the accountID:password credential pairs
	// after a successful run.
	ExportPath string
}

// NewRunConfig returns a RunConfig with defaults applied.
func NewRunConfig() (*RunConfig, error) {
	cfg := &RunConfig{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("lab: applying run defaults: %w", err)
	}
	return cfg, nil
}

// Validate checks the bounds the orchestrator relies on.
func (c *RunConfig) Validate() error {
	if c.Count < MinCount || c.Count > MaxCount {
		return fmt.Errorf("lab: count must be between %d and %d, got %d", MinCount, MaxCount, c.Count)
	}
	if c.Workers < 1 || c.Workers > MaxWorkers {
		return fmt.Errorf("lab: workers must be between 1 and %d, got %d", MaxWorkers, c.Workers)
	}
	if c.PasswordLength < 1 {
		return fmt.Errorf("lab: password length must be positive, got %d", c.PasswordLength)
	}
	return nil
}

// Credential pairs a created account with its generated clear-text password,
// held only for the optional export at the end of a run.
type Credential struct {
	AccountID     string
	ClearPassword string
}

// Summary tallies what a run actually did.
type Summary struct {
	GroupsCreated  int
	GroupsSkipped  int
	UsersCreated   int
	UsersSkipped   int
	MembershipAdds int
	Warnings       int
}

// RunState is the orchestrator's working state for one run.
type RunState struct {
	// RunID tags every log line of the run.
	RunID string

	// Container is the resolved object container DN.
	Container string

	Groups      Classified
	Credentials []Credential
	Summary     Summary
}

func newRunState() *RunState {
	return &RunState{RunID: uuid.NewString()}
}

// GroupLocationConflictError reports that a configured group already exists
// in the directory outside the run's container. Fatal: proceeding would wire
// memberships into objects the run does not manage.
type GroupLocationConflictError struct {
	Group     string
	FoundDN   string
	Container string
}

func (e *GroupLocationConflictError) Error() string {
	return fmt.Sprintf("lab: group %q already exists at %q, outside target container %q",
		e.Group, e.FoundDN, e.Container)
}
