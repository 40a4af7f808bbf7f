// Package lab implements the population run: group provisioning across two
// tiers, random role-to-access wiring, identity synthesis, concurrent user
// provisioning with membership assignment, and credential export.
package lab

import (
	"context"
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/isometry/adpop/internal/config"
	"github.com/isometry/adpop/internal/directory"
	"github.com/isometry/adpop/internal/ldap"
	"github.com/isometry/adpop/internal/names"
	"github.com/isometry/adpop/internal/pwgen"
)

// Orchestrator drives one population run against a directory.
type Orchestrator struct {
	dir    directory.Directory
	cfg    *RunConfig
	picker *Picker
	synth  *names.Synthesizer

	// groupDNs maps provisioned group names to their distinguished names,
	// populated during group provisioning and read-only afterwards.
	groupDNs map[string]string
}

// NewOrchestrator binds a run configuration to a directory adapter.
func NewOrchestrator(dir directory.Directory, cfg *RunConfig) *Orchestrator {
	return &Orchestrator{
		dir:      dir,
		cfg:      cfg,
		picker:   NewPicker(),
		synth:    names.NewSynthesizer(),
		groupDNs: make(map[string]string),
	}
}

// SetPicker replaces the membership randomizer, for deterministic tests.
func (o *Orchestrator) SetPicker(p *Picker) { o.picker = p }

// SetSynthesizer replaces the identity generator, for deterministic tests.
func (o *Orchestrator) SetSynthesizer(s *names.Synthesizer) { o.synth = s }

// Run executes the full population sequence. Group-provisioning failures and
// name-space exhaustion are fatal; individual membership and user failures
// are logged and counted but do not stop the run.
func (o *Orchestrator) Run(ctx context.Context, groups []config.GroupSpec, pool []names.Seed) (*RunState, error) {
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}

	state := newRunState()
	runLog := log.WithField("run_id", state.RunID)

	classified, err := Classify(groups, o.cfg.Mode)
	if err != nil {
		return nil, err
	}
	state.Groups = classified

	container, err := o.resolveContainer(ctx)
	if err != nil {
		return nil, err
	}
	state.Container = container

	runLog.WithFields(log.Fields{
		"mode":          o.cfg.Mode.String(),
		"container":     container,
		"count":         o.cfg.Count,
		"access_groups": len(classified.Access),
		"role_groups":   len(classified.Role),
	}).Info("starting population run")

	if err := o.provisionGroups(ctx, state, runLog); err != nil {
		return state, err
	}

	if o.cfg.Mode != ModeNoRoles {
		o.wireRoleGroups(ctx, state, runLog)
	}

	identities, err := o.synth.Generate(pool, o.cfg.Count)
	if err != nil {
		return state, err
	}

	o.provisionUsers(ctx, state, runLog, identities)

	if o.cfg.ExportPath != "" {
		if err := ExportCredentials(o.cfg.ExportPath, state.Credentials); err != nil {
			return state, err
		}
		runLog.WithFields(log.Fields{
			"path":  o.cfg.ExportPath,
			"count": len(state.Credentials),
		}).Info("exported credentials")
	}

	runLog.WithFields(log.Fields{
		"groups_created":  state.Summary.GroupsCreated,
		"groups_skipped":  state.Summary.GroupsSkipped,
		"users_created":   state.Summary.UsersCreated,
		"users_skipped":   state.Summary.UsersSkipped,
		"membership_adds": state.Summary.MembershipAdds,
		"warnings":        state.Summary.Warnings,
	}).Info("population run complete")

	return state, nil
}

// resolveContainer returns the configured container DN, defaulting to the
// domain's Users container.
func (o *Orchestrator) resolveContainer(ctx context.Context) (string, error) {
	if o.cfg.Container != "" {
		return o.cfg.Container, nil
	}

	baseDN, err := o.dir.BaseDN(ctx)
	if err != nil {
		return "", fmt.Errorf("lab: resolving base DN: %w", err)
	}

	return "CN=Users," + baseDN, nil
}

// provisionGroups ensures every classified group exists inside the run's
// container. A group already present in the container is skipped; a group
// found anywhere else in the directory aborts the run.
func (o *Orchestrator) provisionGroups(ctx context.Context, state *RunState, runLog *log.Entry) error {
	all := make([]string, 0, len(state.Groups.Access)+len(state.Groups.Role))
	all = append(all, state.Groups.Access...)
	all = append(all, state.Groups.Role...)

	for _, name := range all {
		rec, err := o.dir.QueryObject(ctx, "sAMAccountName", name, directory.ClassGroup)
		switch {
		case err == nil:
			if !ldap.EqualDN(ldap.ParentDN(rec.DistinguishedName), state.Container) {
				return &GroupLocationConflictError{
					Group:     name,
					FoundDN:   rec.DistinguishedName,
					Container: state.Container,
				}
			}
			runLog.WithFields(log.Fields{
				"group": name,
				"dn":    rec.DistinguishedName,
			}).Warn("group already exists, skipping")
			o.groupDNs[name] = rec.DistinguishedName
			state.Summary.GroupsSkipped++
			continue

		case !directory.IsNotFound(err):
			return fmt.Errorf("lab: checking group %q: %w", name, err)
		}

		req := &directory.GroupRequest{
			Name:      name,
			Container: state.Container,
			Scope:     directory.GroupScopeGlobal,
			Category:  directory.GroupCategorySecurity,
		}
		if err := o.dir.CreateGroup(ctx, req); err != nil {
			return fmt.Errorf("lab: creating group %q: %w", name, err)
		}

		runLog.WithFields(log.Fields{
			"group": name,
			"dn":    req.DN(),
		}).Info("created group")
		o.groupDNs[name] = req.DN()
		state.Summary.GroupsCreated++
	}

	return nil
}

// wireRoleGroups nests every role group into a random subset of the access
// groups. Failures on individual links are warnings; already-present links
// count as satisfied.
func (o *Orchestrator) wireRoleGroups(ctx context.Context, state *RunState, runLog *log.Entry) {
	for _, role := range state.Groups.Role {
		for _, access := range o.picker.PickSubset(state.Groups.Access) {
			err := o.dir.ModifyGroupMembership(ctx, o.groupDNs[access], o.groupDNs[role], directory.MembershipAdd)
			switch {
			case err == nil:
				state.Summary.MembershipAdds++
			case directory.IsInvalidMembershipOp(err):
				runLog.WithFields(log.Fields{
					"role":   role,
					"access": access,
				}).Debug("role already nested in access group")
			default:
				runLog.WithFields(log.Fields{
					"role":   role,
					"access": access,
				}).WithError(err).Warn("failed to nest role group")
				state.Summary.Warnings++
			}
		}
	}
}

// userResult is one worker's outcome for a single identity.
type userResult struct {
	credential *Credential
	skipped    bool
	adds       int
	warnings   int
}

// provisionUsers creates every identity's account and wires its memberships,
// spreading the work across the configured number of workers. Per-user
// failures are warnings; the rest of the batch proceeds.
func (o *Orchestrator) provisionUsers(ctx context.Context, state *RunState, runLog *log.Entry, identities []names.Identity) {
	tasks := make(chan names.Identity)
	results := make(chan userResult)

	var wg sync.WaitGroup
	for range o.cfg.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for identity := range tasks {
				results <- o.provisionOneUser(ctx, state, runLog, identity)
			}
		}()
	}

	go func() {
		for _, identity := range identities {
			tasks <- identity
		}
		close(tasks)
		wg.Wait()
		close(results)
	}()

	for res := range results {
		if res.credential != nil {
			state.Credentials = append(state.Credentials, *res.credential)
			state.Summary.UsersCreated++
		}
		if res.skipped {
			state.Summary.UsersSkipped++
		}
		state.Summary.MembershipAdds += res.adds
		state.Summary.Warnings += res.warnings
	}
}

func (o *Orchestrator) provisionOneUser(ctx context.Context, state *RunState, runLog *log.Entry, identity names.Identity) userResult {
	var res userResult
	userLog := runLog.WithField("account", identity.AccountID)

	password, err := pwgen.Generate(o.cfg.PasswordLength)
	if err != nil {
		userLog.WithError(err).Warn("failed to generate password, skipping user")
		res.skipped = true
		res.warnings++
		return res
	}

	// CN is the account identifier: unique within the run, so user DNs can
	// never collide even when two identities draw the same name pair.
	req := &directory.UserRequest{
		Name:                 identity.AccountID,
		SAMAccountName:       identity.AccountID,
		GivenName:            identity.FirstName,
		Surname:              identity.LastName,
		DisplayName:          identity.FirstName + " " + identity.LastName,
		Container:            state.Container,
		Password:             password,
		Enabled:              true,
		PasswordNeverExpires: true,
	}
	if err := o.dir.CreateUser(ctx, req); err != nil {
		userLog.WithError(err).Warn("failed to create user, skipping")
		res.skipped = true
		res.warnings++
		return res
	}

	userLog.WithField("dn", req.DN()).Info("created user")
	res.credential = &Credential{AccountID: identity.AccountID, ClearPassword: password}

	for _, group := range o.pickUserGroups(state) {
		err := o.dir.ModifyGroupMembership(ctx, o.groupDNs[group], req.DN(), directory.MembershipAdd)
		switch {
		case err == nil:
			res.adds++
		case directory.IsInvalidMembershipOp(err):
			userLog.WithField("group", group).Debug("user already a member")
		default:
			userLog.WithField("group", group).WithError(err).Warn("failed to add user to group")
			res.warnings++
		}
	}

	return res
}

// pickUserGroups selects the groups one user joins, per the run mode: a
// single role group plus a random access subset by default, only a role
// group under clean-roles, only an access subset under no-roles.
func (o *Orchestrator) pickUserGroups(state *RunState) []string {
	var groups []string

	switch o.cfg.Mode {
	case ModeCleanRoles:
		groups = append(groups, o.picker.PickOne(state.Groups.Role))
	case ModeNoRoles:
		groups = append(groups, o.picker.PickSubset(state.Groups.Access)...)
	default:
		groups = append(groups, o.picker.PickOne(state.Groups.Role))
		groups = append(groups, o.picker.PickSubset(state.Groups.Access)...)
	}

	return groups
}
