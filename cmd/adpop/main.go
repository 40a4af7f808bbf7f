// Command adpop populates an Active Directory lab domain with synthetic
// users, access and role groups, and randomized memberships between them.
package main

import (
	"context"
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/kelseyhightower/envconfig"
	log "github.com/sirupsen/logrus"

	"github.com/isometry/adpop/internal/config"
	"github.com/isometry/adpop/internal/directory"
	"github.com/isometry/adpop/internal/lab"
	"github.com/isometry/adpop/internal/ldap"
	"github.com/isometry/adpop/internal/names"
)

// options is the full CLI surface. Every field can also be set via the
// environment with an ADPOP_ prefix; flags win over environment.
type options struct {
	Domain    string `envconfig:"DOMAIN" short:"D" long:"domain" description:"Active Directory domain (ex: lab.example.com)"`
	Container string `envconfig:"CONTAINER" short:"o" long:"container" description:"Container DN for created objects (default: CN=Users of the domain)"`

	Count        int    `envconfig:"COUNT" short:"c" long:"count" description:"Number of user accounts to create (default: 40)"`
	GroupsFile   string `envconfig:"GROUPS_FILE" short:"g" long:"groups-file" description:"Groups file: one name,tier per line"`
	SeedsFile    string `envconfig:"SEEDS_FILE" short:"s" long:"seeds-file" description:"Name seeds file: one firstName,lastName per line"`
	BuiltinSeeds int    `envconfig:"BUILTIN_SEEDS" long:"builtin-seeds" description:"Size of the generated seed pool when no seeds file is given (default: 100)"`

	CleanRoles bool `envconfig:"CLEAN_ROLES" long:"clean-roles" description:"Users join role groups only, never access groups directly"`
	NoRoles    bool `envconfig:"NO_ROLES" long:"no-roles" description:"Skip role groups entirely; users join access groups directly"`

	Export         string `envconfig:"EXPORT" short:"e" long:"export" description:"Write accountID:password pairs to this file"`
	PasswordLength int    `envconfig:"PASSWORD_LENGTH" long:"password-length" description:"Length of generated initial passwords (default: 16)"`
	Workers        int    `envconfig:"WORKERS" short:"w" long:"workers" description:"Concurrent user-provisioning workers, max 32 (default: 1)"`

	BindUser     string   `envconfig:"BIND_USER" short:"u" long:"bind-user" description:"Bind username (user@realm or DN); empty selects Kerberos or anonymous"`
	BindPassword string   `envconfig:"BIND_PASSWORD" long:"bind-password" description:"Bind password (prefer ADPOP_BIND_PASSWORD)"`
	LDAPURLs     []string `envconfig:"LDAP_URLS" short:"l" long:"ldap-url" description:"Explicit LDAP URL(s); skips SRV discovery"`
	SkipTLS      bool     `envconfig:"SKIP_TLS_VERIFY" short:"k" long:"skip-tls-verify" description:"Skip LDAP TLS certificate verification"`

	KerberosRealm  string `envconfig:"KRB_REALM" long:"krb-realm" description:"Kerberos realm (or include it in the bind user as user@REALM)"`
	KerberosKeytab string `envconfig:"KRB_KEYTAB" long:"krb-keytab" description:"Kerberos keytab path"`
	KerberosCCache string `envconfig:"KRB_CCACHE" long:"krb-ccache" description:"Kerberos credential cache path"`

	Debug bool `envconfig:"DEBUG" short:"d" long:"debug" description:"Enable debug logging"`
	Trace bool `envconfig:"TRACE" long:"trace" description:"Enable trace logging"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var opts options

	// Environment first, then flags on top.
	if err := envconfig.Process("adpop", &opts); err != nil {
		log.WithError(err).Error("reading environment")
		return 1
	}

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			fmt.Println(err)
			return 0
		}
		log.WithError(err).Error("parsing arguments")
		return 1
	}

	switch {
	case opts.Trace:
		log.SetLevel(log.TraceLevel)
	case opts.Debug:
		log.SetLevel(log.DebugLevel)
	}

	if opts.Domain == "" {
		log.Error("--domain is required")
		return 1
	}

	mode, err := lab.ModeFromFlags(opts.CleanRoles, opts.NoRoles)
	if err != nil {
		log.WithError(err).Error("invalid mode selection")
		return 1
	}

	if opts.GroupsFile == "" {
		log.Error("--groups-file is required")
		return 1
	}
	groups, err := config.LoadGroups(opts.GroupsFile)
	if err != nil {
		log.WithError(err).Error("loading groups file")
		return 1
	}

	pool, err := seedPool(&opts)
	if err != nil {
		log.WithError(err).Error("loading name seeds")
		return 1
	}

	// Unset numeric options fall back to the run defaults.
	runCfg, err := lab.NewRunConfig()
	if err != nil {
		log.WithError(err).Error("building run configuration")
		return 1
	}
	runCfg.Container = opts.Container
	runCfg.Mode = mode
	runCfg.ExportPath = opts.Export
	if opts.Count != 0 {
		runCfg.Count = opts.Count
	}
	if opts.Workers != 0 {
		runCfg.Workers = opts.Workers
	}
	if opts.PasswordLength != 0 {
		runCfg.PasswordLength = opts.PasswordLength
	}
	if err := runCfg.Validate(); err != nil {
		log.WithError(err).Error("invalid run configuration")
		return 1
	}

	ctx := context.Background()

	client, err := connect(ctx, &opts)
	if err != nil {
		log.WithError(err).Error("connecting to directory")
		return 1
	}

	dir := directory.New(client, "", opts.Domain)
	defer dir.Close()

	state, err := lab.NewOrchestrator(dir, runCfg).Run(ctx, groups, pool)
	if err != nil {
		log.WithError(err).Error("population run failed")
		return 1
	}

	fmt.Printf("groups: %d created, %d skipped; users: %d created, %d skipped; memberships: %d added; warnings: %d\n",
		state.Summary.GroupsCreated, state.Summary.GroupsSkipped,
		state.Summary.UsersCreated, state.Summary.UsersSkipped,
		state.Summary.MembershipAdds, state.Summary.Warnings)

	return 0
}

// seedPool loads the seeds file when given, otherwise fabricates a pool.
func seedPool(opts *options) ([]names.Seed, error) {
	if opts.SeedsFile != "" {
		return config.LoadSeeds(opts.SeedsFile)
	}

	size := opts.BuiltinSeeds
	if size == 0 {
		size = 100
	}
	return names.BuiltinPool(size), nil
}

// connect builds the transport configuration and establishes the pool.
func connect(ctx context.Context, opts *options) (ldap.Client, error) {
	cfg := ldap.DefaultConfig()
	cfg.Domain = opts.Domain
	cfg.LDAPURLs = opts.LDAPURLs
	cfg.Username = opts.BindUser
	cfg.Password = opts.BindPassword
	if opts.SkipTLS {
		cfg.TLSConfig.InsecureSkipVerify = true
	}
	cfg.KerberosRealm = opts.KerberosRealm
	cfg.KerberosKeytab = opts.KerberosKeytab
	cfg.KerberosCCache = opts.KerberosCCache

	client, err := ldap.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}

	return client, nil
}
