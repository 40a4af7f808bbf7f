package ldap

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildServicePrincipal(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *ConnectionConfig
		server  *ServerInfo
		want    string
		wantErr bool
	}{
		{
			name:   "from server host",
			cfg:    &ConnectionConfig{},
			server: &ServerInfo{Host: "dc1.example.com"},
			want:   "ldap/dc1.example.com",
		},
		{
			name:   "explicit SPN override",
			cfg:    &ConnectionConfig{KerberosSPN: "ldap/alias.example.com"},
			server: &ServerInfo{Host: "dc1.example.com"},
			want:   "ldap/alias.example.com",
		},
		{
			name:   "port stripped from host",
			cfg:    &ConnectionConfig{},
			server: &ServerInfo{Host: "dc1.example.com:636"},
			want:   "ldap/dc1.example.com",
		},
		{name: "nil config", cfg: nil, server: &ServerInfo{Host: "dc1"}, wantErr: true},
		{name: "nil server", cfg: &ConnectionConfig{}, server: nil, wantErr: true},
		{name: "empty host", cfg: &ConnectionConfig{}, server: &ServerInfo{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildServicePrincipal(tt.cfg, tt.server)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrepareKerberosConfigSplitsRealm(t *testing.T) {
	// Keep the default credential lookups away from the host environment.
	t.Setenv("KRB5CCNAME", filepath.Join(t.TempDir(), "absent-ccache"))
	t.Setenv("KRB5_KTNAME", filepath.Join(t.TempDir(), "absent-keytab"))

	cfg := &ConnectionConfig{
		Username: "admin@EXAMPLE.COM",
		Password: "secret",
	}

	require.NoError(t, prepareKerberosConfig(cfg))
	assert.Equal(t, "admin", cfg.Username)
	assert.Equal(t, "EXAMPLE.COM", cfg.KerberosRealm)
	assert.Equal(t, "/etc/krb5.conf", cfg.KerberosConfig)
}

func TestPrepareKerberosConfigRequiresRealm(t *testing.T) {
	cfg := &ConnectionConfig{Username: "admin", Password: "secret"}

	err := prepareKerberosConfig(cfg)
	assert.Error(t, err)
}

func TestPrepareKerberosConfigRequiresPrincipal(t *testing.T) {
	cfg := &ConnectionConfig{KerberosRealm: "EXAMPLE.COM", Password: "secret"}

	err := prepareKerberosConfig(cfg)
	assert.Error(t, err)
}

func TestPrepareKerberosConfigNil(t *testing.T) {
	assert.Error(t, prepareKerberosConfig(nil))
}

func TestDefaultCredentialPaths(t *testing.T) {
	t.Setenv("KRB5CCNAME", "FILE:/var/tmp/cc_test")
	assert.Equal(t, "/var/tmp/cc_test", defaultCCachePath())

	t.Setenv("KRB5_KTNAME", "FILE:/var/tmp/kt_test")
	assert.Equal(t, "/var/tmp/kt_test", defaultKeytabPath())
}

func TestFileExists(t *testing.T) {
	assert.False(t, fileExists(""))
	assert.False(t, fileExists(filepath.Join(t.TempDir(), "absent")))
}
