package ldap

import (
	"testing"
)

func TestGetAuthMethod(t *testing.T) {
	tests := []struct {
		name   string
		config *ConnectionConfig
		want   AuthMethod
	}{
		{
			name:   "simple bind with username",
			config: &ConnectionConfig{Username: "admin@example.com", Password: "secret"},
			want:   AuthMethodSimpleBind,
		},
		{
			name:   "kerberos with keytab",
			config: &ConnectionConfig{KerberosRealm: "EXAMPLE.COM", KerberosKeytab: "/etc/krb5.keytab"},
			want:   AuthMethodKerberos,
		},
		{
			name:   "kerberos with ccache",
			config: &ConnectionConfig{KerberosRealm: "EXAMPLE.COM", KerberosCCache: "/tmp/krb5cc_0"},
			want:   AuthMethodKerberos,
		},
		{
			name:   "kerberos with username and password",
			config: &ConnectionConfig{KerberosRealm: "EXAMPLE.COM", Username: "admin", Password: "secret"},
			want:   AuthMethodKerberos,
		},
		{
			name:   "realm alone is not kerberos",
			config: &ConnectionConfig{KerberosRealm: "EXAMPLE.COM"},
			want:   AuthMethodSimpleBind,
		},
		{
			name:   "external with client certificate",
			config: &ConnectionConfig{TLSClientCertFile: "/tls/cert.pem", TLSClientKeyFile: "/tls/key.pem"},
			want:   AuthMethodExternal,
		},
		{
			name:   "no credentials",
			config: &ConnectionConfig{},
			want:   AuthMethodSimpleBind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.GetAuthMethod(); got != tt.want {
				t.Errorf("GetAuthMethod() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasAuthentication(t *testing.T) {
	tests := []struct {
		name   string
		config *ConnectionConfig
		want   bool
	}{
		{name: "empty", config: &ConnectionConfig{}, want: false},
		{name: "username only", config: &ConnectionConfig{Username: "admin"}, want: false},
		{name: "username and password", config: &ConnectionConfig{Username: "admin", Password: "x"}, want: true},
		{name: "kerberos keytab", config: &ConnectionConfig{KerberosRealm: "EXAMPLE.COM", KerberosKeytab: "/k"}, want: true},
		{name: "client certificate", config: &ConnectionConfig{TLSClientCertFile: "/c", TLSClientKeyFile: "/k"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.config.HasAuthentication(); got != tt.want {
				t.Errorf("HasAuthentication() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.UseTLS {
		t.Error("default config must upgrade to TLS")
	}
	if cfg.MaxConnections <= 0 || cfg.MaxConnections > MaxConnectionPoolLimit {
		t.Errorf("MaxConnections = %d out of range", cfg.MaxConnections)
	}
	if cfg.BackoffFactor <= 1.0 {
		t.Errorf("BackoffFactor = %v, must exceed 1.0", cfg.BackoffFactor)
	}
	if cfg.TLSConfig == nil || cfg.TLSConfig.MinVersion == 0 {
		t.Error("default TLS config must pin a minimum version")
	}
	if err := validateConfig(cfg); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}

	if cfg.HasAuthentication() {
		t.Error("default config must not carry credentials")
	}
}

func TestAuthMethodString(t *testing.T) {
	tests := []struct {
		method AuthMethod
		want   string
	}{
		{AuthMethodSimpleBind, "simple"},
		{AuthMethodKerberos, "kerberos"},
		{AuthMethodExternal, "external"},
		{AuthMethod(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.method.String(); got != tt.want {
			t.Errorf("AuthMethod(%d).String() = %q, want %q", tt.method, got, tt.want)
		}
	}
}
