package ldap

import (
	"testing"
	"time"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		config  *ConnectionConfig
		wantErr bool
	}{
		{
			name: "default config with URLs",
			config: func() *ConnectionConfig {
				cfg := DefaultConfig()
				cfg.LDAPURLs = []string{"ldaps://dc1.example.com:636"}
				return cfg
			}(),
			wantErr: false,
		},
		{
			name: "valid explicit config",
			config: &ConnectionConfig{
				LDAPURLs:       []string{"ldaps://dc1.example.com:636"},
				MaxConnections: 5,
				MaxIdleTime:    2 * time.Minute,
				Timeout:        15 * time.Second,
				MaxRetries:     2,
				BackoffFactor:  1.5,
				UseTLS:         true,
			},
			wantErr: false,
		},
		{
			name: "no domain or URLs",
			config: &ConnectionConfig{
				MaxConnections: 5,
				MaxIdleTime:    2 * time.Minute,
				Timeout:        15 * time.Second,
				BackoffFactor:  2.0,
			},
			wantErr: true,
		},
		{
			name: "zero max connections",
			config: &ConnectionConfig{
				LDAPURLs:       []string{"ldaps://dc1.example.com:636"},
				MaxConnections: 0,
				MaxIdleTime:    2 * time.Minute,
				Timeout:        15 * time.Second,
				BackoffFactor:  2.0,
			},
			wantErr: true,
		},
		{
			name: "max connections over pool limit",
			config: &ConnectionConfig{
				LDAPURLs:       []string{"ldaps://dc1.example.com:636"},
				MaxConnections: MaxConnectionPoolLimit + 1,
				MaxIdleTime:    2 * time.Minute,
				Timeout:        15 * time.Second,
				BackoffFactor:  2.0,
			},
			wantErr: true,
		},
		{
			name: "backoff factor not greater than one",
			config: &ConnectionConfig{
				LDAPURLs:       []string{"ldaps://dc1.example.com:636"},
				MaxConnections: 5,
				MaxIdleTime:    2 * time.Minute,
				Timeout:        15 * time.Second,
				BackoffFactor:  1.0,
			},
			wantErr: true,
		},
		{
			name: "negative retries",
			config: &ConnectionConfig{
				LDAPURLs:       []string{"ldaps://dc1.example.com:636"},
				MaxConnections: 5,
				MaxIdleTime:    2 * time.Minute,
				Timeout:        15 * time.Second,
				MaxRetries:     -1,
				BackoffFactor:  2.0,
			},
			wantErr: true,
		},
		{
			name: "malformed LDAP URL",
			config: &ConnectionConfig{
				LDAPURLs:       []string{"http://dc1.example.com"},
				MaxConnections: 5,
				MaxIdleTime:    2 * time.Minute,
				Timeout:        15 * time.Second,
				BackoffFactor:  2.0,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.config)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewClient() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				defer client.Close()
			}
		})
	}
}
