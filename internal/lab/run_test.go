package lab

import (
	"strings"
	"testing"
)

func TestNewRunConfigDefaults(t *testing.T) {
	cfg, err := NewRunConfig()
	if err != nil {
		t.Fatalf("NewRunConfig() error: %v", err)
	}

	if cfg.Count != 40 {
		t.Errorf("default Count = %d, want 40", cfg.Count)
	}
	if cfg.Workers != 1 {
		t.Errorf("default Workers = %d, want 1", cfg.Workers)
	}
	if cfg.PasswordLength != 16 {
		t.Errorf("default PasswordLength = %d, want 16", cfg.PasswordLength)
	}
	if cfg.Mode != ModeDefault {
		t.Errorf("default Mode = %v, want %v", cfg.Mode, ModeDefault)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestRunConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RunConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *RunConfig) {}},
		{name: "count at lower bound", mutate: func(c *RunConfig) { c.Count = 1 }},
		{name: "count at upper bound", mutate: func(c *RunConfig) { c.Count = 10000 }},
		{name: "count zero", mutate: func(c *RunConfig) { c.Count = 0 }, wantErr: true},
		{name: "count over limit", mutate: func(c *RunConfig) { c.Count = 10001 }, wantErr: true},
		{name: "workers at limit", mutate: func(c *RunConfig) { c.Workers = 32 }},
		{name: "workers zero", mutate: func(c *RunConfig) { c.Workers = 0 }, wantErr: true},
		{name: "workers over limit", mutate: func(c *RunConfig) { c.Workers = 33 }, wantErr: true},
		{name: "password length zero", mutate: func(c *RunConfig) { c.PasswordLength = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewRunConfig()
			if err != nil {
				t.Fatalf("NewRunConfig() error: %v", err)
			}
			tt.mutate(cfg)

			err = cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGroupLocationConflictError(t *testing.T) {
	err := &GroupLocationConflictError{
		Group:     "Finance",
		FoundDN:   "CN=Finance,OU=Legacy,DC=example,DC=com",
		Container: "CN=Users,DC=example,DC=com",
	}

	msg := err.Error()
	for _, want := range []string{"Finance", "OU=Legacy", "CN=Users"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error message %q missing %q", msg, want)
		}
	}
}
