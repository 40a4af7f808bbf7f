package lab

import (
	"errors"
	"testing"
)

func TestModeFromFlags(t *testing.T) {
	tests := []struct {
		name       string
		cleanRoles bool
		noRoles    bool
		want       Mode
		wantErr    error
	}{
		{name: "neither flag", want: ModeDefault},
		{name: "clean roles", cleanRoles: true, want: ModeCleanRoles},
		{name: "no roles", noRoles: true, want: ModeNoRoles},
		{name: "both flags", cleanRoles: true, noRoles: true, wantErr: ErrInvalidModeCombination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ModeFromFlags(tt.cleanRoles, tt.noRoles)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ModeFromFlags() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ModeFromFlags() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ModeFromFlags() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeDefault, "default"},
		{ModeCleanRoles, "clean-roles"},
		{ModeNoRoles, "no-roles"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
}
