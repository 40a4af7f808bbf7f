package pwgen

import (
	"strings"
	"testing"
)

func TestGenerateLength(t *testing.T) {
	for _, length := range []int{1, 8, 16, 64, 100} {
		got, err := Generate(length)
		if err != nil {
			t.Fatalf("Generate(%d) error: %v", length, err)
		}
		if len(got) != length {
			t.Errorf("Generate(%d) returned %d characters", length, len(got))
		}
	}
}

func TestGenerateBounds(t *testing.T) {
	for _, length := range []int{0, -1, 101} {
		if _, err := Generate(length); err == nil {
			t.Errorf("Generate(%d) succeeded, want error", length)
		}
	}
}

func TestGenerateCharset(t *testing.T) {
	for range 20 {
		got, err := Generate(100)
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}

		if strings.ContainsAny(got, `"'# `) {
			t.Fatalf("password %q contains an excluded character", got)
		}
		for _, r := range got {
			if r < '!' || r > '~' {
				t.Fatalf("password %q contains non-printable rune %q", got, r)
			}
		}
	}
}

func TestGenerateVaries(t *testing.T) {
	a, err := Generate(32)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	b, err := Generate(32)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if a == b {
		t.Error("two generated passwords are identical")
	}
}
