package ldap

import (
	"testing"
)

func TestEscapeDNValue(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "plain value", value: "Sales", want: "Sales"},
		{name: "empty value", value: "", want: ""},
		{name: "comma", value: "Smith, John", want: "Smith\\, John"},
		{name: "plus", value: "a+b", want: "a\\+b"},
		{name: "quote", value: `say "hi"`, want: `say \"hi\"`},
		{name: "backslash", value: `a\b`, want: `a\\b`},
		{name: "angle brackets", value: "<tag>", want: "\\<tag\\>"},
		{name: "semicolon", value: "a;b", want: "a\\;b"},
		{name: "leading hash", value: "#comment", want: "\\#comment"},
		{name: "interior hash kept", value: "a#b", want: "a#b"},
		{name: "leading space", value: " padded", want: "\\ padded"},
		{name: "trailing space", value: "padded ", want: "padded\\ "},
		{name: "interior space kept", value: "Ada Lovelace", want: "Ada Lovelace"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeDNValue(tt.value); got != tt.want {
				t.Errorf("EscapeDNValue(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestJoinDN(t *testing.T) {
	got := JoinDN("Smith, John", "CN=Users,DC=example,DC=com")
	want := "CN=Smith\\, John,CN=Users,DC=example,DC=com"
	if got != want {
		t.Errorf("JoinDN() = %q, want %q", got, want)
	}
}

func TestEqualDN(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{
			name: "identical",
			a:    "CN=Sales,CN=Users,DC=example,DC=com",
			b:    "CN=Sales,CN=Users,DC=example,DC=com",
			want: true,
		},
		{
			name: "case differs",
			a:    "cn=sales,cn=users,dc=example,dc=com",
			b:    "CN=Sales,CN=Users,DC=example,DC=com",
			want: true,
		},
		{
			name: "whitespace around separators",
			a:    "CN=Sales, CN=Users, DC=example, DC=com",
			b:    "CN=Sales,CN=Users,DC=example,DC=com",
			want: true,
		},
		{
			name: "different container",
			a:    "CN=Sales,OU=Legacy,DC=example,DC=com",
			b:    "CN=Sales,CN=Users,DC=example,DC=com",
			want: false,
		},
		{
			name: "escaped comma not a separator",
			a:    "CN=Smith\\, John,CN=Users,DC=example,DC=com",
			b:    "CN=Smith\\, John,CN=Users,DC=example,DC=com",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EqualDN(tt.a, tt.b); got != tt.want {
				t.Errorf("EqualDN(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestParentDN(t *testing.T) {
	tests := []struct {
		name string
		dn   string
		want string
	}{
		{
			name: "simple",
			dn:   "CN=Sales,CN=Users,DC=example,DC=com",
			want: "CN=Users,DC=example,DC=com",
		},
		{
			name: "escaped comma in RDN",
			dn:   "CN=Smith\\, John,CN=Users,DC=example,DC=com",
			want: "CN=Users,DC=example,DC=com",
		},
		{
			name: "single RDN",
			dn:   "DC=com",
			want: "",
		},
		{
			name: "space after separator",
			dn:   "CN=Sales, CN=Users,DC=example,DC=com",
			want: "CN=Users,DC=example,DC=com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParentDN(tt.dn); got != tt.want {
				t.Errorf("ParentDN(%q) = %q, want %q", tt.dn, got, tt.want)
			}
		})
	}
}
