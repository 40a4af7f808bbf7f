package ldap

import (
	"strings"
)

// EscapeDNValue escapes special characters in a DN attribute value per
// RFC 4514: the characters , + " \ < > ; always, # only when leading, and
// spaces only when leading or trailing. NULL bytes become \00.
func EscapeDNValue(value string) string {
	if value == "" {
		return value
	}

	var b strings.Builder
	b.Grow(len(value) + 8)

	for i, r := range value {
		switch r {
		case ',', '+', '"', '\\', '<', '>', ';':
			b.WriteRune('\\')
			b.WriteRune(r)
		case '#':
			if i == 0 {
				b.WriteRune('\\')
			}
			b.WriteRune(r)
		case ' ':
			if i == 0 || i == len(value)-1 {
				b.WriteRune('\\')
			}
			b.WriteRune(r)
		case 0:
			b.WriteString("\\00")
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// JoinDN builds "CN=<name>,<container>" with the CN value escaped.
func JoinDN(name, container string) string {
	return "CN=" + EscapeDNValue(name) + "," + container
}

// EqualDN compares two DNs ignoring case and whitespace around RDN separators.
// Sufficient for comparing DNs the tool itself composed against DNs returned
// by the server; it does not attempt full RFC 4514 normalization.
func EqualDN(a, b string) bool {
	return strings.EqualFold(normalizeDN(a), normalizeDN(b))
}

// ParentDN returns the DN with its first RDN removed, honoring escaped commas.
func ParentDN(dn string) string {
	for i := 0; i < len(dn); i++ {
		if dn[i] == '\\' {
			i++
			continue
		}
		if dn[i] == ',' {
			return strings.TrimSpace(dn[i+1:])
		}
	}
	return ""
}

func normalizeDN(dn string) string {
	parts := splitDN(dn)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return strings.Join(parts, ",")
}

func splitDN(dn string) []string {
	var parts []string
	var cur strings.Builder

	for i := 0; i < len(dn); i++ {
		if dn[i] == '\\' && i+1 < len(dn) {
			cur.WriteByte(dn[i])
			cur.WriteByte(dn[i+1])
			i++
			continue
		}
		if dn[i] == ',' {
			parts = append(parts, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(dn[i])
	}
	parts = append(parts, cur.String())

	return parts
}
