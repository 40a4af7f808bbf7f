package ldap

import (
	"encoding/hex"
	"fmt"

	"github.com/go-ldap/ldap/v3"
	"github.com/google/uuid"
)

// GUID is always 16 bytes on the wire.
const GUIDBytesLength = 16

// GUIDHandler converts between textual GUIDs and Active Directory's
// mixed-endian objectGUID byte encoding (Data1-Data3 little-endian, Data4
// big-endian).
type GUIDHandler struct{}

// NewGUIDHandler creates a new GUID handler instance.
func NewGUIDHandler() *GUIDHandler {
	return &GUIDHandler{}
}

// IsValidGUID checks if a string parses as a GUID.
func (g *GUIDHandler) IsValidGUID(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// NormalizeGUID converts a GUID string to canonical lowercase hyphenated form.
func (g *GUIDHandler) NormalizeGUID(s string) (string, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid GUID format %q: %w", s, err)
	}
	return id.String(), nil
}

// StringToGUIDBytes converts a GUID string to AD objectGUID bytes.
func (g *GUIDHandler) StringToGUIDBytes(s string) ([]byte, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("invalid GUID format %q: %w", s, err)
	}

	return swizzleGUID(id[:]), nil
}

// GUIDBytesToString converts AD objectGUID bytes to canonical string form.
func (g *GUIDHandler) GUIDBytesToString(b []byte) (string, error) {
	if len(b) != GUIDBytesLength {
		return "", fmt.Errorf("invalid GUID byte length: expected %d, got %d", GUIDBytesLength, len(b))
	}

	id, err := uuid.FromBytes(swizzleGUID(b))
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

// swizzleGUID reverses the byte order of Data1, Data2 and Data3. The
// operation is its own inverse.
func swizzleGUID(in []byte) []byte {
	out := make([]byte, GUIDBytesLength)
	out[0], out[1], out[2], out[3] = in[3], in[2], in[1], in[0]
	out[4], out[5] = in[5], in[4]
	out[6], out[7] = in[7], in[6]
	copy(out[8:], in[8:])
	return out
}

// GUIDToSearchFilter creates a binary objectGUID search filter.
func (g *GUIDHandler) GUIDToSearchFilter(s string) (string, error) {
	b, err := g.StringToGUIDBytes(s)
	if err != nil {
		return "", fmt.Errorf("failed to convert GUID to bytes: %w", err)
	}

	return fmt.Sprintf("(objectGUID=%s)", ldap.EscapeFilter(string(b))), nil
}

// ExtractGUID extracts the objectGUID from an LDAP entry as a string.
func (g *GUIDHandler) ExtractGUID(entry *ldap.Entry) (string, error) {
	if entry == nil {
		return "", fmt.Errorf("LDAP entry cannot be nil")
	}

	raw := entry.GetRawAttributeValue("objectGUID")
	if len(raw) == 0 {
		return "", fmt.Errorf("objectGUID attribute not found in entry")
	}
	if len(raw) != GUIDBytesLength {
		return "", fmt.Errorf("invalid objectGUID length: expected %d bytes, got %d (hex %s)",
			GUIDBytesLength, len(raw), hex.EncodeToString(raw))
	}

	return g.GUIDBytesToString(raw)
}

// ExtractGUIDSafe extracts the objectGUID, returning "" when absent or malformed.
func (g *GUIDHandler) ExtractGUIDSafe(entry *ldap.Entry) string {
	guid, err := g.ExtractGUID(entry)
	if err != nil {
		return ""
	}
	return guid
}
