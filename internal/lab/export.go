package lab

import (
	"fmt"
	"os"
	"strings"
)

// ExportCredentials writes one "accountID:password" line per credential. The
// file carries clear-text passwords, so it is created owner-readable only.
func ExportCredentials(path string, creds []Credential) error {
	var b strings.Builder
	for _, cred := range creds {
		b.WriteString(cred.AccountID)
		b.WriteByte(':')
		b.WriteString(cred.ClearPassword)
		b.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("lab: exporting credentials: %w", err)
	}

	return nil
}
