package directory

import (
	"unicode/utf16"
)

// EncodeUnicodePwd encodes a clear-text password into the wire format the
// unicodePwd attribute requires: the password surrounded by double quotes,
// encoded as UTF-16LE.
func EncodeUnicodePwd(password string) string {
	units := utf16.Encode([]rune(`"` + password + `"`))

	b := make([]byte, 0, len(units)*2)
	for _, u := range units {
		b = append(b, byte(u), byte(u>>8))
	}

	return string(b)
}
