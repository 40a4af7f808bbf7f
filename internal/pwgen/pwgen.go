// Package pwgen generates initial account passwords from a cryptographically
// strong random source.
package pwgen

import (
	"crypto/rand"
	"fmt"
)

// Length bounds for generated passwords.
const (
	MinLength = 1
	MaxLength = 100
)

// charset is the printable ASCII range excluding space, single and double
// quotes, and '#'. Quotes break the unicodePwd quoting convention and '#'
// collides with the comment syntax of the files this tool consumes.
var charset = buildCharset()

func buildCharset() []byte {
	var cs []byte
	for c := byte('!'); c <= '~'; c++ {
		switch c {
		case '"', '\'', '#':
			continue
		}
		cs = append(cs, c)
	}
	return cs
}

// Generate produces a random password of the requested length, drawn
// uniformly from the charset via rejection sampling.
func Generate(length int) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", fmt.Errorf("pwgen: length must be between %d and %d, got %d", MinLength, MaxLength, length)
	}

	// Largest multiple of len(charset) representable in a byte; bytes at or
	// above this are rejected to keep the distribution uniform.
	limit := byte(256 / len(charset) * len(charset))

	out := make([]byte, 0, length)
	buf := make([]byte, length)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("pwgen: reading random source: %w", err)
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, charset[int(b)%len(charset)])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}
