// Package names implements the name synthesizer: it draws first/last name
// pairs from a seed pool and derives collision-free account identifiers.
package names

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

// ErrExhaustedNameSpace reports that the seed pool cannot yield enough
// distinct account identifiers for the requested count. Fatal and
// non-retryable: the pool needs more diversity.
var ErrExhaustedNameSpace = errors.New("names: account identifier space exhausted")

// Account identifier sizing. sAMAccountName is capped at 20 characters for
// user accounts; the base is truncated one short of that so a single-digit
// collision suffix always fits.
const (
	maxBaseLength = 20
	maxSuffix     = 9
)

// Seed is one first/last name pair from the seed pool.
type Seed struct {
	FirstName string
	LastName  string
}

// Identity is a synthesized user identity. AccountID is unique within the
// batch it was generated in.
type Identity struct {
	FirstName string
	LastName  string
	AccountID string
}

// Synthesizer generates identities from a seed pool.
type Synthesizer struct {
	rng *rand.Rand
}

// NewSynthesizer creates a synthesizer with a time-seeded generator.
func NewSynthesizer() *Synthesizer {
	now := uint64(time.Now().UnixNano())
	return NewSynthesizerWithRand(rand.New(rand.NewPCG(now, now>>32)))
}

// NewSynthesizerWithRand creates a synthesizer with a caller-supplied
// generator, for deterministic tests.
func NewSynthesizerWithRand(rng *rand.Rand) *Synthesizer {
	return &Synthesizer{rng: rng}
}

// Generate produces exactly count identities. First and last names are drawn
// independently and uniformly from the pool, so they need not come from the
// same seed record. The account identifier is firstInitial+lastName,
// lowercased and truncated, with a numeric suffix probe on collision.
func (s *Synthesizer) Generate(pool []Seed, count int) ([]Identity, error) {
	if len(pool) == 0 {
		return nil, fmt.Errorf("names: seed pool cannot be empty")
	}
	if count <= 0 {
		return nil, fmt.Errorf("names: count must be positive, got %d", count)
	}

	identities := make([]Identity, 0, count)
	taken := make(map[string]struct{}, count)

	for range count {
		first := pool[s.rng.IntN(len(pool))].FirstName
		last := pool[s.rng.IntN(len(pool))].LastName

		accountID, err := uniqueAccountID(baseAccountID(first, last), taken)
		if err != nil {
			return nil, err
		}

		taken[accountID] = struct{}{}
		identities = append(identities, Identity{
			FirstName: first,
			LastName:  last,
			AccountID: accountID,
		})
	}

	return identities, nil
}

// baseAccountID derives the candidate identifier: first initial + last name,
// lowercased, stripped of characters sAMAccountName cannot carry, truncated.
func baseAccountID(first, last string) string {
	candidate := sanitize(strings.ToLower(firstInitial(first) + last))

	if len(candidate) > maxBaseLength {
		candidate = candidate[:maxBaseLength]
	}
	if candidate == "" {
		candidate = "user"
	}

	return candidate
}

func uniqueAccountID(base string, taken map[string]struct{}) (string, error) {
	if _, exists := taken[base]; !exists {
		return base, nil
	}

	for suffix := 1; suffix <= maxSuffix; suffix++ {
		candidate := fmt.Sprintf("%s%d", base, suffix)
		if _, exists := taken[candidate]; !exists {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: no unique identifier for base %q after %d suffixes", ErrExhaustedNameSpace, base, maxSuffix)
}

func firstInitial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return ""
}

// sanitize drops characters that are invalid in sAMAccountName values
// (spaces, apostrophes and other punctuation seen in real surnames).
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z',
			r >= '0' && r <= '9',
			r == '-', r == '.', r == '_':
			b.WriteRune(r)
		}
	}

	return b.String()
}
