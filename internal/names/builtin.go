package names

import (
	"github.com/brianvoe/gofakeit"
)

// BuiltinPool fabricates a seed pool of n name pairs for runs that do not
// supply a seeds file. Duplicates are acceptable; uniqueness is enforced on
// the derived account identifiers, not the seeds.
func BuiltinPool(n int) []Seed {
	if n <= 0 {
		return nil
	}

	pool := make([]Seed, 0, n)
	for range n {
		pool = append(pool, Seed{
			FirstName: gofakeit.FirstName(),
			LastName:  gofakeit.LastName(),
		})
	}

	return pool
}
