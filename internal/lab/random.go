package lab

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Picker makes the run's membership decisions. It wraps a single generator
// behind a mutex so stage workers can share it.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker creates a time-seeded picker.
func NewPicker() *Picker {
	now := uint64(time.Now().UnixNano())
	return NewPickerWithRand(rand.New(rand.NewPCG(now, now>>32)))
}

// NewPickerWithRand creates a picker over a caller-supplied generator, for
// deterministic tests.
func NewPickerWithRand(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

// PickOne returns one element of items, uniformly. Empty input returns the
// zero value.
func (p *Picker) PickOne(items []string) string {
	if len(items) == 0 {
		return ""
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	return items[p.rng.IntN(len(items))]
}

// PickSubset returns a proper random subset of items: the subset size k is
// drawn uniformly from [1, max(1, n-1)], then k distinct elements are chosen
// by rejection. With two items the subset is always a single element; with
// one item it is that item. Empty input returns nil.
func (p *Picker) PickSubset(items []string) []string {
	n := len(items)
	if n == 0 {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	bound := n - 1
	if bound < 1 {
		bound = 1
	}
	k := 1 + p.rng.IntN(bound)
	if k > n {
		k = n
	}

	chosen := make(map[int]struct{}, k)
	subset := make([]string, 0, k)
	for len(subset) < k {
		i := p.rng.IntN(n)
		if _, dup := chosen[i]; dup {
			continue
		}
		chosen[i] = struct{}{}
		subset = append(subset, items[i])
	}

	return subset
}
