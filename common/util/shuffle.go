package util

import (
	"time"

	"golang.org/x/exp/rand"
)

// NewRand returns a random generator seeded with `seed`, or with the current time if `seed` is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewSource(seed))
}

// ShuffleWith permutes `items` in place using `rng`, every permutation being equally likely.
func ShuffleWith[T any](rng *rand.Rand, items []T) {
	for i := range items {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
