package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// FillBytes fills dst with pseudo-random bytes.
// Locks only once per call.
func (r *RNG) FillBytes(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = r.rand.Read(dst)
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	out := make([]byte, n)
	r.FillBytes(out)
	return out
}

// Fill sets every byte of dst to b.
func Fill(dst []byte, b byte) {
	for i := range dst {
		dst[i] = b
	}
}

// FirstDiff returns the index of the first byte where a and b differ, or -1
// if they are equal. A length mismatch counts as a difference at the shorter
// length.
func FirstDiff(a, b []byte) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

// SizeRange returns lo, then every power of mult strictly between lo and hi,
// then hi: the same sweep a benchmark Range(lo, hi) with multiplier mult
// produces.
func SizeRange(lo, hi, mult int) []int {
	if mult < 2 {
		mult = 2
	}
	sizes := []int{lo}
	for s := 1; s < hi; s *= mult {
		if s > lo {
			sizes = append(sizes, s)
		}
	}
	if hi > lo {
		sizes = append(sizes, hi)
	}
	return sizes
}
