package simd

import (
	"math/rand"
	"testing"

	"github.com/hupe1980/memcopy/internal/mem"
)

// Benchmarks in this package are meant to be run twice to compare:
// - default build: asm enabled (AVX dispatch when available)
// - generic build: `-tags noasm` (forces pure-Go implementations)
//
// Examples:
//   go test ./internal/simd -run '^$' -bench . -benchmem
//   go test ./internal/simd -run '^$' -bench . -benchmem -tags noasm

func BenchmarkKernels(b *testing.B) {
	r := rand.New(rand.NewSource(1))

	for _, size := range []int{4 << 10, 256 << 10, 16 << 20} {
		src := randBytes(r, size)
		dst := mem.AllocAligned(size)

		for _, k := range kernels() {
			b.Run(k.name+"/size="+itoa(size), func(b *testing.B) {
				b.SetBytes(int64(size))
				for b.Loop() {
					k.fn(dst, src)
				}
			})
		}

		b.Run("builtin/size="+itoa(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			for b.Loop() {
				copy(dst, src)
			}
		})
	}
}

// itoa is a tiny, allocation-free int-to-decimal helper for benchmark names.
func itoa(x int) string {
	if x == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	n := x
	if n < 0 {
		n = -n
	}
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if x < 0 {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
