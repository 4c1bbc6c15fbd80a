package benchmark_test

import (
	"testing"

	"github.com/hupe1980/memcopy"
	"github.com/hupe1980/memcopy/testutil"
)

// ============================================================================
// Benchmark Configuration
// ============================================================================

// Size sweep: 32 B to 256 MiB, multiplying by 8.
const (
	sizeMin  = 32
	sizeMax  = 256 << 20
	sizeMult = 8

	// shortMax caps the sweep under -short so CI stays in cache-sized buffers.
	shortMax = 1 << 20
)

// fillByte is the value every source buffer is filled with.
const fillByte = 'x'

// benchSizes returns the sweep for this run.
func benchSizes() []int {
	hi := sizeMax
	if testing.Short() {
		hi = shortMax
	}
	return testutil.SizeRange(sizeMin, hi, sizeMult)
}

// benchBuffers allocates a src/dst pair through c and fills src.
// Both buffers are freed when the benchmark ends.
func benchBuffers(b *testing.B, c memcopy.Copier, size int) (dst, src []byte) {
	b.Helper()

	src, err := c.Alloc(size)
	if err != nil {
		b.Fatalf("alloc src: %v", err)
	}
	dst, err = c.Alloc(size)
	if err != nil {
		c.Free(src)
		b.Fatalf("alloc dst: %v", err)
	}
	b.Cleanup(func() {
		c.Free(dst)
		c.Free(src)
	})

	testutil.Fill(src, fillByte)
	return dst, src
}

func sizeName(size int) string {
	switch {
	case size >= 1<<20 && size%(1<<20) == 0:
		return itoa(size>>20) + "MiB"
	case size >= 1<<10 && size%(1<<10) == 0:
		return itoa(size>>10) + "KiB"
	default:
		return itoa(size) + "B"
	}
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
