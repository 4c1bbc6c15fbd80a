package benchmark_test

import (
	"runtime"
	"testing"

	"github.com/hupe1980/memcopy"
)

// ============================================================================
// BENCHMARK METHODOLOGY
// ============================================================================
//
// 1. WARMUP PHASE: run a few copies first so buffers are faulted in and the
//    caches hold what a steady-state loop would see.
//
// 2. GC CONTROL: force a GC before measurement so setup allocations do not
//    trigger a collection inside the timed loop.
//
// 3. ONE COPY PER ITERATION: each b.N iteration copies the whole buffer once,
//    and b.SetBytes makes the reported MB/s the copy throughput.
//
// 4. VALIDATION SEPARATE: the result is checked once after the timer stops.

// WarmupIterations is the number of untimed copies before measurement.
const WarmupIterations = 10

// BenchLoop runs fn with warmup, GC and byte accounting.
func BenchLoop(b *testing.B, bytesPerOp int, fn func()) {
	b.Helper()

	for range WarmupIterations {
		fn()
	}

	runtime.GC()

	b.SetBytes(int64(bytesPerOp))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		fn()
	}

	b.StopTimer()
}

// BenchCopy measures c over one buffer size and verifies the destination.
func BenchCopy(b *testing.B, c memcopy.Copier, size int) {
	b.Helper()

	dst, src := benchBuffers(b, c, size)
	BenchLoop(b, size, func() {
		c.Copy(dst, src, size)
	})

	for i := range size {
		if dst[i] != fillByte {
			b.Fatalf("%s: byte %d = %#x after copy", c.Descriptor().Name, i, dst[i])
		}
	}
}
