// Package simd provides the vector copy kernels behind the memcopy strategies.
//
// # Supported Platforms
//
//   - x86-64: AVX (aligned 256-bit moves, prefetch), AVX2 (streaming 256-bit
//     loads), REP MOVSB
//   - everything else: pure Go kernels with the same loop structure
//
// Runtime CPU feature detection selects the implementation.
// Build with -tags noasm to force the generic Go fallback, or set
// MEMCOPY_SIMD=generic|avx|avx2 to cap the active ISA.
//
// # Kernels
//
//   - CopyAligned, StreamAligned: one 32-byte register per iteration
//   - CopyUnrolled, StreamUnrolled: four registers per iteration
//   - CopyPrefetch: two registers per iteration, next line prefetched
//   - StreamPrefetchUnrolled: four registers, two prefetches per iteration
//
// Streaming kernels use non-temporal loads and stores and finish with a store
// fence, so all writes are globally visible when they return.
//
// # Preconditions
//
// Kernels do not validate their input. dst and src must not overlap, must be
// aligned to the kernel's block width and len(src) must be a multiple of it.
// Violations are undefined behavior (aligned vector moves fault on
// misaligned addresses).
package simd
