// Package memcopy provides interchangeable strategies for bulk memory copies.
//
// Every strategy implements Copier: it allocates buffers with the alignment it
// needs, copies between them, and frees them again. Strategies range from the
// runtime's own memmove to hand-written 256-bit vector loops:
//
//	default                     Go's built-in copy (runtime memmove)
//	repmovsb                    one REP MOVSB instruction (amd64)
//	avx                         aligned 32-byte loads/stores
//	avx-stream                  non-temporal loads/stores + SFENCE
//	avx-unroll                  four registers per iteration
//	avx-stream-unroll           non-temporal, four registers per iteration
//	avx-prefetch                two registers per iteration, next line prefetched
//	avx-stream-prefetch-unroll  non-temporal, four registers, two prefetches
//
// Parallel fans one copy out over several goroutines, each running any of the
// strategies above on a disjoint chunk.
//
// # Quick Start
//
//	c, _ := memcopy.New(memcopy.KindAVXStreamUnroll)
//	src, _ := c.Alloc(size)
//	dst, _ := c.Alloc(size)
//	defer c.Free(src)
//	defer c.Free(dst)
//
//	c.Copy(dst, src, size)
//
//	// Four workers, each running the streaming kernel on a quarter.
//	p := memcopy.NewParallel(memcopy.NewAVXStreamUnrollCopier(), 4)
//	p.Copy(dst, src, size)
//
// # Alignment Contract
//
// Copy performs no validation. dst and src must come from the same copier's
// Alloc (or be aligned to Descriptor().Alignment), must not overlap, and must
// have capacity for the size rounded up to the alignment. Strategies with an
// alignment above one byte copy exactly AlignUp(size, Alignment) bytes; bytes
// of dst beyond that are left unmodified. Breaking the contract is undefined
// behavior.
//
// # Kernel Selection
//
// Vector strategies always exist. On amd64 they run AVX/AVX2 assembly when the
// CPU supports it and pure-Go loops with the same structure otherwise. Build
// with -tags noasm or set MEMCOPY_SIMD=generic to force the Go loops.
package memcopy
