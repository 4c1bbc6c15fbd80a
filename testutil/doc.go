// Package testutil provides testing utilities for memcopy.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic buffer fillers, a first-difference finder for
// readable failure messages, and the size sweep used by the benchmarks.
//
// # Buffer Filling
//
//	rng := testutil.NewRNG(seed)
//	rng.FillBytes(src)          // pseudo-random content
//	testutil.Fill(dst, 0xAA)    // sentinel
//
// # Verification
//
//	if i := testutil.FirstDiff(dst, src); i >= 0 { ... }
//
// # Size Sweeps
//
//	for _, size := range testutil.SizeRange(32, 256<<20, 8) { ... }
package testutil
