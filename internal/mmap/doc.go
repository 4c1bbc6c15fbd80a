// Package mmap provides anonymous read-write memory mappings.
//
// Mappings live outside the Go heap: the garbage collector neither scans nor
// moves them, and they are returned to the OS with Unmap. They are page aligned,
// which satisfies every vector alignment the copy kernels require.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: VirtualAlloc/VirtualFree (Advise is a no-op)
//   - Other platforms: MapAnon returns ErrUnsupported
package mmap
