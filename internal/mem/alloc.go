package mem

import (
	"errors"
	"fmt"
	"os"
	"unsafe"

	"github.com/hupe1980/memcopy/internal/mmap"
	"github.com/hupe1980/memcopy/internal/resource"
)

// CacheLineSize is the alignment used by AllocAligned.
const CacheLineSize = 64

var (
	// ErrInvalidAlignment is returned when alignment is not a power of two
	// or exceeds what the allocator can guarantee.
	ErrInvalidAlignment = errors.New("mem: invalid alignment")
	// ErrInvalidSize is returned for negative sizes.
	ErrInvalidSize = errors.New("mem: invalid size")
)

// Allocator hands out aligned buffers and takes them back.
type Allocator interface {
	// Alloc returns a buffer with len == size, cap == AlignUp(size, alignment)
	// and its first byte aligned to alignment. size == 0 yields a nil buffer.
	Alloc(size, alignment int) ([]byte, error)
	// Free releases a buffer obtained from Alloc of the same allocator.
	Free(buf []byte) error
}

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}
	return allocHeap(size, CacheLineSize)
}

// allocHeap over-allocates by alignment bytes and re-slices at the first
// aligned offset. The underlying array is kept alive by the returned slice.
func allocHeap(size, alignment int) []byte {
	capacity := AlignUp(size, alignment)
	buf := make([]byte, capacity+alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := int(AlignUpPtr(addr, uintptr(alignment)) - addr)

	return buf[offset : offset+size : offset+capacity]
}

func checkArgs(size, alignment int) error {
	if size < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if !IsPowerOfTwo(alignment) {
		return fmt.Errorf("%w: %d is not a power of two", ErrInvalidAlignment, alignment)
	}
	return nil
}

// HeapAllocator allocates aligned buffers from the Go heap.
// A nil Controller means no memory budget.
type HeapAllocator struct {
	rc *resource.Controller
}

// NewHeapAllocator creates a heap allocator charging rc for every buffer.
func NewHeapAllocator(rc *resource.Controller) *HeapAllocator {
	return &HeapAllocator{rc: rc}
}

// Alloc implements Allocator.
func (a *HeapAllocator) Alloc(size, alignment int) ([]byte, error) {
	if err := checkArgs(size, alignment); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}

	capacity := AlignUp(size, alignment)
	if err := a.rc.AcquireMemory(int64(capacity)); err != nil {
		return nil, err
	}

	return allocHeap(size, alignment), nil
}

// Free implements Allocator. The memory itself is reclaimed by the GC.
func (a *HeapAllocator) Free(buf []byte) error {
	a.rc.ReleaseMemory(int64(cap(buf)))
	return nil
}

// OffHeapAllocator allocates buffers from anonymous memory mappings.
// Mappings are page aligned, so any alignment up to the page size holds.
type OffHeapAllocator struct {
	rc *resource.Controller
}

// NewOffHeapAllocator creates an mmap-backed allocator charging rc for every buffer.
func NewOffHeapAllocator(rc *resource.Controller) *OffHeapAllocator {
	return &OffHeapAllocator{rc: rc}
}

// Alloc implements Allocator.
func (a *OffHeapAllocator) Alloc(size, alignment int) ([]byte, error) {
	if err := checkArgs(size, alignment); err != nil {
		return nil, err
	}
	if alignment > os.Getpagesize() {
		return nil, fmt.Errorf("%w: %d exceeds page size", ErrInvalidAlignment, alignment)
	}
	if size == 0 {
		return nil, nil
	}

	capacity := AlignUp(size, alignment)
	if err := a.rc.AcquireMemory(int64(capacity)); err != nil {
		return nil, err
	}

	data, err := mmap.MapAnon(capacity)
	if err != nil {
		a.rc.ReleaseMemory(int64(capacity))
		return nil, err
	}

	// Copies stream through the buffer front to back.
	_ = mmap.Advise(data, mmap.AccessSequential)

	return data[:size], nil
}

// Free implements Allocator.
func (a *OffHeapAllocator) Free(buf []byte) error {
	if cap(buf) == 0 {
		return nil
	}
	if err := mmap.Unmap(buf[:cap(buf)]); err != nil {
		return err
	}
	a.rc.ReleaseMemory(int64(cap(buf)))
	return nil
}
