package memcopy

import (
	"github.com/hupe1980/memcopy/internal/mem"
	"github.com/hupe1980/memcopy/internal/simd"
)

func vectorDescriptor(kind Kind, alignment int) Descriptor {
	return Descriptor{
		Name:         kind.String(),
		Alignment:    alignment,
		ElementWidth: simd.VectorWidth,
	}
}

// AVXCopier moves one 32-byte register per iteration with aligned loads and
// stores that go through the cache hierarchy.
type AVXCopier struct {
	buffers
}

// NewAVXCopier creates the plain vector strategy (32-byte alignment).
func NewAVXCopier(opts ...Option) *AVXCopier {
	return &AVXCopier{buffers: newBuffers(vectorDescriptor(KindAVX, simd.AlignedBlock), opts)}
}

// Copy implements Copier.
func (c *AVXCopier) Copy(dst, src []byte, size int) {
	n := mem.AlignUp(size, simd.AlignedBlock)
	simd.CopyAligned(dst[:n], src[:n])
	c.metrics.RecordCopy(n)
}

// AVXStreamCopier is AVXCopier with non-temporal loads and stores. Stores
// bypass the caches, which pays off when dst is not read again soon. A store
// fence after the last store makes every write visible before Copy returns.
type AVXStreamCopier struct {
	buffers
}

// NewAVXStreamCopier creates the streaming vector strategy (32-byte alignment).
func NewAVXStreamCopier(opts ...Option) *AVXStreamCopier {
	return &AVXStreamCopier{buffers: newBuffers(vectorDescriptor(KindAVXStream, simd.AlignedBlock), opts)}
}

// Copy implements Copier.
func (c *AVXStreamCopier) Copy(dst, src []byte, size int) {
	n := mem.AlignUp(size, simd.AlignedBlock)
	simd.StreamAligned(dst[:n], src[:n])
	c.metrics.RecordCopy(n)
}

// AVXUnrollCopier loads four registers, then stores four registers, per
// iteration.
type AVXUnrollCopier struct {
	buffers
}

// NewAVXUnrollCopier creates the unrolled vector strategy (128-byte alignment).
func NewAVXUnrollCopier(opts ...Option) *AVXUnrollCopier {
	return &AVXUnrollCopier{buffers: newBuffers(vectorDescriptor(KindAVXUnroll, simd.UnrolledBlock), opts)}
}

// Copy implements Copier.
func (c *AVXUnrollCopier) Copy(dst, src []byte, size int) {
	n := mem.AlignUp(size, simd.UnrolledBlock)
	simd.CopyUnrolled(dst[:n], src[:n])
	c.metrics.RecordCopy(n)
}

// AVXStreamUnrollCopier combines non-temporal loads and stores with four-way
// unrolling. One store fence follows the whole copy.
type AVXStreamUnrollCopier struct {
	buffers
}

// NewAVXStreamUnrollCopier creates the unrolled streaming strategy (128-byte alignment).
func NewAVXStreamUnrollCopier(opts ...Option) *AVXStreamUnrollCopier {
	return &AVXStreamUnrollCopier{buffers: newBuffers(vectorDescriptor(KindAVXStreamUnroll, simd.UnrolledBlock), opts)}
}

// Copy implements Copier.
func (c *AVXStreamUnrollCopier) Copy(dst, src []byte, size int) {
	n := mem.AlignUp(size, simd.UnrolledBlock)
	simd.StreamUnrolled(dst[:n], src[:n])
	c.metrics.RecordCopy(n)
}

// AVXPrefetchCopier copies two registers (one cache line) per iteration with
// cached loads and stores, prefetching the next line before each store pair.
// The final line is always copied after the loop.
type AVXPrefetchCopier struct {
	buffers
}

// NewAVXPrefetchCopier creates the prefetching vector strategy (64-byte alignment).
func NewAVXPrefetchCopier(opts ...Option) *AVXPrefetchCopier {
	return &AVXPrefetchCopier{buffers: newBuffers(vectorDescriptor(KindAVXPrefetch, simd.PrefetchBlock), opts)}
}

// Copy implements Copier.
func (c *AVXPrefetchCopier) Copy(dst, src []byte, size int) {
	n := mem.AlignUp(size, simd.PrefetchBlock)
	simd.CopyPrefetch(dst[:n], src[:n])
	c.metrics.RecordCopy(n)
}

// AVXStreamPrefetchUnrollCopier streams four registers per iteration and
// prefetches the first and third cache lines of the next iteration. The last
// block is always copied after the loop, followed by one store fence.
type AVXStreamPrefetchUnrollCopier struct {
	buffers
}

// NewAVXStreamPrefetchUnrollCopier creates the prefetching unrolled streaming
// strategy (128-byte alignment).
func NewAVXStreamPrefetchUnrollCopier(opts ...Option) *AVXStreamPrefetchUnrollCopier {
	return &AVXStreamPrefetchUnrollCopier{
		buffers: newBuffers(vectorDescriptor(KindAVXStreamPrefetchUnroll, simd.UnrolledBlock), opts),
	}
}

// Copy implements Copier.
func (c *AVXStreamPrefetchUnrollCopier) Copy(dst, src []byte, size int) {
	n := mem.AlignUp(size, simd.UnrolledBlock)
	simd.StreamPrefetchUnrolled(dst[:n], src[:n])
	c.metrics.RecordCopy(n)
}
