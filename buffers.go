package memcopy

import (
	"fmt"

	"github.com/hupe1980/memcopy/internal/mem"
	"github.com/hupe1980/memcopy/internal/resource"
	"github.com/hupe1980/memcopy/internal/simd"
)

// buffers is the allocation half every built-in strategy shares.
type buffers struct {
	desc    Descriptor
	alloc   mem.Allocator
	logger  *Logger
	metrics MetricsCollector
}

func newBuffers(desc Descriptor, opts []Option) buffers {
	o := applyOptions(opts)

	var rc *resource.Controller
	if o.memoryLimit > 0 {
		rc = resource.NewController(resource.Config{MemoryLimitBytes: o.memoryLimit})
	}

	var alloc mem.Allocator = mem.NewHeapAllocator(rc)
	if o.offHeap {
		alloc = mem.NewOffHeapAllocator(rc)
	}

	logger := o.logger.WithCopier(desc.Name)
	logger.Debug("copier created",
		"alignment", desc.Alignment,
		"element_width", desc.ElementWidth,
		"isa", simd.ActiveISA().String(),
		"off_heap", o.offHeap,
		"memory_limit", o.memoryLimit,
	)

	return buffers{
		desc:    desc,
		alloc:   alloc,
		logger:  logger,
		metrics: o.metricsCollector,
	}
}

// Alloc implements Copier.
func (b *buffers) Alloc(size int) ([]byte, error) {
	buf, err := b.alloc.Alloc(size, b.desc.Alignment)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrAllocation, b.desc.Name, err)
	}
	b.logger.LogAlloc(size, b.desc.Alignment, err)
	b.metrics.RecordAlloc(cap(buf), err)
	return buf, err
}

// Free implements Copier.
func (b *buffers) Free(buf []byte) {
	err := b.alloc.Free(buf)
	b.logger.LogFree(cap(buf), err)
	if err == nil {
		b.metrics.RecordFree(cap(buf))
	}
}

// Descriptor implements Copier.
func (b *buffers) Descriptor() Descriptor {
	return b.desc
}
