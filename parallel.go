package memcopy

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/memcopy/internal/affinity"
	"github.com/hupe1980/memcopy/internal/mem"
	"github.com/hupe1980/memcopy/internal/simd"
)

// Parallel fans a single copy out over a fixed number of workers, each running
// the wrapped copier on a disjoint chunk. Alloc and Free go straight to the
// wrapped copier, so buffers keep its alignment.
//
// Workers are started fresh on every Copy and joined before it returns; there
// is no pool. Chunks never share a byte, so workers need no synchronization
// beyond the final join. Spawning workers has a fixed cost per call that only
// pays off for large copies.
type Parallel[C Copier] struct {
	base    C
	workers int
	granule int
	desc    Descriptor
	opts    parallelOptions
}

// NewParallel wraps base with a fan-out over workers goroutines.
// workers < 1 is clamped to 1.
func NewParallel[C Copier](base C, workers int, opts ...ParallelOption) *Parallel[C] {
	if workers < 1 {
		workers = 1
	}

	o := parallelOptions{logger: NoopLogger()}
	for _, fn := range opts {
		fn(&o)
	}

	bd := base.Descriptor()
	return &Parallel[C]{
		base:    base,
		workers: workers,
		granule: bd.Granule(),
		desc: Descriptor{
			Name:         fmt.Sprintf("%s/mt%d", bd.Name, workers),
			Alignment:    bd.Alignment,
			ElementWidth: bd.ElementWidth,
		},
		opts: o,
	}
}

// DefaultWorkers returns the number of physical cores, or the number of
// logical CPUs when the core count is unknown.
func DefaultWorkers() int {
	if cores := simd.CPUTopology().PhysicalCores; cores > 0 {
		return cores
	}
	return runtime.NumCPU()
}

// Base returns the wrapped copier.
func (p *Parallel[C]) Base() C {
	return p.base
}

// Workers returns the fixed worker count.
func (p *Parallel[C]) Workers() int {
	return p.workers
}

// Alloc implements Copier.
func (p *Parallel[C]) Alloc(size int) ([]byte, error) {
	return p.base.Alloc(size)
}

// Free implements Copier.
func (p *Parallel[C]) Free(buf []byte) {
	p.base.Free(buf)
}

// Descriptor implements Copier.
func (p *Parallel[C]) Descriptor() Descriptor {
	return p.desc
}

// Copy implements Copier. size is rounded up to the wrapped copier's granule
// and split with Partition; chunk boundaries are therefore aligned for the
// wrapped copier. If a worker panics, the panic is re-raised here as a
// *WorkerPanicError once every worker has finished.
func (p *Parallel[C]) Copy(dst, src []byte, size int) {
	g := p.granule
	n := mem.AlignUp(size, g) / g
	if n == 0 {
		return
	}

	var eg errgroup.Group
	for i, c := range Partition(n, p.workers) {
		if c.Len == 0 {
			continue
		}
		lo := c.Start * g
		hi := lo + c.Len*g

		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &WorkerPanicError{Chunk: c, Value: r}
				}
			}()
			if p.opts.lockOSThread {
				runtime.LockOSThread()
				defer runtime.UnlockOSThread()
			}
			if p.opts.pinCPUs {
				cpu := i % runtime.NumCPU()
				restore, pinErr := affinity.Pin(cpu)
				if pinErr != nil {
					p.opts.logger.Debug("cpu pin failed", "worker", i, "cpu", cpu, "error", pinErr)
				} else {
					defer restore()
				}
			}
			p.base.Copy(dst[lo:hi], src[lo:hi], hi-lo)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		p.opts.logger.LogWorkerPanic(p.workers, err)
		panic(err)
	}
}
