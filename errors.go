package memcopy

import (
	"errors"
	"fmt"

	"github.com/hupe1980/memcopy/internal/mem"
	"github.com/hupe1980/memcopy/internal/resource"
)

var (
	// ErrAllocation is returned when Alloc cannot provide an aligned buffer.
	// The cause is wrapped alongside it.
	ErrAllocation = errors.New("allocation failed")

	// ErrUnsupported is returned when a strategy is not available for this build.
	ErrUnsupported = errors.New("strategy not supported on this platform")

	// ErrMemoryLimitExceeded is the allocation cause when WithMemoryLimit is exhausted.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded

	// ErrInvalidSize is the allocation cause for negative sizes.
	ErrInvalidSize = mem.ErrInvalidSize
)

// WorkerPanicError is raised by Parallel.Copy when a worker panicked.
// It is re-panicked on the calling goroutine after all workers finished.
type WorkerPanicError struct {
	Chunk Chunk
	Value any
}

func (e *WorkerPanicError) Error() string {
	return fmt.Sprintf("copy worker for chunk [%d, %d) panicked: %v", e.Chunk.Start, e.Chunk.Start+e.Chunk.Len, e.Value)
}

// Unwrap returns the panic value if it was an error.
func (e *WorkerPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
