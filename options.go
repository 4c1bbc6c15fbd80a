package memcopy

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	memoryLimit      int64
	offHeap          bool
}

// Option configures a copier's allocation side.
type Option func(*options)

// WithLogger configures structured logging for allocation events.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for allocations and copies.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &memcopy.BasicMetricsCollector{}
//	c := memcopy.NewAVXCopier(memcopy.WithMetricsCollector(metrics))
//	// ... run copies ...
//	fmt.Println(metrics.GetStats().CopyBytes)
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metricsCollector = m
	}
}

// WithMemoryLimit caps the total capacity of live buffers allocated through
// the copier. Alloc fails fast with ErrMemoryLimitExceeded once the budget is
// used up; Free returns capacity to it. 0 means unlimited.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithOffHeap allocates buffers from anonymous memory mappings instead of the
// Go heap. Mappings are page aligned, advised for sequential access and
// unmapped on Free.
func WithOffHeap() Option {
	return func(o *options) {
		o.offHeap = true
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

type parallelOptions struct {
	logger       *Logger
	lockOSThread bool
	pinCPUs      bool
}

// ParallelOption configures a Parallel fan-out copier.
type ParallelOption func(*parallelOptions)

// WithParallelLogger configures the logger used to report worker panics.
func WithParallelLogger(l *Logger) ParallelOption {
	return func(o *parallelOptions) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithLockOSThread wires each worker goroutine to its own OS thread for the
// duration of its chunk, so every chunk runs on a distinct thread.
func WithLockOSThread() ParallelOption {
	return func(o *parallelOptions) {
		o.lockOSThread = true
	}
}

// WithCPUAffinity locks each worker to an OS thread and pins worker i to
// logical CPU i modulo runtime.NumCPU. The thread's previous CPU mask is
// restored before it is unlocked. Pinning is best effort: a worker whose pin
// fails (or a platform without support) runs unpinned and the failure is
// logged at debug level.
func WithCPUAffinity() ParallelOption {
	return func(o *parallelOptions) {
		o.lockOSThread = true
		o.pinCPUs = true
	}
}
