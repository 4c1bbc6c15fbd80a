package memcopy

import (
	"fmt"
	"strings"
)

// Copier is one strategy for moving bytes from one buffer to another.
//
// Alloc returns a buffer with len == size whose first byte satisfies the
// strategy's alignment and whose capacity is size rounded up to it. Free
// returns a buffer to the allocator it came from; freeing a foreign or
// already freed buffer is undefined. Copy copies size bytes (rounded up to the
// alignment) from src to dst; see the package documentation for the contract.
type Copier interface {
	Alloc(size int) ([]byte, error)
	Free(buf []byte)
	Copy(dst, src []byte, size int)
	Descriptor() Descriptor
}

// Descriptor describes a strategy's requirements. It never changes for the
// life of a copier.
type Descriptor struct {
	// Name identifies the strategy (the Kind string for built-in strategies).
	Name string
	// Alignment is the power-of-two byte boundary buffers and sizes must meet.
	Alignment int
	// ElementWidth is the transfer granularity of one loop step in bytes.
	ElementWidth int
}

// Granule is the smallest unit a copy can be split into without breaking the
// strategy's preconditions: the larger of Alignment and ElementWidth.
func (d Descriptor) Granule() int {
	return max(d.Alignment, d.ElementWidth)
}

// Kind enumerates the built-in strategies.
type Kind uint8

const (
	// KindDefault copies with Go's built-in copy.
	KindDefault Kind = iota
	// KindRepMovsb copies with a single REP MOVSB instruction (amd64 only).
	KindRepMovsb
	// KindAVX copies one 32-byte register per iteration.
	KindAVX
	// KindAVXStream is KindAVX with non-temporal loads/stores and a store fence.
	KindAVXStream
	// KindAVXUnroll copies four registers per iteration.
	KindAVXUnroll
	// KindAVXStreamUnroll is KindAVXUnroll with non-temporal loads/stores.
	KindAVXStreamUnroll
	// KindAVXPrefetch copies two registers per iteration and prefetches the next line.
	KindAVXPrefetch
	// KindAVXStreamPrefetchUnroll streams four registers per iteration with two prefetches.
	KindAVXStreamPrefetchUnroll
)

var kindNames = [...]string{
	KindDefault:                 "default",
	KindRepMovsb:                "repmovsb",
	KindAVX:                     "avx",
	KindAVXStream:               "avx-stream",
	KindAVXUnroll:               "avx-unroll",
	KindAVXStreamUnroll:         "avx-stream-unroll",
	KindAVXPrefetch:             "avx-prefetch",
	KindAVXStreamPrefetchUnroll: "avx-stream-prefetch-unroll",
}

// String returns the strategy name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind parses a strategy name as returned by Kind.String.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), true
		}
	}
	return KindDefault, false
}

// Kinds returns every strategy available in this build, in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		if Kind(k) == KindRepMovsb && !repMovsbSupported {
			continue
		}
		kinds = append(kinds, Kind(k))
	}
	return kinds
}

// New creates the strategy identified by kind.
// It returns ErrUnsupported for strategies this build does not provide.
func New(kind Kind, opts ...Option) (Copier, error) {
	switch kind {
	case KindDefault:
		return NewDefaultCopier(opts...), nil
	case KindRepMovsb:
		return newRepMovsb(opts)
	case KindAVX:
		return NewAVXCopier(opts...), nil
	case KindAVXStream:
		return NewAVXStreamCopier(opts...), nil
	case KindAVXUnroll:
		return NewAVXUnrollCopier(opts...), nil
	case KindAVXStreamUnroll:
		return NewAVXStreamUnrollCopier(opts...), nil
	case KindAVXPrefetch:
		return NewAVXPrefetchCopier(opts...), nil
	case KindAVXStreamPrefetchUnroll:
		return NewAVXStreamPrefetchUnrollCopier(opts...), nil
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnsupported, kind)
	}
}
