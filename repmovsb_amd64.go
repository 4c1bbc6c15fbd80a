//go:build amd64 && !noasm

package memcopy

import "github.com/hupe1980/memcopy/internal/simd"

const repMovsbSupported = true

// RepMovsbCopier copies with a single REP MOVSB instruction: the CPU advances
// destination, source and count itself until the count reaches zero.
// It has no alignment requirement.
type RepMovsbCopier struct {
	buffers
}

// NewRepMovsbCopier creates the REP MOVSB strategy.
func NewRepMovsbCopier(opts ...Option) *RepMovsbCopier {
	c := &RepMovsbCopier{
		buffers: newBuffers(Descriptor{
			Name:         KindRepMovsb.String(),
			Alignment:    1,
			ElementWidth: 1,
		}, opts),
	}
	if !simd.HasERMS() {
		c.logger.Warn("CPU does not advertise ERMS; REP MOVSB runs without fast-string support")
	}
	return c
}

// Copy implements Copier.
func (c *RepMovsbCopier) Copy(dst, src []byte, size int) {
	simd.RepMovsb(dst[:size], src[:size])
	c.metrics.RecordCopy(size)
}

func newRepMovsb(opts []Option) (Copier, error) {
	return NewRepMovsbCopier(opts...), nil
}
