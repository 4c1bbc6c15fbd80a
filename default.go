package memcopy

// DefaultCopier copies with Go's built-in copy, which lowers to the runtime's
// memmove. It has no alignment requirement and is the baseline every other
// strategy is measured against.
type DefaultCopier struct {
	buffers
}

// NewDefaultCopier creates the baseline strategy.
func NewDefaultCopier(opts ...Option) *DefaultCopier {
	return &DefaultCopier{
		buffers: newBuffers(Descriptor{
			Name:         KindDefault.String(),
			Alignment:    1,
			ElementWidth: 1,
		}, opts),
	}
}

// Copy implements Copier. Any size >= 0 is valid.
func (c *DefaultCopier) Copy(dst, src []byte, size int) {
	copy(dst[:size], src[:size])
	c.metrics.RecordCopy(size)
}
