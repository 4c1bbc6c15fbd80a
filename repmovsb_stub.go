//go:build !amd64 || noasm

package memcopy

import "fmt"

const repMovsbSupported = false

func newRepMovsb([]Option) (Copier, error) {
	return nil, fmt.Errorf("%w: %s requires amd64 assembly", ErrUnsupported, KindRepMovsb)
}
