package affinity

import "errors"

// ErrUnsupported is returned on platforms without thread affinity support.
var ErrUnsupported = errors.New("affinity: not supported on this platform")

// Pin restricts the calling OS thread to cpu and returns a function that
// restores the previous mask.
func Pin(cpu int) (restore func(), err error) {
	return pinPlatform(cpu)
}
