//go:build !linux

package affinity

func pinPlatform(int) (func(), error) {
	return nil, ErrUnsupported
}
