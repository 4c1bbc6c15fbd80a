//go:build !unix && !windows

package mmap

func osMapAnon(size int) ([]byte, error) {
	return nil, ErrUnsupported
}

func osUnmap(data []byte) error {
	return ErrUnsupported
}

func osAdvise(data []byte, pattern AccessPattern) error {
	return nil
}
