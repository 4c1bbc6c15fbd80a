package mmap

import "fmt"

// MapAnon creates a private read-write anonymous mapping of size bytes.
// The returned slice has len == cap == size and must be released with Unmap.
func MapAnon(size int) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return osMapAnon(size)
}

// Unmap releases a mapping returned by MapAnon. data must be the full
// mapping (same start and capacity).
func Unmap(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	return osUnmap(data)
}

// Advise provides hints to the kernel about how the memory will be accessed.
func Advise(data []byte, pattern AccessPattern) error {
	if len(data) == 0 {
		return nil
	}
	return osAdvise(data, pattern)
}
