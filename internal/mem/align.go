package mem

import "unsafe"

// AlignUp returns the smallest multiple of alignment that is >= v.
// alignment must be a power of two.
func AlignUp(v, alignment int) int {
	return (v + alignment - 1) &^ (alignment - 1)
}

// AlignUpPtr is like AlignUp but for addresses.
func AlignUpPtr(p, alignment uintptr) uintptr {
	return (p + alignment - 1) &^ (alignment - 1)
}

// IsPowerOfTwo reports whether v is a positive power of two.
func IsPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}

// IsAligned reports whether p is a multiple of alignment.
func IsAligned(p unsafe.Pointer, alignment int) bool {
	return uintptr(p)&uintptr(alignment-1) == 0 //nolint:gosec // unsafe is required for alignment checks
}
