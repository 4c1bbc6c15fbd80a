//go:build amd64 && !noasm

package simd

import "unsafe"

func init() {
	if activeISA >= AVX {
		copyAlignedImpl = copyAlignedAVX
		copyUnrolledImpl = copyUnrolledAVX
		copyPrefetchImpl = copyPrefetchAVX
	}
	if activeISA >= AVX2 {
		streamAlignedImpl = streamAlignedAVX2
		streamUnrolledImpl = streamUnrolledAVX2
		streamPrefetchUnrolledImpl = streamPrefetchUnrolledAVX2
	}
}

//go:noescape
func copyAlignedAvx(dst, src unsafe.Pointer, n int)

//go:noescape
func streamAlignedAvx2(dst, src unsafe.Pointer, n int)

//go:noescape
func copyUnrolledAvx(dst, src unsafe.Pointer, n int)

//go:noescape
func streamUnrolledAvx2(dst, src unsafe.Pointer, n int)

//go:noescape
func copyPrefetchAvx(dst, src unsafe.Pointer, n int)

//go:noescape
func streamPrefetchUnrolledAvx2(dst, src unsafe.Pointer, n int)

//go:noescape
func repMovsb(dst, src unsafe.Pointer, n int)

// RepMovsb copies len(src) bytes with a single REP MOVSB instruction.
// len(dst) must be >= len(src).
func RepMovsb(dst, src []byte) {
	if len(src) > 0 {
		repMovsb(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src))
	}
}

func copyAlignedAVX(dst, src []byte) {
	if len(src) > 0 {
		copyAlignedAvx(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src))
	}
}

func streamAlignedAVX2(dst, src []byte) {
	if len(src) > 0 {
		streamAlignedAvx2(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src))
	}
}

func copyUnrolledAVX(dst, src []byte) {
	if len(src) > 0 {
		copyUnrolledAvx(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src))
	}
}

func streamUnrolledAVX2(dst, src []byte) {
	if len(src) > 0 {
		streamUnrolledAvx2(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src))
	}
}

func copyPrefetchAVX(dst, src []byte) {
	if len(src) > 0 {
		copyPrefetchAvx(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src))
	}
}

func streamPrefetchUnrolledAVX2(dst, src []byte) {
	if len(src) > 0 {
		streamPrefetchUnrolledAvx2(unsafe.Pointer(&dst[0]), unsafe.Pointer(&src[0]), len(src))
	}
}
