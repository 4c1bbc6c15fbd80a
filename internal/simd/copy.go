package simd

// VectorWidth is the width in bytes of one 256-bit vector register.
const VectorWidth = 32

// Block widths of the kernels; len(src) must be a multiple of the block.
const (
	AlignedBlock  = VectorWidth
	PrefetchBlock = 2 * VectorWidth
	UnrolledBlock = 4 * VectorWidth
)

type vec = [VectorWidth]byte

var (
	copyAlignedImpl            = copyAlignedGeneric
	streamAlignedImpl          = copyAlignedGeneric
	copyUnrolledImpl           = copyUnrolledGeneric
	streamUnrolledImpl         = copyUnrolledGeneric
	copyPrefetchImpl           = copyPrefetchGeneric
	streamPrefetchUnrolledImpl = copyPrefetchUnrolledGeneric
)

// CopyAligned copies len(src) bytes one vector register at a time using
// ordinary cached loads and stores.
//
// SAFETY: dst and src must be 32-byte aligned, len(src) a multiple of 32 and
// len(dst) >= len(src). None of this is checked.
func CopyAligned(dst, src []byte) {
	copyAlignedImpl(dst, src)
}

// StreamAligned is CopyAligned with non-temporal loads and stores followed by
// a store fence.
func StreamAligned(dst, src []byte) {
	streamAlignedImpl(dst, src)
}

// CopyUnrolled copies four vector registers per iteration (loads all four,
// then stores all four). len(src) must be a multiple of 128.
func CopyUnrolled(dst, src []byte) {
	copyUnrolledImpl(dst, src)
}

// StreamUnrolled is CopyUnrolled with non-temporal loads and stores and a
// single store fence after the last block.
func StreamUnrolled(dst, src []byte) {
	streamUnrolledImpl(dst, src)
}

// CopyPrefetch copies two vector registers per iteration and prefetches the
// next iteration's source line before storing. The loop stops while two
// registers remain; that final group is copied after the loop.
// len(src) must be a non-zero multiple of 64.
func CopyPrefetch(dst, src []byte) {
	copyPrefetchImpl(dst, src)
}

// StreamPrefetchUnrolled copies four vector registers per iteration with
// non-temporal loads and stores, prefetching the first and third cache lines
// of the next iteration. The last four-register block is copied after the
// loop, followed by a store fence. len(src) must be a non-zero multiple of 128.
func StreamPrefetchUnrolled(dst, src []byte) {
	streamPrefetchUnrolledImpl(dst, src)
}

func copyAlignedGeneric(dst, src []byte) {
	for i := 0; i < len(src); i += VectorWidth {
		*(*vec)(dst[i:]) = *(*vec)(src[i:])
	}
}

func copyUnrolledGeneric(dst, src []byte) {
	for i := 0; i < len(src); i += UnrolledBlock {
		v0 := *(*vec)(src[i:])
		v1 := *(*vec)(src[i+VectorWidth:])
		v2 := *(*vec)(src[i+2*VectorWidth:])
		v3 := *(*vec)(src[i+3*VectorWidth:])
		*(*vec)(dst[i:]) = v0
		*(*vec)(dst[i+VectorWidth:]) = v1
		*(*vec)(dst[i+2*VectorWidth:]) = v2
		*(*vec)(dst[i+3*VectorWidth:]) = v3
	}
}

func copyPrefetchGeneric(dst, src []byte) {
	n := len(src) / VectorWidth
	if n == 0 {
		return
	}

	off := 0
	for ; n > 2; n -= 2 {
		v0 := *(*vec)(src[off:])
		v1 := *(*vec)(src[off+VectorWidth:])
		*(*vec)(dst[off:]) = v0
		*(*vec)(dst[off+VectorWidth:]) = v1
		off += PrefetchBlock
	}

	v0 := *(*vec)(src[off:])
	v1 := *(*vec)(src[off+VectorWidth:])
	*(*vec)(dst[off:]) = v0
	*(*vec)(dst[off+VectorWidth:]) = v1
}

func copyPrefetchUnrolledGeneric(dst, src []byte) {
	n := len(src) / VectorWidth
	if n == 0 {
		return
	}

	off := 0
	for ; n > 4; n -= 4 {
		copyBlock4(dst[off:], src[off:])
		off += UnrolledBlock
	}

	copyBlock4(dst[off:], src[off:])
}

func copyBlock4(dst, src []byte) {
	v0 := *(*vec)(src)
	v1 := *(*vec)(src[VectorWidth:])
	v2 := *(*vec)(src[2*VectorWidth:])
	v3 := *(*vec)(src[3*VectorWidth:])
	*(*vec)(dst) = v0
	*(*vec)(dst[VectorWidth:]) = v1
	*(*vec)(dst[2*VectorWidth:]) = v2
	*(*vec)(dst[3*VectorWidth:]) = v3
}
