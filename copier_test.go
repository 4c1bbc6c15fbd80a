package memcopy

import (
	"bytes"
	"log/slog"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/memcopy/internal/mem"
	"github.com/hupe1980/memcopy/testutil"
)

func newCopier(t testing.TB, kind Kind, opts ...Option) Copier {
	t.Helper()
	c, err := New(kind, opts...)
	require.NoError(t, err)
	return c
}

func alloc(t testing.TB, c Copier, size int) []byte {
	t.Helper()
	buf, err := c.Alloc(size)
	require.NoError(t, err)
	t.Cleanup(func() { c.Free(buf) })
	return buf
}

func TestDescriptors(t *testing.T) {
	tests := []struct {
		kind         Kind
		alignment    int
		elementWidth int
	}{
		{KindDefault, 1, 1},
		{KindRepMovsb, 1, 1},
		{KindAVX, 32, 32},
		{KindAVXStream, 32, 32},
		{KindAVXUnroll, 128, 32},
		{KindAVXStreamUnroll, 128, 32},
		{KindAVXPrefetch, 64, 32},
		{KindAVXStreamPrefetchUnroll, 128, 32},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			c, err := New(tc.kind)
			if tc.kind == KindRepMovsb && !repMovsbSupported {
				assert.ErrorIs(t, err, ErrUnsupported)
				return
			}
			require.NoError(t, err)

			d := c.Descriptor()
			assert.Equal(t, tc.kind.String(), d.Name)
			assert.Equal(t, tc.alignment, d.Alignment)
			assert.Equal(t, tc.elementWidth, d.ElementWidth)
			assert.Equal(t, max(tc.alignment, tc.elementWidth), d.Granule())
		})
	}
}

func TestNew_Unsupported(t *testing.T) {
	_, err := New(Kind(200))
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, "unknown", Kind(200).String())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(" " + k.String() + " ")
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}

	got, ok := ParseKind("AVX-Stream")
	assert.True(t, ok)
	assert.Equal(t, KindAVXStream, got)

	_, ok = ParseKind("sse")
	assert.False(t, ok)
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	assert.Contains(t, kinds, KindDefault)
	assert.Contains(t, kinds, KindAVXStreamPrefetchUnroll)
	assert.Equal(t, repMovsbSupported, containsKind(kinds, KindRepMovsb))
}

func containsKind(kinds []Kind, k Kind) bool {
	for _, kk := range kinds {
		if kk == k {
			return true
		}
	}
	return false
}

func TestAlloc_AlignmentAndCapacity(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			c := newCopier(t, k)
			align := c.Descriptor().Alignment

			for _, size := range []int{1, 31, 64, 100, 192, 4096} {
				buf := alloc(t, c, size)
				assert.Len(t, buf, size)
				assert.Equal(t, mem.AlignUp(size, align), cap(buf))
				assert.True(t, mem.IsAligned(unsafe.Pointer(&buf[0]), align), "size=%d", size)
			}
		})
	}
}

func TestAlloc_Errors(t *testing.T) {
	c := NewAVXCopier(WithMemoryLimit(256))

	buf, err := c.Alloc(200) // capacity 224
	require.NoError(t, err)

	_, err = c.Alloc(64)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)

	c.Free(buf)
	buf, err = c.Alloc(64)
	require.NoError(t, err)
	c.Free(buf)

	_, err = c.Alloc(-1)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.ErrorIs(t, err, ErrInvalidSize)

	buf, err = c.Alloc(0)
	require.NoError(t, err)
	assert.Empty(t, buf)
}

func TestCopy_RoundTrip(t *testing.T) {
	rng := testutil.NewRNG(1)

	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			c := newCopier(t, k)
			align := c.Descriptor().Granule()

			for _, blocks := range []int{1, 2, 3, 7, 64, 257} {
				size := blocks * align
				src := alloc(t, c, size)
				dst := alloc(t, c, size)
				rng.FillBytes(src)

				c.Copy(dst, src, size)
				require.Equal(t, -1, testutil.FirstDiff(dst, src), "size=%d", size)
			}
		})
	}
}

func TestCopy_ZeroSize(t *testing.T) {
	for _, k := range Kinds() {
		c := newCopier(t, k)
		assert.NotPanics(t, func() { c.Copy(nil, nil, 0) }, k.String())
	}
}

func TestDefaultCopier_AnySize(t *testing.T) {
	rng := testutil.NewRNG(2)
	c := NewDefaultCopier()

	for _, size := range []int{0, 1, 3, 17, 255, 1000, 4097} {
		src := rng.Bytes(size)
		dst := make([]byte, size+4)
		testutil.Fill(dst, 0xAA)

		c.Copy(dst, src, size)

		assert.Equal(t, src, dst[:size], "size=%d", size)
		assert.Equal(t, []byte{0xAA, 0xAA, 0xAA, 0xAA}, dst[size:], "size=%d", size)
	}
}

func TestCopy_RoundedSizeLeavesTail(t *testing.T) {
	rng := testutil.NewRNG(3)

	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			c := newCopier(t, k)
			align := c.Descriptor().Alignment

			size := 3*align + 5 // not a multiple of the alignment unless align == 1
			rounded := mem.AlignUp(size, align)
			total := rounded + 2*align

			src := alloc(t, c, total)
			dst := alloc(t, c, total)
			rng.FillBytes(src)
			testutil.Fill(dst, 0xAA)

			c.Copy(dst, src, size)

			assert.Equal(t, src[:rounded], dst[:rounded])
			assert.Equal(t, bytes.Repeat([]byte{0xAA}, total-rounded), dst[rounded:])
		})
	}
}

func TestCopy_Idempotent(t *testing.T) {
	rng := testutil.NewRNG(4)

	for _, k := range Kinds() {
		c := newCopier(t, k)
		size := 4096
		src := alloc(t, c, size)
		dst := alloc(t, c, size)
		rng.FillBytes(src)

		c.Copy(dst, src, size)
		first := append([]byte(nil), dst...)
		c.Copy(dst, src, size)

		assert.Equal(t, first, dst, k.String())
	}
}

func TestCopy_OneMiBOfX(t *testing.T) {
	const size = 1 << 20
	want := bytes.Repeat([]byte{0x78}, size)

	copiers := make([]Copier, 0, len(Kinds())+1)
	for _, k := range Kinds() {
		copiers = append(copiers, newCopier(t, k))
	}
	copiers = append(copiers, NewParallel(NewAVXStreamUnrollCopier(), 4))

	for _, c := range copiers {
		t.Run(c.Descriptor().Name, func(t *testing.T) {
			src := alloc(t, c, size)
			dst := alloc(t, c, size)
			testutil.Fill(src, 'x')

			c.Copy(dst, src, size)

			require.Equal(t, -1, testutil.FirstDiff(dst, want))
		})
	}
}

func TestStreamPrefetchUnroll_PartialBlock(t *testing.T) {
	// 192 bytes is one and a half unrolled blocks; the second block is only
	// written by the copy after the loop.
	c := NewAVXStreamPrefetchUnrollCopier()
	src := alloc(t, c, 192)
	dst := alloc(t, c, 192)
	testutil.NewRNG(5).FillBytes(src)

	c.Copy(dst, src, 192)

	assert.Equal(t, src, dst)
}

func TestOffHeap_RoundTrip(t *testing.T) {
	for _, k := range []Kind{KindDefault, KindAVXUnroll, KindAVXStreamPrefetchUnroll} {
		c := newCopier(t, k, WithOffHeap(), WithMemoryLimit(1<<22))
		src := alloc(t, c, 1<<20)
		dst := alloc(t, c, 1<<20)
		testutil.NewRNG(6).FillBytes(src)

		c.Copy(dst, src, len(src))

		assert.Equal(t, -1, testutil.FirstDiff(dst, src), k.String())
	}
}

func TestMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	c := NewAVXCopier(WithMetricsCollector(metrics), WithMemoryLimit(128))

	src, err := c.Alloc(40) // capacity 64
	require.NoError(t, err)
	dst, err := c.Alloc(64)
	require.NoError(t, err)
	_, err = c.Alloc(1)
	require.Error(t, err)

	for range 3 {
		c.Copy(dst, src, 40)
	}
	c.Free(src)

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.AllocCount)
	assert.Equal(t, int64(1), stats.AllocErrors)
	assert.Equal(t, int64(128), stats.AllocBytes)
	assert.Equal(t, int64(1), stats.FreeCount)
	assert.Equal(t, int64(64), stats.FreeBytes)
	assert.Equal(t, int64(64), stats.LiveBytes())
	assert.Equal(t, int64(3), stats.CopyCount)
	assert.Equal(t, int64(3*64), stats.CopyBytes)
}

func TestLogger_AllocFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c := NewAVXUnrollCopier(WithLogger(logger), WithMemoryLimit(128))
	b, err := c.Alloc(100)
	require.NoError(t, err)
	_, err = c.Alloc(100)
	require.Error(t, err)
	c.Free(b)

	out := buf.String()
	assert.Contains(t, out, `"copier":"avx-unroll"`)
	assert.Contains(t, out, "alloc completed")
	assert.Contains(t, out, "alloc failed")
	assert.Contains(t, out, "free completed")
}

func TestOptions_NilDefaults(t *testing.T) {
	c := NewDefaultCopier(WithLogger(nil), WithMetricsCollector(nil))
	src := []byte("memcopy!")
	dst, err := c.Alloc(len(src))
	require.NoError(t, err)
	c.Copy(dst, src, len(src))
	assert.Equal(t, src, dst)
	c.Free(dst)
}
