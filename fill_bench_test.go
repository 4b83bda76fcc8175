package holefill

import (
	"testing"
)

// benchBuffer builds a size x size buffer of mid-gray pixels with a centered
// square hole covering a quarter of each dimension.
func benchBuffer(size int) []float64 {
	pix := make([]float64, size*size)
	for i := range pix {
		pix[i] = 0.5
	}
	lo, hi := size*3/8, size*5/8
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			pix[y*size+x] = -1
		}
	}
	return pix
}

func BenchmarkFillExhaustive(b *testing.B) {
	const size = 64
	src := benchBuffer(size)
	pix := make([]float64, len(src))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(pix, src)
		buf, _ := FromPix(size, size, pix)
		_ = FillExhaustive(buf, nil, Conn8)
	}
}

func BenchmarkFillPropagate(b *testing.B) {
	const size = 64
	src := benchBuffer(size)
	pix := make([]float64, len(src))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(pix, src)
		buf, _ := FromPix(size, size, pix)
		_ = FillPropagate(buf, DefaultPropagateOptions())
	}
}

func BenchmarkFillPropagateWindowed(b *testing.B) {
	const size = 64
	src := benchBuffer(size)
	pix := make([]float64, len(src))
	opts := DefaultPropagateOptions()
	opts.Windowed = true

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(pix, src)
		buf, _ := FromPix(size, size, pix)
		_ = FillPropagate(buf, opts)
	}
}

func BenchmarkFillNearestRadius(b *testing.B) {
	const size = 64
	src := benchBuffer(size)
	pix := make([]float64, len(src))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(pix, src)
		buf, _ := FromPix(size, size, pix)
		_ = FillNearest(buf, nil, DefaultSearchOptions())
	}
}

func BenchmarkFillNearestKNearest(b *testing.B) {
	const size = 64
	src := benchBuffer(size)
	pix := make([]float64, len(src))
	opts := DefaultSearchOptions()
	opts.Mode = SearchKNearest

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(pix, src)
		buf, _ := FromPix(size, size, pix)
		_ = FillNearest(buf, nil, opts)
	}
}
