// Package holefill fills regions of missing data in a 2-D scalar field by
// extrapolating from the surrounding valid pixels. A pixel with a negative
// value is a hole; a pixel with a non-negative value is valid. Three fill
// strategies are provided: an exhaustive weighted average over every boundary
// pixel (FillExhaustive), a queue-driven fill that grows inward from the
// boundary (FillPropagate), and a KD-tree accelerated fill that queries only
// nearby boundary pixels (FillNearest). All fillers mutate the buffer in
// place and never modify valid pixels.
package holefill

import "fmt"

// Buffer is a row-major 2-D scalar field. Pixel (x, y) lives at
// Pix[y*Width+x]. Values are typically normalized linear-light intensities,
// but the fillers only care about the sign: negative means hole.
type Buffer struct {
	Width  int
	Height int
	Pix    []float64
}

// Coord identifies a pixel, x in [0, Width), y in [0, Height).
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// New creates a zero-valued buffer of the given dimensions.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	return &Buffer{Width: width, Height: height, Pix: make([]float64, width*height)}, nil
}

// FromPix wraps an existing row-major pixel slice without copying it.
func FromPix(width, height int, pix []float64) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("pixel slice length %d does not match %dx%d", len(pix), width, height)
	}
	return &Buffer{Width: width, Height: height, Pix: pix}, nil
}

// At returns the value at (x, y). Bounds are not checked.
func (b *Buffer) At(x, y int) float64 {
	return b.Pix[y*b.Width+x]
}

// Set writes the value at (x, y). Bounds are not checked.
func (b *Buffer) Set(x, y int, v float64) {
	b.Pix[y*b.Width+x] = v
}

// InBounds reports whether (x, y) lies inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// validate checks the preconditions shared by all fillers.
func (b *Buffer) validate() error {
	if b == nil {
		return fmt.Errorf("nil buffer")
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", b.Width, b.Height)
	}
	if len(b.Pix) != b.Width*b.Height {
		return fmt.Errorf("pixel slice length %d does not match %dx%d", len(b.Pix), b.Width, b.Height)
	}
	return nil
}
