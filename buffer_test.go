package holefill

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {5, -1}, {0, 0}} {
		_, err := New(dims[0], dims[1])
		require.Error(t, err, "dimensions %dx%d", dims[0], dims[1])
	}
}

func TestNewZeroed(t *testing.T) {
	b, err := New(4, 3)
	require.NoError(t, err)
	require.Equal(t, 4, b.Width)
	require.Equal(t, 3, b.Height)
	require.Len(t, b.Pix, 12)
	for _, v := range b.Pix {
		require.Equal(t, 0.0, v)
	}
}

func TestFromPixLengthMismatch(t *testing.T) {
	_, err := FromPix(3, 3, make([]float64, 8))
	require.Error(t, err)
}

func TestFromPixSharesBacking(t *testing.T) {
	pix := []float64{1, 2, 3, 4}
	b, err := FromPix(2, 2, pix)
	require.NoError(t, err)

	b.Set(1, 0, 9)
	require.Equal(t, 9.0, pix[1])
	require.Equal(t, 9.0, b.At(1, 0))
}

func TestInBounds(t *testing.T) {
	b, err := New(3, 2)
	require.NoError(t, err)

	require.True(t, b.InBounds(0, 0))
	require.True(t, b.InBounds(2, 1))
	require.False(t, b.InBounds(3, 0))
	require.False(t, b.InBounds(0, 2))
	require.False(t, b.InBounds(-1, 0))
}

func TestValidateNilBuffer(t *testing.T) {
	var b *Buffer
	require.Error(t, b.validate())
	require.Error(t, FillExhaustive(b, nil, Conn8))
	require.Error(t, FillPropagate(b, DefaultPropagateOptions()))
	require.Error(t, FillNearest(b, nil, DefaultSearchOptions()))
}
