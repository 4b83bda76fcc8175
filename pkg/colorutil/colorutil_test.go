package colorutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/binaryfoundry/holefill/pkg/colorutil"
)

func TestSRGBLinearRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 0.001, 0.04045, 0.1, 0.5, 0.9, 1} {
		got := colorutil.LinearToSRGB(colorutil.SRGBToLinear(v))
		require.InDelta(t, v, got, 1e-12, "value %v", v)
	}
}

func TestSRGBToLinearEndpoints(t *testing.T) {
	require.Equal(t, 0.0, colorutil.SRGBToLinear(0))
	require.InDelta(t, 1.0, colorutil.SRGBToLinear(1), 1e-12)
}

func TestGrayLinearExtremes(t *testing.T) {
	require.Equal(t, 0.0, colorutil.GrayLinear(0, 0, 0))
	require.InDelta(t, 1.0, colorutil.GrayLinear(255, 255, 255), 1e-12)
}

func TestGrayLinearWeights(t *testing.T) {
	// Pure green carries the largest Rec.601 weight.
	r := colorutil.GrayLinear(255, 0, 0)
	g := colorutil.GrayLinear(0, 255, 0)
	b := colorutil.GrayLinear(0, 0, 255)
	require.Greater(t, g, r)
	require.Greater(t, r, b)
	require.InDelta(t, 1.0, r+g+b, 1e-12)
}

func TestClamp01(t *testing.T) {
	require.Equal(t, 0.0, colorutil.Clamp01(-0.5))
	require.Equal(t, 1.0, colorutil.Clamp01(1.5))
	require.Equal(t, 0.25, colorutil.Clamp01(0.25))
}
