// Package colorutil provides shared color conversion utilities for the image codec.
package colorutil

import (
	"math"
)

// SRGBToLinear converts an sRGB-encoded component in [0,1] to linear light.
func SRGBToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear-light component in [0,1] to sRGB encoding.
func LinearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// GrayLinear converts 8-bit sRGB components to a linear-light grayscale
// value in [0,1] using Rec.601 luma weights.
func GrayLinear(r, g, b uint8) float64 {
	rf := SRGBToLinear(float64(r) / 255.0)
	gf := SRGBToLinear(float64(g) / 255.0)
	bf := SRGBToLinear(float64(b) / 255.0)
	return 0.299*rf + 0.587*gf + 0.114*bf
}

// Clamp01 clamps v to [0,1].
func Clamp01(v float64) float64 {
	return math.Min(1.0, math.Max(0.0, v))
}
