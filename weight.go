package holefill

import "math"

// WeightFunc scores the influence of boundary pixel v on hole pixel u. It
// must be pure and return a finite non-negative value, and should decrease
// with distance for sensible results. Implementations must be safe to call
// from concurrent goroutines so callers may parallelize queries.
type WeightFunc func(u, v Coord) float64

// Kernel shape shared by the default weight functions: 1/(d²+eps)^zeta.
const (
	weightKernelEps  = 0.01
	weightKernelZeta = 3.0
)

// DefaultWeight returns the standard inverse-distance kernel
// 1/(d²+0.01)³, where d is the Euclidean distance between the pixels.
func DefaultWeight() WeightFunc {
	return func(u, v Coord) float64 {
		dx := float64(u.X - v.X)
		dy := float64(u.Y - v.Y)
		return 1.0 / math.Pow(dx*dx+dy*dy+weightKernelEps, weightKernelZeta)
	}
}

// WindowedWeight returns the default kernel with distances scaled by the
// window width, so the falloff spans the window instead of single pixels.
func WindowedWeight(window int) WeightFunc {
	scale := float64(window * window)
	return func(u, v Coord) float64 {
		dx := float64(u.X - v.X)
		dy := float64(u.Y - v.Y)
		return 1.0 / math.Pow((dx*dx+dy*dy)/scale+weightKernelEps, weightKernelZeta)
	}
}
