package holefill

const (
	// weightEpsilon guards the weighted-average denominator against
	// near-zero weight sums.
	weightEpsilon = 1e-12
	// fallbackValue is written when a hole pixel has no usable boundary
	// contribution (empty boundary set or degenerate weight sum).
	fallbackValue = 0.0
)

// FillExhaustive fills every hole pixel with the weighted average of every
// boundary pixel, reading values from the pre-fill buffer. A nil weight uses
// DefaultWeight. Accurate but O(n·m) for n hole and m boundary pixels.
// Summation follows boundary discovery order, so two runs on identical input
// produce bit-identical output.
func FillExhaustive(b *Buffer, weight WeightFunc, conn Connectivity) error {
	if err := b.validate(); err != nil {
		return err
	}
	conn, err := conn.normalize()
	if err != nil {
		return err
	}
	if weight == nil {
		weight = DefaultWeight()
	}

	holes := HolePixels(b)
	boundary := BoundaryPixels(b, holes, conn)

	// Boundary pixels are never holes, so reading them while holes are
	// written still observes pre-fill values.
	for _, u := range holes {
		var num, den float64
		for _, v := range boundary {
			w := weight(u, v)
			num += w * b.At(v.X, v.Y)
			den += w
		}
		if den > weightEpsilon {
			b.Set(u.X, u.Y, num/den)
		} else {
			b.Set(u.X, u.Y, fallbackValue)
		}
	}
	return nil
}
