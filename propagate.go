package holefill

// PropagateOptions configures FillPropagate.
type PropagateOptions struct {
	// Windowed selects the order-independent windowed mode instead of
	// boundary-inward propagation.
	Windowed bool
	// Window is the window width for windowed mode. Even values are
	// bumped to the next odd width; zero or negative uses the default.
	Window int
	// Weight is the windowed-mode kernel. Nil uses WindowedWeight with
	// the effective window width. Ignored by the propagation mode.
	Weight WeightFunc
}

// DefaultPropagateOptions returns the default propagation configuration:
// direct boundary-inward propagation, window width 21 if windowed mode is
// enabled.
func DefaultPropagateOptions() PropagateOptions {
	return PropagateOptions{Window: 21}
}

// FillPropagate fills holes in O(h) time for h hole pixels, independent of
// boundary size. The direct mode grows inward from the boundary, letting
// previously filled pixels feed subsequent ones; the windowed mode averages
// over a fixed window of the original buffer instead, trading quality for
// independence from processing order. Hole pixels unreachable from any valid
// pixel are left untouched.
func FillPropagate(b *Buffer, opts PropagateOptions) error {
	if err := b.validate(); err != nil {
		return err
	}
	if opts.Windowed {
		fillWindowed(b, opts)
		return nil
	}
	fillInward(b)
	return nil
}

// fillInward is the direct propagation mode: a FIFO seeded with the hole
// pixels touching the boundary, each filled pixel pushing its unfilled
// neighbors. Always 8-connected.
func fillInward(b *Buffer) {
	holes := HolePixels(b)

	// unfilled marks hole pixels not yet written.
	unfilled := make([]bool, b.Width*b.Height)
	for _, p := range holes {
		unfilled[p.Y*b.Width+p.X] = true
	}

	// Seed with hole pixels that have at least one valid neighbor, in
	// hole-detection order.
	var queue []Coord
	for _, p := range holes {
		for _, off := range neighborOffsets {
			nx, ny := p.X+off.X, p.Y+off.Y
			if b.InBounds(nx, ny) && !unfilled[ny*b.Width+nx] && b.At(nx, ny) >= 0 {
				queue = append(queue, p)
				break
			}
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		// Duplicate pushes are resolved lazily here rather than
		// deduplicated at push time.
		if !unfilled[cur.Y*b.Width+cur.X] {
			continue
		}

		// Mean of neighbors that are non-hole or already filled.
		var sum float64
		count := 0
		for _, off := range neighborOffsets {
			nx, ny := cur.X+off.X, cur.Y+off.Y
			if b.InBounds(nx, ny) && !unfilled[ny*b.Width+nx] && b.At(nx, ny) >= 0 {
				sum += b.At(nx, ny)
				count++
			}
		}
		if count == 0 {
			// No usable neighbor yet; a completing neighbor will
			// re-push this pixel.
			continue
		}

		b.Set(cur.X, cur.Y, sum/float64(count))
		unfilled[cur.Y*b.Width+cur.X] = false

		for _, off := range neighborOffsets {
			nx, ny := cur.X+off.X, cur.Y+off.Y
			if b.InBounds(nx, ny) && unfilled[ny*b.Width+nx] {
				queue = append(queue, Coord{X: nx, Y: ny})
			}
		}
	}
}

// fillWindowed is the windowed mode: each hole pixel becomes the weighted
// mean of the originally valid pixels inside a fixed window around it. All
// reads come from a snapshot of the pre-fill buffer, so the result does not
// depend on processing order.
func fillWindowed(b *Buffer, opts PropagateOptions) {
	window := opts.Window
	if window <= 0 {
		window = DefaultPropagateOptions().Window
	}
	if window%2 == 0 {
		window++
	}
	half := window / 2

	weight := opts.Weight
	if weight == nil {
		weight = WindowedWeight(window)
	}

	holes := HolePixels(b)
	orig := make([]float64, len(b.Pix))
	copy(orig, b.Pix)

	for _, u := range holes {
		var num, den float64
		for dy := -half; dy <= half; dy++ {
			for dx := -half; dx <= half; dx++ {
				nx, ny := u.X+dx, u.Y+dy
				if !b.InBounds(nx, ny) || orig[ny*b.Width+nx] < 0 {
					continue
				}
				w := weight(u, Coord{X: nx, Y: ny})
				num += w * orig[ny*b.Width+nx]
				den += w
			}
		}
		if den > weightEpsilon {
			b.Set(u.X, u.Y, num/den)
		} else {
			b.Set(u.X, u.Y, fallbackValue)
		}
	}
}
