package holefill

import "fmt"

// Connectivity selects the neighbor topology used for boundary detection:
// 4 (axis-aligned neighbors) or 8 (axis-aligned plus diagonals).
type Connectivity int

// Supported connectivities. The zero value normalizes to Conn8.
const (
	Conn4 Connectivity = 4
	Conn8 Connectivity = 8
)

// neighborOffsets lists the axis-aligned offsets first, then the diagonals,
// so the 4-connected set is the prefix of length 4. The fixed order makes
// boundary discovery order deterministic.
var neighborOffsets = [8]Coord{
	{X: -1, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 1},
	{X: -1, Y: -1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: 1, Y: 1},
}

// normalize maps the zero value to Conn8 and rejects anything else invalid.
func (c Connectivity) normalize() (Connectivity, error) {
	switch c {
	case 0:
		return Conn8, nil
	case Conn4, Conn8:
		return c, nil
	default:
		return 0, fmt.Errorf("connectivity must be 4 or 8, got %d", c)
	}
}

// HolePixels scans the buffer in row-major order and returns the coordinates
// of every hole pixel (value < 0).
func HolePixels(b *Buffer) []Coord {
	var holes []Coord
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Pix[y*b.Width+x] < 0 {
				holes = append(holes, Coord{X: x, Y: y})
			}
		}
	}
	return holes
}

// BoundaryPixels returns the deduplicated boundary of the given hole set: the
// coordinates that are in bounds, not holes, have a non-negative value, and
// are conn-adjacent to at least one hole pixel. The result preserves
// first-discovery order during hole-set iteration. Any connectivity other
// than Conn4, including the zero value, runs 8-connected. An all-hole buffer
// yields an empty boundary; callers fall back to a defined fill value.
func BoundaryPixels(b *Buffer, holes []Coord, conn Connectivity) []Coord {
	offsets := neighborOffsets[:]
	if conn == Conn4 {
		offsets = neighborOffsets[:4]
	}

	holeSet := make(map[Coord]bool, len(holes))
	for _, p := range holes {
		holeSet[p] = true
	}

	var boundary []Coord
	seen := make(map[Coord]bool)
	for _, p := range holes {
		for _, off := range offsets {
			n := Coord{X: p.X + off.X, Y: p.Y + off.Y}
			if !b.InBounds(n.X, n.Y) || holeSet[n] || seen[n] {
				continue
			}
			if b.At(n.X, n.Y) >= 0 {
				seen[n] = true
				boundary = append(boundary, n)
			}
		}
	}
	return boundary
}
