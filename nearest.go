package holefill

import (
	"container/heap"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/binaryfoundry/holefill/pkg/geometry"
)

// SearchMode selects how FillNearest sizes its per-pixel index queries.
type SearchMode int

const (
	// SearchRadius queries each hole pixel with a radius derived from the
	// hole set's spatial extent around its centroid.
	SearchRadius SearchMode = iota
	// SearchKNearest queries each hole pixel for a fixed count of nearest
	// boundary pixels.
	SearchKNearest
)

// SearchOptions configures FillNearest. The two sizing strategies share one
// configuration and one fill path.
type SearchOptions struct {
	Connectivity Connectivity
	Mode         SearchMode
	// K is the neighbor count for SearchKNearest. Zero or negative uses
	// the default.
	K int
	// RadiusScale is the safety margin applied to the derived radius for
	// SearchRadius. Zero or negative uses the default.
	RadiusScale float64
}

// DefaultSearchOptions returns the default query configuration: radius mode
// with a 1.5x safety margin.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{Mode: SearchRadius, K: 16, RadiusScale: 1.5}
}

// minSearchRadius floors the derived radius so a single-pixel hole still
// reaches its diagonal boundary neighbors.
const minSearchRadius = math.Sqrt2

// boundaryPoint adapts a boundary coordinate to the kdtree interfaces.
type boundaryPoint struct {
	x, y float64
	c    Coord
}

// Compare implements kdtree.Comparable.
func (p boundaryPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(boundaryPoint)
	switch d {
	case 0:
		return p.x - q.x
	case 1:
		return p.y - q.y
	default:
		panic("illegal dimension")
	}
}

// Dims returns the number of dimensions.
func (p boundaryPoint) Dims() int { return 2 }

// Distance returns the squared Euclidean distance, so query bounds are
// expressed as radius squared.
func (p boundaryPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(boundaryPoint)
	dx := p.x - q.x
	dy := p.y - q.y
	return dx*dx + dy*dy
}

// boundaryPoints satisfies kdtree.Interface.
type boundaryPoints []boundaryPoint

func (p boundaryPoints) Index(i int) kdtree.Comparable         { return p[i] }
func (p boundaryPoints) Len() int                              { return len(p) }
func (p boundaryPoints) Slice(start, end int) kdtree.Interface { return p[start:end] }

// Pivot implements the kdtree.Interface method.
func (p boundaryPoints) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(boundaryPlane{boundaryPoints: p, Dim: d},
		kdtree.MedianOfMedians(boundaryPlane{boundaryPoints: p, Dim: d}))
}

// boundaryPlane implements sort.Interface and kdtree.SortSlicer for
// boundaryPoints in a single dimension.
type boundaryPlane struct {
	boundaryPoints
	kdtree.Dim
}

func (p boundaryPlane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.boundaryPoints[i].x < p.boundaryPoints[j].x
	case 1:
		return p.boundaryPoints[i].y < p.boundaryPoints[j].y
	default:
		panic("illegal dimension")
	}
}

func (p boundaryPlane) Slice(start, end int) kdtree.SortSlicer {
	return boundaryPlane{boundaryPoints: p.boundaryPoints[start:end], Dim: p.Dim}
}

func (p boundaryPlane) Swap(i, j int) {
	p.boundaryPoints[i], p.boundaryPoints[j] = p.boundaryPoints[j], p.boundaryPoints[i]
}

// searchRadius derives the radius-mode query radius: the maximum distance
// from the hole centroid to any hole pixel, scaled by the safety margin and
// floored at minSearchRadius.
func searchRadius(holes []Coord, scale float64) float64 {
	pts := make([]geometry.Point2D, len(holes))
	for i, p := range holes {
		pts[i] = geometry.NewPoint2D(float64(p.X), float64(p.Y))
	}
	r := geometry.MaxDistance(geometry.Centroid(pts), pts) * scale
	if r < minSearchRadius {
		r = minSearchRadius
	}
	return r
}

// FillNearest fills holes using a KD-tree over the boundary set, built once
// per call and read-only thereafter. Each hole pixel queries the index in the
// configured mode and the matches feed the same weighted-average formula as
// FillExhaustive. A nil weight uses DefaultWeight. O(n·log m) for k-nearest
// queries, O(n·(log m + r)) for radius queries with result-set size r.
func FillNearest(b *Buffer, weight WeightFunc, opts SearchOptions) error {
	if err := b.validate(); err != nil {
		return err
	}
	conn, err := opts.Connectivity.normalize()
	if err != nil {
		return err
	}
	if opts.Mode != SearchRadius && opts.Mode != SearchKNearest {
		return fmt.Errorf("unknown search mode %d", opts.Mode)
	}
	if weight == nil {
		weight = DefaultWeight()
	}
	k := opts.K
	if k <= 0 {
		k = DefaultSearchOptions().K
	}
	radiusScale := opts.RadiusScale
	if radiusScale <= 0 {
		radiusScale = DefaultSearchOptions().RadiusScale
	}

	holes := HolePixels(b)
	if len(holes) == 0 {
		return nil
	}
	boundary := BoundaryPixels(b, holes, conn)
	if len(boundary) == 0 {
		// Every query would come back empty; skip the index.
		for _, u := range holes {
			b.Set(u.X, u.Y, fallbackValue)
		}
		return nil
	}

	pts := make(boundaryPoints, len(boundary))
	for i, p := range boundary {
		pts[i] = boundaryPoint{x: float64(p.X), y: float64(p.Y), c: p}
	}
	tree := kdtree.New(pts, true)

	var r2 float64
	if opts.Mode == SearchRadius {
		r := searchRadius(holes, radiusScale)
		r2 = r * r
	}

	for _, u := range holes {
		q := boundaryPoint{x: float64(u.X), y: float64(u.Y), c: u}

		var num, den float64
		accumulate := func(c kdtree.Comparable) {
			v := c.(boundaryPoint).c
			w := weight(u, v)
			num += w * b.At(v.X, v.Y)
			den += w
		}

		switch opts.Mode {
		case SearchRadius:
			keeper := kdtree.NewDistKeeper(r2)
			tree.NearestSet(keeper, q)
			for _, item := range keeper.Heap {
				if item.Comparable == nil {
					continue
				}
				accumulate(item.Comparable)
			}
		case SearchKNearest:
			keeper := kdtree.NewNKeeper(k)
			tree.NearestSet(keeper, q)
			for keeper.Len() > 0 {
				item := heap.Pop(keeper).(kdtree.ComparableDist)
				if item.Comparable == nil {
					continue
				}
				accumulate(item.Comparable)
			}
		}

		if den > weightEpsilon {
			b.Set(u.X, u.Y, num/den)
		} else {
			b.Set(u.X, u.Y, fallbackValue)
		}
	}
	return nil
}
