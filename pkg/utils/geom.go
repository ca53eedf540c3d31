// pkg/utils/geom.go
package utils

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// FootprintHalf is half the side of the square every entity occupies for
// collision purposes.
const FootprintHalf = 1.0

// Footprint returns the 2x2 square centered on p.
func Footprint(p orb.Point) orb.Bound {
	return orb.Bound{
		Min: orb.Point{p[0] - FootprintHalf, p[1] - FootprintHalf},
		Max: orb.Point{p[0] + FootprintHalf, p[1] + FootprintHalf},
	}
}

// Overlaps reports whether the footprints of a and b share interior area.
// Footprints that only touch along an edge or corner do not overlap.
func Overlaps(a, b orb.Point) bool {
	fa, fb := Footprint(a), Footprint(b)
	return fa.Min[0] < fb.Max[0] && fb.Min[0] < fa.Max[0] &&
		fa.Min[1] < fb.Max[1] && fb.Min[1] < fa.Max[1]
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b orb.Point) float64 {
	return planar.Distance(a, b)
}

// Clamp returns v limited to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
