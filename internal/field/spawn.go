package field

import (
	"fmt"

	"github.com/paulmach/orb"
)

// Scatter draws count unique integer points uniformly from the rectangle
// [margin, width-margin] x [margin, height-margin].
func Scatter(rng Rand, count, width, height, margin int) ([]orb.Point, error) {
	spanX := width - 2*margin + 1
	spanY := height - 2*margin + 1
	if spanX <= 0 || spanY <= 0 {
		return nil, fmt.Errorf("spawn area %dx%d with margin %d is empty", width, height, margin)
	}
	if count > spanX*spanY {
		return nil, fmt.Errorf("cannot place %d unique resources in %d cells", count, spanX*spanY)
	}

	points := make([]orb.Point, 0, count)
	seen := make(map[orb.Point]struct{}, count)
	for len(points) < count {
		p := orb.Point{
			float64(margin + rng.Intn(spanX)),
			float64(margin + rng.Intn(spanY)),
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}
	return points, nil
}
