// Package field holds the live set of uncollected resource points and the
// selection rules miners use to pick their next target.
package field

import (
	"fmt"

	"github.com/paulmach/orb"

	"go-mining-sim/internal/types"
	"go-mining-sim/pkg/utils"
)

// ReservationPolicy decides which strategies honour the shared reservation set.
type ReservationPolicy string

const (
	// ReserveAll makes every strategy skip reserved points and reserve its pick.
	ReserveAll ReservationPolicy = "all"
	// ReserveClosestOnly lets random selection ignore reservations entirely.
	ReserveClosestOnly ReservationPolicy = "closest-only"
)

// Valid сообщает, известна ли политика.
func (p ReservationPolicy) Valid() bool {
	return p == ReserveAll || p == ReserveClosestOnly
}

// Rand is the slice of utils.PRNGService the field needs.
type Rand interface {
	Intn(n int) int
}

// Field is an insertion-ordered set of unique points.
type Field struct {
	policy   ReservationPolicy
	points   []orb.Point
	members  map[orb.Point]struct{}
	reserved map[orb.Point]struct{}
}

// New builds a field from points, dropping duplicates.
func New(policy ReservationPolicy, points ...orb.Point) *Field {
	f := &Field{
		policy:   policy,
		points:   make([]orb.Point, 0, len(points)),
		members:  make(map[orb.Point]struct{}, len(points)),
		reserved: make(map[orb.Point]struct{}),
	}
	for _, p := range points {
		f.Add(p)
	}
	return f
}

// Add inserts p and reports false if it was already present.
func (f *Field) Add(p orb.Point) bool {
	if _, ok := f.members[p]; ok {
		return false
	}
	f.members[p] = struct{}{}
	f.points = append(f.points, p)
	return true
}

func (f *Field) Len() int    { return len(f.points) }
func (f *Field) Empty() bool { return len(f.points) == 0 }

func (f *Field) Contains(p orb.Point) bool {
	_, ok := f.members[p]
	return ok
}

// Points returns a copy of the remaining points in insertion order.
func (f *Field) Points() []orb.Point {
	out := make([]orb.Point, len(f.points))
	copy(out, f.points)
	return out
}

// Remove deletes p. Removing an absent point is a no-op that returns false.
func (f *Field) Remove(p orb.Point) bool {
	if _, ok := f.members[p]; !ok {
		return false
	}
	delete(f.members, p)
	delete(f.reserved, p)
	for i, q := range f.points {
		if q == p {
			f.points = append(f.points[:i], f.points[i+1:]...)
			break
		}
	}
	return true
}

// Reserve marks p as claimed.
func (f *Field) Reserve(p orb.Point) {
	f.reserved[p] = struct{}{}
}

func (f *Field) IsReserved(p orb.Point) bool {
	_, ok := f.reserved[p]
	return ok
}

// Reserved returns how many points are currently claimed.
func (f *Field) Reserved() int { return len(f.reserved) }

// Select picks the next target for a miner standing at from.
// The boolean is false when nothing is available; an unknown strategy is
// reported as types.ErrInvalidStrategy and never yields a point.
func (f *Field) Select(strategy types.Strategy, from orb.Point, rng Rand) (orb.Point, bool, error) {
	switch strategy {
	case types.StrategyRandom:
		p, ok := f.selectRandom(rng)
		return p, ok, nil
	case types.StrategyClosest:
		p, ok := f.selectClosest(from)
		return p, ok, nil
	default:
		return orb.Point{}, false, fmt.Errorf("%w: %q", types.ErrInvalidStrategy, string(strategy))
	}
}

func (f *Field) selectRandom(rng Rand) (orb.Point, bool) {
	if f.policy == ReserveClosestOnly {
		if len(f.points) == 0 {
			return orb.Point{}, false
		}
		return f.points[rng.Intn(len(f.points))], true
	}

	available := f.available()
	if len(available) == 0 {
		return orb.Point{}, false
	}
	p := available[rng.Intn(len(available))]
	f.Reserve(p)
	return p, true
}

func (f *Field) selectClosest(from orb.Point) (orb.Point, bool) {
	var (
		best     orb.Point
		bestDist float64
		found    bool
	)
	for _, p := range f.points {
		if f.IsReserved(p) {
			continue
		}
		d := utils.Distance(from, p)
		// strict comparison keeps the first of equally distant points
		if !found || d < bestDist {
			best, bestDist, found = p, d, true
		}
	}
	if !found {
		return orb.Point{}, false
	}
	f.Reserve(best)
	return best, true
}

func (f *Field) available() []orb.Point {
	out := make([]orb.Point, 0, len(f.points))
	for _, p := range f.points {
		if !f.IsReserved(p) {
			out = append(out, p)
		}
	}
	return out
}

// PruneOverlapping removes every point whose footprint intersects the
// footprint of any occupant and returns the removed points.
func (f *Field) PruneOverlapping(occupants []orb.Point) []orb.Point {
	if len(occupants) == 0 || len(f.points) == 0 {
		return nil
	}
	var pruned []orb.Point
	kept := f.points[:0]
	for _, p := range f.points {
		hit := false
		for _, o := range occupants {
			if utils.Overlaps(p, o) {
				hit = true
				break
			}
		}
		if hit {
			delete(f.members, p)
			delete(f.reserved, p)
			pruned = append(pruned, p)
			continue
		}
		kept = append(kept, p)
	}
	f.points = kept
	return pruned
}
