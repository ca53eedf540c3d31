package field_test

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-mining-sim/internal/field"
	"go-mining-sim/internal/types"
	"go-mining-sim/internal/utils"
)

type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

func TestNewDropsDuplicates(t *testing.T) {
	f := field.New(field.ReserveAll, orb.Point{1, 1}, orb.Point{2, 2}, orb.Point{1, 1})
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []orb.Point{{1, 1}, {2, 2}}, f.Points())
	assert.False(t, f.Add(orb.Point{2, 2}))
}

func TestRemoveIsIdempotent(t *testing.T) {
	f := field.New(field.ReserveAll, orb.Point{1, 1}, orb.Point{5, 5})
	f.Reserve(orb.Point{1, 1})

	assert.True(t, f.Remove(orb.Point{1, 1}))
	assert.False(t, f.Remove(orb.Point{1, 1}))
	assert.False(t, f.Contains(orb.Point{1, 1}))
	assert.False(t, f.IsReserved(orb.Point{1, 1}))
	assert.Equal(t, 1, f.Len())
}

func TestClosestPicksNearestAndReserves(t *testing.T) {
	f := field.New(field.ReserveAll,
		orb.Point{100, 100},
		orb.Point{10, 10},
		orb.Point{20, 20},
	)

	p, ok, err := f.Select(types.StrategyClosest, orb.Point{0, 0}, nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, orb.Point{10, 10}, p)
	assert.True(t, f.IsReserved(p))
	// selection does not remove
	assert.True(t, f.Contains(p))

	p, ok, err = f.Select(types.StrategyClosest, orb.Point{0, 0}, nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, orb.Point{20, 20}, p)
}

func TestClosestNeverRepeatsWhileOthersRemain(t *testing.T) {
	pts := []orb.Point{{50, 50}, {60, 60}, {70, 70}, {80, 80}, {90, 90}}
	f := field.New(field.ReserveAll, pts...)

	seen := map[orb.Point]bool{}
	for range pts {
		p, ok, err := f.Select(types.StrategyClosest, orb.Point{0, 0}, nil)
		require.NoError(t, err)
		require.True(t, ok)
		assert.False(t, seen[p], "point %v selected twice", p)
		seen[p] = true
	}

	_, ok, err := f.Select(types.StrategyClosest, orb.Point{0, 0}, nil)
	require.NoError(t, err)
	assert.False(t, ok, "everything reserved")
}

func TestClosestTieBreaksByInsertionOrder(t *testing.T) {
	f := field.New(field.ReserveAll, orb.Point{10, 0}, orb.Point{0, 10}, orb.Point{-10, 0})
	p, ok, err := f.Select(types.StrategyClosest, orb.Point{0, 0}, nil)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, orb.Point{10, 0}, p)
}

func TestSelectOnEmptyField(t *testing.T) {
	f := field.New(field.ReserveAll)
	for _, s := range []types.Strategy{types.StrategyRandom, types.StrategyClosest} {
		_, ok, err := f.Select(s, orb.Point{}, fixedRand(0))
		assert.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestRandomReturnsMember(t *testing.T) {
	pts := []orb.Point{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
	rng := utils.NewPRNGService(3)

	for _, policy := range []field.ReservationPolicy{field.ReserveAll, field.ReserveClosestOnly} {
		f := field.New(policy, pts...)
		for i := 0; i < len(pts); i++ {
			p, ok, err := f.Select(types.StrategyRandom, orb.Point{}, rng)
			require.NoError(t, err)
			require.True(t, ok)
			assert.True(t, f.Contains(p))
		}
	}
}

func TestRandomHonoursPolicy(t *testing.T) {
	pts := []orb.Point{{1, 1}, {2, 2}}

	legacy := field.New(field.ReserveClosestOnly, pts...)
	legacy.Reserve(orb.Point{1, 1})
	p, ok, err := legacy.Select(types.StrategyRandom, orb.Point{}, fixedRand(0))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, orb.Point{1, 1}, p, "closest-only policy ignores reservations for random")
	assert.Equal(t, 1, legacy.Reserved())

	strict := field.New(field.ReserveAll, pts...)
	strict.Reserve(orb.Point{1, 1})
	p, ok, err = strict.Select(types.StrategyRandom, orb.Point{}, fixedRand(0))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, orb.Point{2, 2}, p)
	assert.True(t, strict.IsReserved(p))

	_, ok, err = strict.Select(types.StrategyRandom, orb.Point{}, fixedRand(0))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvalidStrategy(t *testing.T) {
	f := field.New(field.ReserveAll, orb.Point{1, 1})
	p, ok, err := f.Select(types.Strategy("nearest"), orb.Point{}, fixedRand(0))
	assert.True(t, errors.Is(err, types.ErrInvalidStrategy))
	assert.Contains(t, err.Error(), "nearest")
	assert.False(t, ok)
	assert.Equal(t, orb.Point{}, p)
	assert.Equal(t, 0, f.Reserved())

	_, _, err = field.New(field.ReserveAll).Select(types.Strategy("nearest"), orb.Point{}, fixedRand(0))
	assert.True(t, errors.Is(err, types.ErrInvalidStrategy), "rejected even on an empty field")
}

func TestPruneOverlapping(t *testing.T) {
	f := field.New(field.ReserveAll,
		orb.Point{100, 100},
		orb.Point{101, 99},
		orb.Point{200, 200},
		orb.Point{300, 300},
	)
	f.Reserve(orb.Point{100, 100})

	pruned := f.PruneOverlapping([]orb.Point{{100.5, 100}, {299, 301}})
	assert.ElementsMatch(t, []orb.Point{{100, 100}, {101, 99}, {300, 300}}, pruned)
	assert.Equal(t, []orb.Point{{200, 200}}, f.Points())
	assert.Equal(t, 0, f.Reserved())

	assert.Empty(t, f.PruneOverlapping(nil))
}

func TestPruneKeepsPointsTouchingOnlyAnEdge(t *testing.T) {
	f := field.New(field.ReserveAll,
		orb.Point{102, 100},
		orb.Point{612, 402},
		orb.Point{101, 100},
	)

	pruned := f.PruneOverlapping([]orb.Point{{100, 100}, {610, 400}})
	assert.Equal(t, []orb.Point{{101, 100}}, pruned)
	assert.True(t, f.Contains(orb.Point{102, 100}))
	assert.True(t, f.Contains(orb.Point{612, 402}))
}
