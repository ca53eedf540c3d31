package system_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-mining-sim/internal/event"
	"go-mining-sim/internal/field"
	"go-mining-sim/internal/types"
)

func TestBarrierWaitsForBusyMiners(t *testing.T) {
	w := newWorld(orb.Point{600, 400}, field.ReserveAll,
		[]orb.Point{{100, 100}, {200, 200}},
		minerAt{types.StrategyRandom, orb.Point{600, 400}},
		minerAt{types.StrategyRandom, orb.Point{600, 400}},
	)
	idle, _ := w.miner(0)
	idle.SetTarget(orb.Point{100, 100})
	busy, _ := w.miner(1)
	busy.SetTarget(orb.Point{200, 200})
	busy.Collecting = true

	assert.Zero(t, w.collection.RemoveSettledTargets())
	assert.Equal(t, 2, w.field.Len())
	assert.NotNil(t, idle.Target)

	busy.Collecting = false
	assert.Equal(t, 2, w.collection.RemoveSettledTargets())
	assert.True(t, w.field.Empty())
	assert.Nil(t, idle.Target)
	assert.Nil(t, busy.Target)
	assert.Len(t, w.rec.ofType(event.TargetCleared), 2)
}

func TestBarrierToleratesAlreadyRemovedTarget(t *testing.T) {
	w := newWorld(orb.Point{600, 400}, field.ReserveAll,
		[]orb.Point{{200, 200}},
		minerAt{types.StrategyRandom, orb.Point{600, 400}},
	)
	m, _ := w.miner(0)
	m.SetTarget(orb.Point{100, 100})

	assert.Zero(t, w.collection.RemoveSettledTargets())
	assert.Nil(t, m.Target)
	assert.Equal(t, 1, w.field.Len())
}

func TestPruneRemovesAnythingUnderAMiner(t *testing.T) {
	w := newWorld(orb.Point{600, 400}, field.ReserveAll,
		[]orb.Point{{100, 100}, {601, 401}, {300, 300}},
		minerAt{types.StrategyRandom, orb.Point{600, 400}},
		minerAt{types.StrategyRandom, orb.Point{299, 300}},
	)
	pruned := w.collection.PruneOverlaps()
	assert.ElementsMatch(t, []orb.Point{{601, 401}, {300, 300}}, pruned)
	assert.Equal(t, []orb.Point{{100, 100}}, w.field.Points())
	assert.Len(t, w.rec.ofType(event.ResourcePruned), 2)
}

func TestPrunedTargetIsStillMined(t *testing.T) {
	w := newWorld(orb.Point{600, 400}, field.ReserveAll,
		[]orb.Point{{100, 100}},
		minerAt{types.StrategyClosest, orb.Point{100, 100}},
	)
	done, err := w.tick()
	require.NoError(t, err)
	assert.False(t, done, "miner still holds a target")
	assert.True(t, w.field.Empty(), "pruned on the first tick")

	m, _ := w.miner(0)
	require.NotNil(t, m.Target)

	done, err = w.tick()
	require.NoError(t, err)
	assert.False(t, done)
	assert.Positive(t, m.Carried)
}
