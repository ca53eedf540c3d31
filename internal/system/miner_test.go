package system_test

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-mining-sim/internal/component"
	"go-mining-sim/internal/event"
	"go-mining-sim/internal/field"
	"go-mining-sim/internal/types"
)

func TestSeekingPicksTarget(t *testing.T) {
	w := newWorld(orb.Point{600, 400}, field.ReserveAll,
		[]orb.Point{{610, 400}, {900, 700}},
		minerAt{types.StrategyClosest, orb.Point{600, 400}},
	)
	require.NoError(t, w.miners.Update())

	m, _ := w.miner(0)
	assert.Equal(t, component.CollectingState, m.State())
	require.NotNil(t, m.Target)
	assert.Equal(t, orb.Point{610, 400}, *m.Target)
	assert.True(t, w.field.IsReserved(orb.Point{610, 400}))
	assert.Len(t, w.rec.ofType(event.TargetChosen), 1)
}

func TestSeekingOnEmptyFieldStaysIdle(t *testing.T) {
	w := newWorld(orb.Point{600, 400}, field.ReserveAll, nil,
		minerAt{types.StrategyRandom, orb.Point{600, 400}},
	)
	require.NoError(t, w.miners.Update())
	m, _ := w.miner(0)
	assert.Equal(t, component.Seeking, m.State())
	assert.Nil(t, m.Target)
}

func TestInvalidStrategyAbortsUpdate(t *testing.T) {
	w := newWorld(orb.Point{600, 400}, field.ReserveAll,
		[]orb.Point{{100, 100}},
		minerAt{types.StrategyClosest, orb.Point{600, 400}},
		minerAt{types.Strategy("nearest"), orb.Point{600, 400}},
	)
	err := w.miners.Update()
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidStrategy))
	assert.Contains(t, err.Error(), "miner 1")

	bad, _ := w.miner(1)
	assert.Nil(t, bad.Target)
	assert.False(t, bad.Collecting)
}

func TestCollectingMinesOnArrival(t *testing.T) {
	w := newWorld(orb.Point{600, 400}, field.ReserveAll, nil,
		minerAt{types.StrategyClosest, orb.Point{100, 100}},
	)
	m, pos := w.miner(0)
	m.SetTarget(orb.Point{108, 100})
	m.Collecting = true

	require.NoError(t, w.miners.Update())
	assert.Equal(t, component.CollectingState, m.State(), "still 3px away after a 5px step")
	assert.Equal(t, 105.0, pos.X)

	require.NoError(t, w.miners.Update())
	assert.Equal(t, component.DeliveringState, m.State())
	assert.Equal(t, orb.Point{108, 100}, pos.Point())
	assert.GreaterOrEqual(t, m.Carried, 1)
	assert.LessOrEqual(t, m.Carried, 5)

	mined := w.rec.ofType(event.ResourceMined)
	require.Len(t, mined, 1)
	assert.Equal(t, m.Carried, mined[0].Data.(event.MinerEvent).Amount)
}

func TestCollectingWithoutTargetFallsBackToSeeking(t *testing.T) {
	w := newWorld(orb.Point{600, 400}, field.ReserveAll, nil,
		minerAt{types.StrategyRandom, orb.Point{100, 100}},
	)
	m, _ := w.miner(0)
	m.Collecting = true

	require.NoError(t, w.miners.Update())
	assert.Equal(t, component.Seeking, m.State())
}

func TestDeliveringTransfersEverything(t *testing.T) {
	w := newWorld(orb.Point{600, 400}, field.ReserveAll, nil,
		minerAt{types.StrategyRandom, orb.Point{597, 400}},
	)
	m, _ := w.miner(0)
	m.Delivering = true
	m.Carried = 4
	m.SetTarget(orb.Point{10, 10})

	require.NoError(t, w.miners.Update())

	depot, _ := w.ecs.Depot()
	assert.Equal(t, 4, depot.Resources)
	assert.Equal(t, 0, m.Carried)
	assert.Nil(t, m.Target)
	assert.Equal(t, component.Seeking, m.State())

	delivered := w.rec.ofType(event.ResourceDelivered)
	require.Len(t, delivered, 1)
	assert.Equal(t, 4, delivered[0].Data.(event.MinerEvent).Total)
}

func TestFullCycleVisitsEveryStateOnce(t *testing.T) {
	w := newWorld(orb.Point{600, 400}, field.ReserveAll,
		[]orb.Point{{300, 400}},
		minerAt{types.StrategyClosest, orb.Point{600, 400}},
	)
	m, _ := w.miner(0)

	var states []component.MinerState
	for i := 0; i < 500; i++ {
		done, err := w.tick()
		require.NoError(t, err)
		s := m.State()
		if len(states) == 0 || states[len(states)-1] != s {
			states = append(states, s)
		}
		if m.State() == component.DeliveringState {
			assert.Positive(t, m.Carried)
		}
		if done {
			break
		}
	}

	assert.Equal(t, []component.MinerState{
		component.CollectingState,
		component.DeliveringState,
		component.Seeking,
	}, states)
	assert.Equal(t, component.Finished, w.ecs.Phase)
}

func TestDepotTotalEqualsSumOfMined(t *testing.T) {
	pts := []orb.Point{
		{100, 100}, {200, 650}, {900, 120}, {1100, 700}, {640, 420},
		{50, 400}, {320, 333}, {777, 555}, {1000, 50}, {450, 700},
	}
	w := newWorld(orb.Point{600, 400}, field.ReserveAll, pts,
		minerAt{types.StrategyRandom, orb.Point{600, 400}},
		minerAt{types.StrategyClosest, orb.Point{600, 400}},
		minerAt{types.StrategyRandom, orb.Point{600, 400}},
		minerAt{types.StrategyClosest, orb.Point{600, 400}},
	)

	finished := false
	for i := 0; i < 20000 && !finished; i++ {
		var err error
		finished, err = w.tick()
		require.NoError(t, err)
	}
	require.True(t, finished)

	minedSum := 0
	for _, e := range w.rec.ofType(event.ResourceMined) {
		minedSum += e.Data.(event.MinerEvent).Amount
	}
	depot, _ := w.ecs.Depot()
	assert.Equal(t, minedSum, depot.Resources)
	assert.Equal(t, len(w.rec.ofType(event.ResourceDelivered)), depot.Deliveries)
	assert.True(t, w.field.Empty())
}
