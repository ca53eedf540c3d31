// internal/system/miner.go
package system

import (
	"fmt"

	"go-mining-sim/internal/component"
	"go-mining-sim/internal/entity"
	"go-mining-sim/internal/event"
	"go-mining-sim/internal/field"
	"go-mining-sim/internal/types"
	"go-mining-sim/internal/utils"
	pkgutils "go-mining-sim/pkg/utils"
)

// MinerSystem продвигает автомат каждого майнера ровно на один шаг за тик.
type MinerSystem struct {
	ecs             *entity.ECS
	field           *field.Field
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	minYield        int
	maxYield        int
}

func NewMinerSystem(ecs *entity.ECS, f *field.Field, rng *utils.PRNGService, eventDispatcher *event.Dispatcher, minYield, maxYield int) *MinerSystem {
	return &MinerSystem{
		ecs:             ecs,
		field:           f,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		minYield:        minYield,
		maxYield:        maxYield,
	}
}

// Update обходит ростер по порядку. Единственная ошибка: неизвестная стратегия.
func (s *MinerSystem) Update() error {
	for _, id := range s.ecs.Roster {
		if err := s.step(id); err != nil {
			return err
		}
	}
	return nil
}

func (s *MinerSystem) step(id types.EntityID) error {
	miner, hasMiner := s.ecs.Miners[id]
	pos, hasPos := s.ecs.Positions[id]
	if !hasMiner || !hasPos {
		return nil
	}
	speed := 0.0
	if vel, ok := s.ecs.Velocities[id]; ok {
		speed = vel.Speed
	}

	switch miner.State() {
	case component.CollectingState:
		s.collect(miner, pos, speed)
	case component.DeliveringState:
		s.deliver(miner, pos, speed)
	default:
		return s.seek(miner, pos)
	}
	return nil
}

func (s *MinerSystem) seek(miner *component.Miner, pos *component.Position) error {
	if s.field.Empty() {
		return nil
	}
	p, ok, err := s.field.Select(miner.Strategy, pos.Point(), s.rng)
	if err != nil {
		return fmt.Errorf("miner %d: %w", miner.Index, err)
	}
	if !ok {
		return nil
	}
	miner.SetTarget(p)
	miner.Collecting = true
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TargetChosen,
		Data: event.MinerEvent{Miner: miner.Index, Point: p},
	})
	return nil
}

func (s *MinerSystem) collect(miner *component.Miner, pos *component.Position, speed float64) {
	if miner.Target == nil {
		miner.Collecting = false
		return
	}
	MoveTowards(pos, miner.Target, speed)
	// Уже стоящий на цели майнер тоже считается прибывшим.
	if !pkgutils.Overlaps(pos.Point(), *miner.Target) {
		return
	}

	amount := s.rng.IntRange(s.minYield, s.maxYield)
	miner.Carried += amount
	miner.Collecting = false
	miner.Delivering = true
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ResourceMined,
		Data: event.MinerEvent{Miner: miner.Index, Point: *miner.Target, Amount: amount},
	})
}

func (s *MinerSystem) deliver(miner *component.Miner, pos *component.Position, speed float64) {
	depot, depotPos := s.ecs.Depot()
	if depot == nil || depotPos == nil {
		return
	}
	target := depotPos.Point()
	MoveTowards(pos, &target, speed)
	if !pkgutils.Overlaps(pos.Point(), target) {
		return
	}

	amount := miner.Carried
	depot.Deliver(amount)
	miner.Carried = 0
	miner.Delivering = false
	miner.Target = nil
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ResourceDelivered,
		Data: event.MinerEvent{Miner: miner.Index, Point: target, Amount: amount, Total: depot.Resources},
	})
}
