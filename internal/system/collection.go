// internal/system/collection.go
package system

import (
	"github.com/paulmach/orb"

	"go-mining-sim/internal/entity"
	"go-mining-sim/internal/event"
	"go-mining-sim/internal/field"
)

// CollectionSystem убирает ресурсы с поля после хода майнеров.
type CollectionSystem struct {
	ecs             *entity.ECS
	field           *field.Field
	eventDispatcher *event.Dispatcher
}

func NewCollectionSystem(ecs *entity.ECS, f *field.Field, eventDispatcher *event.Dispatcher) *CollectionSystem {
	return &CollectionSystem{ecs: ecs, field: f, eventDispatcher: eventDispatcher}
}

// Update runs the settled-target barrier, then the overlap pass.
func (s *CollectionSystem) Update() {
	s.RemoveSettledTargets()
	s.PruneOverlaps()
}

// RemoveSettledTargets works only while no miner is collecting or delivering.
// It removes every leftover target from the field and clears it, returning how
// many points actually left the field.
func (s *CollectionSystem) RemoveSettledTargets() int {
	if s.ecs.AnyMinerBusy() {
		return 0
	}
	removed := 0
	for _, id := range s.ecs.Roster {
		miner, ok := s.ecs.Miners[id]
		if !ok || miner.Target == nil {
			continue
		}
		p := *miner.Target
		if s.field.Remove(p) {
			removed++
		}
		miner.Target = nil
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.TargetCleared,
			Data: event.FieldEvent{Point: p, Remaining: s.field.Len(), Tick: s.ecs.Tick},
		})
	}
	return removed
}

// PruneOverlaps removes every point any miner's footprint currently covers,
// whether or not that miner was heading for it.
func (s *CollectionSystem) PruneOverlaps() []orb.Point {
	occupants := make([]orb.Point, 0, len(s.ecs.Roster))
	for _, id := range s.ecs.Roster {
		if pos, ok := s.ecs.Positions[id]; ok {
			occupants = append(occupants, pos.Point())
		}
	}
	pruned := s.field.PruneOverlapping(occupants)
	for _, p := range pruned {
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.ResourcePruned,
			Data: event.FieldEvent{Point: p, Remaining: s.field.Len(), Tick: s.ecs.Tick},
		})
	}
	return pruned
}
