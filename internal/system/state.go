// internal/system/state.go
package system

import (
	"go-mining-sim/internal/component"
	"go-mining-sim/internal/entity"
	"go-mining-sim/internal/event"
	"go-mining-sim/internal/field"
)

// StateSystem решает, закончилась ли симуляция.
type StateSystem struct {
	ecs             *entity.ECS
	field           *field.Field
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, f *field.Field, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{ecs: ecs, field: f, eventDispatcher: eventDispatcher}
}

// Update переводит симуляцию в Finished, когда поле пусто и ни один майнер
// не несёт и не добывает ресурс. FieldExhausted отправляется один раз.
func (s *StateSystem) Update() bool {
	if s.ecs.Phase == component.Finished {
		return true
	}
	if !s.field.Empty() || s.ecs.AnyMinerBusy() {
		return false
	}
	s.ecs.Phase = component.Finished

	total := 0
	if depot, _ := s.ecs.Depot(); depot != nil {
		total = depot.Resources
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.FieldExhausted,
		Data: event.FieldEvent{DepotTotal: total, Tick: s.ecs.Tick},
	})
	return true
}

func (s *StateSystem) Current() component.Phase {
	return s.ecs.Phase
}
