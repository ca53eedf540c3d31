// internal/system/visual_effect.go
package system

import (
	"go-mining-sim/internal/component"
	"go-mining-sim/internal/config"
	"go-mining-sim/internal/entity"
	"go-mining-sim/internal/event"
)

// VisualEffectSystem управляет вспышками в точках добычи.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// OnEvent создаёт вспышку на каждое ResourceMined.
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	if e.Type != event.ResourceMined {
		return
	}
	data, ok := e.Data.(event.MinerEvent)
	if !ok {
		return
	}
	id := s.ecs.NewEntity()
	s.ecs.MineFlashes[id] = &component.MineFlash{
		X:         data.Point[0],
		Y:         data.Point[1],
		Color:     config.FlashColor,
		Duration:  config.MineFlashDuration,
		MaxRadius: config.MineFlashMaxRadius,
	}
}

// Update продвигает таймеры и удаляет отыгравшие эффекты.
func (s *VisualEffectSystem) Update(deltaTicks float64) {
	for id, flash := range s.ecs.MineFlashes {
		flash.Timer += deltaTicks
		if flash.Timer >= flash.Duration {
			s.ecs.RemoveEntity(id)
		}
	}
}
