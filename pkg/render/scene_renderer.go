// pkg/render/scene_renderer.go
package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-mining-sim/internal/entity"
	"go-mining-sim/internal/field"
	"go-mining-sim/internal/utils"
)

// SceneRenderer рисует депо, майнеров, ресурсы и вспышки добычи.
type SceneRenderer struct {
	palette        ScenePalette
	resourceRadius float32
	strokeWidth    float32
}

func NewSceneRenderer(palette ScenePalette, resourceRadius, strokeWidth float32) *SceneRenderer {
	return &SceneRenderer{
		palette:        palette,
		resourceRadius: resourceRadius,
		strokeWidth:    strokeWidth,
	}
}

// Draw очищает кадр и рисует депо, майнеров в порядке ростера, затем ресурсы.
func (r *SceneRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, f *field.Field) {
	screen.Fill(r.palette.Background)

	if render, ok := ecs.Renderables[ecs.DepotID]; ok {
		if pos, hasPos := ecs.Positions[ecs.DepotID]; hasPos {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, render.Color, true)
		}
	}

	for _, id := range ecs.Roster {
		render, hasRender := ecs.Renderables[id]
		pos, hasPos := ecs.Positions[id]
		if !hasRender || !hasPos {
			continue
		}
		// Майнер с грузом обводится тёмным кольцом.
		if miner, ok := ecs.Miners[id]; ok && miner.Carried > 0 {
			vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius+r.strokeWidth, DarkenColor(render.Color), true)
		}
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), render.Radius, render.Color, true)
	}

	for _, p := range f.Points() {
		vector.DrawFilledCircle(screen, float32(p[0]), float32(p[1]), r.resourceRadius, r.palette.Resource, true)
	}

	for _, flash := range ecs.MineFlashes {
		progress := flash.Progress()
		radius := utils.Lerp(0, flash.MaxRadius, float32(progress))
		vector.StrokeCircle(screen, float32(flash.X), float32(flash.Y), radius, r.strokeWidth, Fade(flash.Color, 1-progress), true)
	}
}
