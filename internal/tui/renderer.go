// Package tui draws the simulation into a terminal grid with tcell.
package tui

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/paulmach/orb"

	"go-mining-sim/internal/app"
	"go-mining-sim/pkg/utils"
)

const (
	DepotGlyph    = '@'
	MinerGlyph    = 'M'
	CarryGlyph    = 'W'
	ResourceGlyph = '*'
)

// Screen is the part of tcell.Screen the renderer draws through.
type Screen interface {
	Size() (int, int)
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Renderer maps world pixels onto terminal cells. The bottom rows are
// reserved for the status lines.
type Renderer struct {
	screen     Screen
	worldW     float64
	worldH     float64
	hudRows    int
	background tcell.Color
	resource   tcell.Color
	text       tcell.Color
}

func NewRenderer(screen Screen, worldW, worldH, hudRows int, background, resource, text color.RGBA) *Renderer {
	return &Renderer{
		screen:     screen,
		worldW:     float64(worldW),
		worldH:     float64(worldH),
		hudRows:    hudRows,
		background: toTcell(background),
		resource:   toTcell(resource),
		text:       toTcell(text),
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// mapRows is the number of rows available to the world.
func (r *Renderer) mapRows() int {
	_, h := r.screen.Size()
	rows := h - r.hudRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// Cell converts a world point into a terminal cell.
func (r *Renderer) Cell(p orb.Point) (int, int) {
	cols, _ := r.screen.Size()
	rows := r.mapRows()
	if cols < 1 {
		cols = 1
	}
	x := int(math.Floor(p[0] / r.worldW * float64(cols)))
	y := int(math.Floor(p[1] / r.worldH * float64(rows)))
	return utils.Clamp(x, 0, cols-1), utils.Clamp(y, 0, rows-1)
}

// Draw paints one frame: background, depot, miners, resources, status lines.
func (r *Renderer) Draw(sim *app.Simulation) {
	cols, rows := r.screen.Size()
	r.screen.Clear()

	bg := tcell.StyleDefault.Background(r.background)
	for y := 0; y < r.mapRows(); y++ {
		for x := 0; x < cols; x++ {
			r.screen.SetContent(x, y, ' ', nil, bg)
		}
	}

	ecs := sim.ECS
	if render, ok := ecs.Renderables[ecs.DepotID]; ok {
		x, y := r.Cell(sim.DepotPoint())
		r.screen.SetContent(x, y, DepotGlyph, nil, bg.Foreground(toTcell(render.Color)).Bold(true))
	}

	for _, id := range ecs.Roster {
		pos, hasPos := ecs.Positions[id]
		render, hasRender := ecs.Renderables[id]
		if !hasPos || !hasRender {
			continue
		}
		glyph := MinerGlyph
		if m, ok := ecs.Miners[id]; ok && m.Carried > 0 {
			glyph = CarryGlyph
		}
		x, y := r.Cell(pos.Point())
		r.screen.SetContent(x, y, glyph, nil, bg.Foreground(toTcell(render.Color)))
	}

	resStyle := bg.Foreground(r.resource)
	for _, p := range sim.Field.Points() {
		x, y := r.Cell(p)
		r.screen.SetContent(x, y, ResourceGlyph, nil, resStyle)
	}

	textStyle := tcell.StyleDefault.Foreground(r.text)
	for i, line := range sim.Stats().Lines() {
		row := r.mapRows() + i
		if row >= rows {
			break
		}
		for j, ch := range []rune(line) {
			if j >= cols {
				break
			}
			r.screen.SetContent(j, row, ch, nil, textStyle)
		}
	}

	r.screen.Show()
}

// IsQuit reports whether ev asks to leave: Esc, Ctrl-C or q.
func IsQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return key.Rune() == 'q'
	}
	return false
}
