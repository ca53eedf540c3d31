// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — кружок в углу экрана, цвет которого показывает фазу симуляции
type StateIndicator struct {
	X, Y           float32
	Radius         float32
	StrokeColor    color.Color
	LastChangeTime time.Time
	lastColor      color.RGBA
}

func NewStateIndicator(x, y, radius float32, stroke color.Color) *StateIndicator {
	return &StateIndicator{
		X:           x,
		Y:           y,
		Radius:      radius,
		StrokeColor: stroke,
	}
}

// Draw отрисовывает индикатор. При смене цвета кружок коротко пульсирует.
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA) {
	if stateColor != i.lastColor {
		i.lastColor = stateColor
		i.LastChangeTime = time.Now()
	}
	elapsed := time.Since(i.LastChangeTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1.5, i.StrokeColor, true)
}
