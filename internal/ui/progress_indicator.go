// internal/ui/progress_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-mining-sim/internal/utils"
)

// ProgressIndicator показывает долю выработанного поля и занятость майнеров.
type ProgressIndicator struct {
	X, Y        float32
	FillColor   color.Color
	BorderColor color.Color
}

const (
	barWidth     = 118
	barHeight    = 12
	slotWidth    = 16
	slotHeight   = 12
	slotGap      = 9
	borderWidth  = 1
	slotsPadding = 10
)

func NewProgressIndicator(x, y float32, fill, border color.Color) *ProgressIndicator {
	return &ProgressIndicator{X: x, Y: y, FillColor: fill, BorderColor: border}
}

// Draw рисует полосу cleared (0..1) и под ней по слоту на майнера;
// слот закрашен, пока майнер занят.
func (i *ProgressIndicator) Draw(screen *ebiten.Image, cleared float64, busy []bool) {
	vector.StrokeRect(screen, i.X, i.Y, barWidth, barHeight, borderWidth, i.BorderColor, true)

	fillWidth := float32(barWidth-borderWidth*2) * float32(utils.Clamp01(cleared))
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, barHeight-borderWidth*2, i.FillColor, true)
	}

	rectY := i.Y + barHeight + slotsPadding
	for j, b := range busy {
		rectX := i.X + float32(j)*(slotWidth+slotGap)
		vector.StrokeRect(screen, rectX, rectY, slotWidth, slotHeight, borderWidth, i.BorderColor, true)
		if b {
			vector.DrawFilledRect(screen, rectX+borderWidth, rectY+borderWidth, slotWidth-borderWidth*2, slotHeight-borderWidth*2, i.FillColor, true)
		}
	}
}
