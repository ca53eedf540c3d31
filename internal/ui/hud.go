// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// HUD печатает строки статистики в левом верхнем углу.
type HUD struct {
	face       font.Face
	x, y       int
	lineHeight int
	color      color.Color
}

// NewHUD parses the bundled Go Regular font at the given size.
func NewHUD(size float64, x, y, lineHeight int, clr color.Color) (*HUD, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse hud font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create hud font face: %w", err)
	}
	return &HUD{face: face, x: x, y: y, lineHeight: lineHeight, color: clr}, nil
}

func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	for i, line := range lines {
		text.Draw(screen, line, h.face, h.x, h.y+i*h.lineHeight, h.color)
	}
}

// DrawCentered рисует одну строку по центру экрана.
func (h *HUD) DrawCentered(screen *ebiten.Image, line string, clr color.Color) {
	bounds := text.BoundString(h.face, line)
	w, ht := screen.Bounds().Dx(), screen.Bounds().Dy()
	text.Draw(screen, line, h.face, (w-bounds.Dx())/2, ht/2, clr)
}
