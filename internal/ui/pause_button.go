// internal/ui/pause_button.go
package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton - кнопка паузы рядом с индикатором состояния.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
	StrokeColor   color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor, stroke color.Color) *PauseButton {
	return &PauseButton{
		X:           x,
		Y:           y,
		Size:        size,
		PauseColor:  pauseColor,
		PlayColor:   playColor,
		StrokeColor: stroke,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	size := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		var path vector.Path
		path.MoveTo(b.X-size, b.Y-size*1.2)
		path.LineTo(b.X-size, b.Y+size*1.2)
		path.LineTo(b.X+size, b.Y)
		path.Close()
		fillPath(screen, &path, b.PlayColor)
		return
	}
	// Два прямоугольника (pause)
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	vector.DrawFilledRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.StrokeRect(screen, b.X-width-spacing/2, b.Y-height/2, width, height, 1, b.StrokeColor, true)
	vector.DrawFilledRect(screen, b.X+spacing/2, b.Y-height/2, width, height, b.PauseColor, true)
	vector.StrokeRect(screen, b.X+spacing/2, b.Y-height/2, width, height, 1, b.StrokeColor, true)
}

// Contains проверяет попадание точки в круг кнопки.
func (b *PauseButton) Contains(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	return dx*dx+dy*dy <= b.Size*b.Size*2.25
}

// IsClicked - был ли в этом тике клик левой кнопкой по кнопке.
func (b *PauseButton) IsClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return b.Contains(ebiten.CursorPosition())
}

func (b *PauseButton) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.LastClickTime = time.Now()
	}
	b.IsPaused = paused
}

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, bl, a := clr.RGBA()
	for i := range vs {
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(bl) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()
