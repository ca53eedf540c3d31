// pkg/render/color.go
package render

import "image/color"

// ScenePalette holds the colors the scene renderer needs beyond each entity's own.
type ScenePalette struct {
	Background color.RGBA
	Resource   color.RGBA
	Flash      color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade returns c with its opacity scaled by alpha in [0, 1].
func Fade(c color.RGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * alpha)}
}
