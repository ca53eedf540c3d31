// internal/component/visual.go
package component

import "image/color"

// MineFlash — расходящееся кольцо в точке добычи.
type MineFlash struct {
	X, Y      float64
	Color     color.RGBA
	Timer     float64 // сколько эффект уже активен, в тиках
	Duration  float64
	MaxRadius float32
}

// Progress возвращает долю прошедшего времени эффекта.
func (f *MineFlash) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	return f.Timer / f.Duration
}
