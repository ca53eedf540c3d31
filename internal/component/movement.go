// component/movement.go
package component

import "github.com/paulmach/orb"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Point возвращает позицию как orb.Point.
func (p Position) Point() orb.Point {
	return orb.Point{p.X, p.Y}
}

// PositionOf строит Position из orb.Point.
func PositionOf(p orb.Point) *Position {
	return &Position{X: p[0], Y: p[1]}
}

// Velocity — скорость в пикселях за тик
type Velocity struct {
	Speed float64
}
