// internal/system/movement.go
package system

import (
	"github.com/paulmach/orb"

	"go-mining-sim/internal/component"
	"go-mining-sim/pkg/utils"
)

// MoveTowards делает один прямолинейный шаг pos к target длиной не больше speed.
// Возвращает пройденное расстояние и false, если движения не было: цель не
// задана или уже достигнута. Шаг не перескакивает цель.
func MoveTowards(pos *component.Position, target *orb.Point, speed float64) (float64, bool) {
	if target == nil || speed <= 0 {
		return 0, false
	}
	tx, ty := target[0], target[1]
	dist := utils.Distance(pos.Point(), *target)
	if dist == 0 {
		return 0, false
	}

	if dist <= speed {
		// Ставим ровно в цель, чтобы не копить ошибку округления.
		pos.X = tx
		pos.Y = ty
		return dist, true
	}

	dx := tx - pos.X
	dy := ty - pos.Y
	pos.X += (dx / dist) * speed
	pos.Y += (dy / dist) * speed
	return speed, true
}
