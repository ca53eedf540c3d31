// internal/event/types.go
package event

import "github.com/paulmach/orb"

const (
	TargetChosen      EventType = "TargetChosen"      // майнер выбрал ресурс
	ResourceMined     EventType = "ResourceMined"     // майнер добыл ресурс
	ResourceDelivered EventType = "ResourceDelivered" // груз сдан в депо
	ResourcePruned    EventType = "ResourcePruned"    // точка снята проходом по пересечениям
	TargetCleared     EventType = "TargetCleared"     // барьер снял оставшуюся цель
	FieldExhausted    EventType = "FieldExhausted"    // ресурсов больше нет
)

// MinerEvent — данные TargetChosen, ResourceMined и ResourceDelivered.
type MinerEvent struct {
	Miner  int
	Point  orb.Point
	Amount int
	Total  int // итог депо после доставки
}

// FieldEvent — данные ResourcePruned, TargetCleared и FieldExhausted.
type FieldEvent struct {
	Point      orb.Point
	Remaining  int
	DepotTotal int
	Tick       int
}
