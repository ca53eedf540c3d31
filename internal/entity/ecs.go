// internal/entity/ecs.go
package entity

import (
	"go-mining-sim/internal/component"
	"go-mining-sim/internal/types"
)

// ECS хранит компоненты всех сущностей симуляции.
type ECS struct {
	Tick        int
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Renderables map[types.EntityID]*component.Renderable
	Miners      map[types.EntityID]*component.Miner
	Depots      map[types.EntityID]*component.Depot
	MineFlashes map[types.EntityID]*component.MineFlash
	// Roster задаёт порядок обновления майнеров: индекс в слайсе = Miner.Index.
	Roster  []types.EntityID
	DepotID types.EntityID
	Phase   component.Phase
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Miners:      make(map[types.EntityID]*component.Miner),
		Depots:      make(map[types.EntityID]*component.Depot),
		MineFlashes: make(map[types.EntityID]*component.MineFlash),
		Phase:       component.Running,
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddDepot создаёт депо и запоминает его как основное.
func (ecs *ECS) AddDepot(pos component.Position, render component.Renderable) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &pos
	ecs.Renderables[id] = &render
	ecs.Depots[id] = &component.Depot{}
	ecs.DepotID = id
	return id
}

// AddMiner создаёт майнера и ставит его в конец ростера.
func (ecs *ECS) AddMiner(pos component.Position, speed float64, render component.Renderable, miner component.Miner) types.EntityID {
	id := ecs.NewEntity()
	miner.Index = len(ecs.Roster)
	ecs.Positions[id] = &pos
	ecs.Velocities[id] = &component.Velocity{Speed: speed}
	ecs.Renderables[id] = &render
	ecs.Miners[id] = &miner
	ecs.Roster = append(ecs.Roster, id)
	return id
}

// Depot возвращает основное депо и его позицию.
func (ecs *ECS) Depot() (*component.Depot, *component.Position) {
	return ecs.Depots[ecs.DepotID], ecs.Positions[ecs.DepotID]
}

// MinerAt возвращает майнера по индексу в ростере.
func (ecs *ECS) MinerAt(index int) (*component.Miner, *component.Position) {
	if index < 0 || index >= len(ecs.Roster) {
		return nil, nil
	}
	id := ecs.Roster[index]
	return ecs.Miners[id], ecs.Positions[id]
}

// AnyMinerBusy сообщает, есть ли майнер в состоянии сбора или доставки.
func (ecs *ECS) AnyMinerBusy() bool {
	for _, id := range ecs.Roster {
		if m, ok := ecs.Miners[id]; ok && m.Busy() {
			return true
		}
	}
	return false
}

// RemoveEntity удаляет все компоненты сущности. Майнер уходит и из ростера,
// индексы оставшихся сдвигаются.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	if _, ok := ecs.Miners[id]; ok {
		ecs.dropFromRoster(id)
	}
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Renderables, id)
	delete(ecs.Miners, id)
	delete(ecs.Depots, id)
	delete(ecs.MineFlashes, id)
}

func (ecs *ECS) dropFromRoster(id types.EntityID) {
	for i, rid := range ecs.Roster {
		if rid != id {
			continue
		}
		ecs.Roster = append(ecs.Roster[:i], ecs.Roster[i+1:]...)
		for j := i; j < len(ecs.Roster); j++ {
			if m, ok := ecs.Miners[ecs.Roster[j]]; ok {
				m.Index = j
			}
		}
		return
	}
}
