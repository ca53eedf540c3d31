// internal/app/stats.go
package app

import (
	"fmt"

	"go-mining-sim/internal/component"
)

// MinerStats is a read-only view of one miner.
type MinerStats struct {
	Index    int
	Strategy string
	State    component.MinerState
	Carried  int
}

// Stats is a snapshot for HUDs and logs.
type Stats struct {
	Tick       int
	Phase      component.Phase
	DepotTotal int
	Deliveries int
	Initial    int
	Remaining  int
	Reserved   int
	Miners     []MinerStats
}

func (s *Simulation) Stats() Stats {
	st := Stats{
		Tick:      s.ECS.Tick,
		Phase:     s.ECS.Phase,
		Initial:   s.initialResources,
		Remaining: s.Field.Len(),
		Reserved:  s.Field.Reserved(),
	}
	if depot, _ := s.ECS.Depot(); depot != nil {
		st.DepotTotal = depot.Resources
		st.Deliveries = depot.Deliveries
	}
	for i := range s.ECS.Roster {
		m, _ := s.ECS.MinerAt(i)
		if m == nil {
			continue
		}
		st.Miners = append(st.Miners, MinerStats{
			Index:    m.Index,
			Strategy: string(m.Strategy),
			State:    m.State(),
			Carried:  m.Carried,
		})
	}
	return st
}

// Cleared is the share of the starting field already removed, in [0, 1].
// An empty starting field counts as fully cleared.
func (st Stats) Cleared() float64 {
	if st.Initial <= 0 {
		return 1
	}
	return float64(st.Initial-st.Remaining) / float64(st.Initial)
}

// Lines renders the snapshot as HUD text, one line per row.
func (st Stats) Lines() []string {
	lines := []string{
		fmt.Sprintf("Depot: %d (%d deliveries)", st.DepotTotal, st.Deliveries),
		fmt.Sprintf("Resources left: %d", st.Remaining),
		fmt.Sprintf("Tick: %d  [%s]", st.Tick, st.Phase),
	}
	for _, m := range st.Miners {
		lines = append(lines, fmt.Sprintf("#%d %-7s %-10s carrying %d", m.Index, m.Strategy, m.State, m.Carried))
	}
	return lines
}
