// internal/component/miner.go
package component

import (
	"github.com/paulmach/orb"

	"go-mining-sim/internal/types"
)

// MinerState is derived from the Collecting/Delivering flags.
type MinerState int

const (
	Seeking MinerState = iota
	CollectingState
	DeliveringState
)

func (s MinerState) String() string {
	switch s {
	case CollectingState:
		return "collecting"
	case DeliveringState:
		return "delivering"
	default:
		return "seeking"
	}
}

// Miner хранит состояние добытчика. Оба флага false означает поиск цели.
type Miner struct {
	Index      int // позиция в ростере
	Strategy   types.Strategy
	Carried    int        // сколько ресурсов несёт сейчас
	Target     *orb.Point // nil — цели нет
	Collecting bool
	Delivering bool
}

// State возвращает текущее состояние автомата.
func (m *Miner) State() MinerState {
	switch {
	case m.Collecting:
		return CollectingState
	case m.Delivering:
		return DeliveringState
	default:
		return Seeking
	}
}

// Busy сообщает, занят ли майнер сбором или доставкой.
func (m *Miner) Busy() bool {
	return m.Collecting || m.Delivering
}

// SetTarget копирует точку, чтобы цель не разделяла память с полем.
func (m *Miner) SetTarget(p orb.Point) {
	m.Target = &p
}
