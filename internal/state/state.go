// internal/state/state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// State описывает один экран приложения.
type State interface {
	Enter()
	Update(deltaTime float64) error
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine управляет текущим состоянием
type StateMachine struct {
	current State
}

// NewStateMachine создаёт машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState вызывает Exit у старого состояния и Enter у нового
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние и пробрасывает его ошибку,
// в том числе ebiten.Termination.
func (sm *StateMachine) Update(deltaTime float64) error {
	if sm.current == nil {
		return nil
	}
	return sm.current.Update(deltaTime)
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

// pauseKeys переключают паузу в обе стороны.
var pauseKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyP}

// pauseToggled сообщает, нажата ли в этом тике любая клавиша паузы.
func pauseToggled(justPressed func(ebiten.Key) bool) bool {
	for _, k := range pauseKeys {
		if justPressed(k) {
			return true
		}
	}
	return false
}
