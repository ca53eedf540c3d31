// internal/state/pause_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-mining-sim/internal/config"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает симуляцию, продолжая показывать последний кадр.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *SimulationState
}

func NewPauseState(sm *StateMachine, prevState *SimulationState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {
	s.previousState.pauseBtn.SetPaused(true)
}

func (s *PauseState) Update(deltaTime float64) error {
	if pauseToggled(inpututil.IsKeyJustPressed) || s.previousState.pauseBtn.IsClicked() {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.drawScene(screen)
	s.previousState.indicator.Draw(screen, config.PausedColor)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{0, 0, 0, 64}, false)
	s.previousState.hud.DrawCentered(screen, "PAUSED", config.TextDarkColor)
}

func (s *PauseState) Exit() {}
