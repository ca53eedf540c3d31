// internal/state/simulation_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-mining-sim/internal/app"
	"go-mining-sim/internal/component"
	"go-mining-sim/internal/config"
	"go-mining-sim/internal/ui"
	"go-mining-sim/pkg/render"
)

// SimulationState шагает симуляцию раз в тик и рисует её.
type SimulationState struct {
	sm        *StateMachine
	sim       *app.Simulation
	renderer  *render.SceneRenderer
	hud       *ui.HUD
	indicator *ui.StateIndicator
	pauseBtn  *ui.PauseButton
	progress  *ui.ProgressIndicator
}

func NewSimulationState(sm *StateMachine, sim *app.Simulation) (*SimulationState, error) {
	hud, err := ui.NewHUD(config.HUDFontSize, config.HUDOffsetX, config.HUDOffsetY, config.HUDLineHeight, config.TextDarkColor)
	if err != nil {
		return nil, fmt.Errorf("init hud: %w", err)
	}
	renderer := render.NewSceneRenderer(render.ScenePalette{
		Background: config.BackgroundColor,
		Resource:   config.ResourceColor,
		Flash:      config.FlashColor,
	}, config.ResourceRadius, float32(config.StrokeWidth))

	indicator := ui.NewStateIndicator(
		float32(sim.Config.ScreenWidth-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX),
		float32(config.IndicatorRadius),
		config.IndicatorStroke,
	)

	pauseBtn := ui.NewPauseButton(
		float32(sim.Config.ScreenWidth-config.PauseButtonX),
		float32(config.IndicatorOffsetX),
		float32(config.PauseButtonSize),
		config.TextDarkColor,
		config.RunningColor,
		config.IndicatorStroke,
	)

	progress := ui.NewProgressIndicator(
		float32(sim.Config.ScreenWidth-config.ProgressOffsetX),
		float32(config.ProgressY),
		config.ResourceColor,
		config.TextDarkColor,
	)

	return &SimulationState{
		sm:        sm,
		sim:       sim,
		renderer:  renderer,
		hud:       hud,
		indicator: indicator,
		pauseBtn:  pauseBtn,
		progress:  progress,
	}, nil
}

func (s *SimulationState) Enter() {
	s.pauseBtn.SetPaused(false)
}

// Update заканчивает игру, когда симуляция завершена: последний кадр уже
// нарисован предыдущим Draw.
func (s *SimulationState) Update(deltaTime float64) error {
	if s.sim.Finished() {
		return ebiten.Termination
	}
	if pauseToggled(inpututil.IsKeyJustPressed) || s.pauseBtn.IsClicked() {
		s.sm.SetState(NewPauseState(s.sm, s))
		return nil
	}
	return s.sim.Step()
}

func (s *SimulationState) Draw(screen *ebiten.Image) {
	s.drawScene(screen)
	stateColor := config.RunningColor
	if s.sim.ECS.Phase == component.Finished {
		stateColor = config.FinishedColor
	}
	s.indicator.Draw(screen, stateColor)
}

func (s *SimulationState) drawScene(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.sim.ECS, s.sim.Field)
	st := s.sim.Stats()
	s.hud.Draw(screen, st.Lines())
	busy := make([]bool, len(st.Miners))
	for i, m := range st.Miners {
		busy[i] = m.State != component.Seeking
	}
	s.progress.Draw(screen, st.Cleared(), busy)
	s.pauseBtn.Draw(screen)
}

func (s *SimulationState) Exit() {}
