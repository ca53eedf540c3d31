// cmd/game/main.go
package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-mining-sim/internal/app"
	"go-mining-sim/internal/audio"
	"go-mining-sim/internal/config"
	"go-mining-sim/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	// Закрытие окна проверяется до шага симуляции.
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	sim, err := run(config.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	st := sim.Stats()
	log.Printf("Done: depot total %d, %d resources left", st.DepotTotal, st.Remaining)
}

// run держит окно до конца симуляции; динамик закрывается до возврата.
func run(cfg config.Config) (*app.Simulation, error) {
	sim, err := app.NewSimulation(cfg)
	if err != nil {
		return nil, err
	}
	app.NewEventLogger(nil).Attach(sim.EventDispatcher)

	cues := audio.NewCues()
	defer cues.Close()
	cues.Attach(sim.EventDispatcher)

	sm := state.NewStateMachine()
	simState, err := state.NewSimulationState(sm, sim)
	if err != nil {
		return nil, err
	}
	sm.SetState(simState)

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          cfg.ScreenWidth,
		height:         cfg.ScreenHeight,
	}
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(cfg.FPS)
	if err := ebiten.RunGame(game); err != nil {
		return nil, err
	}
	return sim, nil
}
