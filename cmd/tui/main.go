// cmd/tui/main.go
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"go-mining-sim/internal/app"
	"go-mining-sim/internal/config"
	"go-mining-sim/internal/tui"
)

func main() {
	cfg := config.DefaultConfig()
	sim, err := app.NewSimulation(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Пока экран в raw-режиме, лог копится в буфере и выводится после Fini.
	var logBuf bytes.Buffer
	app.NewEventLogger(log.New(&logBuf, "", log.LstdFlags)).Attach(sim.EventDispatcher)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	renderer := tui.NewRenderer(screen, cfg.ScreenWidth, cfg.ScreenHeight, 3+cfg.MinerCount(),
		config.BackgroundColor, config.ResourceColor, config.TextDarkColor)

	runErr := run(screen, sim, renderer, cfg.FPS)
	screen.Fini()

	fmt.Fprint(os.Stderr, logBuf.String())
	if runErr != nil {
		log.Fatal(runErr)
	}
	st := sim.Stats()
	log.Printf("Done: depot total %d, %d resources left", st.DepotTotal, st.Remaining)
}

func run(screen tcell.Screen, sim *app.Simulation, renderer *tui.Renderer, fps int) error {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if tui.IsQuit(ev) {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}

		case <-ticker.C:
			if err := sim.Step(); err != nil {
				return err
			}
			renderer.Draw(sim)
			if sim.Finished() {
				return nil
			}
		}
	}
}
