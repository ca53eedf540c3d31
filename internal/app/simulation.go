// internal/app/simulation.go
package app

import (
	"context"
	"fmt"

	"github.com/paulmach/orb"

	"go-mining-sim/internal/component"
	"go-mining-sim/internal/config"
	"go-mining-sim/internal/entity"
	"go-mining-sim/internal/event"
	"go-mining-sim/internal/field"
	"go-mining-sim/internal/system"
	"go-mining-sim/internal/utils"
)

// Simulation holds the world and the systems that advance it one frame at a time.
// It knows nothing about windows or terminals; front-ends drive Step and draw
// from ECS and Field.
type Simulation struct {
	Config             config.Config
	ECS                *entity.ECS
	Field              *field.Field
	Rng                *utils.PRNGService
	EventDispatcher    *event.Dispatcher
	MinerSystem        *system.MinerSystem
	CollectionSystem   *system.CollectionSystem
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem

	initialResources int
}

// NewSimulation validates cfg, scatters resources and places the depot and roster.
func NewSimulation(cfg config.Config) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := utils.NewPRNGService(cfg.Seed)
	points := cfg.Resources
	if points == nil {
		var err error
		points, err = field.Scatter(rng, cfg.ResourceCount, cfg.ScreenWidth, cfg.ScreenHeight, cfg.SpawnMargin)
		if err != nil {
			return nil, fmt.Errorf("scatter resources: %w", err)
		}
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	f := field.New(cfg.Reservation, points...)

	s := &Simulation{
		Config:          cfg,
		ECS:             ecs,
		Field:           f,
		Rng:             rng,
		EventDispatcher: eventDispatcher,

		initialResources: f.Len(),
	}
	s.MinerSystem = system.NewMinerSystem(ecs, f, rng, eventDispatcher, cfg.MinYield, cfg.MaxYield)
	s.CollectionSystem = system.NewCollectionSystem(ecs, f, eventDispatcher)
	s.StateSystem = system.NewStateSystem(ecs, f, eventDispatcher)
	s.VisualEffectSystem = system.NewVisualEffectSystem(ecs)
	eventDispatcher.Subscribe(event.ResourceMined, s.VisualEffectSystem)

	s.placeEntities()
	return s, nil
}

func (s *Simulation) placeEntities() {
	depot := s.Config.DepotPoint()
	s.ECS.AddDepot(*component.PositionOf(depot), component.Renderable{
		Color:  config.DepotColor,
		Radius: config.DepotRadius,
	})

	for _, spec := range s.Config.Miners {
		start := depot
		if spec.Start != nil {
			start = *spec.Start
		}
		s.ECS.AddMiner(*component.PositionOf(start), s.Config.MinerSpeed,
			component.Renderable{Color: spec.Color, Radius: config.MinerRadius},
			component.Miner{Strategy: spec.Strategy},
		)
	}
}

// Step advances the world by one frame: miners, target barrier, overlap
// pruning, termination check. Stepping a finished simulation does nothing.
func (s *Simulation) Step() error {
	if s.Finished() {
		return nil
	}
	s.ECS.Tick++

	if err := s.MinerSystem.Update(); err != nil {
		return err
	}
	s.CollectionSystem.Update()
	s.VisualEffectSystem.Update(1)
	s.StateSystem.Update()
	return nil
}

// Finished reports whether the run has ended.
func (s *Simulation) Finished() bool {
	return s.StateSystem.Current() == component.Finished
}

// Run steps headlessly until the simulation finishes or ctx is done.
func (s *Simulation) Run(ctx context.Context) error {
	for !s.Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Step(); err != nil {
			return err
		}
	}
	return nil
}

// DepotPoint is where the depot stands.
func (s *Simulation) DepotPoint() orb.Point {
	_, pos := s.ECS.Depot()
	return pos.Point()
}
