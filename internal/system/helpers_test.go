package system_test

import (
	"github.com/paulmach/orb"

	"go-mining-sim/internal/component"
	"go-mining-sim/internal/entity"
	"go-mining-sim/internal/event"
	"go-mining-sim/internal/field"
	"go-mining-sim/internal/system"
	"go-mining-sim/internal/types"
	"go-mining-sim/internal/utils"
)

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type minerAt struct {
	strategy types.Strategy
	at       orb.Point
}

type world struct {
	ecs        *entity.ECS
	field      *field.Field
	dispatcher *event.Dispatcher
	rec        *recorder
	miners     *system.MinerSystem
	collection *system.CollectionSystem
	state      *system.StateSystem
}

func newWorld(depot orb.Point, policy field.ReservationPolicy, points []orb.Point, miners ...minerAt) *world {
	ecs := entity.NewECS()
	ecs.AddDepot(*component.PositionOf(depot), component.Renderable{Radius: 20})
	for _, m := range miners {
		ecs.AddMiner(*component.PositionOf(m.at), 5, component.Renderable{Radius: 10}, component.Miner{Strategy: m.strategy})
	}
	f := field.New(policy, points...)
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec,
		event.TargetChosen,
		event.ResourceMined,
		event.ResourceDelivered,
		event.ResourcePruned,
		event.TargetCleared,
		event.FieldExhausted,
	)
	rng := utils.NewPRNGService(1)
	return &world{
		ecs:        ecs,
		field:      f,
		dispatcher: d,
		rec:        rec,
		miners:     system.NewMinerSystem(ecs, f, rng, d, 1, 5),
		collection: system.NewCollectionSystem(ecs, f, d),
		state:      system.NewStateSystem(ecs, f, d),
	}
}

// tick runs one frame in loop order and reports whether the run finished.
func (w *world) tick() (bool, error) {
	w.ecs.Tick++
	if err := w.miners.Update(); err != nil {
		return false, err
	}
	w.collection.Update()
	return w.state.Update(), nil
}

func (w *world) miner(i int) (*component.Miner, *component.Position) {
	return w.ecs.MinerAt(i)
}
