// internal/app/listeners.go
package app

import (
	"log"

	"go-mining-sim/internal/event"
)

// EventLogger печатает диагностику по событиям симуляции.
type EventLogger struct {
	logger *log.Logger
}

// NewEventLogger uses log.Default when logger is nil.
func NewEventLogger(logger *log.Logger) *EventLogger {
	if logger == nil {
		logger = log.Default()
	}
	return &EventLogger{logger: logger}
}

// Attach подписывает логгер на интересные ему события.
func (l *EventLogger) Attach(d *event.Dispatcher) {
	d.SubscribeAll(l, event.ResourceMined, event.ResourceDelivered, event.FieldExhausted)
}

// OnEvent реализует интерфейс event.Listener.
func (l *EventLogger) OnEvent(e event.Event) {
	switch e.Type {
	case event.ResourceMined:
		if data, ok := e.Data.(event.MinerEvent); ok {
			l.logger.Printf("Miner %d mined %d resources.", data.Miner, data.Amount)
		}
	case event.ResourceDelivered:
		if data, ok := e.Data.(event.MinerEvent); ok {
			l.logger.Printf("Miner %d delivered %d, depot total %d", data.Miner, data.Amount, data.Total)
		}
	case event.FieldExhausted:
		if data, ok := e.Data.(event.FieldEvent); ok {
			l.logger.Printf("Field exhausted after %d ticks, depot total %d", data.Tick, data.DepotTotal)
		}
	}
}
