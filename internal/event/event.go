// internal/event/event.go
package event

// EventType задаёт тип события
type EventType string

// Event несёт тип и необязательные данные
type Event struct {
	Type EventType
	Data any
}

// Listener получает события, на которые подписан
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher рассылает события подписчикам синхронно, в порядке подписки
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener сразу на несколько типов.
func (d *Dispatcher) SubscribeAll(listener Listener, eventTypes ...EventType) {
	for _, t := range eventTypes {
		d.Subscribe(t, listener)
	}
}

func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch вызывает подписчиков на снимке списка, так что подписка или
// отписка внутри обработчика действует со следующего события.
func (d *Dispatcher) Dispatch(event Event) {
	listeners := d.listeners[event.Type]
	if len(listeners) == 0 {
		return
	}
	snapshot := make([]Listener, len(listeners))
	copy(snapshot, listeners)
	for _, listener := range snapshot {
		listener.OnEvent(event)
	}
}
