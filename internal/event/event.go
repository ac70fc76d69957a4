// internal/event/event.go
package event

// EventType - тип события
type EventType string

// Event - структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener - интерфейс для подписчиков на события.
// Listeners are compared by identity on Unsubscribe, so use pointer types.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher - диспетчер событий
type Dispatcher struct {
	listeners map[EventType][]Listener
}

// NewDispatcher - создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe - подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает слушателя на все игровые события
func (d *Dispatcher) SubscribeAll(listener Listener) {
	for _, t := range AllTypes {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe - отписка от события
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	if listeners, exists := d.listeners[eventType]; exists {
		for i, l := range listeners {
			if l == listener {
				d.listeners[eventType] = append(listeners[:i:i], listeners[i+1:]...)
				break
			}
		}
	}
}

// UnsubscribeAll снимает слушателя со всех событий
func (d *Dispatcher) UnsubscribeAll(listener Listener) {
	for t := range d.listeners {
		d.Unsubscribe(t, listener)
	}
}

// Dispatch - отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	if listeners, exists := d.listeners[event.Type]; exists {
		for _, listener := range listeners {
			listener.OnEvent(event)
		}
	}
}

// Count returns how many listeners are subscribed to eventType.
func (d *Dispatcher) Count(eventType EventType) int {
	return len(d.listeners[eventType])
}

// AllTypes lists every game event type.
var AllTypes = []EventType{StickSpawned, StickLaunched, StickAttached, LevelCompleted, GameOver}
