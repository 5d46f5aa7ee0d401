package sources

import (
	"sync"

	"github.com/google/uuid"

	"github.com/elastiflow/accumulators/accumulate"
)

// Emitter is a callback-registration event source: the shape the library
// expects of external event streams (register a listener, receive events
// until removed). Emit and Close must not be called concurrently with each
// other; listener bookkeeping is safe against concurrent Register/Remove.
type Emitter[T any] struct {
	mu        sync.Mutex
	closed    bool
	listeners map[uuid.UUID]func(accumulate.Step[T])
}

// NewEmitter constructs an Emitter with no listeners.
func NewEmitter[T any]() *Emitter[T] {
	return &Emitter[T]{
		listeners: make(map[uuid.UUID]func(accumulate.Step[T])),
	}
}

// Register adds a listener and returns the handle used to remove it.
func (e *Emitter[T]) Register(fn func(accumulate.Step[T])) uuid.UUID {
	id := uuid.New()
	e.attach(id, fn)
	return id
}

func (e *Emitter[T]) attach(id uuid.UUID, fn func(accumulate.Step[T])) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners[id] = fn
}

// Remove deletes the listener registered under id.
func (e *Emitter[T]) Remove(id uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.listeners, id)
}

// Emit fires v at every registered listener. Events fired after Close are
// dropped.
func (e *Emitter[T]) Emit(v T) {
	e.each(accumulate.Item(v))
}

// Close fires the end step at every registered listener and removes them.
func (e *Emitter[T]) Close() {
	e.each(accumulate.EndStep[T]())
	e.mu.Lock()
	e.closed = true
	e.listeners = make(map[uuid.UUID]func(accumulate.Step[T]))
	e.mu.Unlock()
}

func (e *Emitter[T]) each(step accumulate.Step[T]) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	snapshot := make([]func(accumulate.Step[T]), 0, len(e.listeners))
	for _, fn := range e.listeners {
		snapshot = append(snapshot, fn)
	}
	e.mu.Unlock()
	for _, fn := range snapshot {
		fn(step)
	}
}

// Source wraps the emitter as an accumulate source. Each accumulation
// registers its own listener, making the source single-consumption per
// drive; wrap it in accumulate.Hub to serve independent consumers. The
// listener is removed as soon as the consumer's reducing function returns
// End.
func (e *Emitter[T]) Source() accumulate.Source[T] {
	return accumulate.FromFunc[T](func(next accumulate.Next[T], acc any) {
		current := acc
		id := uuid.New()
		e.attach(id, func(step accumulate.Step[T]) {
			if step.End() {
				next(current, step)
				return
			}
			current = next(current, step)
			if accumulate.Ended(current) {
				e.Remove(id)
			}
		})
	})
}
