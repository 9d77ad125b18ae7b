package wire

import "sync"

// Observable is a readable value with a change-notification Source.
type Observable[V any] interface {
	Value() V
	// Values emits every future change. Connecting does not replay the
	// current value.
	Values() Source[V]
}

// Updatable is an Observable that can also be set.
type Updatable[V any] interface {
	Observable[V]
	SetValue(V)
}

// Variable is the basic Updatable: a value cell that broadcasts each set.
type Variable[V any] struct {
	mu      sync.RWMutex
	value   V
	changes Signal[V]
}

func NewVariable[V any](initialValue V) *Variable[V] {
	return &Variable[V]{value: initialValue}
}

func (v *Variable[V]) Value() V {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// SetValue stores value and then notifies subscribers, so every sink reads
// the new value.
func (v *Variable[V]) SetValue(value V) {
	v.mu.Lock()
	v.value = value
	v.mu.Unlock()
	v.changes.Send(value)
}

func (v *Variable[V]) Values() Source[V] {
	return &v.changes
}

// Connect subscribes sink to future changes.
func (v *Variable[V]) Connect(sink Sink[V]) *Connection {
	return v.changes.Connect(sink)
}
