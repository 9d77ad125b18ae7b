package wire

import (
	"slices"
	"sync"
)

type sinkEntry[V any] struct {
	id   uint64
	sink Sink[V]
}

// Signal is a multicast Source a producer pushes values into.
//
// Sends made while the Signal is already delivering, including sends from
// inside one of its own sinks, are queued and delivered after the current
// value has reached every sink, in the order they were sent. Each value goes
// to the sinks registered at the moment it is taken off the queue.
type Signal[V any] struct {
	mu       sync.Mutex
	sinks    map[uint64]Sink[V]
	order    []sinkEntry[V]
	pending  []V
	draining bool
}

func NewSignal[V any]() *Signal[V] {
	return &Signal[V]{
		sinks: map[uint64]Sink[V]{},
	}
}

func (s *Signal[V]) Connect(sink Sink[V]) *Connection {
	c := NewConnection()
	id := c.ID()

	s.mu.Lock()
	if s.sinks == nil {
		s.sinks = map[uint64]Sink[V]{}
	}
	s.sinks[id] = sink
	s.order = append(s.order, sinkEntry[V]{id: id, sink: sink})
	s.mu.Unlock()

	c.whenDisconnected(func() {
		s.remove(id)
	})
	return c
}

func (s *Signal[V]) remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sinks[id]; !ok {
		return
	}
	delete(s.sinks, id)
	s.order = slices.DeleteFunc(s.order, func(e sinkEntry[V]) bool {
		return e.id == id
	})
}

// Subscribers returns the number of connected sinks.
func (s *Signal[V]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sinks)
}

func (s *Signal[V]) isConnected(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sinks[id]
	return ok
}

// Send delivers v to every connected sink.
func (s *Signal[V]) Send(v V) {
	s.mu.Lock()
	s.pending = append(s.pending, v)
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	s.mu.Unlock()

	finished := false
	defer func() {
		if finished {
			return
		}
		// a sink panicked; drop what is left so the next Send starts clean
		s.mu.Lock()
		s.pending = nil
		s.draining = false
		s.mu.Unlock()
	}()

	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.pending = nil
			s.draining = false
			s.mu.Unlock()
			finished = true
			return
		}
		next := s.pending[0]
		var zero V
		s.pending[0] = zero
		s.pending = s.pending[1:]
		recipients := slices.Clone(s.order)
		s.mu.Unlock()

		for _, e := range recipients {
			if s.isConnected(e.id) {
				e.sink(next)
			}
		}
	}
}
