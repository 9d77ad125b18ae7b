package wire

import (
	"sync"
	"sync/atomic"
)

// Sink receives one delivered value.
type Sink[V any] func(V)

// Source is anything that can push values to a sink. Every call to Connect
// yields an independent subscription.
type Source[V any] interface {
	Connect(sink Sink[V]) *Connection
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc[V any] func(sink Sink[V]) *Connection

func (f SourceFunc[V]) Connect(sink Sink[V]) *Connection {
	return f(sink)
}

var lastConnectionID atomic.Uint64

// Connection is a handle to one live subscription. Disconnecting is
// idempotent and permanent.
type Connection struct {
	id           uint64
	disconnected atomic.Bool

	mu           sync.Mutex
	onDisconnect []func()
}

// NewConnection returns a live connection that runs every onDisconnect
// callback exactly once, in order, the first time it is disconnected.
func NewConnection(onDisconnect ...func()) *Connection {
	return &Connection{
		id:           lastConnectionID.Add(1),
		onDisconnect: onDisconnect,
	}
}

func (c *Connection) ID() uint64 {
	return c.id
}

func (c *Connection) Connected() bool {
	return !c.disconnected.Load()
}

// Disconnect stops future deliveries. A value already queued for this sink
// may still arrive.
func (c *Connection) Disconnect() {
	if c.disconnected.Swap(true) {
		return
	}
	c.mu.Lock()
	fns := c.onDisconnect
	c.onDisconnect = nil
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// PutInto hands ownership of c to the connector.
func (c *Connection) PutInto(connector *Connector) *Connection {
	connector.Add(c)
	return c
}

// whenDisconnected registers fn to run on disconnect. It reports false, and
// does not run fn, if c is already disconnected.
func (c *Connection) whenDisconnected(fn func()) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disconnected.Load() {
		return false
	}
	c.onDisconnect = append(c.onDisconnect, fn)
	return true
}
