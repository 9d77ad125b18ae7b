package wire

import "sync/atomic"

// ConnectTo makes slave follow master. slave takes master's current value
// immediately and every later change; changes to slave do not flow back.
func ConnectTo[V any](master Observable[V], slave Updatable[V]) *Connection {
	slave.SetValue(master.Value())
	return master.Values().Connect(slave.SetValue)
}

// Bind keeps master and slave in sync in both directions. slave adopts
// master's value first. The returned connection owns both directions.
//
// While a value is being copied to one side, everything that side emits is
// held back from the other, including sets made by its own sinks. A sink
// that corrects a value on the receiving side (clamping, say) leaves the two
// sides different until the next change. A cross-set that lands on a side
// already mid-delivery is queued, and its echo reaches the origin once more
// after the binding has let go, so the origin can see the same value twice.
// Cycles through a third Updatable are not detected.
func Bind[V any](master, slave Updatable[V]) *Connection {
	slave.SetValue(master.Value())

	l := &link{}
	forward := master.Values().Connect(func(v V) {
		l.propagate(func() { slave.SetValue(v) })
	})
	backward := slave.Values().Connect(func(v V) {
		l.propagate(func() { master.SetValue(v) })
	})
	return NewConnection(forward.Disconnect, backward.Disconnect)
}

// link is shared by the two directions of a binding. While one side is
// being copied across, the echo from the other side is dropped.
type link struct {
	busy atomic.Bool
}

func (l *link) propagate(set func()) {
	if !l.busy.CompareAndSwap(false, true) {
		return
	}
	defer l.busy.Store(false)
	set()
}
