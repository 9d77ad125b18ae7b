package wire

// Executor is an execution context values can be moved onto.
type Executor interface {
	// IsCurrent reports whether the caller is already running on this context.
	IsCurrent() bool
	// Execute schedules task to run later on this context without blocking.
	Execute(task func())
}

// Dispatch delivers each value on exec. If the sender is already on exec the
// sink runs inline, otherwise delivery is scheduled and Send returns at once.
// Values scheduled through one Dispatch connection keep their order on a
// serial executor.
func Dispatch[V any](src Source[V], exec Executor) Source[V] {
	return SourceFunc[V](func(sink Sink[V]) *Connection {
		return src.Connect(func(v V) {
			if exec.IsCurrent() {
				sink(v)
				return
			}
			exec.Execute(func() {
				sink(v)
			})
		})
	})
}
