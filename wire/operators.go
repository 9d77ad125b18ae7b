package wire

// Each operator wraps its upstream lazily and connects to it once per
// downstream Connect. Nothing is shared between downstream connections.

func Map[V, O any](src Source[V], transform func(V) O) Source[O] {
	return SourceFunc[O](func(sink Sink[O]) *Connection {
		return src.Connect(func(v V) {
			sink(transform(v))
		})
	})
}

func Filter[V any](src Source[V], predicate func(V) bool) Source[V] {
	return SourceFunc[V](func(sink Sink[V]) *Connection {
		return src.Connect(func(v V) {
			if predicate(v) {
				sink(v)
			}
		})
	})
}

// FlatMap emits the output of transform only when it reports ok.
func FlatMap[V, O any](src Source[V], transform func(V) (O, bool)) Source[O] {
	return SourceFunc[O](func(sink Sink[O]) *Connection {
		return src.Connect(func(v V) {
			if out, ok := transform(v); ok {
				sink(out)
			}
		})
	})
}

// FlatMapSlice emits every element transform returns, in order.
func FlatMapSlice[V, O any](src Source[V], transform func(V) []O) Source[O] {
	return SourceFunc[O](func(sink Sink[O]) *Connection {
		return src.Connect(func(v V) {
			for _, out := range transform(v) {
				sink(out)
			}
		})
	})
}

// EveryNth emits the n-th, 2n-th, ... value received by each connection.
func EveryNth[V any](src Source[V], n int) Source[V] {
	if n <= 0 {
		panic("wire: EveryNth requires n > 0")
	}
	return SourceFunc[V](func(sink Sink[V]) *Connection {
		count := 0
		return src.Connect(func(v V) {
			count++
			if count == n {
				count = 0
				sink(v)
			}
		})
	})
}

// Distinct drops values equal to the last one emitted on the same connection.
func Distinct[V comparable](src Source[V]) Source[V] {
	return SourceFunc[V](func(sink Sink[V]) *Connection {
		var (
			last    V
			hasLast bool
		)
		return src.Connect(func(v V) {
			if hasLast && last == v {
				return
			}
			last, hasLast = v, true
			sink(v)
		})
	})
}

// Merge emits every value from every source. The returned connection owns
// all upstream subscriptions.
func Merge[V any](sources ...Source[V]) Source[V] {
	return SourceFunc[V](func(sink Sink[V]) *Connection {
		upstream := make([]func(), 0, len(sources))
		for _, src := range sources {
			upstream = append(upstream, src.Connect(sink).Disconnect)
		}
		return NewConnection(upstream...)
	})
}
