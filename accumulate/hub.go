package accumulate

import "sync"

// hubConsumer holds one attached consumer's reducing function, its own
// accumulated value, and whether it has already returned End.
type hubConsumer[T any] struct {
	next  Next[T]
	acc   any
	ended bool
}

// hubState deliberately outlives any single accumulation run: it is shared
// across every consumer attachment. The mutex guards the consumer list and
// the state flags; dispatching itself is serialized by the single upstream
// driver.
type hubState[T any] struct {
	mu        sync.Mutex
	consumers []*hubConsumer[T]
	started   bool
	ended     bool
}

func (st *hubState[T]) dispatch(step Step[T]) {
	st.mu.Lock()
	if step.End() {
		st.ended = true
		consumers := st.consumers
		st.consumers = nil
		st.mu.Unlock()
		for _, c := range consumers {
			if c.ended {
				continue
			}
			c.next(c.acc, step)
		}
		return
	}
	consumers := make([]*hubConsumer[T], len(st.consumers))
	copy(consumers, st.consumers)
	st.mu.Unlock()
	for _, c := range consumers {
		if c.ended {
			continue
		}
		c.acc = c.next(c.acc, step)
		if Ended(c.acc) {
			c.ended = true
		}
	}
}

// Hub converts a single-consumption source into one that can be accumulated
// by many independent consumers. The first accumulation request starts the
// upstream; every later request only registers a new consumer, so the
// upstream is driven at most once regardless of consumer count. Each item
// fans out to every consumer with its own accumulated value, skipping
// consumers that have already returned End. The upstream end step is
// delivered to every live consumer and clears the consumer list; consumers
// attaching after that receive the end step immediately.
func Hub[T any](src Source[T]) Source[T] {
	st := &hubState[T]{}
	return FromFunc[T](func(next Next[T], acc any) {
		st.mu.Lock()
		if st.ended {
			st.mu.Unlock()
			next(acc, EndStep[T]())
			return
		}
		st.consumers = append(st.consumers, &hubConsumer[T]{next: next, acc: acc})
		if st.started {
			st.mu.Unlock()
			return
		}
		st.started = true
		st.mu.Unlock()
		Accumulate(src, func(a any, step Step[T]) any {
			st.dispatch(step)
			return a
		}, nil)
	})
}
