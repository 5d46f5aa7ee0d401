package accumulate

import (
	"sync"
	"time"
)

// throttleState is scoped to a single accumulation run. The queue decouples
// the upstream production rate from the downstream emission rate; done
// records a downstream cancel so the eager drain can stop the upstream.
type throttleState[T any] struct {
	mu    sync.Mutex
	queue []Step[T]
	done  bool
}

func (st *throttleState[T]) push(step Step[T]) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.done {
		return false
	}
	st.queue = append(st.queue, step)
	return true
}

func (st *throttleState[T]) pop() (Step[T], bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.done || len(st.queue) == 0 {
		return Step[T]{}, false
	}
	step := st.queue[0]
	st.queue = st.queue[1:]
	return step, true
}

func (st *throttleState[T]) cancel() {
	st.mu.Lock()
	st.done = true
	st.mu.Unlock()
}

// Throttle emits at most one item of src per interval. The upstream is
// drained eagerly into a FIFO queue as fast as it produces; a ticker pops
// one queued step per tick and forwards it. If the upstream finishes before
// the queue is drained, the remaining items and the trailing end step are
// still played out one per tick. Popping the end step stops the ticker.
func Throttle[T any](src Source[T], interval time.Duration) Source[T] {
	return FromFunc[T](func(next Next[T], acc any) {
		st := &throttleState[T]{}
		ticker := time.NewTicker(interval)
		go func() {
			defer ticker.Stop()
			current := acc
			for range ticker.C {
				step, ok := st.pop()
				if !ok {
					st.mu.Lock()
					done := st.done
					st.mu.Unlock()
					if done {
						return
					}
					continue
				}
				if step.End() {
					st.cancel()
					next(current, step)
					return
				}
				current = next(current, step)
				if Ended(current) {
					st.cancel()
					return
				}
			}
		}()
		Accumulate(src, func(a any, step Step[T]) any {
			if !st.push(step) {
				return End
			}
			return a
		}, acc)
	})
}
