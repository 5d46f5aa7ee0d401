package accumulate

import (
	"sync"

	"github.com/elastiflow/accumulators/errors"
)

// onceState deliberately outlives any single accumulation run so a second
// drive of the same guarded source can be detected.
type onceState struct {
	mu      sync.Mutex
	running bool
	ended   bool
}

// Once wraps src to enforce single consumption: driving the returned source
// a second time, whether concurrently or after termination, panics with an
// errors.ProtocolError, as does any step the upstream sends after the
// sequence ended. Termination is tracked both from the upstream end step
// and from the downstream reducing function returning End.
func Once[T any](src Source[T]) Source[T] {
	st := &onceState{}
	return FromFunc[T](func(next Next[T], acc any) {
		st.mu.Lock()
		if st.running || st.ended {
			st.mu.Unlock()
			panic(errors.NewDrive("accumulation attempted after source was started or ended"))
		}
		st.running = true
		st.mu.Unlock()
		Accumulate(src, func(acc any, step Step[T]) any {
			st.mu.Lock()
			if st.ended {
				st.mu.Unlock()
				panic(errors.NewSend("source sent step after it ended"))
			}
			if step.End() {
				st.ended = true
			}
			st.mu.Unlock()
			res := next(acc, step)
			if Ended(res) {
				st.mu.Lock()
				st.ended = true
				st.mu.Unlock()
			}
			return res
		}, acc)
	})
}
