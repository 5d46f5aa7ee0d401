package accumulate

import "sync"

// mergeState is scoped to a single accumulation run. The open count starts
// at 1 for the outer source itself, is incremented per inner source started
// and decremented per inner or outer end step; the downstream end step is
// sent exactly once, when the count reaches zero. All inner sources share
// one downstream accumulated value, guarded by the mutex because timer and
// event driven inners deliver from distinct goroutines.
type mergeState struct {
	mu   sync.Mutex
	acc  any
	open int
	done bool
}

func (st *mergeState) closeOne(end func(acc any) any) any {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.open--
	if st.open == 0 && !st.done {
		st.done = true
		st.acc = end(st.acc)
	}
	return End
}

func (st *mergeState) forward(emit func(acc any) any) any {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.done {
		return End
	}
	st.acc = emit(st.acc)
	if Ended(st.acc) {
		st.done = true
		return End
	}
	return st.acc
}

// Merge drives every inner source of a source of sources concurrently and
// emits items in arrival order, explicitly not in outer-sequence order. The
// combined sequence ends when the outer source and every inner source have
// all ended.
func Merge[T any](outer Source[Source[T]]) Source[T] {
	return FromFunc[T](func(next Next[T], acc any) {
		st := &mergeState{acc: acc, open: 1}
		Accumulate(outer, func(a any, step Step[Source[T]]) any {
			if step.End() {
				return st.closeOne(func(acc any) any {
					return next(acc, EndStep[T]())
				})
			}
			st.mu.Lock()
			if st.done {
				st.mu.Unlock()
				return End
			}
			st.open++
			st.mu.Unlock()
			Accumulate(step.Value(), func(_ any, s Step[T]) any {
				if s.End() {
					return st.closeOne(func(acc any) any {
						return next(acc, EndStep[T]())
					})
				}
				return st.forward(func(acc any) any {
					return next(acc, s)
				})
			}, nil)
			return a
		}, acc)
	})
}
