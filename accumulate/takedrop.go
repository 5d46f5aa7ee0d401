package accumulate

// takeState is scoped to a single accumulation run.
type takeState struct {
	remaining int
	ended     bool
}

// Take emits at most n items of src, then forces termination: it sends the
// end step downstream itself and returns End upward. An upstream that keeps
// sending after the cancel is tolerated; the extra items are discarded.
// n < 1 behaves as the empty source.
func Take[T any](src Source[T], n int) Source[T] {
	if n < 1 {
		return Empty[T]()
	}
	return FromFunc[T](func(next Next[T], acc any) {
		st := &takeState{remaining: n}
		Accumulate(src, func(acc any, step Step[T]) any {
			if step.End() {
				if st.ended {
					return End
				}
				st.ended = true
				return next(acc, EndStep[T]())
			}
			if st.ended {
				return End
			}
			res := next(acc, Item(step.Value()))
			st.remaining--
			if Ended(res) {
				st.ended = true
				return End
			}
			if st.remaining == 0 {
				st.ended = true
				next(res, EndStep[T]())
				return End
			}
			return res
		}, acc)
	})
}

// dropState is scoped to a single accumulation run.
type dropState struct {
	remaining int
}

// Drop discards the first n items of src and forwards the rest. n < 1
// returns src unchanged, no wrapping needed.
func Drop[T any](src Source[T], n int) Source[T] {
	if n < 1 {
		return src
	}
	return FromFunc[T](func(next Next[T], acc any) {
		st := &dropState{remaining: n}
		Accumulate(src, func(acc any, step Step[T]) any {
			if step.End() {
				return next(acc, EndStep[T]())
			}
			if st.remaining > 0 {
				st.remaining--
				return acc
			}
			return next(acc, step)
		}, acc)
	})
}
