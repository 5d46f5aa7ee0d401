package accumulate

// reductionsState is scoped to a single accumulation run. The running fold
// value is kept apart from the downstream accumulated value.
type reductionsState[A any] struct {
	running A
}

// Reductions emits the running fold value once per item of src: a live
// trace of the intermediate reduction states. The end step forwards
// unchanged.
func Reductions[T, A any](src Source[T], fold func(acc A, item T) A, seed A) Source[A] {
	return FromFunc[A](func(next Next[A], acc any) {
		st := &reductionsState[A]{running: seed}
		Accumulate(src, func(acc any, step Step[T]) any {
			if step.End() {
				return next(acc, EndStep[A]())
			}
			st.running = fold(st.running, step.Value())
			return next(acc, Item(st.running))
		}, acc)
	})
}
