package accumulate

import "sync"

// sampleState is scoped to a single accumulation run. It is shared between
// the sampled source and the trigger source, which generally deliver from
// distinct goroutines.
type sampleState[T any] struct {
	mu   sync.Mutex
	last T
	seen bool
	acc  any
	done bool
}

// SampleWith joins the most recent item of src against each item of
// triggers: every trigger item emits assemble(lastSourceItem, triggerItem).
// Trigger items arriving before the first source item are skipped. The end
// of triggers ends the combined sequence; the end of src only stops the
// sampled value from refreshing.
func SampleWith[T, U, R any](src Source[T], triggers Source[U], assemble func(T, U) R) Source[R] {
	return FromFunc[R](func(next Next[R], acc any) {
		st := &sampleState[T]{acc: acc}
		Accumulate(src, func(a any, step Step[T]) any {
			if step.End() {
				return a
			}
			st.mu.Lock()
			defer st.mu.Unlock()
			if st.done {
				return End
			}
			st.last, st.seen = step.Value(), true
			return a
		}, nil)
		Accumulate(triggers, func(_ any, step Step[U]) any {
			st.mu.Lock()
			defer st.mu.Unlock()
			if st.done {
				return End
			}
			if step.End() {
				st.done = true
				st.acc = next(st.acc, EndStep[R]())
				return End
			}
			if !st.seen {
				return st.acc
			}
			st.acc = next(st.acc, Item(assemble(st.last, step.Value())))
			if Ended(st.acc) {
				st.done = true
				return End
			}
			return st.acc
		}, acc)
	})
}

// Sample is SampleWith with the default assembly: each trigger item emits
// the latest item of src, ignoring the trigger item itself.
func Sample[T, U any](src Source[T], triggers Source[U]) Source[T] {
	return SampleWith(src, triggers, func(v T, _ U) T {
		return v
	})
}
