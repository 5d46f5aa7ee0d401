package accumulate

// TransformFunc is the per-item rule of a transformation built with
// Transform. It is called once per non-end item and must either emit by
// calling next and returning its result, or skip by returning acc
// unchanged. It is never invoked with the end step.
type TransformFunc[P, T, U any] func(param P, next Next[U], acc any, item T) any

// Transform builds a reusable operation from a per-item rule. The returned
// operation wraps a source so that every item passes through the rule while
// the end step is intercepted and forwarded downstream verbatim, exactly
// once. A downstream cancel, whether surfaced through the rule's return
// value or issued by the rule itself, suppresses all later forwarding.
func Transform[P, T, U any](rule TransformFunc[P, T, U]) func(Source[T], P) Source[U] {
	return func(src Source[T], param P) Source[U] {
		return FromFunc[U](func(next Next[U], acc any) {
			done := false
			Accumulate(src, func(acc any, step Step[T]) any {
				if step.End() {
					if done {
						return End
					}
					done = true
					return next(acc, EndStep[U]())
				}
				if done || Ended(acc) {
					done = true
					return End
				}
				res := rule(param, next, acc, step.Value())
				if Ended(res) {
					done = true
				}
				return res
			}, acc)
		})
	}
}

// Map emits mapper(item) for every item of src.
func Map[T, U any](src Source[T], mapper func(T) U) Source[U] {
	op := Transform[func(T) U, T, U](func(m func(T) U, next Next[U], acc any, item T) any {
		return next(acc, Item(m(item)))
	})
	return op(src, mapper)
}

// Filter emits only the items of src for which pred is true.
func Filter[T any](src Source[T], pred func(T) bool) Source[T] {
	op := Transform[func(T) bool, T, T](func(p func(T) bool, next Next[T], acc any, item T) any {
		if !p(item) {
			return acc
		}
		return next(acc, Item(item))
	})
	return op(src, pred)
}

// Reject emits only the items of src for which pred is false.
func Reject[T any](src Source[T], pred func(T) bool) Source[T] {
	op := Transform[func(T) bool, T, T](func(p func(T) bool, next Next[T], acc any, item T) any {
		if p(item) {
			return acc
		}
		return next(acc, Item(item))
	})
	return op(src, pred)
}
