package accumulate

// Append drives left, then right, with a single shared accumulated value,
// preserving strict left-then-right order. The combined sequence ends when
// right ends; a downstream cancel during left stops the whole composition
// and right is never driven.
func Append[T any](left, right Source[T]) Source[T] {
	return FromFunc[T](func(next Next[T], acc any) {
		Accumulate(left, func(acc any, step Step[T]) any {
			if step.End() {
				Accumulate(right, next, acc)
				return acc
			}
			return next(acc, step)
		}, acc)
	})
}

// Concat flattens a source of sources, preserving outer-sequence order
// regardless of timing: inner sources are folded pairwise with Append as
// they are discovered and the composite is driven once the outer source
// ends. An outer source that ends without producing any inner source is the
// empty source; the "no composite yet" case is tracked with its own flag,
// never by inspecting emptiness.
func Concat[T any](outer Source[Source[T]]) Source[T] {
	return FromFunc[T](func(next Next[T], acc any) {
		var composite Source[T]
		assembled := false
		Accumulate(outer, func(a any, step Step[Source[T]]) any {
			if step.End() {
				if !assembled {
					return next(a, EndStep[T]())
				}
				Accumulate(composite, next, a)
				return a
			}
			if !assembled {
				composite, assembled = step.Value(), true
				return a
			}
			composite = Append(composite, step.Value())
			return a
		}, acc)
	})
}
