package accumulate

// endToken is the type of the End token. Being an unexported pointer type,
// no legitimate accumulated value can compare equal to it.
type endToken struct{}

// End is the cancellation token. A Next function may return it as its new
// accumulated value to request that the upstream stop sending items. A
// source that receives End from its reducing function must send nothing
// further, not even the end step.
var End = &endToken{}

func (e *endToken) String() string {
	return "accumulate.End"
}

// Ended reports whether an accumulated value is the End token. The check is
// by identity, never by structural equality.
func Ended(acc any) bool {
	return acc == any(End)
}

// Step is the item slot of a reducing function: either a sequence item or
// the end-of-sequence signal.
type Step[T any] struct {
	value T
	end   bool
}

// Item wraps a sequence item as a Step.
func Item[T any](v T) Step[T] {
	return Step[T]{value: v}
}

// EndStep returns the end-of-sequence Step.
func EndStep[T any]() Step[T] {
	return Step[T]{end: true}
}

// End reports whether the step is the end-of-sequence signal.
func (s Step[T]) End() bool {
	return s.end
}

// Value returns the item carried by the step. It is the zero value for the
// end step.
func (s Step[T]) Value() T {
	return s.value
}

// Next is a reducing function: it maps an accumulated value and a step to a
// new accumulated value. A Next is called once per item and exactly once
// with the end step, whose return value is final and is never driven
// further. Returning End cancels the upstream; a canceled Next receives no
// further steps of any kind.
type Next[T any] func(acc any, step Step[T]) any

// AccumulateFunc drives items into next across any number of scheduling
// turns, eventually passing the end step exactly once (or never, for a
// genuinely infinite source). It must honor End returned from next by
// sending nothing further and releasing any held resources.
type AccumulateFunc[T any] func(next Next[T], acc any)

// Foldable is the synchronous-fold capability: a left fold over the
// collection with the given folding function and seed, completing within
// the call.
type Foldable[T any] interface {
	Fold(fold func(acc any, item T) any, acc any) any
}

// Slice adapts a []T to Foldable.
type Slice[T any] []T

// Fold runs a left fold over the slice. It stops early when the folding
// function returns the End token.
func (s Slice[T]) Fold(fold func(acc any, item T) any, acc any) any {
	for _, v := range s {
		acc = fold(acc, v)
		if Ended(acc) {
			return acc
		}
	}
	return acc
}

// Kind identifies the variant of a Source.
type Kind int

const (
	KindEmpty Kind = iota
	KindValue
	KindFoldable
	KindFunc
)

// String converts a Kind into a string value
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindValue:
		return "value"
	case KindFoldable:
		return "foldable"
	case KindFunc:
		return "func"
	}
	return ""
}

// Source is a value that can be driven by Accumulate. It owns no items,
// only the logic for producing them. The zero Source is the empty source:
// it emits nothing but the end step.
type Source[T any] struct {
	kind Kind
	item T
	fold Foldable[T]
	fn   AccumulateFunc[T]
}

// Empty returns the zero-item source. It emits only the end step.
func Empty[T any]() Source[T] {
	return Source[T]{}
}

// Of returns a one-item source emitting v then the end step.
func Of[T any](v T) Source[T] {
	return Source[T]{kind: KindValue, item: v}
}

// FromSlice returns a source that folds the slice synchronously.
func FromSlice[T any](items []T) Source[T] {
	return Source[T]{kind: KindFoldable, fold: Slice[T](items)}
}

// FromFoldable returns a source over any synchronously foldable collection.
func FromFoldable[T any](f Foldable[T]) Source[T] {
	return Source[T]{kind: KindFoldable, fold: f}
}

// FromFunc returns a push-capable source driven by fn. The function assumes
// full responsibility for eventually sending the end step, possibly across
// many scheduling turns.
func FromFunc[T any](fn AccumulateFunc[T]) Source[T] {
	return Source[T]{kind: KindFunc, fn: fn}
}

// Kind returns the source variant consulted by the Accumulate dispatch.
func (s Source[T]) Kind() Kind {
	return s.kind
}

// Accumulate drives src with the reducing function next and the initial
// accumulated value acc. It has no return value; results are conveyed
// solely through calls to next. Dispatch, first match wins:
//
//  1. KindFunc: delegate to the source's own accumulate function, which may
//     keep sending across later scheduling turns.
//  2. KindFoldable: fold synchronously, then send the end step once.
//  3. KindValue: send the single item, then the end step.
//  4. KindEmpty: send only the end step.
//
// Steps 2-4 complete within the call. In every case a reducing function
// that returns End receives nothing further.
func Accumulate[T any](src Source[T], next Next[T], acc any) {
	switch src.kind {
	case KindFunc:
		src.fn(next, acc)
	case KindFoldable:
		canceled := false
		acc = src.fold.Fold(func(acc any, item T) any {
			if canceled || Ended(acc) {
				canceled = true
				return End
			}
			res := next(acc, Item(item))
			if Ended(res) {
				canceled = true
			}
			return res
		}, acc)
		if !canceled {
			next(acc, EndStep[T]())
		}
	case KindValue:
		res := next(acc, Item(src.item))
		if !Ended(res) {
			next(res, EndStep[T]())
		}
	default:
		next(acc, EndStep[T]())
	}
}

// Reduce drives src to completion within the call and returns the final
// accumulated value. It is only meaningful for synchronous sources; a
// push-capable source that defers work to another goroutine returns the
// seed unchanged. Use the sinks package to drain asynchronous sources.
func Reduce[T, A any](src Source[T], fold func(acc A, item T) A, seed A) A {
	final := seed
	Accumulate(src, func(acc any, step Step[T]) any {
		if step.End() {
			final = acc.(A)
			return acc
		}
		return fold(acc.(A), step.Value())
	}, seed)
	return final
}
