package accumulators

import (
	"time"

	"github.com/elastiflow/accumulators/accumulate"
	"github.com/elastiflow/accumulators/sinks"
)

// Sequence is a fluent wrapper over an accumulate.Source. Stages that keep
// the element type are methods; type-changing stages (Map, Reductions,
// Sample) are package functions because Go methods cannot introduce type
// parameters.
type Sequence[T any] struct {
	src accumulate.Source[T]
}

// From wraps an accumulate.Source in a Sequence.
func From[T any](src accumulate.Source[T]) Sequence[T] {
	return Sequence[T]{src: src}
}

// FromSlice builds a Sequence over a synchronously folded slice.
func FromSlice[T any](items []T) Sequence[T] {
	return Sequence[T]{src: accumulate.FromSlice(items)}
}

// FromValue builds a one-item Sequence.
func FromValue[T any](v T) Sequence[T] {
	return Sequence[T]{src: accumulate.Of(v)}
}

// Empty builds a Sequence that emits nothing but the end signal.
func Empty[T any]() Sequence[T] {
	return Sequence[T]{src: accumulate.Empty[T]()}
}

// Source unwraps the underlying accumulate.Source.
func (s Sequence[T]) Source() accumulate.Source[T] {
	return s.src
}

// Filter keeps only items for which pred is true.
func (s Sequence[T]) Filter(pred func(T) bool) Sequence[T] {
	return Sequence[T]{src: accumulate.Filter(s.src, pred)}
}

// Reject drops items for which pred is true.
func (s Sequence[T]) Reject(pred func(T) bool) Sequence[T] {
	return Sequence[T]{src: accumulate.Reject(s.src, pred)}
}

// Take keeps at most n items, then ends the sequence and cancels upstream.
func (s Sequence[T]) Take(n int) Sequence[T] {
	return Sequence[T]{src: accumulate.Take(s.src, n)}
}

// Drop discards the first n items.
func (s Sequence[T]) Drop(n int) Sequence[T] {
	return Sequence[T]{src: accumulate.Drop(s.src, n)}
}

// Throttle emits at most one item per interval, buffering the rest.
func (s Sequence[T]) Throttle(interval time.Duration) Sequence[T] {
	return Sequence[T]{src: accumulate.Throttle(s.src, interval)}
}

// Append continues with other once this sequence ends.
func (s Sequence[T]) Append(other Sequence[T]) Sequence[T] {
	return Sequence[T]{src: accumulate.Append(s.src, other.src)}
}

// Hub makes the sequence multi-consumer: the upstream is driven at most
// once while every consumer accumulates independently.
func (s Sequence[T]) Hub() Sequence[T] {
	return Sequence[T]{src: accumulate.Hub(s.src)}
}

// Once guards the sequence against being driven more than once; violations
// panic with an errors.ProtocolError.
func (s Sequence[T]) Once() Sequence[T] {
	return Sequence[T]{src: accumulate.Once(s.src)}
}

// Each drives the sequence, invoking fn per item. The returned channel is
// closed when the sequence ends.
func (s Sequence[T]) Each(fn func(T)) <-chan struct{} {
	done := make(chan struct{})
	accumulate.Accumulate(s.src, func(acc any, step accumulate.Step[T]) any {
		if step.End() {
			close(done)
			return acc
		}
		fn(step.Value())
		return acc
	}, nil)
	return done
}

// Slice drives the sequence to completion, blocking until the end signal,
// and returns the collected items.
func (s Sequence[T]) Slice() []T {
	return sinks.ToSlice(s.src)
}

// Chan drives the sequence into a channel that is closed on the end signal.
func (s Sequence[T]) Chan() <-chan T {
	ch := make(chan T)
	go sinks.ToChannel(s.src, ch)
	return ch
}

// Map emits mapper(item) for every item of s.
func Map[T, U any](s Sequence[T], mapper func(T) U) Sequence[U] {
	return Sequence[U]{src: accumulate.Map(s.src, mapper)}
}

// Reductions emits the running fold value once per item of s.
func Reductions[T, A any](s Sequence[T], fold func(acc A, item T) A, seed A) Sequence[A] {
	return Sequence[A]{src: accumulate.Reductions(s.src, fold, seed)}
}

// Sample emits the latest item of s once per item of triggers.
func Sample[T, U any](s Sequence[T], triggers Sequence[U]) Sequence[T] {
	return Sequence[T]{src: accumulate.Sample(s.src, triggers.src)}
}

// SampleWith joins the latest item of s against each trigger item.
func SampleWith[T, U, R any](s Sequence[T], triggers Sequence[U], assemble func(T, U) R) Sequence[R] {
	return Sequence[R]{src: accumulate.SampleWith(s.src, triggers.src, assemble)}
}

// Concat flattens the given sequences in order.
func Concat[T any](seqs ...Sequence[T]) Sequence[T] {
	inner := make([]accumulate.Source[T], len(seqs))
	for i, s := range seqs {
		inner[i] = s.src
	}
	return Sequence[T]{src: accumulate.Concat(accumulate.FromSlice(inner))}
}

// Merge interleaves the given sequences in arrival order.
func Merge[T any](seqs ...Sequence[T]) Sequence[T] {
	inner := make([]accumulate.Source[T], len(seqs))
	for i, s := range seqs {
		inner[i] = s.src
	}
	return Sequence[T]{src: accumulate.Merge(accumulate.FromSlice(inner))}
}

// Reduce drives s to completion within the call and returns the final fold
// value. Only meaningful for synchronous sequences; use Slice or Each for
// event-driven ones.
func Reduce[T, A any](s Sequence[T], fold func(acc A, item T) A, seed A) A {
	return accumulate.Reduce(s.src, fold, seed)
}
