// Package accumulators provides a minimal abstraction for pull- and
// push-based sequence processing: one polymorphic accumulate operation that
// unifies synchronous collections, one-shot values, and event-driven
// streams, plus a library of lazy transformations built purely as
// transformations of the reducing function, with no intermediate
// materialized collections.
//
// The accumulation protocol itself lives in the accumulate package; this
// root package wraps it in a fluent Sequence API. Adapters for external
// collaborators (channels, timers, event emitters) live under sources, and
// terminal drains under sinks.
//
// Below is an example tallying word lengths from a slice source:
//
//	package yourtally
//
//	import (
//		"github.com/elastiflow/accumulators"
//	)
//
//	func Tally(words []string) int {
//		seq := accumulators.FromSlice(words).
//			Reject(func(w string) bool { return w == "" }).
//			Take(100)
//		lengths := accumulators.Map(seq, func(w string) int { return len(w) })
//		return accumulators.Reduce(lengths, func(total, n int) int { return total + n }, 0)
//	}
//
// Event-driven sources compose the same way. A timer stream throttled to
// one emission per second, fanned out to two independent consumers through
// a hub:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	ticks := accumulators.From(sources.Interval(ctx, 100*time.Millisecond)).
//		Throttle(time.Second).
//		Hub()
//	doneA := ticks.Take(3).Each(func(i int) { fmt.Println("a saw", i) })
//	doneB := ticks.Take(5).Each(func(i int) { fmt.Println("b saw", i) })
//	<-doneA
//	<-doneB
package accumulators
