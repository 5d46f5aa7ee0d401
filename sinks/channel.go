package sinks

import (
	"github.com/elastiflow/accumulators/accumulate"
)

// ToChannel forwards every item of src into ch and closes ch when the
// sequence ends. For synchronous sources the forwarding completes within
// the call; push-capable sources keep delivering afterwards from their own
// goroutines.
func ToChannel[T any](src accumulate.Source[T], ch chan<- T) {
	accumulate.Accumulate(src, func(acc any, step accumulate.Step[T]) any {
		if step.End() {
			close(ch)
			return acc
		}
		ch <- step.Value()
		return acc
	}, nil)
}
