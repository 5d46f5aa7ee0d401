package sinks

import (
	"github.com/elastiflow/accumulators/accumulate"
)

// ToSlice drives src to completion and returns the collected items. Unlike
// accumulate.Reduce it blocks until the end step arrives, so it also drains
// sources that deliver from other goroutines.
func ToSlice[T any](src accumulate.Source[T]) []T {
	out := make([]T, 0)
	done := make(chan struct{})
	accumulate.Accumulate(src, func(acc any, step accumulate.Step[T]) any {
		if step.End() {
			close(done)
			return acc
		}
		out = append(out, step.Value())
		return acc
	}, nil)
	<-done
	return out
}
