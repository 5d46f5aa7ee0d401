package sources

import (
	"context"

	"github.com/elastiflow/accumulators/accumulate"
)

// FromChannel wraps a receive channel as a source. Items arrive on their
// own goroutine, so the source works across any number of scheduling turns;
// closing the channel marks the end of the sequence. A downstream cancel or
// a canceled context abandons the drain, leaving the channel for the
// producer to close.
func FromChannel[T any](ctx context.Context, ch <-chan T) accumulate.Source[T] {
	return accumulate.FromFunc[T](func(next accumulate.Next[T], acc any) {
		go func() {
			for {
				select {
				case <-ctx.Done():
					next(acc, accumulate.EndStep[T]())
					return
				case v, ok := <-ch:
					if !ok {
						next(acc, accumulate.EndStep[T]())
						return
					}
					acc = next(acc, accumulate.Item(v))
					if accumulate.Ended(acc) {
						return
					}
				}
			}
		}()
	})
}
