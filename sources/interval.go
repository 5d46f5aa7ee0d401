package sources

import (
	"context"
	"time"

	"github.com/elastiflow/accumulators/accumulate"
)

// Ticks emits the tick index 0..n-1, one item per period, then ends. The
// ticker is released when the sequence ends, the downstream cancels, or the
// context is canceled; context cancellation still delivers the end step so
// consumers terminate cleanly.
func Ticks(ctx context.Context, period time.Duration, n int) accumulate.Source[int] {
	return ticks(ctx, period, n)
}

// Interval emits the tick index forever, one item per period. It ends only
// through downstream cancel or context cancellation.
func Interval(ctx context.Context, period time.Duration) accumulate.Source[int] {
	return ticks(ctx, period, -1)
}

func ticks(ctx context.Context, period time.Duration, n int) accumulate.Source[int] {
	return accumulate.FromFunc[int](func(next accumulate.Next[int], acc any) {
		ticker := time.NewTicker(period)
		go func() {
			defer ticker.Stop()
			i := 0
			for {
				select {
				case <-ctx.Done():
					next(acc, accumulate.EndStep[int]())
					return
				case <-ticker.C:
					acc = next(acc, accumulate.Item(i))
					if accumulate.Ended(acc) {
						return
					}
					i++
					if n >= 0 && i == n {
						next(acc, accumulate.EndStep[int]())
						return
					}
				}
			}
		}()
	})
}
