package sources

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/elastiflow/accumulators/accumulate"
	"github.com/elastiflow/accumulators/sinks"
)

func TestTicks(t *testing.T) {
	t.Parallel()
	got := sinks.ToSlice(Ticks(context.Background(), 5*time.Millisecond, 4))
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestTicks_TakeZeroIsEmpty(t *testing.T) {
	t.Parallel()
	got := sinks.ToSlice(accumulate.Take(Ticks(context.Background(), 5*time.Millisecond, 3), 0))
	assert.Empty(t, got)
}

func TestInterval_DownstreamCancelStopsTicker(t *testing.T) {
	t.Parallel()
	src := Interval(context.Background(), 5*time.Millisecond)
	got := sinks.ToSlice(accumulate.Take(src, 3))
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestInterval_ContextCancelEndsSequence(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	count := 0
	accumulate.Accumulate(Interval(ctx, 5*time.Millisecond), func(acc any, step accumulate.Step[int]) any {
		if step.End() {
			close(done)
			return acc
		}
		count++
		if count == 2 {
			cancel()
		}
		return acc
	}, nil)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("context cancel must deliver the end step")
	}
	assert.GreaterOrEqual(t, count, 2)
}
