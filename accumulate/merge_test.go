package accumulate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge_Synchronous(t *testing.T) {
	tests := []struct {
		name   string
		inners [][]int
		want   []int
	}{
		{
			name:   "all items arrive",
			inners: [][]int{{1, 2}, {3, 4}},
			want:   []int{1, 2, 3, 4},
		},
		{
			name:   "no inners",
			inners: [][]int{},
			want:   []int{},
		},
		{
			name:   "empty inners",
			inners: [][]int{{}, {}},
			want:   []int{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			inner := make([]Source[int], len(tt.inners))
			for i, items := range tt.inners {
				inner[i] = FromSlice(items)
			}
			c := newCapture[int]()
			Accumulate(Merge(FromSlice(inner)), c.next, nil)
			c.wait(t)
			assert.ElementsMatch(t, tt.want, c.snapshot())
			assert.Equal(t, 1, c.endCount())
		})
	}
}

// The open count starts at 1 for the outer source, so the end step must not
// fire before the outer source has finished discovering inner sources, even
// if every inner discovered so far has already ended.
func TestMerge_OpenCountHoldsForOuter(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	outer := FromFunc[Source[int]](func(next Next[Source[int]], acc any) {
		go func() {
			acc = next(acc, Item(FromSlice([]int{1})))
			<-release
			acc = next(acc, Item(FromSlice([]int{2})))
			next(acc, EndStep[Source[int]]())
		}()
	})

	c := newCapture[int]()
	Accumulate(Merge(outer), c.next, nil)

	time.Sleep(20 * time.Millisecond)
	require.Equal(t, 0, c.endCount(), "outer still open, no end yet")
	close(release)
	c.wait(t)
	assert.ElementsMatch(t, []int{1, 2}, c.snapshot())
	assert.Equal(t, 1, c.endCount())
}

func TestMerge_TimedSourcesInterleave(t *testing.T) {
	t.Parallel()
	inner := []Source[int]{
		timed([]int{1, 2, 3}, 12*time.Millisecond),
		timed([]int{10, 20, 30}, 7*time.Millisecond),
	}
	c := newCapture[int]()
	Accumulate(Merge(FromSlice(inner)), c.next, nil)
	c.wait(t)

	got := c.snapshot()
	assert.Len(t, got, 6, "exactly six items before the end step")
	assert.ElementsMatch(t, []int{1, 2, 3, 10, 20, 30}, got)
	assert.Equal(t, 1, c.endCount(), "end fires once, only after both inners ended")
	assert.NotEqual(t, []int{1, 2, 3, 10, 20, 30}, got,
		"arrival order, not outer index order")
}

func TestMerge_DownstreamCancelStopsInners(t *testing.T) {
	t.Parallel()
	inner := []Source[int]{
		timed([]int{1, 2, 3, 4, 5}, 5*time.Millisecond),
		timed([]int{6, 7, 8, 9, 10}, 5*time.Millisecond),
	}
	c := newCapture[int]()
	c.cancelAfter = 3
	Accumulate(Merge(FromSlice(inner)), c.next, nil)
	c.wait(t)

	// Give the timed sources a moment to prove they stopped.
	time.Sleep(40 * time.Millisecond)
	assert.Len(t, c.snapshot(), 3)
	assert.Equal(t, 0, c.endCount())
}
