package sinks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/elastiflow/accumulators/accumulate"
)

func TestToSlice(t *testing.T) {
	tests := []struct {
		name string
		src  accumulate.Source[int]
		want []int
	}{
		{
			name: "synchronous source",
			src:  accumulate.FromSlice([]int{1, 2, 3}),
			want: []int{1, 2, 3},
		},
		{
			name: "empty source",
			src:  accumulate.Empty[int](),
			want: []int{},
		},
		{
			name: "one-item source",
			src:  accumulate.Of(9),
			want: []int{9},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ToSlice(tt.src))
		})
	}
}

func TestToSlice_BlocksForAsyncSource(t *testing.T) {
	t.Parallel()
	src := accumulate.FromFunc[int](func(next accumulate.Next[int], acc any) {
		go func() {
			for i := 0; i < 3; i++ {
				time.Sleep(5 * time.Millisecond)
				acc = next(acc, accumulate.Item(i))
			}
			next(acc, accumulate.EndStep[int]())
		}()
	})
	assert.Equal(t, []int{0, 1, 2}, ToSlice(src))
}
