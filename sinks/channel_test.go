package sinks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elastiflow/accumulators/accumulate"
)

func TestToChannel(t *testing.T) {
	t.Parallel()
	ch := make(chan int, 3)
	ToChannel(accumulate.FromSlice([]int{1, 2, 3}), ch)

	var got []int
	for v := range ch {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestToChannel_ClosesOnEmptySource(t *testing.T) {
	t.Parallel()
	ch := make(chan string)
	go ToChannel(accumulate.Empty[string](), ch)

	_, open := <-ch
	assert.False(t, open, "channel must be closed on the end step")
}
