package accumulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReductions(t *testing.T) {
	tests := []struct {
		name  string
		input []int
		seed  int
		want  []int
	}{
		{
			name:  "running sum",
			input: []int{0, 1, 2, 3},
			seed:  0,
			want:  []int{0, 1, 3, 6},
		},
		{
			name:  "seed offsets every emission",
			input: []int{1, 1, 1},
			seed:  10,
			want:  []int{11, 12, 13},
		},
		{
			name:  "empty input emits nothing",
			input: []int{},
			seed:  0,
			want:  []int{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := newCapture[int]()
			Accumulate(Reductions(FromSlice(tt.input), func(acc, v int) int {
				return acc + v
			}, tt.seed), c.next, nil)
			c.wait(t)
			assert.Equal(t, tt.want, append([]int{}, c.snapshot()...))
			assert.Equal(t, 1, c.endCount())
		})
	}
}

func TestReductions_TypeChanging(t *testing.T) {
	t.Parallel()
	c := newCapture[string]()
	Accumulate(Reductions(FromSlice([]string{"a", "b", "c"}), func(acc string, v string) string {
		return acc + v
	}, ""), c.next, nil)
	c.wait(t)
	assert.Equal(t, []string{"a", "ab", "abc"}, c.snapshot())
}

// Each run of a Reductions source gets its own running value.
func TestReductions_IndependentRuns(t *testing.T) {
	t.Parallel()
	src := Reductions(FromSlice([]int{1, 2}), func(acc, v int) int {
		return acc + v
	}, 0)

	for i := 0; i < 2; i++ {
		c := newCapture[int]()
		Accumulate(src, c.next, nil)
		c.wait(t)
		assert.Equal(t, []int{1, 3}, c.snapshot())
	}
}
