package accumulators

import (
	"github.com/stretchr/testify/mock"

	"github.com/elastiflow/accumulators/accumulate"
)

type consumer[T any] interface {
	consume(item T)
	end()
}

type mockConsumer[T any] struct {
	mock.Mock
}

func newMockConsumer[T any]() *mockConsumer[T] {
	return &mockConsumer[T]{}
}

func (m *mockConsumer[T]) consume(item T) {
	m.Called(item)
}

func (m *mockConsumer[T]) end() {
	m.Called()
}

// drive feeds a sequence into a consumer, one call per item plus one end
// call, and reports completion on the returned channel.
func drive[T any](s Sequence[T], c consumer[T]) <-chan struct{} {
	done := make(chan struct{})
	accumulate.Accumulate(s.Source(), func(acc any, step accumulate.Step[T]) any {
		if step.End() {
			c.end()
			close(done)
			return acc
		}
		c.consume(step.Value())
		return acc
	}, nil)
	return done
}
