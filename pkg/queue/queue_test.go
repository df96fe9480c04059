package queue

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// dequeueAll checks the ends of the chain agree on emptiness after every step.
func dequeueAll[T any](t *testing.T, q *Queue[T]) []T {
	t.Helper()
	var out []T
	for {
		v, ok := q.Dequeue()
		require.Equal(t, q.head == nil, q.tail == nil)
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

func TestQueue(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		var q Queue[int]
		require.True(t, q.IsEmpty())

		_, ok := q.Dequeue()
		require.False(t, ok)
		_, ok = q.PeekFront()
		require.False(t, ok)
		_, ok = q.PeekFrontRef()
		require.False(t, ok)
	})

	t.Run("scenario", func(t *testing.T) {
		q := New[int]()
		q.Enqueue(1)
		q.Enqueue(2)

		v, ok := q.Dequeue()
		require.True(t, ok)
		require.Equal(t, 1, v)

		q.Enqueue(3)
		v, ok = q.Dequeue()
		require.True(t, ok)
		require.Equal(t, 2, v)
		v, ok = q.Dequeue()
		require.True(t, ok)
		require.Equal(t, 3, v)

		_, ok = q.Dequeue()
		require.False(t, ok)
		require.Nil(t, q.head)
		require.Nil(t, q.tail)
	})

	t.Run("basics", func(t *testing.T) {
		q := New[int]()
		q.Enqueue(1)
		q.Enqueue(2)
		q.Enqueue(3)

		v, _ := q.Dequeue()
		require.Equal(t, 1, v)
		v, _ = q.Dequeue()
		require.Equal(t, 2, v)

		// refill after partial removal
		q.Enqueue(4)
		q.Enqueue(5)
		require.Equal(t, 3, q.Len())
		require.Equal(t, []int{3, 4, 5}, dequeueAll(t, q))
		require.Equal(t, 0, q.Len())
	})

	t.Run("fifo", func(t *testing.T) {
		q := New[int]()
		want := make([]int, 0, 100)
		for i := range 100 {
			q.Enqueue(i)
			want = append(want, i)
		}
		require.Equal(t, want, dequeueAll(t, q))
	})

	t.Run("tail_next_is_nil", func(t *testing.T) {
		q := New[int]()
		for i := range 10 {
			q.Enqueue(i)
			require.Nil(t, q.tail.next)
		}
	})

	t.Run("peek_front_ref", func(t *testing.T) {
		q := New[int]()
		q.Enqueue(1)
		q.Enqueue(2)

		p, ok := q.PeekFrontRef()
		require.True(t, ok)
		*p = 42

		v, _ := q.PeekFront()
		require.Equal(t, 42, v)
		v, _ = q.Dequeue()
		require.Equal(t, 42, v)
	})
}

func TestQueueIteration(t *testing.T) {
	build := func() *Queue[int] {
		q := New[int]()
		for _, v := range []int{1, 2, 3} {
			q.Enqueue(v)
		}
		return q
	}

	t.Run("all", func(t *testing.T) {
		q := build()
		require.Equal(t, []int{1, 2, 3}, q.Values())
		require.Equal(t, []int{1, 2, 3}, q.Values())
		require.Equal(t, "[1 2 3]", q.String())
	})

	t.Run("refs", func(t *testing.T) {
		q := build()
		for p := range q.Refs() {
			*p *= 2
		}
		require.Equal(t, []int{2, 4, 6}, dequeueAll(t, q))
	})

	t.Run("drain", func(t *testing.T) {
		q := build()
		var got []int
		for v := range q.Drain() {
			got = append(got, v)
			if v == 2 {
				break
			}
		}
		require.Equal(t, []int{1, 2}, got)
		require.Equal(t, []int{3}, q.Values())

		for range q.Drain() {
		}
		require.True(t, q.IsEmpty())
		require.Nil(t, q.tail)
	})
}

func TestQueueClearLong(t *testing.T) {
	q := New[int]()
	for i := range 100_000 {
		q.Enqueue(i)
	}
	q.Clear()
	require.True(t, q.IsEmpty())
	require.Nil(t, q.tail)

	q.Enqueue(7)
	v, ok := q.PeekFront()
	require.True(t, ok)
	require.Equal(t, 7, v)
}

func BenchmarkQueue(b *testing.B) {
	for i := 0; i < b.N; i++ {
		var q Queue[int]
		for i := range 1000 {
			q.Enqueue(i)
		}
		for !q.IsEmpty() {
			q.Dequeue()
		}
	}
}
