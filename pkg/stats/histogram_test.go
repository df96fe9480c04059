package stats

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHistogramRecorder(t *testing.T) {
	t.Run("summaries", func(t *testing.T) {
		r := NewHistogramRecorder()
		for i := 1; i <= 100; i++ {
			r.Record("push", time.Duration(i)*time.Microsecond)
		}
		r.Record("pop", 0)

		s := r.Summaries()
		require.Len(t, s, 2)
		require.Equal(t, "pop", s[0].Op)
		require.Equal(t, int64(1), s[0].Count)
		require.Equal(t, "push", s[1].Op)
		require.Equal(t, int64(100), s[1].Count)

		p99 := s[1].Percentiles[99]
		require.InDelta(t, 99_000, p99, 1_000)
		require.GreaterOrEqual(t, s[1].Max, p99)
	})

	t.Run("rotate_keeps_history_until_overwritten", func(t *testing.T) {
		r := NewHistogramRecorder()
		r.Record("enqueue", time.Millisecond)
		r.Rotate()
		r.Record("enqueue", time.Millisecond)

		s := r.Summaries()
		require.Len(t, s, 1)
		require.Equal(t, int64(2), s[0].Count)
	})

	t.Run("concurrent", func(t *testing.T) {
		r := NewHistogramRecorder()
		var wg sync.WaitGroup
		for w := 0; w < 4; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 250; i++ {
					r.Record("dequeue", time.Microsecond)
				}
			}()
		}
		wg.Wait()
		require.Equal(t, int64(1000), r.Summaries()[0].Count)
		r.Report()
	})

	t.Run("out_of_range_is_dropped", func(t *testing.T) {
		r := NewHistogramRecorder()
		r.Record("pop", time.Minute)
		require.Equal(t, int64(0), r.Summaries()[0].Count)
	})

	t.Run("percentile_key", func(t *testing.T) {
		require.Equal(t, "p99_ns", percentileKey(99))
		require.Equal(t, "p99.9_ns", percentileKey(99.9))
	})
}
