// Package seq reads iter.Seq values in fixed-size chunks.
package seq

import "iter"

// Reader pulls values out of an iter.Seq into caller-provided buffers, so
// printing or batching a container does not need a slice per chunk.
type Reader[T any] struct {
	next func() (T, bool)
	stop func()
	done bool
}

// NewReader wraps seq. The caller must call Close if it stops reading before
// Read reports a short count.
func NewReader[T any](seq iter.Seq[T]) *Reader[T] {
	next, stop := iter.Pull(seq)
	return &Reader[T]{next: next, stop: stop}
}

// Read fills buf and returns how many values were written. A count smaller
// than len(buf) means the sequence is exhausted; later calls return 0.
func (r *Reader[T]) Read(buf []T) int {
	var head int
	for head < len(buf) && !r.done {
		value, ok := r.next()
		if !ok {
			r.done = true
			r.stop()
			break
		}
		buf[head] = value
		head++
	}
	return head
}

// Close releases the underlying iterator. It is safe to call more than once.
func (r *Reader[T]) Close() error {
	r.done = true
	r.stop()
	return nil
}

// Chunks returns the values of seq grouped into slices of at most size
// elements. Each yielded slice is freshly allocated.
func Chunks[T any](s iter.Seq[T], size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 {
			return
		}
		r := NewReader(s)
		defer r.Close()
		for {
			buf := make([]T, size)
			n := r.Read(buf)
			if n == 0 {
				return
			}
			if !yield(buf[:n]) || n < size {
				return
			}
		}
	}
}
