// Package queue implements a FIFO queue on top of a singly linked list.
//
// The queue keeps references to both ends of the chain, so Enqueue and
// Dequeue are O(1) without walking to the tail.
package queue

import (
	"iter"

	"github.com/morningli/linked_lists/pkg/common"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// Queue is a first-in-first-out container.
//
// head and tail are either both nil or both set, and tail.next is always
// nil. A zero value Queue is empty and ready to use. Queue is not safe for
// concurrent use.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

var _ common.Clearer = (*Queue[int])(nil)

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Enqueue appends value at the back of the queue.
func (q *Queue[T]) Enqueue(value T) {
	n := &node[T]{value: value}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// Dequeue removes and returns the front value. ok is false if the queue is
// empty.
func (q *Queue[T]) Dequeue() (value T, ok bool) {
	n := q.head
	if n == nil {
		return value, false
	}
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil
	q.size--
	return n.value, true
}

// PeekFront returns the front value without removing it.
func (q *Queue[T]) PeekFront() (value T, ok bool) {
	if q.head == nil {
		return value, false
	}
	return q.head.value, true
}

// PeekFrontRef returns a pointer to the front value. It is invalidated by
// the next Dequeue or Clear.
func (q *Queue[T]) PeekFrontRef() (*T, bool) {
	if q.head == nil {
		return nil, false
	}
	return &q.head.value, true
}

func (q *Queue[T]) IsEmpty() bool {
	return q.head == nil
}

func (q *Queue[T]) Len() int {
	return q.size
}

// Clear drops every element iteratively.
func (q *Queue[T]) Clear() {
	n := q.head
	q.head, q.tail = nil, nil
	q.size = 0
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
}

// All returns the values from front to back without removing them.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Refs yields pointers to the stored values from front to back.
func (q *Queue[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := q.head; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// Drain dequeues values while iterating.
func (q *Queue[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := q.Dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (q *Queue[T]) Values() []T {
	values := make([]T, 0, q.size)
	for v := range q.All() {
		values = append(values, v)
	}
	return values
}

func (q *Queue[T]) String() string {
	return common.Format(q.All())
}
