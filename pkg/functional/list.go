// Package functional implements a persistent singly linked list.
//
// A List is an immutable value. Push and Pop return new lists and leave the
// receiver untouched, and lists derived from one another share their common
// nodes. Nodes are never modified after they are created, so sharing is safe
// without copying.
package functional

import (
	"iter"

	"github.com/morningli/linked_lists/pkg/common"
)

type node[T any] struct {
	value T
	next  *node[T]
	// size is the length of the chain starting at this node.
	size int
}

// List is a persistent LIFO list. The zero value is the empty list.
type List[T any] struct {
	head *node[T]
}

var _ common.Container = List[int]{}

func New[T any]() List[T] {
	return List[T]{}
}

// Of returns a list that iterates over values in the given order.
func Of[T any](values ...T) List[T] {
	var l List[T]
	for i := len(values) - 1; i >= 0; i-- {
		l = l.Push(values[i])
	}
	return l
}

// Push returns a new list with value in front of l.
func (l List[T]) Push(value T) List[T] {
	return List[T]{head: &node[T]{value: value, next: l.head, size: l.Len() + 1}}
}

// Pop returns the head value and the list that follows it. ok is false if l
// is empty.
func (l List[T]) Pop() (value T, rest List[T], ok bool) {
	if l.head == nil {
		return value, rest, false
	}
	return l.head.value, List[T]{head: l.head.next}, true
}

// Peek returns the head value.
func (l List[T]) Peek() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.head.value, true
}

// Tail returns the list after the head. The tail of the empty list is empty.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return l
	}
	return List[T]{head: l.head.next}
}

func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

func (l List[T]) Len() int {
	if l.head == nil {
		return 0
	}
	return l.head.size
}

// All returns the values from head to tail. The sequence can be iterated any
// number of times.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l List[T]) Values() []T {
	values := make([]T, 0, l.Len())
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

func (l List[T]) String() string {
	return common.Format(l.All())
}
