// Package adapter exposes the typed containers through the untyped
// interfaces of github.com/emirpasic/gods, so they can be handed to code
// written against stacks.Stack, queues.Queue or containers.Container.
//
// Values passed in must have dynamic type T; anything else panics the same
// way a failed type assertion does.
package adapter

import (
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/queues"
	"github.com/emirpasic/gods/stacks"

	"github.com/morningli/linked_lists/pkg/queue"
	"github.com/morningli/linked_lists/pkg/stack"
)

var (
	_ stacks.Stack         = (*Stack[int])(nil)
	_ queues.Queue         = (*Queue[int])(nil)
	_ containers.Container = (*Stack[int])(nil)
	_ containers.Container = (*Queue[int])(nil)
)

// Stack adapts a *stack.Stack[T] to stacks.Stack.
type Stack[T any] struct {
	s *stack.Stack[T]
}

// NewStack wraps s. A nil s gets a fresh stack.
func NewStack[T any](s *stack.Stack[T]) *Stack[T] {
	if s == nil {
		s = stack.New[T]()
	}
	return &Stack[T]{s: s}
}

// Unwrap returns the underlying typed stack.
func (a *Stack[T]) Unwrap() *stack.Stack[T] { return a.s }

func (a *Stack[T]) Push(value interface{}) {
	a.s.Push(value.(T))
}

func (a *Stack[T]) Pop() (value interface{}, ok bool) {
	v, ok := a.s.Pop()
	if !ok {
		return nil, false
	}
	return v, true
}

func (a *Stack[T]) Peek() (value interface{}, ok bool) {
	v, ok := a.s.Peek()
	if !ok {
		return nil, false
	}
	return v, true
}

func (a *Stack[T]) Empty() bool { return a.s.IsEmpty() }

func (a *Stack[T]) Size() int { return a.s.Len() }

func (a *Stack[T]) Clear() { a.s.Clear() }

// Values returns the elements from top to bottom.
func (a *Stack[T]) Values() []interface{} {
	return boxed(a.s.Values())
}

func (a *Stack[T]) String() string {
	return "LinkedListStack\n" + a.s.String()
}

// Queue adapts a *queue.Queue[T] to queues.Queue.
type Queue[T any] struct {
	q *queue.Queue[T]
}

// NewQueue wraps q. A nil q gets a fresh queue.
func NewQueue[T any](q *queue.Queue[T]) *Queue[T] {
	if q == nil {
		q = queue.New[T]()
	}
	return &Queue[T]{q: q}
}

func (a *Queue[T]) Unwrap() *queue.Queue[T] { return a.q }

func (a *Queue[T]) Enqueue(value interface{}) {
	a.q.Enqueue(value.(T))
}

func (a *Queue[T]) Dequeue() (value interface{}, ok bool) {
	v, ok := a.q.Dequeue()
	if !ok {
		return nil, false
	}
	return v, true
}

func (a *Queue[T]) Peek() (value interface{}, ok bool) {
	v, ok := a.q.PeekFront()
	if !ok {
		return nil, false
	}
	return v, true
}

func (a *Queue[T]) Empty() bool { return a.q.IsEmpty() }

func (a *Queue[T]) Size() int { return a.q.Len() }

func (a *Queue[T]) Clear() { a.q.Clear() }

// Values returns the elements from front to back.
func (a *Queue[T]) Values() []interface{} {
	return boxed(a.q.Values())
}

func (a *Queue[T]) String() string {
	return "LinkedListQueue\n" + a.q.String()
}

func boxed[T any](values []T) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
