// Package stack implements a LIFO stack on top of a singly linked list.
package stack

import (
	"iter"

	"github.com/morningli/linked_lists/pkg/common"
)

type node[T any] struct {
	value T
	next  *node[T]
}

// Stack is a last-in-first-out container. Each node is owned by the one
// above it, and the top node is owned by the Stack.
//
// A zero value Stack is empty and ready to use. Stack is not safe for
// concurrent use.
type Stack[T any] struct {
	top  *node[T]
	size int
}

var _ common.Clearer = (*Stack[int])(nil)

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places value on top of the stack.
func (s *Stack[T]) Push(value T) {
	s.top = &node[T]{value: value, next: s.top}
	s.size++
}

// Pop removes and returns the top value. ok is false if the stack is empty.
func (s *Stack[T]) Pop() (value T, ok bool) {
	n := s.top
	if n == nil {
		return value, false
	}
	s.top = n.next
	n.next = nil
	s.size--
	return n.value, true
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (value T, ok bool) {
	if s.top == nil {
		return value, false
	}
	return s.top.value, true
}

// PeekRef returns a pointer to the top value so it can be changed in place.
// The pointer no longer refers to an element of s after the next Push, Pop
// or Clear.
func (s *Stack[T]) PeekRef() (*T, bool) {
	if s.top == nil {
		return nil, false
	}
	return &s.top.value, true
}

func (s *Stack[T]) IsEmpty() bool {
	return s.top == nil
}

func (s *Stack[T]) Len() int {
	return s.size
}

// Clear drops every element. The chain is unlinked one node at a time so
// long stacks are released without recursion.
func (s *Stack[T]) Clear() {
	n := s.top
	s.top = nil
	s.size = 0
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
}

// All returns the values from top to bottom without removing them.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := s.top; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Refs is like All but yields pointers to the stored values.
func (s *Stack[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := s.top; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// Drain pops values while iterating. Stopping early leaves the rest of the
// stack in place.
func (s *Stack[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := s.Pop()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Values returns a top-to-bottom copy of the stack contents.
func (s *Stack[T]) Values() []T {
	values := make([]T, 0, s.size)
	for v := range s.All() {
		values = append(values, v)
	}
	return values
}

func (s *Stack[T]) String() string {
	return common.Format(s.All())
}
