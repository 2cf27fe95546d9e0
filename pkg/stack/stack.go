// Package stack is a LIFO stack backed by a singly linked list.
package stack

import "errors"

var ErrEmpty = errors.New("stack is empty")

type element[T any] struct {
	value    T
	previous *element[T]
}

// Stack is not safe for concurrent use.
type Stack[T any] struct {
	top  *element[T]
	size int
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) IsEmpty() bool {
	return s.top == nil
}

func (s *Stack[T]) Size() int {
	return s.size
}

func (s *Stack[T]) Push(v T) {
	s.top = &element[T]{value: v, previous: s.top}
	s.size++
}

func (s *Stack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmpty
	}
	v := s.top.value
	s.top = s.top.previous
	s.size--
	return v, nil
}

// Top returns the last pushed value without removing it.
func (s *Stack[T]) Top() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmpty
	}
	return s.top.value, nil
}
