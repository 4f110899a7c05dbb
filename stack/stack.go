// Package stack implements a LIFO stack over a singly linked list.
package stack

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
)

var ErrEmptyStack = errors.New("stack is empty")

type node[T any] struct {
	data T
	next *node[T]
}

// Stack is last-in first-out. The zero value is an empty stack.
type Stack[T any] struct {
	top  *node[T]
	size int
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

func (s *Stack[T]) Size() int {
	return s.size
}

func (s *Stack[T]) IsEmpty() bool {
	return s.size == 0
}

// Push places element on top. O(1).
func (s *Stack[T]) Push(element T) {
	s.top = &node[T]{data: element, next: s.top}
	s.size++
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.top == nil {
		return zero, ErrEmptyStack
	}
	v := s.top.data
	s.top = s.top.next
	s.size--
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if s.top == nil {
		return zero, ErrEmptyStack
	}
	return s.top.data, nil
}

func (s *Stack[T]) Clear() {
	s.top = nil
	s.size = 0
}

// Clone returns an independent copy preserving order.
func (s *Stack[T]) Clone() *Stack[T] {
	out := New[T]()
	if s.top == nil {
		return out
	}
	out.top = &node[T]{data: s.top.data}
	out.size = s.size
	dst := out.top
	for src := s.top.next; src != nil; src = src.next {
		dst.next = &node[T]{data: src.data}
		dst = dst.next
	}
	return out
}

// Marshal writes size then elements top to bottom via gob.
func (s *Stack[T]) Marshal(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(s.size); err != nil {
		return err
	}
	for current := s.top; current != nil; current = current.next {
		if err := enc.Encode(current.data); err != nil {
			return err
		}
	}
	return nil
}

// Unmarshal clears the stack and rebuilds it from r. Elements were written
// top to bottom, so they relink in the same order.
func (s *Stack[T]) Unmarshal(r io.Reader) error {
	s.Clear()
	dec := gob.NewDecoder(r)
	var size int
	if err := dec.Decode(&size); err != nil {
		return fmt.Errorf("decode size: %w", err)
	}
	var top, bottom *node[T]
	for i := 0; i < size; i++ {
		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("decode element %d: %w", i, err)
		}
		n := &node[T]{data: v}
		if bottom == nil {
			top = n
		} else {
			bottom.next = n
		}
		bottom = n
	}
	s.top = top
	s.size = size
	return nil
}
