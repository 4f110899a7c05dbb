// Package slist implements a singly linked list.
package slist

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
)

var (
	ErrEmptyList       = errors.New("list is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
)

type node[T any] struct {
	data T
	next *node[T]
}

// List is a singly linked list. T is comparable to support Contains and
// Remove by value. The zero value is an empty list.
type List[T comparable] struct {
	head *node[T]
	size int
}

func New[T comparable]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Size() int {
	return l.size
}

func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// PushFront prepends element. O(1).
func (l *List[T]) PushFront(element T) {
	l.head = &node[T]{data: element, next: l.head}
	l.size++
}

// PushBack appends element. O(n); no tail pointer is kept.
func (l *List[T]) PushBack(element T) {
	n := &node[T]{data: element}
	if l.head == nil {
		l.head = n
	} else {
		current := l.head
		for current.next != nil {
			current = current.next
		}
		current.next = n
	}
	l.size++
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, error) {
	var zero T
	if l.head == nil {
		return zero, ErrEmptyList
	}
	v := l.head.data
	l.head = l.head.next
	l.size--
	return v, nil
}

// InsertAt places element at index.
func (l *List[T]) InsertAt(index int, element T) error {
	if index < 0 || index > l.size {
		return ErrIndexOutOfRange
	}
	if index == 0 {
		l.PushFront(element)
		return nil
	}
	current := l.head
	for i := 0; i < index-1; i++ {
		current = current.next
	}
	current.next = &node[T]{data: element, next: current.next}
	l.size++
	return nil
}

// RemoveAt deletes the element at index.
func (l *List[T]) RemoveAt(index int) error {
	if index < 0 || index >= l.size {
		return ErrIndexOutOfRange
	}
	if index == 0 {
		l.head = l.head.next
		l.size--
		return nil
	}
	current := l.head
	for i := 0; i < index-1; i++ {
		current = current.next
	}
	current.next = current.next.next
	l.size--
	return nil
}

// Remove deletes the first node holding value and reports whether one was
// found.
func (l *List[T]) Remove(value T) bool {
	if l.head == nil {
		return false
	}
	if l.head.data == value {
		l.head = l.head.next
		l.size--
		return true
	}
	current := l.head
	for current.next != nil {
		if current.next.data == value {
			current.next = current.next.next
			l.size--
			return true
		}
		current = current.next
	}
	return false
}

func (l *List[T]) Contains(value T) bool {
	for current := l.head; current != nil; current = current.next {
		if current.data == value {
			return true
		}
	}
	return false
}

func (l *List[T]) Clear() {
	l.head = nil
	l.size = 0
}

// Clone returns an independent copy preserving order.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()
	if l.head == nil {
		return out
	}
	out.head = &node[T]{data: l.head.data}
	out.size = l.size
	dst := out.head
	for src := l.head.next; src != nil; src = src.next {
		dst.next = &node[T]{data: src.data}
		dst = dst.next
	}
	return out
}

// Values returns the elements front to back.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for current := l.head; current != nil; current = current.next {
		values = append(values, current.data)
	}
	return values
}

// Marshal writes size then elements front to back via gob.
func (l *List[T]) Marshal(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(l.size); err != nil {
		return err
	}
	for current := l.head; current != nil; current = current.next {
		if err := enc.Encode(current.data); err != nil {
			return err
		}
	}
	return nil
}

// Unmarshal clears the list and rebuilds it from r, preserving order.
func (l *List[T]) Unmarshal(r io.Reader) error {
	l.Clear()
	dec := gob.NewDecoder(r)
	var size int
	if err := dec.Decode(&size); err != nil {
		return fmt.Errorf("decode size: %w", err)
	}
	var head, tail *node[T]
	for i := 0; i < size; i++ {
		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("decode element %d: %w", i, err)
		}
		n := &node[T]{data: v}
		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}
	l.head = head
	l.size = size
	return nil
}
