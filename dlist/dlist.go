// Package dlist implements a doubly linked list.
package dlist

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
)

var ErrEmptyList = errors.New("list is empty")

type node[T any] struct {
	data T
	prev *node[T]
	next *node[T]
}

// List is a doubly linked list with head and tail pointers. The zero value is
// an empty list.
type List[T comparable] struct {
	head *node[T]
	tail *node[T]
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
	n := &node[T]{data: element, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// PushBack appends element. O(1).
func (l *List[T]) PushBack(element T) {
	n := &node[T]{data: element, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
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
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	l.size--
	return v, nil
}

// PopBack removes and returns the last element.
func (l *List[T]) PopBack() (T, error) {
	var zero T
	if l.tail == nil {
		return zero, ErrEmptyList
	}
	v := l.tail.data
	l.tail = l.tail.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.size--
	return v, nil
}

// Remove deletes the first node holding value and reports whether one was
// found.
func (l *List[T]) Remove(value T) bool {
	for current := l.head; current != nil; current = current.next {
		if current.data != value {
			continue
		}
		if current.prev != nil {
			current.prev.next = current.next
		} else {
			l.head = current.next
		}
		if current.next != nil {
			current.next.prev = current.prev
		} else {
			l.tail = current.prev
		}
		l.size--
		return true
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
	l.tail = nil
	l.size = 0
}

// Clone returns an independent copy preserving order.
func (l *List[T]) Clone() *List[T] {
	out := New[T]()
	for current := l.head; current != nil; current = current.next {
		out.PushBack(current.data)
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

// ValuesReverse returns the elements back to front, walking the prev links.
func (l *List[T]) ValuesReverse() []T {
	values := make([]T, 0, l.size)
	for current := l.tail; current != nil; current = current.prev {
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
	out := New[T]()
	for i := 0; i < size; i++ {
		var v T
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("decode element %d: %w", i, err)
		}
		out.PushBack(v)
	}
	*l = *out
	return nil
}
