// Package queue implements a FIFO queue over a singly linked list.
package queue

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
)

var ErrEmptyQueue = errors.New("queue is empty")

type node[T any] struct {
	data T
	next *node[T]
}

// Queue is first-in first-out. The zero value is an empty queue.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Size() int {
	return q.size
}

func (q *Queue[T]) IsEmpty() bool {
	return q.size == 0
}

// Enqueue appends element to the back. O(1).
func (q *Queue[T]) Enqueue(element T) {
	n := &node[T]{data: element}
	if q.tail != nil {
		q.tail.next = n
	} else {
		q.head = n
	}
	q.tail = n
	q.size++
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.head == nil {
		return zero, ErrEmptyQueue
	}
	v := q.head.data
	q.head = q.head.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--
	return v, nil
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	var zero T
	if q.head == nil {
		return zero, ErrEmptyQueue
	}
	return q.head.data, nil
}

func (q *Queue[T]) Clear() {
	q.head = nil
	q.tail = nil
	q.size = 0
}

// Clone returns an independent copy preserving order.
func (q *Queue[T]) Clone() *Queue[T] {
	out := New[T]()
	for current := q.head; current != nil; current = current.next {
		out.Enqueue(current.data)
	}
	return out
}

// Marshal writes size then elements front to back via gob.
func (q *Queue[T]) Marshal(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(q.size); err != nil {
		return err
	}
	for current := q.head; current != nil; current = current.next {
		if err := enc.Encode(current.data); err != nil {
			return err
		}
	}
	return nil
}

// Unmarshal clears the queue and rebuilds it from r, preserving order.
func (q *Queue[T]) Unmarshal(r io.Reader) error {
	q.Clear()
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
		out.Enqueue(v)
	}
	*q = *out
	return nil
}
