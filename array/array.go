// Package array implements a dynamic array with doubling growth.
package array

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
)

var ErrIndexOutOfRange = errors.New("index out of range")

// Array is a growable sequence. The zero value is empty and ready to use.
type Array[T any] struct {
	data []T
	size int
}

// New returns an array with the given initial capacity.
func New[T any](capacity int) *Array[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Array[T]{data: make([]T, capacity)}
}

func (a *Array[T]) Size() int {
	return a.size
}

func (a *Array[T]) IsEmpty() bool {
	return a.size == 0
}

func (a *Array[T]) grow() {
	newCap := 1
	if len(a.data) > 0 {
		newCap = len(a.data) * 2
	}
	newData := make([]T, newCap)
	copy(newData, a.data[:a.size])
	a.data = newData
}

// PushBack appends element, doubling capacity when needed.
func (a *Array[T]) PushBack(element T) {
	if a.size >= len(a.data) {
		a.grow()
	}
	a.data[a.size] = element
	a.size++
}

// Insert places element at index, shifting later elements right.
func (a *Array[T]) Insert(index int, element T) error {
	if index < 0 || index > a.size {
		return ErrIndexOutOfRange
	}
	if a.size >= len(a.data) {
		a.grow()
	}
	copy(a.data[index+1:a.size+1], a.data[index:a.size])
	a.data[index] = element
	a.size++
	return nil
}

// RemoveAt deletes the element at index, shifting later elements left.
func (a *Array[T]) RemoveAt(index int) error {
	if index < 0 || index >= a.size {
		return ErrIndexOutOfRange
	}
	copy(a.data[index:a.size-1], a.data[index+1:a.size])
	var zero T
	a.data[a.size-1] = zero // release the vacated slot for the GC
	a.size--
	return nil
}

func (a *Array[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= a.size {
		return zero, ErrIndexOutOfRange
	}
	return a.data[index], nil
}

func (a *Array[T]) Set(index int, element T) error {
	if index < 0 || index >= a.size {
		return ErrIndexOutOfRange
	}
	a.data[index] = element
	return nil
}

func (a *Array[T]) Clear() {
	a.data = nil
	a.size = 0
}

// Clone returns an independent copy.
func (a *Array[T]) Clone() *Array[T] {
	data := make([]T, len(a.data))
	copy(data, a.data[:a.size])
	return &Array[T]{data: data, size: a.size}
}

// Marshal writes size then elements via gob.
func (a *Array[T]) Marshal(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(a.size); err != nil {
		return err
	}
	for i := 0; i < a.size; i++ {
		if err := enc.Encode(a.data[i]); err != nil {
			return err
		}
	}
	return nil
}

// Unmarshal clears the array and rebuilds it from r.
func (a *Array[T]) Unmarshal(r io.Reader) error {
	a.Clear()
	dec := gob.NewDecoder(r)
	var size int
	if err := dec.Decode(&size); err != nil {
		return fmt.Errorf("decode size: %w", err)
	}
	data := make([]T, size)
	for i := 0; i < size; i++ {
		if err := dec.Decode(&data[i]); err != nil {
			return fmt.Errorf("decode element %d: %w", i, err)
		}
	}
	a.data = data
	a.size = size
	return nil
}
