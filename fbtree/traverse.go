package fbtree

import (
	"fmt"
	"strings"
)

// WalkLevelOrder visits every node in level order (each depth fully, left to
// right, before the next). The walk stops early if fn returns false.
func (t *Tree[T]) WalkLevelOrder(fn func(value T) bool) {
	if t.root == nil {
		return
	}
	queue := []*node[T]{t.root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if !fn(current.data) {
			return
		}
		if current.left != nil {
			queue = append(queue, current.left, current.right)
		}
	}
}

// WalkInOrder visits every node in symmetric (in-order) order. The walk stops
// early if fn returns false.
func (t *Tree[T]) WalkInOrder(fn func(value T) bool) {
	walkInOrder(t.root, fn)
}

func walkInOrder[T any](n *node[T], fn func(value T) bool) bool {
	if n == nil {
		return true
	}
	if !walkInOrder(n.left, fn) {
		return false
	}
	if !fn(n.data) {
		return false
	}
	return walkInOrder(n.right, fn)
}

// Values returns every payload in level order. The slice length always equals
// Size for a consistent tree.
func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.size)
	t.WalkLevelOrder(func(v T) bool {
		values = append(values, v)
		return true
	})
	return values
}

// String renders the level-order traversal.
func (t *Tree[T]) String() string {
	if t.root == nil {
		return "(empty)"
	}
	var b strings.Builder
	first := true
	t.WalkLevelOrder(func(v T) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
		return true
	})
	return b.String()
}
