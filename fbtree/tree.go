// Package fbtree implements a full binary tree: a binary tree in which every
// node has either zero or exactly two children. Values are unordered and may
// repeat; this is not a search tree. The fullness property is preserved by
// construction: insertion attaches leaves in pairs at the first free slot in
// level order, and removal always deletes a sibling pair together.
//
// The tree is not safe for concurrent use.
package fbtree

type node[T any] struct {
	data  T
	left  *node[T]
	right *node[T]
}

func (n *node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// Tree is a full binary tree over payload type T.
// The zero value is an empty tree ready to use.
type Tree[T comparable] struct {
	root *node[T]
	size int
}

// New returns an empty tree.
func New[T comparable]() *Tree[T] {
	return &Tree[T]{}
}

// Size returns the number of nodes in the tree.
func (t *Tree[T]) Size() int {
	return t.size
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree[T]) IsEmpty() bool {
	return t.size == 0
}

// Insert adds value to the tree. The first insert creates a lone root; every
// later insert walks the tree in level order to the first node with no
// children and attaches two leaves under it, both holding value. Attaching in
// pairs is what keeps every node at zero or two children.
func (t *Tree[T]) Insert(value T) {
	if t.root == nil {
		t.root = &node[T]{data: value}
		t.size = 1
		return
	}

	queue := []*node[T]{t.root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.isLeaf() {
			current.left = &node[T]{data: value}
			current.right = &node[T]{data: value}
			t.size += 2
			return
		}

		queue = append(queue, current.left, current.right)
	}
}

// Contains reports whether any node holds value. Level-order search, O(n).
func (t *Tree[T]) Contains(value T) bool {
	queue := []*node[T]{}
	if t.root != nil {
		queue = append(queue, t.root)
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current.data == value {
			return true
		}
		if current.left != nil {
			queue = append(queue, current.left, current.right)
		}
	}
	return false
}

type searchEntry[T any] struct {
	node   *node[T]
	parent *node[T]
}

// Remove deletes the first node (in level order) holding value and reports
// whether a match was found. An absent value is a no-op, not an error.
//
// A leaf target cannot be removed alone without leaving its parent with one
// child, so the target's sibling is removed with it. An internal target keeps
// its structural node: its payload is overwritten with that of the rightmost
// leaf (the leaf seen last in level order), and that leaf's pair is removed
// instead. The rightmost leaf's parent may be the target itself; the same
// unlink applies.
func (t *Tree[T]) Remove(value T) bool {
	if t.root == nil {
		return false
	}

	var target, parent *node[T]
	queue := []searchEntry[T]{{node: t.root}}
	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		if entry.node.data == value {
			target = entry.node
			parent = entry.parent
			break
		}
		if entry.node.left != nil {
			queue = append(queue,
				searchEntry[T]{node: entry.node.left, parent: entry.node},
				searchEntry[T]{node: entry.node.right, parent: entry.node})
		}
	}
	if target == nil {
		return false
	}

	if target.isLeaf() {
		if parent == nil {
			// the whole tree is one node
			t.root = nil
			t.size = 0
			return true
		}
		parent.left = nil
		parent.right = nil
		t.size -= 2
		return true
	}

	// Internal target: find the rightmost leaf and its parent, move its
	// payload into the target, then unlink that leaf pair.
	var rightmost, rightmostParent *node[T]
	queue = queue[:0]
	queue = append(queue, searchEntry[T]{node: t.root})
	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		if entry.node.isLeaf() {
			rightmost = entry.node
			rightmostParent = entry.parent
		} else {
			queue = append(queue,
				searchEntry[T]{node: entry.node.left, parent: entry.node},
				searchEntry[T]{node: entry.node.right, parent: entry.node})
		}
	}

	target.data = rightmost.data
	rightmostParent.left = nil
	rightmostParent.right = nil
	t.size -= 2
	return true
}

// IsFull verifies the structural invariant: every node has either zero or two
// children. An empty tree is vacuously full. Intended for tests and for
// callers that deserialized untrusted input.
func (t *Tree[T]) IsFull() bool {
	return isFullNode(t.root)
}

func isFullNode[T any](n *node[T]) bool {
	if n == nil {
		return true
	}
	if (n.left == nil) != (n.right == nil) {
		return false
	}
	return isFullNode(n.left) && isFullNode(n.right)
}

// Clear removes every node and resets the tree to empty.
func (t *Tree[T]) Clear() {
	t.root = nil
	t.size = 0
}

// Clone returns a deep copy: new nodes, same shape and values, no aliasing
// with the receiver.
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{
		root: cloneNode(t.root),
		size: t.size,
	}
}

func cloneNode[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		data:  n.data,
		left:  cloneNode(n.left),
		right: cloneNode(n.right),
	}
}

// Assign replaces the receiver's contents with a deep copy of src. The copy
// is built fully before the old structure is released, so the receiver is
// untouched if building the copy cannot complete.
func (t *Tree[T]) Assign(src *Tree[T]) {
	if t == src {
		return
	}
	newRoot := cloneNode(src.root)
	t.root = newRoot
	t.size = src.size
}
