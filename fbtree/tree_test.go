package fbtree_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/kocubinski/containers/fbtree"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestInsertGrowth(t *testing.T) {
	tree := fbtree.New[int]()
	require.True(t, tree.IsEmpty())
	require.True(t, tree.IsFull())

	tree.Insert(1)
	require.Equal(t, 1, tree.Size())

	for i := 2; i <= 10; i++ {
		before := tree.Size()
		tree.Insert(i)
		require.Equal(t, before+2, tree.Size())
		require.True(t, tree.IsFull(), "fullness broken after inserting %d", i)
	}
}

func TestScenario(t *testing.T) {
	tree := fbtree.New[int]()

	tree.Insert(10)
	require.Equal(t, 1, tree.Size())
	require.True(t, tree.IsFull())

	tree.Insert(20)
	require.Equal(t, 3, tree.Size())
	require.True(t, tree.IsFull())
	require.Equal(t, []int{10, 20, 20}, tree.Values())

	tree.Insert(30)
	require.Equal(t, 5, tree.Size())
	require.True(t, tree.IsFull())

	require.True(t, tree.Remove(20))
	require.Equal(t, 3, tree.Size())
	require.True(t, tree.IsFull())

	tree.Clear()
	require.Equal(t, 0, tree.Size())
	require.True(t, tree.IsFull())
}

func TestContains(t *testing.T) {
	tree := fbtree.New[string]()
	require.False(t, tree.Contains("a"))

	tree.Insert("a")
	tree.Insert("b")
	tree.Insert("c")
	require.True(t, tree.Contains("a"))
	require.True(t, tree.Contains("b"))
	require.True(t, tree.Contains("c"))
	require.False(t, tree.Contains("d"))
}

func TestRemoveRootLeaf(t *testing.T) {
	tree := fbtree.New[int]()
	tree.Insert(7)
	require.True(t, tree.Remove(7))
	require.Equal(t, 0, tree.Size())
	require.True(t, tree.IsEmpty())
	require.True(t, tree.IsFull())
}

func TestRemoveLeafPair(t *testing.T) {
	tree := fbtree.New[int]()
	tree.Insert(1)
	tree.Insert(2) // children 2,2 under the root

	require.True(t, tree.Remove(2))
	require.Equal(t, 1, tree.Size())
	require.True(t, tree.IsFull())
	// the sibling went with it
	require.False(t, tree.Contains(2))
}

func TestRemoveInternal(t *testing.T) {
	tree := fbtree.New[int]()
	tree.Insert(1)
	tree.Insert(2)
	tree.Insert(3)
	// level order: 1, 2, 2, 3, 3 with the 3s under the left 2
	require.Equal(t, []int{1, 2, 2, 3, 3}, tree.Values())

	// the root is internal: its payload is replaced by the rightmost leaf
	require.True(t, tree.Remove(1))
	require.Equal(t, 3, tree.Size())
	require.True(t, tree.IsFull())
	require.False(t, tree.Contains(1))
	require.Equal(t, []int{3, 2, 2}, tree.Values())
}

func TestRemoveRightmostParentCoincidence(t *testing.T) {
	// The internal target is itself the parent of the tree's rightmost leaf
	// pair: its payload is overwritten first, then its own children unlink.
	tree := fbtree.New[int]()
	tree.Insert(1)
	tree.Insert(2)
	tree.Insert(3)
	// target is the left 2: parent of both 3s, and the rightmost leaf is its
	// right child
	require.True(t, tree.Remove(2))
	require.Equal(t, 3, tree.Size())
	require.True(t, tree.IsFull())
	require.Equal(t, []int{1, 3, 2}, tree.Values())
}

func TestRemoveMissing(t *testing.T) {
	tree := fbtree.New[int]()
	require.False(t, tree.Remove(1))

	tree.Insert(1)
	tree.Insert(2)
	require.False(t, tree.Remove(99))
	require.Equal(t, 3, tree.Size())
	require.Equal(t, []int{1, 2, 2}, tree.Values())
}

func TestCloneIndependence(t *testing.T) {
	original := fbtree.New[int]()
	for i := 1; i <= 5; i++ {
		original.Insert(i)
	}
	wantValues := original.Values()

	clone := original.Clone()
	require.Equal(t, original.Size(), clone.Size())
	require.Equal(t, wantValues, clone.Values())

	clone.Insert(100)
	clone.Remove(2)
	require.Equal(t, wantValues, original.Values(), "mutating the clone changed the original")

	original.Remove(1)
	require.True(t, clone.Contains(100))
}

func TestAssign(t *testing.T) {
	src := fbtree.New[int]()
	src.Insert(1)
	src.Insert(2)

	dst := fbtree.New[int]()
	dst.Insert(9)
	dst.Assign(src)
	require.Equal(t, src.Size(), dst.Size())
	require.Equal(t, src.Values(), dst.Values())

	dst.Insert(5)
	require.NotEqual(t, src.Size(), dst.Size())

	// self-assignment is a no-op
	src.Assign(src)
	require.Equal(t, 3, src.Size())
}

func TestWalkInOrder(t *testing.T) {
	tree := fbtree.New[int]()
	tree.Insert(1)
	tree.Insert(2)
	tree.Insert(3)
	// level order 1, 2, 2, 3, 3 -> in-order 3, 2, 3, 1, 2

	var got []int
	tree.WalkInOrder(func(v int) bool {
		got = append(got, v)
		return true
	})
	require.Equal(t, []int{3, 2, 3, 1, 2}, got)
}

func TestWalkStopsEarly(t *testing.T) {
	tree := fbtree.New[int]()
	for i := 1; i <= 6; i++ {
		tree.Insert(i)
	}

	var visited int
	tree.WalkLevelOrder(func(v int) bool {
		visited++
		return visited < 3
	})
	require.Equal(t, 3, visited)
}

func TestString(t *testing.T) {
	tree := fbtree.New[int]()
	require.Equal(t, "(empty)", tree.String())

	tree.Insert(1)
	tree.Insert(2)
	require.Equal(t, "1 2 2", tree.String())
}

func TestRenderDotGraph(t *testing.T) {
	tree := fbtree.New[int]()
	tree.Insert(1)
	tree.Insert(2)

	out := tree.RenderDotGraph()
	require.Contains(t, out, "digraph")
	require.Contains(t, out, `"1"`)
	require.Contains(t, out, `"l"`)
	require.Contains(t, out, `"r"`)
}

// TestTreeSims drives random insert/remove/find sequences against a value
// multiset and asserts the structural invariants after every operation.
func TestTreeSims(t *testing.T) {
	rapid.Check(t, testTreeSims)
}

func testTreeSims(t *rapid.T) {
	sim := &simMachine{
		tree:  fbtree.New[int](),
		model: map[int]int{},
	}
	t.Repeat(map[string]func(*rapid.T){
		"":       sim.check,
		"Insert": sim.insert,
		"Remove": sim.remove,
		"Find":   sim.find,
	})
}

type simMachine struct {
	tree *fbtree.Tree[int]
	// model counts payload occurrences
	model map[int]int
}

func (s *simMachine) insert(t *rapid.T) {
	v := rapid.IntRange(0, 50).Draw(t, "v")
	before := s.tree.Size()
	s.tree.Insert(v)
	if before == 0 {
		require.Equal(t, 1, s.tree.Size())
		s.model[v]++
	} else {
		require.Equal(t, before+2, s.tree.Size())
		s.model[v] += 2
	}
}

func (s *simMachine) remove(t *rapid.T) {
	v := rapid.IntRange(0, 50).Draw(t, "v")
	before := s.tree.Size()
	removed := s.tree.Remove(v)
	require.Equal(t, s.model[v] > 0, removed)
	if !removed {
		require.Equal(t, before, s.tree.Size())
		return
	}
	// removal takes out a sibling pair, or the lone root
	if before == 1 {
		require.Equal(t, 0, s.tree.Size())
	} else {
		require.Equal(t, before-2, s.tree.Size())
	}
	s.rebuildModel()
}

func (s *simMachine) find(t *rapid.T) {
	v := rapid.IntRange(0, 50).Draw(t, "v")
	require.Equal(t, s.model[v] > 0, s.tree.Contains(v))
}

func (s *simMachine) check(t *rapid.T) {
	require.True(t, s.tree.IsFull(), "fullness invariant broken: %s", s.tree)
	require.Equal(t, s.tree.Size(), len(s.tree.Values()), "size does not match reachable nodes")

	var total int
	for _, n := range s.model {
		total += n
	}
	require.Equal(t, total, s.tree.Size())
}

// rebuildModel recounts payloads from the tree. Removal of an internal node
// deletes the rightmost leaf pair rather than the matched payload's node, so
// the surviving multiset is simplest to recover by walking.
func (s *simMachine) rebuildModel() {
	model := map[int]int{}
	for _, v := range s.tree.Values() {
		model[v]++
	}
	s.model = model
}

func sortedValues(tree *fbtree.Tree[int64]) []int64 {
	vs := tree.Values()
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

func Example() {
	tree := fbtree.New[int]()
	for i := 1; i <= 3; i++ {
		tree.Insert(i)
	}
	fmt.Println(tree)
	fmt.Println(tree.Size(), tree.IsFull())
	// Output:
	// 1 2 2 3 3
	// 5 true
}
