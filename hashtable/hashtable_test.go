package hashtable_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/kocubinski/containers/hashtable"
	"github.com/stretchr/testify/require"
)

func TestInsertGetRemove(t *testing.T) {
	ht := hashtable.New[string, int]()
	ht.Insert("a", 1)
	ht.Insert("b", 2)
	require.Equal(t, 2, ht.Size())

	v, ok := ht.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	// upsert
	ht.Insert("a", 10)
	require.Equal(t, 2, ht.Size())
	v, _ = ht.Get("a")
	require.Equal(t, 10, v)

	require.True(t, ht.Remove("a"))
	require.False(t, ht.Remove("a"))
	require.False(t, ht.Contains("a"))
	require.True(t, ht.Contains("b"))
	require.Equal(t, 1, ht.Size())
}

func TestRehash(t *testing.T) {
	ht := hashtable.NewWithBuckets[int, int](2)
	const n = 1000
	for i := 0; i < n; i++ {
		ht.Insert(i, i*2)
	}
	require.Equal(t, n, ht.Size())
	require.LessOrEqual(t, ht.LoadFactor(), 0.76)
	for i := 0; i < n; i++ {
		v, ok := ht.Get(i)
		require.True(t, ok, "key %d lost in rehash", i)
		require.Equal(t, i*2, v)
	}
}

func TestWalk(t *testing.T) {
	ht := hashtable.New[string, int]()
	want := map[string]int{}
	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("k%d", i)
		ht.Insert(key, i)
		want[key] = i
	}

	got := map[string]int{}
	ht.Walk(func(k string, v int) bool {
		got[k] = v
		return true
	})
	require.Equal(t, want, got)

	var visited int
	ht.Walk(func(string, int) bool {
		visited++
		return visited < 5
	})
	require.Equal(t, 5, visited)
}

func TestClear(t *testing.T) {
	ht := hashtable.New[string, string]()
	ht.Insert("a", "b")
	ht.Clear()
	require.True(t, ht.IsEmpty())
	require.False(t, ht.Contains("a"))
}

func TestMarshalRoundTrip(t *testing.T) {
	ht := hashtable.New[string, int]()
	for i := 0; i < 50; i++ {
		ht.Insert(fmt.Sprintf("key-%d", i), i)
	}

	var buf bytes.Buffer
	require.NoError(t, ht.Marshal(&buf))

	out := hashtable.New[string, int]()
	out.Insert("stale", 1)
	require.NoError(t, out.Unmarshal(&buf))
	require.Equal(t, ht.Size(), out.Size())
	require.False(t, out.Contains("stale"))

	ht.Walk(func(k string, v int) bool {
		got, ok := out.Get(k)
		require.True(t, ok)
		require.Equal(t, v, got)
		return true
	})
}

func TestUnmarshalTruncated(t *testing.T) {
	ht := hashtable.New[string, int]()
	ht.Insert("a", 1)
	ht.Insert("b", 2)
	var buf bytes.Buffer
	require.NoError(t, ht.Marshal(&buf))

	out := hashtable.New[string, int]()
	require.Error(t, out.Unmarshal(bytes.NewReader(buf.Bytes()[:buf.Len()-3])))
	require.Equal(t, 0, out.Size())
}
