package kv

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorage(t *testing.T) {
	getHeaders := func() *Storage {
		return NewFolded().
			Add("Foo", "bar").
			Add("Hello", "World").
			Add("Lorem", "ipsum").
			Add("hello", "Pavlo")
	}

	t.Run("latest wins", func(t *testing.T) {
		kv := New().Add("k", "1").Add("k", "2")
		require.Equal(t, "2", kv.Value("k"))
		require.Equal(t, 2, kv.Len())
		require.Equal(t, []string{"2", "1"}, slices.Collect(kv.Values("k")))
	})

	t.Run("delete", func(t *testing.T) {
		kv := New().Add("k", "1").Add("k", "2").Delete("k")
		_, found := kv.Get("k")
		require.False(t, found)
		require.True(t, kv.Empty())
	})

	t.Run("delete folded", func(t *testing.T) {
		kv := getHeaders().Delete("HELLO")

		want := []Pair{
			{"Foo", "bar"},
			{"Lorem", "ipsum"},
		}

		require.Equal(t, want, kv.Expose())
		require.False(t, kv.Has("hello"))
	})

	t.Run("delete missing", func(t *testing.T) {
		kv := getHeaders().Delete("Nonexistent")
		require.Equal(t, 4, kv.Len())
	})

	t.Run("case sensitivity", func(t *testing.T) {
		require.Equal(t, "Pavlo", getHeaders().Value("HELLO"))

		params := New().Add("x", "1")
		require.False(t, params.Has("X"))
		require.Equal(t, "default", params.ValueOr("X", "default"))
	})

	t.Run("pairs in insertion order", func(t *testing.T) {
		var keys []string
		for key := range getHeaders().Pairs() {
			keys = append(keys, key)
		}

		require.Equal(t, []string{"Foo", "Hello", "Lorem", "hello"}, keys)
	})

	t.Run("keys", func(t *testing.T) {
		require.Equal(t, []string{"Foo", "Hello", "Lorem"}, getHeaders().Keys())
	})

	t.Run("clear", func(t *testing.T) {
		kv := getHeaders().Clear()
		require.True(t, kv.Empty())
		require.False(t, kv.Has("foo"))
	})

	t.Run("clone", func(t *testing.T) {
		orig := getHeaders()
		cloned := orig.Clone()
		orig.Clear()
		require.Equal(t, 4, cloned.Len())
		require.Equal(t, "Pavlo", cloned.Value("HELLO"))
	})
}
