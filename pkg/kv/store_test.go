package kv

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_GetSet(t *testing.T) {
	s := New[string, string]()

	_, existed := s.Set("textAlign", "LEFT")
	assert.False(t, existed)

	prev, existed := s.Set("textAlign", "RIGHT")
	assert.True(t, existed)
	assert.Equal(t, "LEFT", prev)

	val, ok := s.Get("textAlign")
	assert.True(t, ok)
	assert.Equal(t, "RIGHT", val)

	_, ok = s.Get("missing")
	assert.False(t, ok)
}

func TestStore_Delete(t *testing.T) {
	s := New[string, string]()
	s.Set("key", "value")

	prev, ok := s.Delete("key")
	assert.True(t, ok)
	assert.Equal(t, "value", prev)

	_, ok = s.Get("key")
	assert.False(t, ok)

	_, ok = s.Delete("key")
	assert.False(t, ok)
}

func TestStore_Replace(t *testing.T) {
	s := New[string, int]()
	s.Set("stale", 9)

	s.Replace(map[string]int{"a": 1, "b": 2})

	assert.Equal(t, 2, s.Len())
	_, ok := s.Get("stale")
	assert.False(t, ok)
	assert.ElementsMatch(t, []string{"a", "b"}, s.Keys())
}

func TestStore_Snapshot_is_a_copy(t *testing.T) {
	s := New[string, int]()
	s.Set("a", 1)

	snap := s.Snapshot()
	snap["a"] = 100
	snap["b"] = 2

	val, _ := s.Get("a")
	assert.Equal(t, 1, val)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Concurrent(t *testing.T) {
	s := New[int, int]()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s.Set(n, n*2)
			_, _ = s.Get(n)
			_ = s.Snapshot()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
