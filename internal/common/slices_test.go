package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArity(t *testing.T) {
	assert.False(t, IsSingle([]string{}))
	assert.True(t, IsSingle([]string{"a"}))
	assert.False(t, IsMultiple([]string{"a"}))
	assert.True(t, IsMultiple([]string{"a", "b"}))
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]int{"c": 3, "a": 1, "b": 2}))
	assert.Empty(t, SortedKeys(map[string]int(nil)))
}

func TestSeen(t *testing.T) {
	s := Seen[string]{}
	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.True(t, s.Add("b"))
}

func TestDuplicates(t *testing.T) {
	assert.Equal(t, []string{"b", "a"}, Duplicates([]string{"a", "b", "b", "a", "b", "c"}))
	assert.Empty(t, Duplicates([]int{1, 2, 3}))
}
