package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainNewestFirst(t *testing.T) {
	c := New[uint32]()
	c.Append(1)
	c.Append(2)
	c.Append(10)

	it := c.Iter()
	for _, want := range []uint32{10, 2, 1} {
		got, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, want, *got)
	}
	_, ok := it.Next()
	assert.False(t, ok)

	require.NotNil(t, c.Head())
	assert.Equal(t, uint32(10), *c.Head())
	assert.Equal(t, 3, c.Len())
}

func TestChainEmpty(t *testing.T) {
	c := New[string]()

	assert.Nil(t, c.Head())
	assert.Equal(t, 0, c.Len())
	_, ok := c.Iter().Next()
	assert.False(t, ok)
}

func TestChainIterRestartable(t *testing.T) {
	c := New[int]()
	c.Append(1)
	c.Append(2)

	first := c.Iter()
	v, _ := first.Next()
	assert.Equal(t, 2, *v)

	// a fresh iterator starts from the head again
	second := c.Iter()
	v, _ = second.Next()
	assert.Equal(t, 2, *v)
}

func TestChainInPlaceEdit(t *testing.T) {
	c := New[int]()
	c.Append(1)
	c.Append(2)

	head, ok := c.Iter().Next()
	require.True(t, ok)
	*head = 42

	assert.Equal(t, 42, *c.Head())
	assert.Equal(t, 2, c.Len())
}
