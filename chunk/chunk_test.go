package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChunkIsEmptyWithFixedCapacity(t *testing.T) {
	c := New[int](4)

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 4, c.Cap())
	assert.False(t, c.Full())
	assert.Equal(t, 1, c.Refs())
	assert.Empty(t, c.Items())
}

func TestAppendStopsAtCapacity(t *testing.T) {
	c := New[int](3)

	for i := 0; i < 3; i++ {
		require.True(t, c.Append(i), "append %d", i)
	}
	assert.True(t, c.Full())
	assert.False(t, c.Append(3), "append to a full chunk must fail")
	assert.Equal(t, []int{0, 1, 2}, c.Items())
	assert.Equal(t, 3, c.Cap())
}

func TestAppendInPlaceWhenExclusive(t *testing.T) {
	c := New[int](4)
	c.Append(1)
	before := c.buf

	c.Append(2)

	assert.Same(t, before, c.buf, "exclusive chunk must be mutated in place")
	assert.Equal(t, []int{1, 2}, c.Items())
}

func TestAppendClonesSharedBuffer(t *testing.T) {
	c := New[string](4)
	c.Append("a")
	c.Append("b")

	shared := c.Share()
	require.Equal(t, 2, c.Refs())

	require.True(t, c.Append("c"))

	assert.Equal(t, []string{"a", "b"}, shared.Items(), "earlier handle observed a later append")
	assert.Equal(t, []string{"a", "b", "c"}, c.Items())
	assert.Equal(t, 1, shared.Refs())
	assert.Equal(t, 1, c.Refs())
	assert.Equal(t, 4, c.Cap(), "clone must keep the fixed capacity")
}

func TestReleaseDropsReference(t *testing.T) {
	c := New[int](2)
	other := c.Share()
	require.True(t, c.Shared())

	other.Release()

	assert.False(t, c.Shared())
	assert.Equal(t, 0, other.Len())
	assert.Equal(t, 0, other.Refs())

	other.Release()
	assert.Equal(t, 1, c.Refs())
}

func TestSharedDuplicatesKeepCopyOnWrite(t *testing.T) {
	owner := New[int](4)
	owner.Append(1)
	held := []Chunk[int]{owner.Share()}

	for _, c := range held {
		dup := c.Share()
		dup.Release()
	}
	require.Equal(t, 2, owner.Refs(), "share/release pair must leave the count unchanged")

	owner.Append(2)

	assert.Equal(t, []int{1}, held[0].Items())
	assert.Equal(t, []int{1, 2}, owner.Items())
}

func TestFromSliceCopiesInput(t *testing.T) {
	src := []int{1, 2, 3}
	c := FromSlice(src)
	src[0] = 100

	assert.Equal(t, []int{1, 2, 3}, c.Items())
	assert.True(t, c.Full())
	assert.Equal(t, 2, c.At(1))
}

func TestItemsCannotGrowIntoBuffer(t *testing.T) {
	c := New[int](4)
	c.Append(1)

	items := c.Items()
	_ = append(items, 99)
	c.Append(2)

	assert.Equal(t, []int{1, 2}, c.Items())
}

func TestZeroChunk(t *testing.T) {
	var c Chunk[int]

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.Cap())
	assert.True(t, c.Full())
	assert.False(t, c.Append(1))
	assert.Nil(t, c.Items())
	assert.Equal(t, 0, c.Share().Refs())
}

func TestConcatAndTotalLen(t *testing.T) {
	chunks := []Chunk[int]{FromSlice([]int{1, 2}), {}, FromSlice([]int{3})}

	assert.Equal(t, 3, TotalLen(chunks))
	assert.Equal(t, []int{1, 2, 3}, Concat(chunks))
	assert.Empty(t, Concat[int](nil))

	ReleaseAll(chunks)
	assert.Equal(t, 0, TotalLen(chunks))
}
