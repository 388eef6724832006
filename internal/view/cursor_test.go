package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursorMoveBy(t *testing.T) {
	const length = 100

	c := NewCursor()
	c = c.MoveBy(5, length)
	assert.Equal(t, Cursor{Anchor: 5, Extent: 1}, c)

	c = c.MoveBy(-2, length)
	assert.Equal(t, Cursor{Anchor: 3, Extent: 1}, c)

	// Clamped at the start rather than erring.
	c = c.MoveBy(-50, length)
	assert.Equal(t, Cursor{Anchor: 0, Extent: 1}, c)

	// Clamped at the last byte.
	c = c.MoveBy(1000, length)
	assert.Equal(t, Cursor{Anchor: 99, Extent: 1}, c)
}

func TestCursorMoveShrinksExtentToFit(t *testing.T) {
	c := Cursor{Anchor: 0, Extent: 8}
	c = c.MoveBy(95, 100)
	assert.Equal(t, uint64(95), c.Anchor)
	assert.Equal(t, uint64(5), c.Extent)
}

func TestCursorGrowShrink(t *testing.T) {
	c := NewCursor()
	c = c.Grow(100)
	c = c.Grow(100)
	assert.Equal(t, uint64(3), c.Extent)

	c = c.Shrink()
	assert.Equal(t, uint64(2), c.Extent)
	c = c.Shrink()
	c = c.Shrink()
	c = c.Shrink()
	assert.Equal(t, uint64(1), c.Extent, "extent never drops below one")
}

func TestCursorGrowClampedToLength(t *testing.T) {
	c := NewCursor()
	for i := 0; i < 3; i++ {
		c = c.Grow(2)
	}
	assert.Equal(t, uint64(2), c.Extent, "growth stops at the end of a 2-byte source")
}

func TestCursorSet(t *testing.T) {
	c := NewCursor().Set(50, 10, 100)
	assert.Equal(t, Cursor{Anchor: 50, Extent: 10}, c)

	c = c.Set(200, 10, 100)
	assert.Equal(t, Cursor{Anchor: 99, Extent: 1}, c)

	c = c.Set(95, 10, 100)
	assert.Equal(t, Cursor{Anchor: 95, Extent: 5}, c)

	c = c.Set(4, 0, 100)
	assert.Equal(t, Cursor{Anchor: 4, Extent: 1}, c)
}

func TestCursorSkip(t *testing.T) {
	c := Cursor{Anchor: 7, Extent: 3}
	c = c.SkipForward(100)
	assert.Equal(t, Cursor{Anchor: 10, Extent: 3}, c)
	c = c.SkipForward(100)
	assert.Equal(t, Cursor{Anchor: 13, Extent: 3}, c)

	c = c.SkipBack(100)
	c = c.SkipBack(100)
	c = c.SkipBack(100)
	c = c.SkipBack(100)
	assert.Equal(t, Cursor{Anchor: 1, Extent: 3}, c)
	c = c.SkipBack(100)
	assert.Equal(t, Cursor{Anchor: 0, Extent: 3}, c)
}

func TestCursorEmptySource(t *testing.T) {
	c := NewCursor()
	c = c.MoveBy(10, 0)
	assert.Equal(t, NewCursor(), c)
	c = c.Grow(0)
	assert.Equal(t, NewCursor(), c)
	c = c.Set(42, 5, 0)
	assert.Equal(t, NewCursor(), c)
}

func TestCursorContains(t *testing.T) {
	c := Cursor{Anchor: 10, Extent: 5}
	assert.False(t, c.Contains(9))
	assert.True(t, c.Contains(10))
	assert.True(t, c.Contains(14))
	assert.False(t, c.Contains(15))
}
