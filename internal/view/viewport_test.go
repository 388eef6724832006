package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportVisibleRange(t *testing.T) {
	v := NewViewport(16, 10)

	start, end := v.VisibleRange(1000)
	assert.Equal(t, uint64(0), start)
	assert.Equal(t, uint64(160), end)

	// Clipped to the source length.
	start, end = v.VisibleRange(100)
	assert.Equal(t, uint64(0), start)
	assert.Equal(t, uint64(100), end)

	v.TopOffset = 960
	start, end = v.VisibleRange(1000)
	assert.Equal(t, uint64(960), start)
	assert.Equal(t, uint64(1000), end)
}

func TestViewportOffsetToCell(t *testing.T) {
	v := NewViewport(16, 10)
	v.TopOffset = 160

	row, col, ok := v.OffsetToCell(160, 1000)
	assert.True(t, ok)
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)

	row, col, ok = v.OffsetToCell(195, 1000)
	assert.True(t, ok)
	assert.Equal(t, 2, row)
	assert.Equal(t, 3, col)

	_, _, ok = v.OffsetToCell(159, 1000)
	assert.False(t, ok, "offset above the window is not visible")

	_, _, ok = v.OffsetToCell(320, 1000)
	assert.False(t, ok, "offset below the window is not visible")
}

func TestViewportScrollToContain(t *testing.T) {
	v := NewViewport(16, 10)
	v.TopOffset = 160

	// Above the window: the containing row becomes the first row.
	v = v.ScrollToContain(37, 1000)
	assert.Equal(t, uint64(32), v.TopOffset)

	// Below the window: the containing row becomes the last row.
	v = v.ScrollToContain(500, 1000)
	assert.Equal(t, uint64(496-9*16), v.TopOffset)

	// Already visible: no movement.
	before := v.TopOffset
	v = v.ScrollToContain(before+16, 1000)
	assert.Equal(t, before, v.TopOffset)
}

func TestViewportScrollToContainIdempotent(t *testing.T) {
	v := NewViewport(16, 10)
	v = v.ScrollToContain(777, 1000)
	again := v.ScrollToContain(777, 1000)
	assert.Equal(t, v, again)
}

func TestViewportSmallFilePinnedToTop(t *testing.T) {
	v := NewViewport(16, 10)
	v.TopOffset = 480

	// A file that fits on one screen is always shown from offset 0.
	v = v.ScrollToContain(9, 10)
	assert.Equal(t, uint64(0), v.TopOffset)
}

func TestViewportResize(t *testing.T) {
	v := NewViewport(16, 10)
	v.TopOffset = 800

	// Shrinking the window keeps the top where it was.
	v = v.Resize(5, 1000)
	assert.Equal(t, uint64(800), v.TopOffset)
	assert.Equal(t, uint32(5), v.VisibleRows)

	// Growing it enough to fit the whole file snaps back to the top.
	v = v.Resize(100, 1000)
	assert.Equal(t, uint64(0), v.TopOffset)

	// Rows are floored at one.
	v = v.Resize(0, 1000)
	assert.Equal(t, uint32(1), v.VisibleRows)
}

func TestViewportClampRowAlignment(t *testing.T) {
	v := NewViewport(16, 10)
	v.TopOffset = 37
	v = v.clamp(10000)
	assert.Equal(t, uint64(32), v.TopOffset)

	// Top never starts past the row holding the last byte.
	v.TopOffset = 99999
	v = v.clamp(1000)
	assert.Equal(t, uint64(992), v.TopOffset)
}
