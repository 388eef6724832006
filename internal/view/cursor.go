package view

// Cursor is the selected byte range: an anchor offset plus an extent of at
// least one byte. A cursor is always kept within [0, length) of the byte
// source; for an empty source it occupies the virtual range [0, 1).
type Cursor struct {
	Anchor uint64
	Extent uint64
}

// NewCursor returns a single-byte cursor at offset 0.
func NewCursor() Cursor {
	return Cursor{Anchor: 0, Extent: 1}
}

// End returns the offset one past the last selected byte.
func (c Cursor) End() uint64 {
	return c.Anchor + c.Extent
}

// Contains reports whether offset falls inside the selected range.
func (c Cursor) Contains(offset uint64) bool {
	return c.Anchor <= offset && offset < c.End()
}

// MoveBy shifts the anchor by delta bytes, clamped to [0, length-1]. The
// extent is preserved unless the move would push the far edge past the end
// of the source, in which case it shrinks to fit.
func (c Cursor) MoveBy(delta int64, length uint64) Cursor {
	if length == 0 {
		return NewCursor()
	}
	anchor := c.Anchor
	if delta >= 0 {
		anchor += uint64(delta)
		// Saturate on wraparound as well as past-the-end moves.
		if anchor < c.Anchor || anchor > length-1 {
			anchor = length - 1
		}
	} else {
		back := uint64(-delta)
		if back > anchor {
			anchor = 0
		} else {
			anchor -= back
		}
	}
	return Cursor{Anchor: anchor, Extent: c.Extent}.clamp(length)
}

// Grow extends the selection by one byte, up to the end of the source.
func (c Cursor) Grow(length uint64) Cursor {
	if length == 0 {
		return NewCursor()
	}
	return Cursor{Anchor: c.Anchor, Extent: c.Extent + 1}.clamp(length)
}

// Shrink trims the selection by one byte, down to a single byte.
func (c Cursor) Shrink() Cursor {
	if c.Extent > 1 {
		c.Extent--
	}
	return c
}

// Set positions the cursor absolutely, clamping both fields to the source.
func (c Cursor) Set(anchor, extent, length uint64) Cursor {
	if length == 0 {
		return NewCursor()
	}
	if anchor > length-1 {
		anchor = length - 1
	}
	return Cursor{Anchor: anchor, Extent: extent}.clamp(length)
}

// SkipForward advances the cursor by its own width.
func (c Cursor) SkipForward(length uint64) Cursor {
	return c.MoveBy(int64(c.Extent), length)
}

// SkipBack retreats the cursor by its own width.
func (c Cursor) SkipBack(length uint64) Cursor {
	return c.MoveBy(-int64(c.Extent), length)
}

// clamp enforces extent >= 1 and anchor+extent <= length. The anchor must
// already be within [0, length-1] and length must be non-zero.
func (c Cursor) clamp(length uint64) Cursor {
	if c.Extent < 1 {
		c.Extent = 1
	}
	if max := length - c.Anchor; c.Extent > max {
		c.Extent = max
	}
	return c
}
