package view

// Viewport maps a window of the byte source onto screen rows. TopOffset is
// the offset of the first visible row and is always a multiple of
// BytesPerRow.
type Viewport struct {
	TopOffset   uint64
	BytesPerRow uint32
	VisibleRows uint32
}

// NewViewport returns a viewport at the top of the source.
func NewViewport(bytesPerRow, visibleRows uint32) Viewport {
	if bytesPerRow < 1 {
		bytesPerRow = 1
	}
	if visibleRows < 1 {
		visibleRows = 1
	}
	return Viewport{TopOffset: 0, BytesPerRow: bytesPerRow, VisibleRows: visibleRows}
}

// Window returns the number of bytes a full screen can show.
func (v Viewport) Window() uint64 {
	return uint64(v.BytesPerRow) * uint64(v.VisibleRows)
}

// rowStart rounds offset down to the row boundary containing it.
func (v Viewport) rowStart(offset uint64) uint64 {
	return offset - offset%uint64(v.BytesPerRow)
}

// VisibleRange returns [start, end) of the bytes on screen, clipped to the
// source length.
func (v Viewport) VisibleRange(length uint64) (uint64, uint64) {
	start := v.TopOffset
	if start > length {
		start = length
	}
	end := v.TopOffset + v.Window()
	if end > length || end < v.TopOffset {
		end = length
	}
	return start, end
}

// OffsetToCell converts a byte offset to an on-screen (row, col) position.
// The second return value is false when the offset is not visible.
func (v Viewport) OffsetToCell(offset, length uint64) (row, col int, ok bool) {
	start, end := v.VisibleRange(length)
	if offset < start || offset >= end {
		return 0, 0, false
	}
	rel := offset - v.TopOffset
	return int(rel / uint64(v.BytesPerRow)), int(rel % uint64(v.BytesPerRow)), true
}

// ScrollToContain scrolls the minimum amount needed to bring offset on
// screen: above the window it becomes the first row, at or below the last
// fully visible row it becomes the last row. This one rule drives every
// follow-the-cursor behavior.
func (v Viewport) ScrollToContain(offset, length uint64) Viewport {
	target := v.rowStart(offset)
	lastRow := uint64(v.VisibleRows-1) * uint64(v.BytesPerRow)
	if target < v.TopOffset {
		v.TopOffset = target
	} else if target >= v.TopOffset+lastRow {
		v.TopOffset = target - lastRow
	}
	return v.clamp(length)
}

// Resize changes the visible row count without otherwise moving the window,
// then re-clamps.
func (v Viewport) Resize(visibleRows uint32, length uint64) Viewport {
	if visibleRows < 1 {
		visibleRows = 1
	}
	v.VisibleRows = visibleRows
	return v.clamp(length)
}

// clamp restores the viewport invariant: row-aligned, within the source,
// and pinned to offset 0 when the whole source fits on one screen.
func (v Viewport) clamp(length uint64) Viewport {
	v.TopOffset = v.rowStart(v.TopOffset)
	if length <= v.Window() {
		v.TopOffset = 0
		return v
	}
	if max := v.rowStart(length - 1); v.TopOffset > max {
		v.TopOffset = max
	}
	return v
}
