package view

// FrameRow is one visible row of bytes, tagged with the offset of its first
// byte.
type FrameRow struct {
	Offset uint64
	Bytes  []byte
}

// Frame is the render snapshot: everything the renderer needs to draw one
// screen, produced without reading beyond the visible window.
type Frame struct {
	Name        string
	Length      uint64
	TopOffset   uint64
	BytesPerRow uint32
	VisibleRows uint32
	Rows        []FrameRow
	Cursor      Cursor
	Fraction    float64
}

// Frame produces the current render snapshot. A source read that comes back
// short is not an error: the rows cover whatever bytes were available.
func (s *State) Frame() Frame {
	length := s.src.Len()
	f := Frame{
		Name:        s.src.Name(),
		Length:      length,
		TopOffset:   s.vp.TopOffset,
		BytesPerRow: s.vp.BytesPerRow,
		VisibleRows: s.vp.VisibleRows,
		Cursor:      s.cur,
		Fraction:    s.src.Fraction(s.cur.Anchor),
	}

	start, end := s.vp.VisibleRange(length)
	if end <= start {
		return f
	}
	data, err := s.src.Slice(start, end-start)
	if err != nil {
		return f
	}

	bpr := uint64(s.vp.BytesPerRow)
	for rel := uint64(0); rel < uint64(len(data)); rel += bpr {
		rowEnd := rel + bpr
		if rowEnd > uint64(len(data)) {
			rowEnd = uint64(len(data))
		}
		f.Rows = append(f.Rows, FrameRow{
			Offset: start + rel,
			Bytes:  data[rel:rowEnd],
		})
	}
	return f
}
