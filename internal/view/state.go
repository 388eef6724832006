package view

import (
	"hexview/internal/eventbus"
	"hexview/internal/source"
)

// Direction is a navigation direction for step and page commands.
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
	DirectionUp
	DirectionDown
)

// State owns the viewport, cursor and jump-back history for one byte
// source. All mutation goes through its command methods, each of which is
// total: any input produces a new valid state by clamping at the
// boundaries, never an error. The input layer translates keys into these
// commands and the renderer consumes Frame().
type State struct {
	src  source.ByteSource
	vp   Viewport
	cur  Cursor
	hist History
	bus  eventbus.EventBus // may be nil
}

// NewState creates the navigation state for a freshly opened source.
func NewState(src source.ByteSource, bytesPerRow, visibleRows uint32, bus eventbus.EventBus) *State {
	return &State{
		src: src,
		vp:  NewViewport(bytesPerRow, visibleRows),
		cur: NewCursor(),
		bus: bus,
	}
}

// Viewport returns the current viewport.
func (s *State) Viewport() Viewport { return s.vp }

// Cursor returns the current cursor.
func (s *State) Cursor() Cursor { return s.cur }

// HistoryLen returns the number of jump-back entries.
func (s *State) HistoryLen() int { return s.hist.Len() }

// Source returns the byte source being viewed.
func (s *State) Source() source.ByteSource { return s.src }

// Navigate moves the cursor one step: left/right by a byte, up/down by a
// row. Step-class, so no history entry is pushed.
func (s *State) Navigate(d Direction) {
	oldCur, oldVp := s.cur, s.vp
	row := int64(s.vp.BytesPerRow)

	switch d {
	case DirectionLeft:
		s.cur = s.cur.MoveBy(-1, s.src.Len())
	case DirectionRight:
		s.cur = s.cur.MoveBy(1, s.src.Len())
	case DirectionUp:
		s.cur = s.cur.MoveBy(-row, s.src.Len())
	case DirectionDown:
		s.cur = s.cur.MoveBy(row, s.src.Len())
	}

	s.vp = s.vp.ScrollToContain(s.cur.Anchor, s.src.Len())
	s.commit(oldCur, oldVp)
}

// SkipForward advances the cursor by its own width. Step-class.
func (s *State) SkipForward() {
	oldCur, oldVp := s.cur, s.vp
	s.cur = s.cur.SkipForward(s.src.Len())
	s.vp = s.vp.ScrollToContain(s.cur.Anchor, s.src.Len())
	s.commit(oldCur, oldVp)
}

// SkipBack retreats the cursor by its own width. Step-class.
func (s *State) SkipBack() {
	oldCur, oldVp := s.cur, s.vp
	s.cur = s.cur.SkipBack(s.src.Len())
	s.vp = s.vp.ScrollToContain(s.cur.Anchor, s.src.Len())
	s.commit(oldCur, oldVp)
}

// GrowCursor extends the selection by one byte and keeps its far edge on
// screen when the selection fits in the window.
func (s *State) GrowCursor() {
	oldCur, oldVp := s.cur, s.vp
	length := s.src.Len()

	s.cur = s.cur.Grow(length)
	s.vp = s.vp.ScrollToContain(s.cur.Anchor, length)
	if s.cur.Extent <= s.vp.Window() {
		s.vp = s.vp.ScrollToContain(s.cur.End()-1, length)
	}
	s.commit(oldCur, oldVp)
}

// ShrinkCursor trims the selection by one byte, never below one.
func (s *State) ShrinkCursor() {
	oldCur, oldVp := s.cur, s.vp
	s.cur = s.cur.Shrink()
	s.vp = s.vp.ScrollToContain(s.cur.Anchor, s.src.Len())
	s.commit(oldCur, oldVp)
}

// Page moves a full screen up or down. The viewport and cursor shift by the
// same amount, so the cursor keeps its position relative to the screen.
// Jump-class: the prior position is pushed for JumpBack.
func (s *State) Page(d Direction) {
	if d != DirectionUp && d != DirectionDown {
		return
	}
	oldCur, oldVp := s.cur, s.vp
	length := s.src.Len()
	delta := s.vp.Window()

	s.pushHistory()
	if d == DirectionDown {
		s.cur = s.cur.MoveBy(int64(delta), length)
		top := s.vp.TopOffset + delta
		if top < s.vp.TopOffset {
			top = s.vp.TopOffset
		}
		s.vp.TopOffset = top
	} else {
		s.cur = s.cur.MoveBy(-int64(delta), length)
		if delta > s.vp.TopOffset {
			s.vp.TopOffset = 0
		} else {
			s.vp.TopOffset -= delta
		}
	}
	s.vp = s.vp.clamp(length)
	s.vp = s.vp.ScrollToContain(s.cur.Anchor, length)
	s.commit(oldCur, oldVp)
}

// JumpHome moves to the start of the source. Jump-class.
func (s *State) JumpHome() {
	oldCur, oldVp := s.cur, s.vp

	s.pushHistory()
	s.cur = s.cur.Set(0, s.cur.Extent, s.src.Len())
	s.vp.TopOffset = 0
	s.commit(oldCur, oldVp)
}

// JumpEnd moves to the last byte of the source. Jump-class.
func (s *State) JumpEnd() {
	oldCur, oldVp := s.cur, s.vp
	length := s.src.Len()

	s.pushHistory()
	var last uint64
	if length > 0 {
		last = length - 1
	}
	s.cur = s.cur.Set(last, s.cur.Extent, length)
	s.vp = s.vp.ScrollToContain(s.cur.Anchor, length)
	s.commit(oldCur, oldVp)
}

// JumpTo moves the cursor to an absolute offset, clamped to the source.
// Jump-class.
func (s *State) JumpTo(offset uint64) {
	oldCur, oldVp := s.cur, s.vp

	s.pushHistory()
	s.cur = s.cur.Set(offset, s.cur.Extent, s.src.Len())
	s.vp = s.vp.ScrollToContain(s.cur.Anchor, s.src.Len())
	s.commit(oldCur, oldVp)
}

// JumpBack restores the state recorded before the most recent jump-class
// command. With an empty history it is a no-op.
func (s *State) JumpBack() {
	snap, ok := s.hist.Pop()
	if !ok {
		return
	}
	oldCur, oldVp := s.cur, s.vp
	length := s.src.Len()

	s.cur = snap.Cursor.Set(snap.Cursor.Anchor, snap.Cursor.Extent, length)
	s.vp.TopOffset = snap.TopOffset
	s.vp = s.vp.clamp(length)
	s.commit(oldCur, oldVp)
}

// OnResize updates the visible row count after a terminal resize and
// re-clamps the viewport.
func (s *State) OnResize(rows int) {
	oldCur, oldVp := s.cur, s.vp
	if rows < 1 {
		rows = 1
	}
	s.vp = s.vp.Resize(uint32(rows), s.src.Len())
	s.commit(oldCur, oldVp)
}

func (s *State) pushHistory() {
	s.hist.Push(Snapshot{TopOffset: s.vp.TopOffset, Cursor: s.cur})
}

func (s *State) commit(oldCur Cursor, oldVp Viewport) {
	if s.bus == nil {
		return
	}
	if s.cur != oldCur {
		s.bus.Publish(eventbus.CursorMovedEvent{
			OldAnchor: oldCur.Anchor,
			OldExtent: oldCur.Extent,
			NewAnchor: s.cur.Anchor,
			NewExtent: s.cur.Extent,
		})
	}
	if s.vp != oldVp {
		s.bus.Publish(eventbus.ViewportChangedEvent{
			TopOffset:   s.vp.TopOffset,
			VisibleRows: s.vp.VisibleRows,
		})
	}
}
