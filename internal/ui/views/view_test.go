package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"hexview/internal/view"
)

func testFrame() view.Frame {
	return view.Frame{
		Name:        "test.bin",
		Length:      32,
		BytesPerRow: 16,
		VisibleRows: 4,
		Rows: []view.FrameRow{
			{Offset: 0, Bytes: []byte("hello world 1234")},
			{Offset: 16, Bytes: []byte{0x00, 0x1f, 0x7f, 0xff}},
		},
		Cursor: view.Cursor{Anchor: 1, Extent: 2},
	}
}

func TestRenderRowsShape(t *testing.T) {
	r := NewRenderer(2, true)
	out := r.RenderRows(testFrame())

	lines := strings.Split(out, "\n")
	// Two data rows plus padding up to the viewport height.
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "00000000")
	assert.Contains(t, lines[1], "00000010")

	// Hex cells for the first bytes of "hello".
	assert.Contains(t, lines[0], "68")
	assert.Contains(t, lines[0], "65")
}

func TestRenderRowsWithoutGlyphPane(t *testing.T) {
	r := NewRenderer(2, false)
	out := r.RenderRows(testFrame())
	assert.NotContains(t, out, "h ", "glyph cells are absent when the pane is disabled")
}

func TestGlyphCell(t *testing.T) {
	cell, printable := glyphCell('A')
	assert.Equal(t, "A ", cell)
	assert.True(t, printable)

	cell, printable = glyphCell(0)
	assert.Equal(t, "  ", cell)
	assert.False(t, printable)

	// Control and high bytes render as superscript hex.
	cell, printable = glyphCell(0x1f)
	assert.Equal(t, "¹ᶠ", cell)
	assert.False(t, printable)

	cell, _ = glyphCell(0xff)
	assert.Equal(t, "ᶠᶠ", cell)

	// DEL is non-printable too.
	_, printable = glyphCell(0x7f)
	assert.False(t, printable)
}

func TestRenderStatus(t *testing.T) {
	r := NewRenderer(2, true)
	f := testFrame()
	f.Cursor = view.Cursor{Anchor: 0x10, Extent: 4}
	f.Fraction = 0.5

	out := r.RenderStatus(f)
	assert.Contains(t, out, "0x10")
	assert.Contains(t, out, "sel 4")
	assert.Contains(t, out, "50%")
}

func TestRenderPositionBar(t *testing.T) {
	r := NewRenderer(2, true)

	out := r.RenderPositionBar(0, 10)
	assert.Contains(t, out, "█")

	assert.Empty(t, r.RenderPositionBar(0.5, 1))
}
