package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hexview/internal/view"
)

// superscript digits used for the glyph pane's non-printable cells.
var superscriptHex = [16]string{
	"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷",
	"⁸", "⁹", "ᵃ", "ᵇ", "ᶜ", "ᵈ", "ᵉ", "ᶠ",
}

// Renderer draws frames produced by the navigation engine.
type Renderer struct {
	styles     *Styles
	groupBytes uint32
	showGlyphs bool
}

// NewRenderer creates a renderer. groupBytes controls how many bytes sit
// between spacer columns in the hex pane.
func NewRenderer(groupBytes uint32, showGlyphs bool) *Renderer {
	if groupBytes < 1 {
		groupBytes = 1
	}
	return &Renderer{
		styles:     NewStyles(),
		groupBytes: groupBytes,
		showGlyphs: showGlyphs,
	}
}

// RenderHeader draws the title bar.
func (r *Renderer) RenderHeader(f view.Frame, width int) string {
	title := fmt.Sprintf(" %s — %d bytes ", f.Name, f.Length)
	return r.styles.Header.Width(width).Align(lipgloss.Center).Render(title)
}

// RenderRows draws the offset gutter, hex pane and glyph pane, one line per
// visible row, padded to the viewport height so the footer stays put.
func (r *Renderer) RenderRows(f view.Frame) string {
	var b strings.Builder
	for i, row := range f.Rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.styles.Gutter.Render(fmt.Sprintf("%08x", row.Offset)))
		b.WriteString("  ")
		b.WriteString(r.renderHexRow(f, row))
		if r.showGlyphs {
			b.WriteString("  ")
			b.WriteString(r.renderGlyphRow(f, row))
		}
	}
	for i := len(f.Rows); i < int(f.VisibleRows); i++ {
		if i > 0 || len(f.Rows) > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (r *Renderer) renderHexRow(f view.Frame, row view.FrameRow) string {
	var b strings.Builder
	for col := uint32(0); col < f.BytesPerRow; col++ {
		inRow := int(col) < len(row.Bytes)
		offset := row.Offset + uint64(col)

		if col > 0 && col%r.groupBytes == 0 {
			// The spacer joins the highlight when it sits inside the
			// selection, but not just before its first byte.
			if inRow && f.Cursor.Contains(offset) && offset != f.Cursor.Anchor {
				b.WriteString(r.styles.CursorHex.Render(" "))
			} else {
				b.WriteByte(' ')
			}
		}

		if !inRow {
			b.WriteString("  ")
			continue
		}
		cell := fmt.Sprintf("%02x", row.Bytes[col])
		if f.Cursor.Contains(offset) {
			b.WriteString(r.styles.CursorHex.Render(cell))
		} else {
			b.WriteString(r.styles.HexByte.Render(cell))
		}
	}
	return b.String()
}

func (r *Renderer) renderGlyphRow(f view.Frame, row view.FrameRow) string {
	var b strings.Builder
	for col := uint32(0); col < f.BytesPerRow; col++ {
		if int(col) >= len(row.Bytes) {
			b.WriteString("  ")
			continue
		}
		offset := row.Offset + uint64(col)
		value := row.Bytes[col]
		cell, printable := glyphCell(value)

		style := r.styles.GlyphByte
		if !printable {
			style = r.styles.NonPrint
		}
		if f.Cursor.Contains(offset) {
			style = r.styles.CursorGlyph
		}
		b.WriteString(style.Render(cell))
	}
	return b.String()
}

// glyphCell maps a byte to a two-cell glyph column entry. Printable ASCII
// is shown as-is, NUL as blank, and everything else as superscript hex so
// non-printable bytes stay recognizable without widening the pane.
func glyphCell(value byte) (string, bool) {
	switch {
	case value == 0:
		return "  ", false
	case value >= 0x20 && value <= 0x7e:
		return string(rune(value)) + " ", true
	default:
		return superscriptHex[value>>4] + superscriptHex[value&0xf], false
	}
}

// RenderStatus draws the info line under the display: cursor offset,
// selection width and position percentage.
func (r *Renderer) RenderStatus(f view.Frame) string {
	sel := ""
	if f.Cursor.Extent > 1 {
		sel = fmt.Sprintf("  sel %d", f.Cursor.Extent)
	}
	left := fmt.Sprintf(" cursor %s%s", r.styles.StatusField.Render(fmt.Sprintf("%#x", f.Cursor.Anchor)), sel)
	right := fmt.Sprintf("%3.0f%% ", f.Fraction*100)
	return r.styles.Status.Render(left + "  " + right)
}

// RenderPositionBar draws a horizontal bar with a marker at the cursor's
// relative position in the file.
func (r *Renderer) RenderPositionBar(fraction float64, width int) string {
	if width < 2 {
		return ""
	}
	mark := int(fraction * float64(width-1))
	if mark < 0 {
		mark = 0
	}
	if mark > width-1 {
		mark = width - 1
	}
	var b strings.Builder
	for i := 0; i < width; i++ {
		if i == mark {
			b.WriteString(r.styles.PositionMark.Render("█"))
		} else {
			b.WriteString(r.styles.PositionBar.Render("─"))
		}
	}
	return b.String()
}
