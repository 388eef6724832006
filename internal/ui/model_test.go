package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexview/internal/config"
	"hexview/internal/source"
	"hexview/internal/view"
)

func newTestModel(length int) *Model {
	cfg := config.DefaultConfig()
	src := source.NewBytesSource("test", make([]byte, length))
	nav := view.NewState(src, cfg.BytesPerRow, 10, nil)
	return NewModel(nil, cfg, nav, "")
}

func keyMsg(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"1024", 1024, false},
		{"0x400", 0x400, false},
		{"0X400", 0x400, false},
		{"400h", 0x400, false},
		{" 42 ", 42, false},
		{"0", 0, false},
		{"", 0, true},
		{"zzz", 0, true},
		{"-5", 0, true},
	}
	for _, tt := range tests {
		got, err := parseOffset(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
		} else {
			require.NoError(t, err, tt.in)
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}

func TestModelNavigationKeys(t *testing.T) {
	m := newTestModel(1000)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 14})

	m.Update(keyMsg(tea.KeyRight))
	m.Update(keyMsg(tea.KeyRight))
	assert.Equal(t, uint64(2), m.nav.Cursor().Anchor)

	m.Update(runeMsg('j'))
	assert.Equal(t, uint64(18), m.nav.Cursor().Anchor)

	m.Update(keyMsg(tea.KeyPgDown))
	assert.Equal(t, 1, m.nav.HistoryLen())

	m.Update(runeMsg('z'))
	assert.Equal(t, 0, m.nav.HistoryLen())
	assert.Equal(t, uint64(18), m.nav.Cursor().Anchor)
}

func TestModelGrowShrinkKeys(t *testing.T) {
	m := newTestModel(100)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 14})

	m.Update(runeMsg('L'))
	m.Update(runeMsg('L'))
	assert.Equal(t, uint64(3), m.nav.Cursor().Extent)
	m.Update(runeMsg('H'))
	assert.Equal(t, uint64(2), m.nav.Cursor().Extent)
}

func TestModelGotoPrompt(t *testing.T) {
	m := newTestModel(2000)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 14})

	m.Update(runeMsg(':'))
	for _, r := range "0x40" {
		m.Update(runeMsg(r))
	}
	m.Update(keyMsg(tea.KeyEnter))

	assert.Equal(t, uint64(0x40), m.nav.Cursor().Anchor)
	assert.Equal(t, 1, m.nav.HistoryLen())
	assert.Empty(t, m.statusMsg)
}

func TestModelGotoBadInput(t *testing.T) {
	m := newTestModel(2000)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 14})

	m.Update(runeMsg(':'))
	m.Update(runeMsg('x'))
	m.Update(keyMsg(tea.KeyEnter))

	assert.Equal(t, uint64(0), m.nav.Cursor().Anchor)
	assert.NotEmpty(t, m.statusMsg)
}

func TestModelResize(t *testing.T) {
	m := newTestModel(10000)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, uint32(20), m.nav.Viewport().VisibleRows)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 8})
	assert.Equal(t, uint32(4), m.nav.Viewport().VisibleRows)
}

func TestModelViewSmoke(t *testing.T) {
	m := newTestModel(100)
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 14})
	out := m.View()
	assert.Contains(t, out, "test")
	assert.Contains(t, out, "00000000")
}
