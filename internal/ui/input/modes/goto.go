package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"hexview/internal/ui/input/types"
)

// GotoMode reads an offset from the prompt and jumps to it. Accepts
// decimal ("1024") and hex ("0x400" or "400h") forms.
type GotoMode struct {
	textInput *textinput.Model
}

func NewGotoMode(ti *textinput.Model) *GotoMode {
	return &GotoMode{textInput: ti}
}

func (m *GotoMode) Name() string {
	return "goto"
}

func (m *GotoMode) Enter(ctx types.Context) []types.Action {
	m.textInput.Placeholder = "offset (dec or 0x hex)"
	return nil
}

func (m *GotoMode) Exit(ctx types.Context) []types.Action {
	m.textInput.Placeholder = ""
	return nil
}

func (m *GotoMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return []types.Action{
			types.SubmitTextAction{Text: m.textInput.Value(), Mode: types.ModeGoto},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case tea.KeyEsc, tea.KeyCtrlC:
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}

	// Everything else falls through to the text input.
	return nil, false
}
