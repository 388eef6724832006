package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "left", "right", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type GrowCursorAction struct{}

func (a GrowCursorAction) Type() string { return "grow_cursor" }

type ShrinkCursorAction struct{}

func (a ShrinkCursorAction) Type() string { return "shrink_cursor" }

type SkipAction struct {
	Back bool
}

func (a SkipAction) Type() string { return "skip" }

type JumpBackAction struct{}

func (a JumpBackAction) Type() string { return "jump_back" }

type JumpToAction struct {
	Offset uint64
}

func (a JumpToAction) Type() string { return "jump_to" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Command actions
type OpenLogAction struct{}

func (a OpenLogAction) Type() string { return "open_log" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
