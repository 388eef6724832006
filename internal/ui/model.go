package ui

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"hexview/internal/config"
	"hexview/internal/eventbus"
	"hexview/internal/ui/input"
	inputtypes "hexview/internal/ui/input/types"
	"hexview/internal/ui/views"
	"hexview/internal/view"
)

// chromeRows is the number of lines around the byte display: header,
// status, position bar and the help/prompt line.
const chromeRows = 4

// Model is the Bubble Tea model wrapping the navigation engine.
type Model struct {
	bus          eventbus.EventBus
	cfg          *config.Config
	nav          *view.State
	inputHandler *input.Handler
	renderer     *views.Renderer
	keys         keyMap
	help         help.Model
	logOps       *LogOps
	logPath      string

	width     int
	height    int
	statusMsg string
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, nav *view.State, logPath string) *Model {
	return &Model{
		bus:          bus,
		cfg:          cfg,
		nav:          nav,
		inputHandler: input.New(),
		renderer:     views.NewRenderer(cfg.GroupBytes, cfg.UISettings.ShowGlyphPane),
		keys:         defaultKeyMap(),
		help:         help.New(),
		logOps:       NewLogOps(),
		logPath:      logPath,
	}
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.logOps.SetProgram(p)
}

// modelContext adapts the model for the input handler.
type modelContext struct {
	m *Model
}

func (c modelContext) CursorAnchor() uint64 { return c.m.nav.Cursor().Anchor }
func (c modelContext) SourceLen() uint64    { return c.m.nav.Source().Len() }
func (c modelContext) HelpVisible() bool    { return c.m.help.ShowAll }

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		rows := msg.Height - chromeRows
		if !m.cfg.UISettings.ShowPositionBar {
			rows++
		}
		m.nav.OnResize(rows)
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, modelContext{m})

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case EventMsg:
		m.handleEvent(msg.Event)
		return m, nil

	case logPagerMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("log pager: %v", msg.err)
		}
		return m, nil

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
	}

	return m, nil
}

// processAction translates an input action into navigation commands.
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.statusMsg = ""
		switch a.Direction {
		case "up":
			m.nav.Navigate(view.DirectionUp)
		case "down":
			m.nav.Navigate(view.DirectionDown)
		case "left":
			m.nav.Navigate(view.DirectionLeft)
		case "right":
			m.nav.Navigate(view.DirectionRight)
		case "pageup":
			m.nav.Page(view.DirectionUp)
		case "pagedown":
			m.nav.Page(view.DirectionDown)
		case "home":
			m.nav.JumpHome()
		case "end":
			m.nav.JumpEnd()
		}

	case inputtypes.GrowCursorAction:
		m.nav.GrowCursor()

	case inputtypes.ShrinkCursorAction:
		m.nav.ShrinkCursor()

	case inputtypes.SkipAction:
		if a.Back {
			m.nav.SkipBack()
		} else {
			m.nav.SkipForward()
		}

	case inputtypes.JumpBackAction:
		m.nav.JumpBack()

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeGoto {
			m.handleGoto(a.Text)
		}

	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll

	case inputtypes.OpenLogAction:
		return m.fetchLogPager()

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// handleGoto parses the goto prompt and jumps to the offset.
func (m *Model) handleGoto(text string) {
	offset, err := parseOffset(text)
	if err != nil {
		m.statusMsg = fmt.Sprintf("bad offset %q", text)
		return
	}
	m.nav.JumpTo(offset)
	m.statusMsg = ""
}

// parseOffset accepts decimal ("1024"), 0x-prefixed hex ("0x400") and
// h-suffixed hex ("400h") offsets.
func parseOffset(text string) (uint64, error) {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return 0, fmt.Errorf("empty offset")
	}
	if rest, ok := strings.CutSuffix(text, "h"); ok {
		return strconv.ParseUint(rest, 16, 64)
	}
	// Base 0 picks up the 0x prefix.
	return strconv.ParseUint(text, 0, 64)
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		m.statusMsg = e.Message
		log.Printf("Error event: %s: %v", e.Message, e.Err)
	case eventbus.FileOpenedEvent:
		m.statusMsg = fmt.Sprintf("opened %s (%d bytes)", e.Name, e.Size)
	}
}

func (m *Model) fetchLogPager() tea.Cmd {
	return func() tea.Msg {
		return logPagerMsg{err: m.logOps.ShowLogInPager(m.logPath)}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	f := m.nav.Frame()

	var b strings.Builder
	b.WriteString(m.renderer.RenderHeader(f, m.width))
	b.WriteByte('\n')
	b.WriteString(m.renderer.RenderRows(f))
	b.WriteByte('\n')
	b.WriteString(m.renderer.RenderStatus(f))
	if m.statusMsg != "" {
		b.WriteString("  " + m.statusMsg)
	}
	b.WriteByte('\n')
	if m.cfg.UISettings.ShowPositionBar {
		b.WriteString(m.renderer.RenderPositionBar(f.Fraction, m.width))
		b.WriteByte('\n')
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		b.WriteString("goto: " + ti.View())
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}
