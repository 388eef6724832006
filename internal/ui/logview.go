package ui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// LogOps shows the session log in the embedded ov pager.
type LogOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewLogOps creates a new log operations instance
func NewLogOps() *LogOps {
	return &LogOps{}
}

// SetProgram sets the program reference for terminal management
func (l *LogOps) SetProgram(p *tea.Program) {
	l.program = p
}

// ShowLogInPager opens the log file at path in ov, handing the terminal
// over for the duration.
func (l *LogOps) ShowLogInPager(path string) error {
	if l.program == nil {
		return fmt.Errorf("program not set")
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer f.Close()

	// Release terminal control to run ov
	if err := l.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = l.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(f)
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
