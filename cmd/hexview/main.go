package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"hexview/internal/config"
	"hexview/internal/eventbus"
	"hexview/internal/source"
	"hexview/internal/ui"
	"hexview/internal/view"
)

func main() {
	var configPath string
	var logPath string
	flag.StringVar(&configPath, "config", "", "Path to an alternate config file")
	flag.StringVar(&logPath, "log", "", "Path to the session log file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	filename := flag.Arg(0)

	// Logs must never reach stdout while the TUI owns it.
	logPath = setUpLogging(logPath)

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}

	// Map the file. The navigation engine only ever sees the ByteSource.
	src, err := source.OpenFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open %s: %v\n", filename, err)
		os.Exit(1)
	}
	defer src.Close()

	// Row count is a placeholder until the first WindowSizeMsg arrives.
	nav := view.NewState(src, cfg.BytesPerRow, 20, bus)

	uiModel := ui.NewModel(bus, cfg, nav, logPath)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Quit()
	}()

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventFileOpened, forward)
	bus.Subscribe(eventbus.EventError, forward)

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	log.Printf("hexview started: %s (%d bytes)", src.Name(), src.Len())
	bus.Publish(eventbus.FileOpenedEvent{Name: src.Name(), Size: src.Len()})

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	close(eventChan)
}

// setUpLogging redirects the standard logger to a file and returns the
// path actually used. Falls back to discarding output when no log file can
// be opened.
func setUpLogging(logPath string) string {
	if logPath == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			configDir = "."
		}
		logPath = filepath.Join(configDir, "hexview", "hexview.log")
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		log.SetOutput(os.Stderr)
		return logPath
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
		return logPath
	}
	log.SetOutput(logFile)
	return logPath
}
