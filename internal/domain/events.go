package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFileOpened      EventType = "FileOpened"
	EventCursorMoved     EventType = "CursorMoved"
	EventViewportChanged EventType = "ViewportChanged"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FileOpenedEvent is emitted once the byte source has been mapped
type FileOpenedEvent struct {
	Name string
	Size uint64
}

func (e FileOpenedEvent) Type() EventType { return EventFileOpened }

// CursorMovedEvent is emitted when the selected byte range changes
type CursorMovedEvent struct {
	OldAnchor uint64
	OldExtent uint64
	NewAnchor uint64
	NewExtent uint64
}

func (e CursorMovedEvent) Type() EventType { return EventCursorMoved }

// ViewportChangedEvent is emitted when the visible window scrolls or resizes
type ViewportChangedEvent struct {
	TopOffset   uint64
	VisibleRows uint32
}

func (e ViewportChangedEvent) Type() EventType { return EventViewportChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted after the configuration has been read
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after the configuration has been written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
