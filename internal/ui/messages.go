package ui

import (
	"hexview/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// logPagerMsg contains the result of a log pager command
type logPagerMsg struct {
	err error
}
