package ui

import (
	"time"

	"showgrip/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// frameMsg drives one coalesced scroll-spy measurement pass
type frameMsg time.Time

// commitTimerMsg fires a debounced scroll-spy commit; stale
// generations are ignored
type commitTimerMsg struct {
	gen int
}

// pagerDoneMsg is sent when the detail/help pager exits
type pagerDoneMsg struct {
	err error
}
