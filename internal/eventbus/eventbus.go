package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"showgrip/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventCatalogLoadRequested = domain.EventCatalogLoadRequested
	EventCatalogLoadStarted   = domain.EventCatalogLoadStarted
	EventCatalogLoaded        = domain.EventCatalogLoaded
	EventCatalogLoadFailed    = domain.EventCatalogLoadFailed
	EventQueryChanged         = domain.EventQueryChanged
	EventViewRecomputed       = domain.EventViewRecomputed
	EventFocusChanged         = domain.EventFocusChanged
	EventCenterCommitted      = domain.EventCenterCommitted
	EventModeChanged          = domain.EventModeChanged
	EventShowActivated        = domain.EventShowActivated
	EventScrollIntoView       = domain.EventScrollIntoView
	EventJumpRequested        = domain.EventJumpRequested
)

// Re-export domain event types
type CatalogLoadRequestedEvent = domain.CatalogLoadRequestedEvent
type CatalogLoadStartedEvent = domain.CatalogLoadStartedEvent
type CatalogLoadedEvent = domain.CatalogLoadedEvent
type CatalogLoadFailedEvent = domain.CatalogLoadFailedEvent
type QueryChangedEvent = domain.QueryChangedEvent
type ViewRecomputedEvent = domain.ViewRecomputedEvent
type FocusChangedEvent = domain.FocusChangedEvent
type CenterCommittedEvent = domain.CenterCommittedEvent
type ModeChangedEvent = domain.ModeChangedEvent
type ShowActivatedEvent = domain.ShowActivatedEvent
type ScrollIntoViewEvent = domain.ScrollIntoViewEvent
type JumpRequestedEvent = domain.JumpRequestedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
}

// subscription pairs a handler with a stable id so unsubscribing is
// immune to other subscriptions coming and going.
type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    int
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 1000),
		quit:      make(chan struct{}),
	}

	// Start the event dispatcher
	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Skip logging for high-frequency events
	switch event.Type() {
	case EventCenterCommitted, EventFocusChanged, EventScrollIntoView:
		// Scroll and focus traffic is too chatty to log
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	select {
	case b.eventChan <- event:
		// Event sent successfully
	default:
		// Channel full, log and drop
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			// Copy so handlers run without the lock held
			subsCopy := make([]subscription, len(subs))
			copy(subsCopy, subs)
			b.mu.RUnlock()

			for _, sub := range subsCopy {
				func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
						}
					}()
					h(event)
				}(sub.handler, event.Type())
			}

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
					// Discard event
				default:
					return
				}
			}
		}
	}
}
