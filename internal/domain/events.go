package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoadRequested EventType = "CatalogLoadRequested"
	EventCatalogLoadStarted   EventType = "CatalogLoadStarted"
	EventCatalogLoaded        EventType = "CatalogLoaded"
	EventCatalogLoadFailed    EventType = "CatalogLoadFailed"
	EventQueryChanged         EventType = "QueryChanged"
	EventViewRecomputed       EventType = "ViewRecomputed"
	EventFocusChanged         EventType = "FocusChanged"
	EventCenterCommitted      EventType = "CenterCommitted"
	EventModeChanged          EventType = "ModeChanged"
	EventShowActivated        EventType = "ShowActivated"
	EventScrollIntoView       EventType = "ScrollIntoView"
	EventJumpRequested        EventType = "JumpRequested"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadRequestedEvent asks the loader to (re)read a catalog file
type CatalogLoadRequestedEvent struct {
	Path string
}

func (e CatalogLoadRequestedEvent) Type() EventType { return EventCatalogLoadRequested }

// CatalogLoadStartedEvent is emitted when a catalog read begins
type CatalogLoadStartedEvent struct {
	Path string
}

func (e CatalogLoadStartedEvent) Type() EventType { return EventCatalogLoadStarted }

// CatalogLoadedEvent carries the parsed show list
type CatalogLoadedEvent struct {
	Path  string
	Shows []Show
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogLoadFailedEvent is emitted when the catalog cannot be read.
// The UI keeps running on an empty catalog.
type CatalogLoadFailedEvent struct {
	Path string
	Err  error
}

func (e CatalogLoadFailedEvent) Type() EventType { return EventCatalogLoadFailed }

// QueryChangedEvent is emitted when the search query changes
type QueryChangedEvent struct {
	Query string
}

func (e QueryChangedEvent) Type() EventType { return EventQueryChanged }

// ViewRecomputedEvent is emitted after the browse view is rebuilt
type ViewRecomputedEvent struct {
	Artists int
	Shows   int
}

func (e ViewRecomputedEvent) Type() EventType { return EventViewRecomputed }

// FocusChangedEvent is emitted when the keyboard focus moves or clears
type FocusChangedEvent struct {
	Focus *FocusPosition // nil when focus was cleared
}

func (e FocusChangedEvent) Type() EventType { return EventFocusChanged }

// CenterCommittedEvent is emitted when the scroll-spy commits a new
// centered artist index
type CenterCommittedEvent struct {
	Index int
}

func (e CenterCommittedEvent) Type() EventType { return EventCenterCommitted }

// ModeChangedEvent is emitted when navigation authority switches
type ModeChangedEvent struct {
	Mode NavigationMode
}

func (e ModeChangedEvent) Type() EventType { return EventModeChanged }

// ShowActivatedEvent is emitted when Enter activates the focused show
type ShowActivatedEvent struct {
	Show Show
}

func (e ShowActivatedEvent) Type() EventType { return EventShowActivated }

// ScrollIntoViewEvent is a directive to the rendering layer to center
// the focused show on screen
type ScrollIntoViewEvent struct {
	ArtistKey string
	ShowID    string
}

func (e ScrollIntoViewEvent) Type() EventType { return EventScrollIntoView }

// JumpRequestedEvent is emitted on a letter-index or prompt jump;
// it is pointer navigation as far as the arbiter is concerned
type JumpRequestedEvent struct {
	ArtistKey string
}

func (e JumpRequestedEvent) Type() EventType { return EventJumpRequested }
