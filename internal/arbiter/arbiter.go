package arbiter

import (
	"time"

	"showgrip/internal/domain"
	"showgrip/internal/eventbus"
	"showgrip/internal/nav"
	"showgrip/internal/scrollspy"
)

// wheelGrace suppresses wheel-driven exits right after the navigator's
// own scroll-into-view, so the residual momentum of that scroll does
// not kick the user out of keyboard mode.
const wheelGrace = 100 * time.Millisecond

// Arbiter owns the mode/focus/center triple and decides which position
// source is authoritative. Every mutation of that triple goes through
// its transition methods; nothing else writes it, so no locking is
// needed even though scroll, keyboard and pointer events all land
// here.
type Arbiter struct {
	mode   domain.NavigationMode
	center int

	spy       *scrollspy.Service
	navigator *nav.Navigator
	bus       eventbus.EventBus

	graceUntil time.Time
	now        func() time.Time
}

// New wires the arbiter between the scroll-spy and the navigator.
// bus may be nil (tests).
func New(spy *scrollspy.Service, navigator *nav.Navigator, bus eventbus.EventBus) *Arbiter {
	a := &Arbiter{
		mode:      domain.ModeScroll,
		spy:       spy,
		navigator: navigator,
		bus:       bus,
		now:       time.Now,
	}
	spy.SetOnCommit(a.commitCenter)
	return a
}

// SetClock replaces the time source (tests).
func (a *Arbiter) SetClock(now func() time.Time) {
	a.now = now
}

// Mode returns the current navigation mode.
func (a *Arbiter) Mode() domain.NavigationMode {
	return a.mode
}

// CurrentArtistIndex is the one authoritative "current artist" for
// rendering.
func (a *Arbiter) CurrentArtistIndex() int {
	if a.mode == domain.ModeKeyboard {
		if f := a.navigator.Focus(); f != nil {
			return f.ArtistIndex
		}
	}
	return a.center
}

// EnterKeyboard switches authority to the keyboard focus. Any
// in-flight scroll-spy candidate is discarded in the same turn;
// keyboard input has strict priority over pending scroll commits.
func (a *Arbiter) EnterKeyboard() {
	a.spy.DiscardPending()
	a.spy.SetMasked(true)
	if a.mode != domain.ModeKeyboard {
		a.mode = domain.ModeKeyboard
		a.publish(eventbus.ModeChangedEvent{Mode: a.mode})
	}
}

// NoteScrollIntoView opens the wheel grace window after the navigator
// requested a scroll-into-view.
func (a *Arbiter) NoteScrollIntoView() {
	a.graceUntil = a.now().Add(wheelGrace)
}

// Wheel handles a wheel event. Returns true when it exited keyboard
// mode.
func (a *Arbiter) Wheel() bool {
	if a.mode != domain.ModeKeyboard {
		return false
	}
	if a.now().Before(a.graceUntil) {
		return false
	}
	a.exitKeyboard()
	return true
}

// Pointer handles click/touch/letter-jump navigation: exits keyboard
// mode immediately, no grace, and always clears the focus.
func (a *Arbiter) Pointer() bool {
	if a.mode != domain.ModeKeyboard {
		if a.navigator.Reset() {
			a.publish(eventbus.FocusChangedEvent{})
		}
		return false
	}
	a.exitKeyboard()
	return true
}

// FocusLost is called when a view change invalidated the focus; the
// safe default is scroll authority.
func (a *Arbiter) FocusLost() {
	if a.mode == domain.ModeKeyboard {
		a.exitKeyboard()
	}
}

// SyncCenter re-reads the committed center after the spy's key list
// changed (the spy clamps it into the new range).
func (a *Arbiter) SyncCenter() {
	a.center = a.spy.Committed()
}

func (a *Arbiter) exitKeyboard() {
	if a.navigator.Reset() {
		a.publish(eventbus.FocusChangedEvent{})
	}
	a.mode = domain.ModeScroll
	a.spy.SetMasked(false)
	a.publish(eventbus.ModeChangedEvent{Mode: a.mode})
}

func (a *Arbiter) commitCenter(index int) {
	a.center = index
	a.publish(eventbus.CenterCommittedEvent{Index: index})
}

func (a *Arbiter) publish(e eventbus.DomainEvent) {
	if a.bus != nil {
		a.bus.Publish(e)
	}
}
