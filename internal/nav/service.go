package nav

import (
	"showgrip/internal/domain"
)

// Navigator is the keyboard focus state machine: a 2-D cursor over
// artist rows of unequal length. Focus is nil until the first
// navigation key arrives. Moves clamp, nothing wraps, and vertical
// moves preserve the column by clamping into the destination row
// instead of resetting to zero.
//
// Driven entirely from the UI update loop; not safe for concurrent
// use.
type Navigator struct {
	focus *domain.FocusPosition
	view  domain.View
}

// New creates an unfocused navigator.
func New() *Navigator {
	return &Navigator{}
}

// Focus returns the current position, nil when unfocused. Callers must
// not mutate the result.
func (n *Navigator) Focus() *domain.FocusPosition {
	return n.focus
}

// Focused reports whether a keyboard cursor exists.
func (n *Navigator) Focused() bool {
	return n.focus != nil
}

// SetView revalidates the focus against a freshly computed view.
// Returns true when the focus pointed at something that no longer
// exists and had to be dropped.
func (n *Navigator) SetView(v domain.View) bool {
	n.view = v
	if n.focus == nil {
		return false
	}
	if !n.focus.Valid(v) {
		n.focus = nil
		return true
	}
	return false
}

// Reset drops the focus (pointer navigation, letter jump, teardown).
// Returns true when there was a focus to drop.
func (n *Navigator) Reset() bool {
	had := n.focus != nil
	n.focus = nil
	return had
}

// EnsureFocused initializes the cursor at the origin if unset. The
// first navigation key only establishes focus; its direction is
// consumed.
func (n *Navigator) EnsureFocused() (Effect, bool) {
	if n.focus != nil || n.view.Empty() {
		return Effect{}, false
	}
	n.focus = &domain.FocusPosition{}
	return Effect{ScrollIntoView: true}, true
}

// Move applies one arrow key. Returns the requested effect and whether
// the focus changed. Out-of-bounds moves at the edges are no-ops.
func (n *Navigator) Move(dir Direction) (Effect, bool) {
	if n.view.Empty() {
		return Effect{}, false
	}
	if n.focus == nil {
		return n.EnsureFocused()
	}

	p := *n.focus
	switch dir {
	case DirectionRight:
		if p.ShowIndex+1 < n.view.RowLen(p.ArtistIndex) {
			p.ShowIndex++
		}
	case DirectionLeft:
		if p.ShowIndex > 0 {
			p.ShowIndex--
		}
	case DirectionDown:
		if p.ArtistIndex+1 < len(n.view.ArtistKeys) {
			p.ArtistIndex++
			p.ShowIndex = clampToRow(p.ShowIndex, n.view.RowLen(p.ArtistIndex))
		}
	case DirectionUp:
		if p.ArtistIndex > 0 {
			p.ArtistIndex--
			p.ShowIndex = clampToRow(p.ShowIndex, n.view.RowLen(p.ArtistIndex))
		}
	}

	if p == *n.focus {
		return Effect{}, false
	}
	*n.focus = p
	return Effect{ScrollIntoView: true}, true
}

// Activate returns the focused show for the activation sink. Focus
// does not change.
func (n *Navigator) Activate() (domain.Show, bool) {
	if n.focus == nil {
		return domain.Show{}, false
	}
	return n.view.ShowAt(*n.focus)
}

func clampToRow(idx, rowLen int) int {
	if rowLen <= 0 {
		return 0
	}
	if idx >= rowLen {
		return rowLen - 1
	}
	return idx
}
