package scrollspy

import (
	"time"
)

const (
	// edgeThreshold forces the first/last artist when the viewport sits
	// within this many rows of the content edges. Anchor margins make
	// raw measurement unreliable at the extremes.
	edgeThreshold = 2

	// DefaultCommitDelay is the debounce window between a candidate
	// change and its commit. Short enough to feel live, long enough to
	// swallow layout jitter.
	DefaultCommitDelay = 90 * time.Millisecond
)

// Service continuously derives which artist section is closest to the
// viewport's vertical center. Measurement is coalesced to one pass per
// frame and candidate changes are debounced before they become the
// committed index.
//
// The service is not safe for concurrent use; it is driven entirely
// from the UI update loop.
type Service struct {
	provider LayoutProvider
	keys     []string

	committed int
	candidate int
	masked    bool

	framePending bool
	timerGen     int
	timerArmed   bool
	delay        time.Duration

	onCommit func(int)
}

// NewService creates a scroll-spy over the given layout provider.
func NewService(provider LayoutProvider, delay time.Duration) *Service {
	if delay <= 0 {
		delay = DefaultCommitDelay
	}
	return &Service{
		provider: provider,
		delay:    delay,
	}
}

// SetOnCommit registers the commit listener.
func (s *Service) SetOnCommit(fn func(index int)) {
	s.onCommit = fn
}

// Delay returns the debounce window, for arming the commit timer.
func (s *Service) Delay() time.Duration { return s.delay }

// Committed returns the last committed center index.
func (s *Service) Committed() int { return s.committed }

// SetKeys replaces the artist key list after a view recompute. An
// armed commit timer refers to the old layout and is invalidated; the
// committed index is clamped into the new range.
func (s *Service) SetKeys(keys []string) {
	s.keys = keys
	s.DiscardPending()
	if len(keys) == 0 {
		s.committed = 0
		s.candidate = 0
		return
	}
	if s.committed >= len(keys) {
		s.committed = len(keys) - 1
	}
	s.candidate = s.committed
}

// SetMasked suspends (true) or resumes (false) commits. While masked,
// measurement may still run but nothing escapes to the committed
// index; a pending commit timer is dropped.
func (s *Service) SetMasked(masked bool) {
	s.masked = masked
	if masked {
		s.timerArmed = false
	}
}

// DiscardPending invalidates any armed commit timer. A scheduled
// frame stays pending: its tick is already in flight and will
// re-measure against current state when it lands, and clearing the
// flag early would let a second tick pile up behind it.
func (s *Service) DiscardPending() {
	s.timerArmed = false
	s.timerGen++
}

// Schedule coalesces scroll/resize signals. It returns true when the
// caller should arrange exactly one measurement pass for the next
// frame; further signals before that pass are absorbed.
func (s *Service) Schedule() bool {
	if s.framePending {
		return false
	}
	s.framePending = true
	return true
}

// Measure runs one measurement pass. When the candidate differs from
// the committed index it returns (generation, true) and the caller
// must (re)start the commit timer for that generation; an older
// generation's timer is thereby superseded (last write wins).
func (s *Service) Measure() (int, bool) {
	s.framePending = false
	if len(s.keys) == 0 || s.provider == nil {
		return 0, false
	}

	s.candidate = s.measureCandidate()
	if s.masked {
		return 0, false
	}
	if s.candidate == s.committed {
		// Back to agreement before the timer fired: nothing to commit
		s.timerArmed = false
		return 0, false
	}

	s.timerGen++
	s.timerArmed = true
	return s.timerGen, true
}

// FireCommit is called when a commit timer fires. Only the newest
// generation commits, and only if the candidate still differs.
func (s *Service) FireCommit(gen int) bool {
	if !s.timerArmed || gen != s.timerGen || s.masked {
		return false
	}
	s.timerArmed = false
	if s.candidate == s.committed {
		return false
	}
	s.committed = s.candidate
	if s.onCommit != nil {
		s.onCommit(s.committed)
	}
	return true
}

func (s *Service) measureCandidate() int {
	vp := s.provider.Viewport()
	total := s.provider.ContentHeight()

	// Edge overrides beat measurement noise at the extremes
	if vp.Top <= edgeThreshold {
		return 0
	}
	if total > 0 && vp.Top+vp.Height >= total-edgeThreshold {
		return len(s.keys) - 1
	}

	center := vp.Center()
	best := s.committed
	bestDist := -1
	for i, key := range s.keys {
		r, ok := s.provider.AnchorRect(key)
		if !ok {
			continue // not laid out yet
		}
		d := r.Center() - center
		if d < 0 {
			d = -d
		}
		// Strict less keeps the lower index on exact ties
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
