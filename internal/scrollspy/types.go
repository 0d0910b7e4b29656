package scrollspy

// Rect is a measured vertical extent in content rows.
type Rect struct {
	Top    int
	Height int
}

// Center returns the vertical midpoint of the rect.
func (r Rect) Center() int { return r.Top + r.Height/2 }

// LayoutProvider resolves live layout for anchors and the viewport.
// AnchorRect returns false for an anchor that has not been laid out
// yet; such anchors are skipped, never fatal.
type LayoutProvider interface {
	AnchorRect(artistKey string) (Rect, bool)
	Viewport() Rect
	ContentHeight() int
}
