package nav

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"showgrip/internal/domain"
)

// navView builds a view with the given row lengths; artist keys are
// "a0", "a1", ...
func navView(rowLens ...int) domain.View {
	v := domain.View{Groups: make(map[string][]domain.Show)}
	for i, n := range rowLens {
		key := fmt.Sprintf("a%d", i)
		v.ArtistKeys = append(v.ArtistKeys, key)
		row := make([]domain.Show, n)
		for j := range row {
			row[j] = domain.Show{ShowID: fmt.Sprintf("%s-%d", key, j)}
		}
		v.Groups[key] = row
	}
	return v
}

func TestFirstKeyEstablishesFocusOnly(t *testing.T) {
	t.Parallel()

	n := New()
	n.SetView(navView(3, 2))
	require.False(t, n.Focused())

	eff, changed := n.Move(DirectionDown)
	require.True(t, changed, "first key must set focus")
	require.True(t, eff.ScrollIntoView)
	require.Equal(t, domain.FocusPosition{ArtistIndex: 0, ShowIndex: 0}, *n.Focus(),
		"first key lands at origin, its direction is consumed")
}

func TestMoveRightLeftClampsNoWrap(t *testing.T) {
	t.Parallel()

	n := New()
	n.SetView(navView(3))
	n.Move(DirectionRight) // establish at {0,0}

	n.Move(DirectionRight)
	n.Move(DirectionRight)
	require.Equal(t, 2, n.Focus().ShowIndex)

	_, changed := n.Move(DirectionRight)
	require.False(t, changed, "right edge does not wrap")
	require.Equal(t, 2, n.Focus().ShowIndex)

	n.Move(DirectionLeft)
	n.Move(DirectionLeft)
	_, changed = n.Move(DirectionLeft)
	require.False(t, changed, "left edge does not wrap")
	require.Equal(t, 0, n.Focus().ShowIndex)
}

func TestMoveDownClampsShowIndexToRow(t *testing.T) {
	t.Parallel()

	n := New()
	n.SetView(navView(3, 1))
	n.Move(DirectionDown) // {0,0}
	n.Move(DirectionRight)
	n.Move(DirectionRight) // {0,2}

	_, changed := n.Move(DirectionDown)
	require.True(t, changed)
	require.Equal(t, domain.FocusPosition{ArtistIndex: 1, ShowIndex: 0}, *n.Focus(),
		"destination row is shorter, column clamps to its last show")
}

func TestMoveUpClampsShowIndexToRow(t *testing.T) {
	t.Parallel()

	n := New()
	n.SetView(navView(1, 4))
	n.focus = &domain.FocusPosition{ArtistIndex: 1, ShowIndex: 3}

	_, changed := n.Move(DirectionUp)
	require.True(t, changed)
	require.Equal(t, domain.FocusPosition{ArtistIndex: 0, ShowIndex: 0}, *n.Focus())
}

func TestMoveVerticalEdgesNoWrap(t *testing.T) {
	t.Parallel()

	n := New()
	n.SetView(navView(1, 1))
	n.Move(DirectionDown) // {0,0}

	_, changed := n.Move(DirectionUp)
	require.False(t, changed, "top edge does not wrap")

	n.Move(DirectionDown) // {1,0}
	_, changed = n.Move(DirectionDown)
	require.False(t, changed, "bottom edge does not wrap")
	require.Equal(t, 1, n.Focus().ArtistIndex)
}

func TestSetViewDropsInvalidFocus(t *testing.T) {
	t.Parallel()

	n := New()
	n.SetView(navView(2, 5))
	n.focus = &domain.FocusPosition{ArtistIndex: 1, ShowIndex: 4}

	dropped := n.SetView(navView(2))
	require.True(t, dropped, "focus outside the new view must be dropped")
	require.False(t, n.Focused())
}

func TestSetViewKeepsValidFocus(t *testing.T) {
	t.Parallel()

	n := New()
	n.SetView(navView(2, 5))
	n.focus = &domain.FocusPosition{ArtistIndex: 1, ShowIndex: 1}

	dropped := n.SetView(navView(3, 2))
	require.False(t, dropped)
	require.Equal(t, domain.FocusPosition{ArtistIndex: 1, ShowIndex: 1}, *n.Focus())
}

func TestEmptyViewNeverFocuses(t *testing.T) {
	t.Parallel()

	n := New()
	n.SetView(domain.View{})

	_, changed := n.Move(DirectionDown)
	require.False(t, changed)
	require.False(t, n.Focused())

	_, changed = n.EnsureFocused()
	require.False(t, changed)
}

func TestActivateReturnsFocusedShow(t *testing.T) {
	t.Parallel()

	n := New()
	n.SetView(navView(2, 3))
	n.focus = &domain.FocusPosition{ArtistIndex: 1, ShowIndex: 2}

	show, ok := n.Activate()
	require.True(t, ok)
	require.Equal(t, "a1-2", show.ShowID)

	n.Reset()
	_, ok = n.Activate()
	require.False(t, ok, "activation without focus is a no-op")
}
