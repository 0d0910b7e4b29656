package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"showgrip/internal/config"
	"showgrip/internal/domain"
	"showgrip/internal/eventbus"
)

func loadedModel(t *testing.T) *Model {
	t.Helper()

	m := NewModel(eventbus.New(), config.DefaultConfig())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m.Update(EventMsg{Event: eventbus.CatalogLoadedEvent{Shows: []domain.Show{
		{ShowID: "1", Artist: "Anathema", ShowDate: "1999-04-01", City: "London"},
		{ShowID: "2", Artist: "Bush", ShowDate: "1996-01-20", City: "Auckland"},
		{ShowID: "3", Artist: "Bush", ShowDate: "1997-07-12", City: "Wellington"},
		{ShowID: "4", Artist: "Clutch", ShowDate: "2004-10-10", City: "Baltimore"},
	}}})
	return m
}

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestCatalogLoadBuildsView(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	require.Equal(t, []string{"Anathema", "Bush", "Clutch"}, m.CurrentView().ArtistKeys)
	require.False(t, m.loading)
	require.Equal(t, domain.ModeScroll, m.Arbiter().Mode())
}

func TestArrowKeyEntersKeyboardMode(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, domain.ModeKeyboard, m.Arbiter().Mode())
	require.Equal(t, domain.FocusPosition{ArtistIndex: 0, ShowIndex: 0}, *m.navigator.Focus(),
		"first key establishes focus at the origin")

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 1, m.navigator.Focus().ArtistIndex)
	require.Equal(t, 1, m.Arbiter().CurrentArtistIndex(), "current artist follows the focus")
}

func TestWheelExitsKeyboardAfterGrace(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	now := time.Now()
	m.Arbiter().SetClock(func() time.Time { return now })

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, domain.ModeKeyboard, m.Arbiter().Mode())

	// Inside the grace window the wheel scrolls but keeps the mode
	now = now.Add(30 * time.Millisecond)
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	require.Equal(t, domain.ModeKeyboard, m.Arbiter().Mode())

	now = now.Add(200 * time.Millisecond)
	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	require.Equal(t, domain.ModeScroll, m.Arbiter().Mode())
	require.False(t, m.navigator.Focused(), "leaving keyboard mode clears the focus")
}

func TestPointerPressExitsKeyboardImmediately(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, domain.ModeScroll, m.Arbiter().Mode())
	require.False(t, m.navigator.Focused())
}

func TestLiveFilterRecomputesView(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	m.Update(keyRunes('/'))
	require.True(t, m.searching)

	for _, r := range "bush" {
		m.Update(keyRunes(r))
	}
	require.Equal(t, "bush", m.query, "each keystroke applies the filter")
	require.Equal(t, []string{"Bush"}, m.CurrentView().ArtistKeys)

	m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	require.False(t, m.searching)
	require.Equal(t, "", m.query, "escape clears the filter")
	require.Len(t, m.CurrentView().ArtistKeys, 3)
}

func TestFilterDropsStaleFocus(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown}) // focus Clutch
	require.Equal(t, 2, m.navigator.Focus().ArtistIndex)

	m.Update(keyRunes('/'))
	for _, r := range "bush" {
		m.Update(keyRunes(r))
	}

	require.False(t, m.navigator.Focused(), "focused show vanished with the filter")
	require.Equal(t, domain.ModeScroll, m.Arbiter().Mode())
}

func TestKeysGoToInputWhileFiltering(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	m.Update(keyRunes('/'))
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	require.False(t, m.navigator.Focused(), "arrows edit the input, not the cursor")
	require.Equal(t, domain.ModeScroll, m.Arbiter().Mode())
}

func TestLetterJumpStaysInScrollMode(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)

	m.Update(keyRunes('C'))
	require.Equal(t, domain.ModeScroll, m.Arbiter().Mode())
	require.False(t, m.navigator.Focused(), "a jump is pointer navigation, no focus")
}

func TestCatalogLoadFailureKeepsRunning(t *testing.T) {
	t.Parallel()

	m := loadedModel(t)
	m.Update(EventMsg{Event: eventbus.CatalogLoadFailedEvent{Path: "x.csv", Err: errFake}})

	require.True(t, m.CurrentView().Empty())
	require.NotEmpty(t, m.statusMessage)
	require.NotPanics(t, func() { m.View() }, "empty view still renders")
}

var errFake = &fakeError{}

type fakeError struct{}

func (*fakeError) Error() string { return "disk gone" }
