package views

import (
	"fmt"
	"strings"

	"showgrip/internal/domain"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width              int
	Height             int
	View               domain.View
	CurrentArtistIndex int
	Focus              *domain.FocusPosition
	Mode               domain.NavigationMode
	Query              string
	TotalShows         int
	Loading            bool
	StatusMessage      string
	InputActive        bool
	InputLabel         string
	InputView          string // rendered textinput
	HelpLine           string // rendered bubbles help
}

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	artistRender *ArtistRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		artistRender: NewArtistRenderer(styles),
	}
}

// Styles exposes the style set for callers that render fragments
func (r *Renderer) Styles() *Styles { return r.styles }

// Artist exposes the section renderer
func (r *Renderer) Artist() *ArtistRenderer { return r.artistRender }

// ChromeHeight is the number of rows the renderer reserves outside
// the scrolling list: title, query line, status bar, help hint.
const ChromeHeight = 4

// RenderScreen composes the full frame around the pre-sliced list
// rows.
func (r *Renderer) RenderScreen(state ViewState, listRows []string, moreAbove, moreBelow bool) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render("showgrip"))
	if state.Loading {
		b.WriteString("  " + r.styles.StatusLoading.Render("loading catalog…"))
	}
	b.WriteString("\n")

	b.WriteString(r.renderQueryLine(state))
	b.WriteString("\n")

	rows := listRows
	if moreAbove && len(rows) > 0 {
		rows[0] = r.styles.Scroll.Render("↑ (more above)")
	}
	if moreBelow && len(rows) > 0 {
		rows[len(rows)-1] = r.styles.Scroll.Render("↓ (more below)")
	}
	b.WriteString(strings.Join(rows, "\n"))
	b.WriteString("\n")

	b.WriteString(r.renderStatusBar(state))
	b.WriteString("\n")
	b.WriteString(r.renderHelpLine(state))

	return b.String()
}

func (r *Renderer) renderHelpLine(state ViewState) string {
	if state.HelpLine != "" {
		return state.HelpLine
	}
	return r.styles.Help.Render("arrows navigate · enter detail · / filter · g jump · s sort · ? help · q quit")
}

func (r *Renderer) renderQueryLine(state ViewState) string {
	if state.InputActive {
		return fmt.Sprintf("%s %s", r.styles.Filter.Render(state.InputLabel), state.InputView)
	}
	if state.Query != "" {
		return r.styles.Filter.Render("filter: " + state.Query)
	}
	return r.styles.Dim.Render("all shows")
}

func (r *Renderer) renderStatusBar(state ViewState) string {
	if state.StatusMessage != "" {
		return r.styles.StatusError.Render(state.StatusMessage)
	}

	current := "—"
	keys := state.View.ArtistKeys
	if state.CurrentArtistIndex >= 0 && state.CurrentArtistIndex < len(keys) {
		current = keys[state.CurrentArtistIndex]
	}
	return r.styles.Status.Render(fmt.Sprintf("%d shows · %d artists · ▸ %s · %s",
		state.TotalShows, len(keys), current, state.Mode))
}

// RenderEmpty renders the zero-artist screen; the engine must survive
// an empty view without special-casing upstream.
func (r *Renderer) RenderEmpty(state ViewState) string {
	msg := "no shows in catalog"
	if state.Query != "" {
		msg = "nothing matches " + state.Query
	}
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("showgrip"))
	b.WriteString("\n")
	b.WriteString(r.renderQueryLine(state))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render(msg))
	b.WriteString("\n")
	b.WriteString(r.renderStatusBar(state))
	return b.String()
}
