package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"showgrip/internal/domain"
)

// SectionHeight is the fixed number of rendered rows per artist
// section: header, tile row, separator. The scroll-spy's anchor
// layout depends on this staying constant regardless of styling.
const SectionHeight = 3

// SectionOpts controls how one artist section is rendered
type SectionOpts struct {
	Current   bool // this artist is the arbiter's current one
	FocusShow int  // focused show index within the row, -1 for none
	Width     int
	ShowSizes bool
}

// ArtistRenderer renders one artist section: a header line plus a
// horizontal row of show tiles
type ArtistRenderer struct {
	styles *Styles
}

// NewArtistRenderer creates a new artist renderer
func NewArtistRenderer(styles *Styles) *ArtistRenderer {
	return &ArtistRenderer{styles: styles}
}

// RenderSection renders the section for one artist. Always returns
// exactly SectionHeight lines.
func (a *ArtistRenderer) RenderSection(key string, shows []domain.Show, opts SectionOpts) []string {
	marker := "  "
	headerStyle := a.styles.ArtistHeader
	if opts.Current {
		marker = "▸ "
		headerStyle = a.styles.ArtistCurrent
	}
	header := marker + headerStyle.Render(fmt.Sprintf("%s (%d)", key, len(shows)))

	return []string{
		header,
		"  " + a.renderTileRow(shows, opts),
		"",
	}
}

// renderTileRow lays the shows out horizontally, keeping the focused
// tile visible by sliding a window of whole tiles.
func (a *ArtistRenderer) renderTileRow(shows []domain.Show, opts SectionOpts) string {
	tiles := make([]string, len(shows))
	widths := make([]int, len(shows))
	for i, s := range shows {
		label := TileLabel(s, opts.ShowSizes)
		style := a.styles.Tile
		if i == opts.FocusShow {
			style = a.styles.TileFocused
		}
		tiles[i] = style.Render("[" + label + "]")
		widths[i] = lipgloss.Width(tiles[i]) + 1 // separating space
	}

	avail := opts.Width - 4 // header indent plus ellipsis room
	if avail < 8 {
		avail = 8
	}

	start := 0
	if opts.FocusShow > 0 {
		// Slide until the focused tile fits in the window
		for start < opts.FocusShow {
			w := 0
			for i := start; i <= opts.FocusShow; i++ {
				w += widths[i]
			}
			if w <= avail {
				break
			}
			start++
		}
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(a.styles.Dim.Render("… "))
	}
	used := 0
	clipped := false
	for i := start; i < len(tiles); i++ {
		if used+widths[i] > avail {
			clipped = true
			break
		}
		if i > start {
			b.WriteString(" ")
		}
		b.WriteString(tiles[i])
		used += widths[i]
	}
	if clipped {
		b.WriteString(a.styles.Dim.Render(" …"))
	}
	return b.String()
}

// TileLabel picks the best short label for a show. The catalog has
// plenty of rows with missing dates, so fall through the descriptive
// fields in order.
func TileLabel(s domain.Show, withSize bool) string {
	label := s.ShowDate
	if label == "" {
		label = s.EventOrFestival
	}
	if label == "" {
		label = s.FolderName
	}
	if label == "" {
		label = s.ShowID
	}
	if label == "" {
		label = "untitled"
	}
	if withSize && s.TotalSizeHuman != "" {
		label += " · " + s.TotalSizeHuman
	}
	return label
}
