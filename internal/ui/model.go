package ui

import (
	"log"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"showgrip/internal/arbiter"
	"showgrip/internal/catalog"
	"showgrip/internal/config"
	"showgrip/internal/domain"
	"showgrip/internal/eventbus"
	"showgrip/internal/nav"
	"showgrip/internal/scrollspy"
	"showgrip/internal/ui/views"
	"showgrip/internal/view"
)

// frameInterval paces coalesced scroll-spy measurement passes; one
// pass per frame at most.
const frameInterval = time.Second / 60

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config

	store *catalog.Store
	view  domain.View
	query string

	spy       *scrollspy.Service
	navigator *nav.Navigator
	arb       *arbiter.Arbiter

	renderer *views.Renderer
	pager    *PagerOps

	width  int
	height int

	viewportOffset int
	anchors        map[string]scrollspy.Rect
	contentHeight  int

	searchInput textinput.Model
	searching   bool
	jumpInput   textinput.Model
	jumping     bool
	inPager     bool

	keys     keyMap
	helpView help.Model

	sortMode      int
	loading       bool
	statusMessage string

	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	searchInput := textinput.New()
	searchInput.Placeholder = "artist, venue, year… or field:value"
	searchInput.CharLimit = 120

	jumpInput := textinput.New()
	jumpInput.Placeholder = "artist name"
	jumpInput.CharLimit = 60

	m := &Model{
		bus:         bus,
		config:      cfg,
		store:       catalog.NewStore(),
		navigator:   nav.New(),
		renderer:    views.NewRenderer(),
		pager:       NewPagerOps(),
		searchInput: searchInput,
		jumpInput:   jumpInput,
		keys:        defaultKeyMap,
		helpView:    help.New(),
		anchors:     make(map[string]scrollspy.Rect),
		loading:     true,
	}

	delay := time.Duration(cfg.UISettings.CommitDelayMS) * time.Millisecond
	m.spy = scrollspy.NewService(m, delay)
	m.arb = arbiter.New(m.spy, m.navigator, bus)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Arbiter exposes the mode arbiter (tests)
func (m *Model) Arbiter() *arbiter.Arbiter { return m.arb }

// CurrentView exposes the derived view (tests)
func (m *Model) CurrentView() domain.View { return m.view }

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView.Width = msg.Width
		m.rebuildLayout()
		m.clampViewport()
		return m, m.scheduleMeasure()

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case frameMsg:
		if gen, arm := m.spy.Measure(); arm {
			return m, armCommitTimer(m.spy.Delay(), gen)
		}
		return m, nil

	case commitTimerMsg:
		m.spy.FireCommit(msg.gen)
		return m, nil

	case pagerDoneMsg:
		m.inPager = false
		if msg.err != nil {
			log.Printf("UI: pager error: %v", msg.err)
			m.statusMessage = "pager failed: " + msg.err.Error()
		}
		return m, nil

	case EventMsg:
		return m.handleEvent(msg.Event)
	}

	return m, nil
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case eventbus.CatalogLoadStartedEvent:
		m.loading = true
		m.statusMessage = ""
		return m, nil

	case eventbus.CatalogLoadedEvent:
		m.loading = false
		m.store.Replace(e.Shows)
		return m, m.recomputeView()

	case eventbus.CatalogLoadFailedEvent:
		// Keep running on an empty catalog
		m.loading = false
		m.statusMessage = "catalog load failed: " + e.Err.Error()
		m.store.Replace(nil)
		return m, m.recomputeView()
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The detail pager owns the terminal; nothing to do here
	if m.inPager {
		return m, nil
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.jumping {
		return m.handleJumpKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "/":
		m.searching = true
		m.searchInput.SetValue(m.query)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case "g":
		m.jumping = true
		m.jumpInput.SetValue("")
		return m, m.jumpInput.Focus()

	case "s":
		m.sortMode = (m.sortMode + 1) % 3
		return m, m.recomputeView()

	case "r":
		m.bus.Publish(eventbus.CatalogLoadRequestedEvent{Path: m.config.CatalogPath})
		return m, nil

	case "?":
		m.inPager = true
		return m, m.openPager(renderHelpContent())

	case "up", "k":
		m.keyboardMove(nav.DirectionUp)
		return m, nil
	case "down", "j":
		m.keyboardMove(nav.DirectionDown)
		return m, nil
	case "left", "h":
		m.keyboardMove(nav.DirectionLeft)
		return m, nil
	case "right", "l":
		m.keyboardMove(nav.DirectionRight)
		return m, nil

	case "enter":
		return m.handleEnter()
	}

	// Uppercase letters are the letter index: jump to the first artist
	// starting with that letter
	if s := msg.String(); len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		return m, m.letterJump(s)
	}

	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, m.applyQuery("")
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// Live filtering: every keystroke recomputes the view
	if applied := m.applyQuery(m.searchInput.Value()); applied != nil {
		return m, tea.Batch(cmd, applied)
	}
	return m, cmd
}

func (m *Model) handleJumpKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.jumping = false
		m.jumpInput.Blur()
		return m, nil
	case "enter":
		m.jumping = false
		m.jumpInput.Blur()
		q := strings.TrimSpace(m.jumpInput.Value())
		if q == "" {
			return m, nil
		}
		ranks := fuzzy.RankFindNormalizedFold(q, m.view.ArtistKeys)
		if len(ranks) == 0 {
			m.statusMessage = "no artist matches " + q
			return m, nil
		}
		sort.Sort(ranks)
		return m, m.jumpToArtist(ranks[0].OriginalIndex)
	}

	var cmd tea.Cmd
	m.jumpInput, cmd = m.jumpInput.Update(msg)
	return m, cmd
}

func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.view.Empty() {
		return m, nil
	}

	if !m.navigator.Focused() {
		// First Enter only establishes the cursor, like the arrows
		m.arb.EnterKeyboard()
		if eff, changed := m.navigator.EnsureFocused(); changed {
			m.publishFocus()
			if eff.ScrollIntoView {
				m.scrollFocusIntoView()
			}
		}
		return m, nil
	}

	show, ok := m.navigator.Activate()
	if !ok {
		return m, nil
	}
	m.bus.Publish(eventbus.ShowActivatedEvent{Show: show})
	m.inPager = true
	return m, m.openPager(buildDetailContent(show))
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.inPager {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.arb.Wheel()
		m.viewportOffset -= m.config.UISettings.WheelLines
		m.clampViewport()
		return m, m.scheduleMeasure()

	case tea.MouseButtonWheelDown:
		m.arb.Wheel()
		m.viewportOffset += m.config.UISettings.WheelLines
		m.clampViewport()
		return m, m.scheduleMeasure()
	}

	// Any press is pointer navigation: drop focus, scroll authority
	if msg.Action == tea.MouseActionPress {
		m.arb.Pointer()
		return m, m.scheduleMeasure()
	}

	return m, nil
}

// keyboardMove routes one arrow key through the navigator. Keyboard
// input wins over any pending scroll commit in the same turn.
func (m *Model) keyboardMove(dir nav.Direction) {
	if m.view.Empty() {
		return
	}
	m.arb.EnterKeyboard()
	eff, changed := m.navigator.Move(dir)
	if changed {
		m.publishFocus()
	}
	if eff.ScrollIntoView {
		m.scrollFocusIntoView()
	}
}

func (m *Model) publishFocus() {
	if f := m.navigator.Focus(); f != nil {
		p := *f
		m.bus.Publish(eventbus.FocusChangedEvent{Focus: &p})
	} else {
		m.bus.Publish(eventbus.FocusChangedEvent{})
	}
}

// scrollFocusIntoView centers the focused artist's section in the
// viewport and opens the wheel grace window so the jump does not
// knock us out of keyboard mode.
func (m *Model) scrollFocusIntoView() {
	f := m.navigator.Focus()
	if f == nil || f.ArtistIndex >= len(m.view.ArtistKeys) {
		return
	}
	key := m.view.ArtistKeys[f.ArtistIndex]
	rect, ok := m.anchors[key]
	if !ok {
		return
	}
	m.viewportOffset = rect.Center() - m.listHeight()/2
	m.clampViewport()
	m.arb.NoteScrollIntoView()

	showID := ""
	if s, ok := m.view.ShowAt(*f); ok {
		showID = s.ShowID
	}
	m.bus.Publish(eventbus.ScrollIntoViewEvent{ArtistKey: key, ShowID: showID})
}

// letterJump moves to the first artist whose name starts with the
// letter; behaves exactly like pointer navigation
func (m *Model) letterJump(letter string) tea.Cmd {
	for i, key := range m.view.ArtistKeys {
		if strings.HasPrefix(strings.ToUpper(key), letter) {
			return m.jumpToArtist(i)
		}
	}
	return nil
}

func (m *Model) jumpToArtist(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.view.ArtistKeys) {
		return nil
	}
	m.arb.Pointer()
	key := m.view.ArtistKeys[idx]
	if rect, ok := m.anchors[key]; ok {
		m.viewportOffset = rect.Center() - m.listHeight()/2
		m.clampViewport()
	}
	m.bus.Publish(eventbus.JumpRequestedEvent{ArtistKey: key})
	return m.scheduleMeasure()
}

// applyQuery recomputes the view when the query text changed
func (m *Model) applyQuery(q string) tea.Cmd {
	if q == m.query {
		return nil
	}
	m.query = q
	m.bus.Publish(eventbus.QueryChangedEvent{Query: q})
	return m.recomputeView()
}

func (m *Model) comparator() view.Comparator {
	switch m.sortMode {
	case 1:
		return view.ByDateAsc
	case 2:
		return view.ByEvent
	default:
		return view.ByDateDesc
	}
}

// recomputeView rebuilds the derived view atomically and revalidates
// everything hanging off it: focus, scroll-spy keys, layout
func (m *Model) recomputeView() tea.Cmd {
	var beforeID string
	if s, ok := m.navigator.Activate(); ok {
		beforeID = s.ShowID
	}

	m.view = view.Compute(m.store.Shows(), m.query, m.comparator())

	dropped := m.navigator.SetView(m.view)
	if !dropped && m.navigator.Focused() && beforeID != "" {
		// Same indices can point at a different show after a filter;
		// a focus that no longer names the same show is stale
		if s, ok := m.navigator.Activate(); !ok || s.ShowID != beforeID {
			m.navigator.Reset()
			dropped = true
		}
	}
	if dropped {
		m.arb.FocusLost()
		m.publishFocus()
	}

	m.spy.SetKeys(m.view.ArtistKeys)
	m.arb.SyncCenter()
	m.rebuildLayout()
	m.clampViewport()

	m.bus.Publish(eventbus.ViewRecomputedEvent{
		Artists: len(m.view.ArtistKeys),
		Shows:   m.store.Len(),
	})

	return m.scheduleMeasure()
}

// rebuildLayout recomputes anchor rects. Sections have a fixed height
// so this is pure arithmetic over the key list.
func (m *Model) rebuildLayout() {
	m.anchors = make(map[string]scrollspy.Rect, len(m.view.ArtistKeys))
	for i, key := range m.view.ArtistKeys {
		m.anchors[key] = scrollspy.Rect{Top: i * views.SectionHeight, Height: views.SectionHeight}
	}
	m.contentHeight = len(m.view.ArtistKeys) * views.SectionHeight
}

func (m *Model) listHeight() int {
	h := m.height - views.ChromeHeight
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) clampViewport() {
	maxOffset := m.contentHeight - m.listHeight()
	if maxOffset < 0 {
		maxOffset = 0
	}
	if m.viewportOffset > maxOffset {
		m.viewportOffset = maxOffset
	}
	if m.viewportOffset < 0 {
		m.viewportOffset = 0
	}
}

// scheduleMeasure coalesces measurement requests to one pending frame
func (m *Model) scheduleMeasure() tea.Cmd {
	if !m.spy.Schedule() {
		return nil
	}
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func armCommitTimer(delay time.Duration, gen int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg { return commitTimerMsg{gen: gen} })
}

func (m *Model) openPager(content string) tea.Cmd {
	return func() tea.Msg {
		err := m.pager.ShowInPager(content)
		return pagerDoneMsg{err: err}
	}
}

// LayoutProvider implementation for the scroll-spy

// AnchorRect returns the rendered extent of an artist section
func (m *Model) AnchorRect(artistKey string) (scrollspy.Rect, bool) {
	r, ok := m.anchors[artistKey]
	return r, ok
}

// Viewport returns the scrolling window over the content
func (m *Model) Viewport() scrollspy.Rect {
	return scrollspy.Rect{Top: m.viewportOffset, Height: m.listHeight()}
}

// ContentHeight returns the total content height in rows
func (m *Model) ContentHeight() int {
	return m.contentHeight
}

// View implements tea.Model
func (m *Model) View() string {
	state := m.viewState()

	if m.view.Empty() {
		return m.renderer.RenderEmpty(state)
	}

	focus := m.navigator.Focus()
	current := m.arb.CurrentArtistIndex()

	lines := make([]string, 0, m.contentHeight)
	for i, key := range m.view.ArtistKeys {
		opts := views.SectionOpts{
			Current:   i == current,
			FocusShow: -1,
			Width:     m.width,
			ShowSizes: m.config.UISettings.ShowSizes,
		}
		if focus != nil && focus.ArtistIndex == i {
			opts.FocusShow = focus.ShowIndex
		}
		lines = append(lines, m.renderer.Artist().RenderSection(key, m.view.Groups[key], opts)...)
	}

	start := m.viewportOffset
	if start > len(lines) {
		start = len(lines)
	}
	end := start + m.listHeight()
	if end > len(lines) {
		end = len(lines)
	}
	visible := make([]string, end-start)
	copy(visible, lines[start:end])

	return m.renderer.RenderScreen(state, visible, start > 0, end < len(lines))
}

func (m *Model) viewState() views.ViewState {
	state := views.ViewState{
		Width:              m.width,
		Height:             m.height,
		View:               m.view,
		CurrentArtistIndex: m.arb.CurrentArtistIndex(),
		Focus:              m.navigator.Focus(),
		Mode:               m.arb.Mode(),
		Query:              m.query,
		TotalShows:         m.store.Len(),
		Loading:            m.loading,
		StatusMessage:      m.statusMessage,
		HelpLine:           m.helpView.View(m.keys),
	}
	if m.searching {
		state.InputActive = true
		state.InputLabel = "filter:"
		state.InputView = m.searchInput.View()
	} else if m.jumping {
		state.InputActive = true
		state.InputLabel = "jump:"
		state.InputView = m.jumpInput.View()
	}
	return state
}
