package domain

// Show represents one concert recording in the master catalog.
// Field names mirror the master CSV columns; every field is free text
// and any of them may be empty.
type Show struct {
	ShowID          string
	Artist          string
	ShowDate        string
	EventOrFestival string
	VenueName       string
	City            string
	Country         string
	RecordingType   string
	Container       string // media format code (VOB, MKV, ...)
	MasterDriveName string // source drive the recording lives on
	FolderName      string
	Setlist         string
	Notes           string
	TotalSizeHuman  string
}

// View is the derived browse view: shows grouped by artist plus the
// lexicographically sorted artist key list. ArtistKeys always equals
// the key set of Groups and no group is ever empty. A View is replaced
// wholesale on every recompute, never patched.
type View struct {
	Groups     map[string][]Show
	ArtistKeys []string
}

// Empty reports whether the view has no artists at all.
func (v View) Empty() bool { return len(v.ArtistKeys) == 0 }

// RowLen returns the number of shows for the artist at index i,
// or 0 when i is out of range.
func (v View) RowLen(i int) int {
	if i < 0 || i >= len(v.ArtistKeys) {
		return 0
	}
	return len(v.Groups[v.ArtistKeys[i]])
}

// ShowAt returns the show at a focus position.
func (v View) ShowAt(p FocusPosition) (Show, bool) {
	if !p.Valid(v) {
		return Show{}, false
	}
	return v.Groups[v.ArtistKeys[p.ArtistIndex]][p.ShowIndex], true
}

// FocusPosition is the keyboard cursor: which artist row, which show
// within that row. Both indices are zero-based.
type FocusPosition struct {
	ArtistIndex int
	ShowIndex   int
}

// Valid reports whether the position points at an existing show in v.
func (p FocusPosition) Valid(v View) bool {
	if p.ArtistIndex < 0 || p.ArtistIndex >= len(v.ArtistKeys) {
		return false
	}
	return p.ShowIndex >= 0 && p.ShowIndex < v.RowLen(p.ArtistIndex)
}

// NavigationMode says which position source is authoritative for the
// current artist: the scroll-spy's committed center or the keyboard
// focus.
type NavigationMode int

const (
	ModeScroll NavigationMode = iota
	ModeKeyboard
)

func (m NavigationMode) String() string {
	if m == ModeKeyboard {
		return "keyboard"
	}
	return "scroll"
}
