package view

import (
	"sort"
	"strings"

	"showgrip/internal/domain"
)

// fieldGetters maps recognized field: query prefixes to show
// attributes. An unrecognized prefix falls back to general search over
// the whole query string.
var fieldGetters = map[string]func(domain.Show) string{
	"artist":  func(s domain.Show) string { return s.Artist },
	"type":    func(s domain.Show) string { return s.RecordingType },
	"country": func(s domain.Show) string { return s.Country },
	"city":    func(s domain.Show) string { return s.City },
	"venue":   func(s domain.Show) string { return s.VenueName },
	"event":   func(s domain.Show) string { return s.EventOrFestival },
	"notes":   func(s domain.Show) string { return s.Notes },
	"year":    func(s domain.Show) string { return s.ShowDate },
	"source":  func(s domain.Show) string { return s.MasterDriveName },
	"format":  func(s domain.Show) string { return s.Container },
}

// searchFields are the attributes general search looks at. Dates and
// sizes are matched as raw text, never parsed.
var searchFields = []func(domain.Show) string{
	func(s domain.Show) string { return s.Artist },
	func(s domain.Show) string { return s.ShowDate },
	func(s domain.Show) string { return s.EventOrFestival },
	func(s domain.Show) string { return s.VenueName },
	func(s domain.Show) string { return s.City },
	func(s domain.Show) string { return s.Country },
	func(s domain.Show) string { return s.RecordingType },
	func(s domain.Show) string { return s.Container },
	func(s domain.Show) string { return s.MasterDriveName },
	func(s domain.Show) string { return s.FolderName },
	func(s domain.Show) string { return s.Notes },
	func(s domain.Show) string { return s.ShowID },
}

// Comparator orders shows within one artist group. Implementations
// must be deterministic for equal keys.
type Comparator func(a, b domain.Show) bool

// ByDateDesc orders newest show first. ShowDate is ISO-ish text so
// plain string comparison is enough; ShowID breaks ties so repeated
// computes stay identical.
func ByDateDesc(a, b domain.Show) bool {
	if a.ShowDate != b.ShowDate {
		return a.ShowDate > b.ShowDate
	}
	return a.ShowID < b.ShowID
}

// ByDateAsc orders oldest show first.
func ByDateAsc(a, b domain.Show) bool {
	if a.ShowDate != b.ShowDate {
		return a.ShowDate < b.ShowDate
	}
	return a.ShowID < b.ShowID
}

// ByEvent orders by event/festival name, empty names last.
func ByEvent(a, b domain.Show) bool {
	ae, be := strings.ToLower(a.EventOrFestival), strings.ToLower(b.EventOrFestival)
	if ae != be {
		if ae == "" {
			return false
		}
		if be == "" {
			return true
		}
		return ae < be
	}
	return a.ShowID < b.ShowID
}

// Compute derives the browse view from the raw show list and the
// query. Pure and deterministic: identical inputs always produce an
// identical view. less may be nil to keep catalog order within groups.
func Compute(shows []domain.Show, query string, less Comparator) domain.View {
	q := strings.ToLower(strings.TrimSpace(query))
	scoped, value := splitFieldQuery(q)

	groups := make(map[string][]domain.Show)
	var keys []string
	for _, s := range shows {
		if !matches(s, scoped, value, q) {
			continue
		}
		key := groupKey(s)
		if _, ok := groups[key]; !ok {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], s)
	}

	// Plain byte-wise ordering, deliberately not locale-aware
	sort.Strings(keys)

	if less != nil {
		for _, k := range keys {
			row := groups[k]
			sort.SliceStable(row, func(i, j int) bool { return less(row[i], row[j]) })
		}
	}

	return domain.View{Groups: groups, ArtistKeys: keys}
}

// groupKey falls back the way the scan pipeline does: a show without
// an artist is filed under its folder name.
func groupKey(s domain.Show) string {
	if s.Artist != "" {
		return s.Artist
	}
	if s.FolderName != "" {
		return s.FolderName
	}
	return "Unknown"
}

// splitFieldQuery recognizes "field:value" syntax. Returns a nil
// getter when the query is not field-scoped.
func splitFieldQuery(q string) (func(domain.Show) string, string) {
	name, value, ok := strings.Cut(q, ":")
	if !ok {
		return nil, ""
	}
	getter, ok := fieldGetters[strings.TrimSpace(name)]
	if !ok {
		return nil, ""
	}
	return getter, strings.TrimSpace(value)
}

func matches(s domain.Show, scoped func(domain.Show) string, value, q string) bool {
	if q == "" {
		return true
	}
	if scoped != nil {
		return strings.Contains(strings.ToLower(scoped(s)), value)
	}
	for _, get := range searchFields {
		if strings.Contains(strings.ToLower(get(s)), q) {
			return true
		}
	}
	return false
}
