package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"showgrip/internal/domain"
	"showgrip/internal/eventbus"
)

// LoaderService reads the master catalog CSV produced by the scan
// pipeline and publishes the result on the bus. A failed read leaves
// the application running on an empty catalog.
type LoaderService interface {
	StartLoad(ctx context.Context, path string) error
}

// loaderService is the concrete implementation
type loaderService struct {
	bus       eventbus.EventBus
	ctx       context.Context
	mu        sync.Mutex
	isLoading bool
}

// NewLoaderService creates a new loader service. ctx bounds the
// lifetime of all loads started through the bus.
func NewLoaderService(ctx context.Context, bus eventbus.EventBus) LoaderService {
	ls := &loaderService{
		bus: bus,
		ctx: ctx,
	}

	// Subscribe to load requests
	bus.Subscribe(eventbus.EventCatalogLoadRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CatalogLoadRequestedEvent); ok {
			go ls.StartLoad(ls.ctx, event.Path)
		}
	})

	return ls
}

// StartLoad reads and parses the catalog file in the background
func (ls *loaderService) StartLoad(ctx context.Context, path string) error {
	ls.mu.Lock()
	if ls.isLoading {
		ls.mu.Unlock()
		return fmt.Errorf("load already in progress")
	}
	ls.isLoading = true
	ls.mu.Unlock()

	ls.bus.Publish(eventbus.CatalogLoadStartedEvent{Path: path})

	go func() {
		defer func() {
			ls.mu.Lock()
			ls.isLoading = false
			ls.mu.Unlock()
		}()

		if ctx.Err() != nil {
			return
		}

		f, err := os.Open(path)
		if err != nil {
			log.Printf("Loader: cannot open catalog %s: %v", path, err)
			ls.bus.Publish(eventbus.CatalogLoadFailedEvent{Path: path, Err: err})
			return
		}
		defer f.Close()

		shows, err := ParseCatalog(f)
		if err != nil {
			log.Printf("Loader: cannot parse catalog %s: %v", path, err)
			ls.bus.Publish(eventbus.CatalogLoadFailedEvent{Path: path, Err: err})
			return
		}

		select {
		case <-ctx.Done():
			return
		default:
		}

		log.Printf("Loader: loaded %d shows from %s", len(shows), path)
		ls.bus.Publish(eventbus.CatalogLoadedEvent{Path: path, Shows: shows})
	}()

	return nil
}

// ParseCatalog parses the master CSV. The format is tolerant: columns
// are matched by header name, unknown columns are ignored, missing
// columns and short rows yield empty fields. A show is never dropped
// for missing data.
func ParseCatalog(r io.Reader) ([]domain.Show, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows from older merges can be short

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var shows []domain.Show
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// One malformed line is not worth losing the catalog over
			log.Printf("Loader: skipping malformed row: %v", err)
			continue
		}
		shows = append(shows, domain.Show{
			ShowID:          field(row, "ShowID"),
			Artist:          field(row, "Artist"),
			ShowDate:        field(row, "ShowDate"),
			EventOrFestival: field(row, "EventOrFestival"),
			VenueName:       field(row, "VenueName"),
			City:            field(row, "City"),
			Country:         field(row, "Country"),
			RecordingType:   field(row, "RecordingType"),
			Container:       field(row, "Container"),
			MasterDriveName: field(row, "MasterDriveName"),
			FolderName:      field(row, "FolderName"),
			Setlist:         field(row, "Setlist"),
			Notes:           field(row, "Notes"),
			TotalSizeHuman:  field(row, "TotalSizeHuman"),
		})
	}

	return shows, nil
}
