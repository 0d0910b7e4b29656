package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"showgrip/internal/eventbus"
)

// captureBus records published events; Subscribe is a no-op.
type captureBus struct {
	events chan eventbus.DomainEvent
}

func (b *captureBus) Publish(e eventbus.DomainEvent) { b.events <- e }

func (b *captureBus) Subscribe(eventbus.EventType, eventbus.EventHandler) func() {
	return func() {}
}

func TestParseCatalogMatchesColumnsByName(t *testing.T) {
	t.Parallel()

	csv := strings.Join([]string{
		"ShowID,Artist,ShowDate,VenueName,City,Country,RecordingType,Container,TotalSizeHuman",
		"abc123,Dire Straits,1992-05-28,Stade de la Pontaise,Lausanne,Switzerland,proshot,VOB,4.3 GB",
		"def456,Shihad,1996-01-20,Powerstation,Auckland,New Zealand,audience,MKV,1.1 GB",
	}, "\n")

	shows, err := ParseCatalog(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, shows, 2)

	require.Equal(t, "Dire Straits", shows[0].Artist)
	require.Equal(t, "1992-05-28", shows[0].ShowDate)
	require.Equal(t, "VOB", shows[0].Container)
	require.Equal(t, "Shihad", shows[1].Artist)
	require.Equal(t, "New Zealand", shows[1].Country)
}

func TestParseCatalogColumnOrderIrrelevant(t *testing.T) {
	t.Parallel()

	csv := "Artist,ShowID\nPearl Jam,pj1\n"

	shows, err := ParseCatalog(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, shows, 1)
	require.Equal(t, "pj1", shows[0].ShowID)
	require.Equal(t, "Pearl Jam", shows[0].Artist)
}

func TestParseCatalogShortRowsAndMissingColumns(t *testing.T) {
	t.Parallel()

	// Rows from older catalog merges can be short; missing cells are
	// empty fields, never an error
	csv := "ShowID,Artist,City\ns1,Tool\ns2\n"

	shows, err := ParseCatalog(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, shows, 2)

	require.Equal(t, "Tool", shows[0].Artist)
	require.Equal(t, "", shows[0].City)
	require.Equal(t, "s2", shows[1].ShowID)
	require.Equal(t, "", shows[1].Artist)
	require.Equal(t, "", shows[1].VenueName, "column absent from the file entirely")
}

func TestParseCatalogTrimsWhitespace(t *testing.T) {
	t.Parallel()

	csv := "ShowID, Artist \nx1,  Mogwai  \n"

	shows, err := ParseCatalog(strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, "Mogwai", shows[0].Artist, "header and cell whitespace is trimmed")
}

func TestParseCatalogEmptyInput(t *testing.T) {
	t.Parallel()

	shows, err := ParseCatalog(strings.NewReader(""))
	require.NoError(t, err)
	require.Empty(t, shows)
}

func TestParseCatalogHeaderOnly(t *testing.T) {
	t.Parallel()

	shows, err := ParseCatalog(strings.NewReader("ShowID,Artist\n"))
	require.NoError(t, err)
	require.Empty(t, shows)
}

func TestStartLoadPublishesLoaded(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte("ShowID,Artist\n1,Tool\n"), 0644))

	bus := &captureBus{events: make(chan eventbus.DomainEvent, 8)}
	ls := &loaderService{bus: bus}
	require.NoError(t, ls.StartLoad(context.Background(), path))

	require.Equal(t, eventbus.EventCatalogLoadStarted, nextEvent(t, bus).Type())
	loaded, ok := nextEvent(t, bus).(eventbus.CatalogLoadedEvent)
	require.True(t, ok)
	require.Len(t, loaded.Shows, 1)
	require.Equal(t, "Tool", loaded.Shows[0].Artist)
}

func TestStartLoadHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte("ShowID,Artist\n1,Tool\n"), 0644))

	bus := &captureBus{events: make(chan eventbus.DomainEvent, 8)}
	ls := &loaderService{bus: bus}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, ls.StartLoad(ctx, path))

	require.Equal(t, eventbus.EventCatalogLoadStarted, nextEvent(t, bus).Type())
	select {
	case e := <-bus.events:
		t.Fatalf("load should not complete after cancellation, got %v", e.Type())
	case <-time.After(150 * time.Millisecond):
	}
}

func nextEvent(t *testing.T, bus *captureBus) eventbus.DomainEvent {
	t.Helper()
	select {
	case e := <-bus.events:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}
