package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"showgrip/internal/domain"
)

// PagerOps shows long-form content in the ov pager, releasing and
// restoring the terminal around it
type PagerOps struct {
	program *tea.Program
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager displays content using the ov pager
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay so ov has fully exited before restoring
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return err
	}

	// Don't write pager contents back over our screen on exit
	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}

// buildDetailContent formats one show for the pager
func buildDetailContent(s domain.Show) string {
	var b strings.Builder

	title := s.Artist
	if title == "" {
		title = s.FolderName
	}
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")

	writeField := func(label, value string) {
		if value != "" {
			b.WriteString(fmt.Sprintf("%-12s %s\n", label+":", value))
		}
	}
	writeField("Date", s.ShowDate)
	writeField("Event", s.EventOrFestival)
	writeField("Venue", s.VenueName)
	writeField("City", s.City)
	writeField("Country", s.Country)
	writeField("Type", s.RecordingType)
	writeField("Format", s.Container)
	writeField("Drive", s.MasterDriveName)
	writeField("Folder", s.FolderName)
	writeField("Size", s.TotalSizeHuman)
	writeField("ID", s.ShowID)

	if s.Setlist != "" {
		b.WriteString("\nSetlist\n-------\n")
		b.WriteString(s.Setlist + "\n")
	}
	if s.Notes != "" {
		b.WriteString("\nNotes\n-----\n")
		b.WriteString(s.Notes + "\n")
	}

	return b.String()
}
