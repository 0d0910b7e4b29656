package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelpContent generates the help text shown in the pager
func renderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder

	help.WriteString(titleStyle.Render("Showgrip Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("↑/↓, k/j"), descStyle.Render("Move between artists (column preserved)")))
	help.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render("←/→, h/l"), descStyle.Render("Move between shows in a row")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Enter"), descStyle.Render("Open show detail (sets focus first)")))
	help.WriteString(fmt.Sprintf("  %s     %s\n", keyStyle.Render("Wheel"), descStyle.Render("Scroll; leaves keyboard mode")))
	help.WriteString(fmt.Sprintf("  %s       %s\n", keyStyle.Render("A–Z"), descStyle.Render("Jump to first artist starting with letter")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("g"), descStyle.Render("Fuzzy jump to artist")))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search & Sort"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("/"), descStyle.Render("Filter shows (live)")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("s"), descStyle.Render("Cycle sort within artist (date desc/asc, event)")))
	help.WriteString("\n")
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Filter examples: venue:wembley, year:1996, type:proshot, city:auckland"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("r"), descStyle.Render("Reload catalog")))
	help.WriteString(fmt.Sprintf("  %s         %s\n", keyStyle.Render("?"), descStyle.Render("This help")))
	help.WriteString(fmt.Sprintf("  %s         %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}
