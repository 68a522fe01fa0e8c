package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(12)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	entry := func(k, desc string) {
		help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(k), descStyle.Render(desc)))
	}

	help.WriteString(titleStyle.Render("usertable Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	entry("↑/↓, j/k", "Move up/down")
	entry("PgUp/PgDn", "Page up/down")
	entry("gg/G", "Go to top/bottom")
	entry("Enter, i", "Show user details")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Search"))
	help.WriteString("\n")
	entry("/", "Edit the search query (results update as you type)")
	entry("Enter", "Keep the query and return to the table")
	entry("Esc", "Clear the query and return to the table")
	entry("x, Ctrl+R", "Reset the query")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Filter fields"))
	help.WriteString("\n")
	entry("1", "Toggle Filter by Username")
	entry("2", "Toggle Filter by City")
	entry("3", "Toggle Filter by Company")
	help.WriteString("\n")

	notes := lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241"))
	help.WriteString(notes.Render("  The query is matched case-insensitively against the checked fields,"))
	help.WriteString("\n")
	help.WriteString(notes.Render("  joined with commas in the order they were checked."))
	help.WriteString("\n")
	help.WriteString(notes.Render("  With no field checked only an empty query shows users."))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	entry("r", "Reload users from the data source")
	entry("?", "Show this help")
	help.WriteString(fmt.Sprintf("  %s %s", keyStyle.Render("q"), descStyle.Render("Quit")))

	return help.String()
}

// HelpOps shows help in an external pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps() *HelpOps {
	return &HelpOps{}
}

// SetProgram sets the program reference for terminal management
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
