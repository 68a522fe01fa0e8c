package views

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Query         lipgloss.Style
	Prompt        lipgloss.Style
	CheckboxOn    lipgloss.Style
	CheckboxOff   lipgloss.Style
	HotKey        lipgloss.Style
	InfoBox       lipgloss.Style
	InfoLabel     lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Highlight     lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	Table         table.Styles
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("241")).
		BorderBottom(true).
		Bold(true)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("238")).
		Bold(false)

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")),
		Query:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
		CheckboxOn:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		CheckboxOff: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HotKey:      lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("99")),
		InfoLabel: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Width(10),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Table:         tableStyles,
	}
}
