package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"usertable/internal/ui/logic"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Loading       bool
	Loaded        bool
	LoadError     string
	Query         string
	InputMode     string // "" in normal mode
	Prompt        string // label in front of TextInput
	TextInput     string // rendered text input when InputMode is set
	ActiveFilters []logic.Field
	TotalUsers    int
	VisibleUsers  int
	Table         string
	ShowInfo      bool
	InfoContent   string
	StatusMessage string
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the style set used by the renderer
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// ChromeHeight is the number of lines the renderer uses around the table
const ChromeHeight = 12

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitle(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderSearchLine(state))
	content.WriteString("\n")
	content.WriteString(r.RenderCheckboxes(state.ActiveFilters))
	content.WriteString("\n\n")

	content.WriteString(r.renderBody(state))
	content.WriteString("\n\n")

	content.WriteString(r.renderStatusLine(state))
	content.WriteString("\n")
	if state.HelpView != "" {
		content.WriteString(state.HelpView)
	} else {
		content.WriteString(r.styles.Help.Render("Press ? for help"))
	}

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	finalContent := mainStyle.Render(content.String())

	if state.ShowInfo && state.InfoContent != "" {
		return r.popupRender.RenderPopupOverlay(finalContent, state.InfoContent, state.Height, state.Width, r.styles.InfoBox)
	}

	return finalContent
}

func (r *Renderer) renderTitle(state ViewState) string {
	logo := r.styles.Title.Render("usertable")

	indicators := []string{}
	if state.Loading {
		spinner := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
		frame := int(time.Now().UnixMilli()/80) % len(spinner)
		indicators = append(indicators, r.styles.Dim.Render(fmt.Sprintf("%s Loading users", spinner[frame])))
	}
	if state.Query != "" {
		indicators = append(indicators, r.styles.Query.Render(fmt.Sprintf("[Query: %s]", state.Query)))
	}
	if len(indicators) == 0 {
		return logo
	}

	right := strings.Join(indicators, "  ")
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderSearchLine(state ViewState) string {
	if state.InputMode != "" {
		prompt := state.Prompt
		if prompt == "" {
			prompt = "Search: "
		}
		return r.styles.Prompt.Render(prompt) + state.TextInput
	}
	if state.Query == "" {
		return r.styles.Dim.Render("Search: (press / to search)")
	}
	return r.styles.Prompt.Render("Search: ") + r.styles.Query.Render(state.Query) +
		r.styles.Dim.Render("  (x to reset)")
}

// RenderCheckboxes renders one checkbox per filter field with its hotkey
func (r *Renderer) RenderCheckboxes(active []logic.Field) string {
	parts := make([]string, 0, len(logic.AllFields))
	for i, f := range logic.AllFields {
		on := false
		for _, a := range active {
			if a == f {
				on = true
				break
			}
		}

		box := r.styles.CheckboxOff.Render("[ ]")
		if on {
			box = r.styles.CheckboxOn.Render("[x]")
		}
		key := r.styles.HotKey.Render(fmt.Sprintf("%d", i+1))
		parts = append(parts, fmt.Sprintf("%s %s Filter by %s", key, box, f.Label()))
	}
	return strings.Join(parts, "   ")
}

func (r *Renderer) renderBody(state ViewState) string {
	switch {
	case state.LoadError != "" && !state.Loaded:
		return r.styles.StatusError.Render("Could not load users: "+state.LoadError) + "\n" +
			r.styles.Dim.Render("Press r to retry.")
	case !state.Loaded && state.Loading:
		return r.styles.Dim.Render("Fetching users...")
	case state.TotalUsers == 0 && state.Loaded:
		return r.styles.Dim.Render("The data source returned no users. Press r to reload.")
	case state.VisibleUsers == 0 && state.Query != "" && len(state.ActiveFilters) == 0:
		return r.styles.Dim.Render("No users match. Select a field with 1, 2 or 3 to search in.")
	case state.VisibleUsers == 0 && state.Query != "":
		return r.styles.Dim.Render(fmt.Sprintf("No users match %q.", state.Query))
	default:
		return state.Table
	}
}

func (r *Renderer) renderStatusLine(state ViewState) string {
	var parts []string
	if state.Loaded {
		parts = append(parts, r.styles.Status.Render(fmt.Sprintf("%d of %d users", state.VisibleUsers, state.TotalUsers)))
	}
	if state.LoadError != "" && state.Loaded {
		parts = append(parts, r.styles.StatusError.Render("Reload failed: "+state.LoadError))
	}
	if state.StatusMessage != "" {
		parts = append(parts, r.styles.StatusSuccess.Render(state.StatusMessage))
	}
	return strings.Join(parts, "  ")
}
