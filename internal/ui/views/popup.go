package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"usertable/internal/domain"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centers the popup over the screen
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)
	if width <= 0 || height <= 0 {
		return mainContent + "\n" + styledPopup
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, styledPopup,
		lipgloss.WithWhitespaceChars(" "))
}

// RenderUserInfo builds the detail popup content for a user
func (pr *PopupRenderer) RenderUserInfo(u domain.User) string {
	var b strings.Builder

	b.WriteString(pr.styles.Title.Render(u.Username))
	b.WriteString("\n\n")

	line := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(pr.styles.InfoLabel.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	if u.ID != 0 {
		line("ID", fmt.Sprintf("%d", u.ID))
	}
	line("Name", u.Name)
	line("Email", u.Email)
	line("Phone", u.Phone)
	line("Website", u.Website)

	addr := strings.TrimSpace(strings.Join(nonEmpty(u.Address.Street, u.Address.Suite), ", "))
	line("Address", addr)
	line("City", strings.TrimSpace(u.Address.City+" "+u.Address.Zipcode))
	line("Company", u.Company.Name)
	if u.Company.CatchPhrase != "" {
		line("", pr.styles.Dim.Render(u.Company.CatchPhrase))
	}

	b.WriteString("\n")
	b.WriteString(pr.styles.Help.Render("esc to close"))
	return b.String()
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
