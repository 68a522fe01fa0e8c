package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"usertable/internal/ui/input/types"
)

// SearchMode edits the query live; every keystroke re-filters the table
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

// HandleKey resets the query on esc instead of only leaving the mode
func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "esc", "ctrl+r":
		if m.textInput != nil {
			m.textInput.Reset()
		}
		return []types.Action{
			types.ResetQueryAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "up", "down":
		// Allow moving through results without leaving the search box
		dir := "up"
		if msg.String() == "down" {
			dir = "down"
		}
		return []types.Action{types.NavigateAction{Direction: dir}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
