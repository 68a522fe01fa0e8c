package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"usertable/internal/ui/input/types"
	"usertable/internal/ui/logic"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Info popup swallows everything except its close keys
	if ctx.HasInfo() {
		switch msg.String() {
		case "esc", "i", "enter", "q":
			return []types.Action{types.ToggleInfoAction{}}, true
		case "ctrl+c":
			return []types.Action{types.QuitAction{Force: true}}, true
		}
		return nil, true
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyCtrlR:
		return []types.Action{types.ResetQueryAction{}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		if ctx.TotalItems() > 0 {
			return []types.Action{types.ToggleInfoAction{}}, true
		}
		return nil, false
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "/":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "1":
		return []types.Action{types.ToggleFilterAction{Field: logic.FieldUsername}}, true

	case "2":
		return []types.Action{types.ToggleFilterAction{Field: logic.FieldCity}}, true

	case "3":
		return []types.Action{types.ToggleFilterAction{Field: logic.FieldCompany}}, true

	case "x":
		if ctx.SearchQuery() != "" {
			return []types.Action{types.ResetQueryAction{}}, true
		}
		return nil, true

	case "r":
		if ctx.IsLoading() {
			return nil, true
		}
		return []types.Action{types.ReloadAction{}}, true

	case "i":
		if ctx.TotalItems() > 0 {
			return []types.Action{types.ToggleInfoAction{}}, true
		}
		return nil, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		m.lastKeyWasG = false
	}

	return nil, false
}
