package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"

	"usertable/internal/ui/state"
	"usertable/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state     *state.AppState
	table     *views.UserTable
	width     int
	height    int
	help      help.Model
	bindings  []key.Binding
	inputMode string
	prompt    string
	textInput *textinput.Model
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, table *views.UserTable) *ViewModel {
	return &ViewModel{
		state: appState,
		table: table,
		help:  help.New(),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetHelpBindings sets the key bindings shown in the footer
func (vm *ViewModel) SetHelpBindings(bindings []key.Binding) {
	vm.bindings = bindings
}

// SetInput sets the current input mode name, its prompt and its text input.
// An empty mode means normal mode.
func (vm *ViewModel) SetInput(mode, prompt string, ti *textinput.Model) {
	vm.inputMode = mode
	vm.prompt = prompt
	vm.textInput = ti
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	vs := views.ViewState{
		Width:         vm.width,
		Height:        vm.height,
		Loading:       vm.state.Load.IsLoading,
		Loaded:        vm.state.Loaded,
		LoadError:     vm.state.Load.LastError,
		Query:         vm.state.Search.Query,
		InputMode:     vm.inputMode,
		Prompt:        vm.prompt,
		ActiveFilters: vm.state.Search.Filters,
		TotalUsers:    vm.state.TotalUsers(),
		VisibleUsers:  len(vm.state.VisibleUsers()),
		ShowInfo:      vm.state.ShowInfo,
		InfoContent:   vm.state.InfoContent,
		StatusMessage: vm.state.StatusMessage,
	}

	if vm.inputMode != "" && vm.textInput != nil {
		vs.TextInput = vm.textInput.View()
	}
	if vm.table != nil {
		vs.Table = vm.table.View()
	}
	if len(vm.bindings) > 0 {
		vs.HelpView = vm.help.ShortHelpView(vm.bindings)
	}

	return vs
}
