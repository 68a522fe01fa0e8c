package ui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"usertable/internal/config"
	"usertable/internal/eventbus"
	"usertable/internal/ui/handlers"
	"usertable/internal/ui/input"
	inputtypes "usertable/internal/ui/input/types"
	"usertable/internal/ui/logic"
	"usertable/internal/ui/services/search"
	"usertable/internal/ui/state"
	"usertable/internal/ui/viewmodels"
	"usertable/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	keys        keyMap
	inPagerMode bool // tracks if we're currently in pager mode
	saveOnQuit  bool // filters were published for saving on quit

	// Handlers
	table        *views.UserTable
	renderer     *views.Renderer
	popups       *views.PopupRenderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. bus may be nil, in which case reload and
// autosave requests are dropped.
func NewModel(bus eventbus.EventBus, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	appState := state.NewAppState(initialFilters(cfg.UISettings.DefaultFilters)...)
	styles := views.NewStyles()

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		keys:         newKeyMap(),
		table:        views.NewUserTable(styles, cfg.UISettings.ShowEmail),
		renderer:     views.NewRenderer(styles),
		popups:       views.NewPopupRenderer(styles),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(),
	}

	m.eventHandler = handlers.NewEventHandler(appState, m.syncTable)
	m.viewModel = viewmodels.NewViewModel(appState, m.table)

	return m
}

// initialFilters parses configured filter names, skipping unknown ones
func initialFilters(names []string) []logic.Field {
	filters := make([]logic.Field, 0, len(names))
	for _, name := range names {
		f, err := logic.ParseField(name)
		if err != nil {
			log.Printf("Ignoring configured filter: %v", err)
			continue
		}
		filters = append(filters, f)
	}
	return filters
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.helpOps != nil {
		m.helpOps.SetProgram(p)
	}
}

// State exposes the application state for inspection
func (m *Model) State() *state.AppState {
	return m.state
}

// SaveRequested reports whether quitting published the filters for saving
func (m *Model) SaveRequested() bool {
	return m.saveOnQuit
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetSize(msg.Width-4, msg.Height-views.ChromeHeight)

	case tea.KeyMsg:
		ctx := &input.ModelContext{
			State:  m.state,
			Cursor: m.table.Cursor(),
		}

		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		return m, tea.Batch(cmds...)

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)

	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.SetInput(m.inputHandler.CurrentModeName(), m.inputHandler.CurrentPrompt(), ti)
		m.viewModel.SetHelpBindings(m.keys.searchBindings())
	} else {
		m.viewModel.SetInput("", "", nil)
		m.viewModel.SetHelpBindings(m.keys.normalBindings())
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

// syncTable pushes the visible users into the table
func (m *Model) syncTable() {
	m.table.SetUsers(m.state.VisibleUsers())
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.table.Navigate(a.Direction)

	case inputtypes.UpdateTextAction:
		m.state.SetQuery(a.Text)
		m.syncTable()

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeSearch {
			m.state.SetQuery(a.Text)
			m.syncTable()
		}

	case inputtypes.ResetQueryAction:
		m.state.ResetQuery()
		m.inputHandler.SetText("")
		m.syncTable()

	case inputtypes.ToggleFilterAction:
		m.state.ToggleFilter(a.Field)
		m.syncTable()

	case inputtypes.ReloadAction:
		if m.state.Load.IsLoading {
			return nil
		}
		if m.bus == nil {
			log.Printf("Reload requested without an event bus")
			return nil
		}
		m.state.StartLoading()
		m.bus.Publish(eventbus.LoadRequestedEvent{Reason: "reload"})
		return tick()

	case inputtypes.ToggleInfoAction:
		if m.state.ShowInfo {
			m.state.ShowInfo = false
			m.state.InfoContent = ""
			return nil
		}
		if u, ok := m.table.Selected(); ok {
			m.state.InfoContent = m.popups.RenderUserInfo(u)
			m.state.ShowInfo = true
		}

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			log.Printf("Help pager unavailable: program not set")
			return nil
		}
		return m.fetchHelpPager(NewHelpRenderer().RenderHelpContent())

	case inputtypes.QuitAction:
		if !a.Force && m.config.UISettings.AutosaveOnExit && m.bus != nil {
			m.bus.Publish(eventbus.FiltersChangedEvent{
				Filters: search.FilterNames(m.state.Search),
			})
			m.saveOnQuit = true
		}
		return tea.Quit
	}

	return nil
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		wasLoading := m.state.Load.IsLoading
		cmd := m.eventHandler.HandleEvent(msg.Event)
		if !wasLoading && m.state.Load.IsLoading {
			// Restart the spinner for loads not started from a key
			return m, tea.Batch(cmd, tick())
		}
		return m, cmd

	case tickMsg:
		// The spinner only needs frames while a load is running
		if m.inPagerMode || !m.state.Load.IsLoading {
			return m, nil
		}
		return m, tick()

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case handlers.ClearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		return m, nil
	}
}

// tick returns a command that sends a tick message after a delay
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
