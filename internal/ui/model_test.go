package ui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"usertable/internal/config"
	"usertable/internal/domain"
	"usertable/internal/eventbus"
	"usertable/internal/ui/logic"
)

func fixtureUsers() []domain.User {
	return []domain.User{
		{ID: 1, Name: "Leanne Graham", Username: "Bret", Address: domain.Address{City: "Gwenborough"}, Company: domain.Company{Name: "Romaguera-Crona"}},
		{ID: 2, Name: "Ervin Howell", Username: "Antonette", Address: domain.Address{City: "Wisokyburgh"}, Company: domain.Company{Name: "Deckow-Crist"}},
		{ID: 3, Name: "Clementine Bauch", Username: "Samantha", Address: domain.Address{City: "McKenziehaven"}, Company: domain.Company{Name: "Romaguera-Jacobson"}},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newLoadedModel(t *testing.T, bus eventbus.EventBus, cfg *config.Config) *Model {
	t.Helper()
	m := NewModel(bus, cfg)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m.Update(EventMsg{Event: eventbus.UsersLoadedEvent{Users: fixtureUsers()}})
	require.Len(t, m.State().VisibleUsers(), 3)
	return m
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(runes(string(r)))
	}
}

func usernames(users []domain.User) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u.Username)
	}
	return out
}

func TestNewModelUsesConfiguredFilters(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UISettings.DefaultFilters = []string{"city", "bogus", "Company"}

	m := NewModel(nil, cfg)

	assert.Equal(t, []logic.Field{logic.FieldCity, logic.FieldCompany}, m.State().Search.Filters)
}

func TestViewBeforeFirstResize(t *testing.T) {
	m := NewModel(nil, nil)
	assert.Equal(t, "Loading...", m.View())
}

func TestLiveSearchFiltersRows(t *testing.T) {
	m := newLoadedModel(t, nil, config.DefaultConfig())

	m.Update(runes("/"))
	typeText(m, "bre")

	assert.Equal(t, "bre", m.State().Search.Query)
	assert.Equal(t, []string{"Bret"}, usernames(m.State().VisibleUsers()))

	u, ok := m.table.Selected()
	require.True(t, ok)
	assert.Equal(t, "Bret", u.Username)
}

func TestEnterKeepsQueryAndEscResetsIt(t *testing.T) {
	m := newLoadedModel(t, nil, config.DefaultConfig())

	m.Update(runes("/"))
	typeText(m, "an")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "an", m.State().Search.Query)
	assert.Nil(t, m.inputHandler.TextInput())
	assert.Equal(t, []string{"Antonette", "Samantha"}, usernames(m.State().VisibleUsers()))

	m.Update(runes("/"))
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Empty(t, m.State().Search.Query)
	assert.Len(t, m.State().VisibleUsers(), 3)
}

func TestToggleFilterReappliesQuery(t *testing.T) {
	m := newLoadedModel(t, nil, config.DefaultConfig())

	m.Update(runes("/"))
	typeText(m, "romaguera")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.State().VisibleUsers())

	m.Update(runes("3"))
	assert.Equal(t, []string{"Bret", "Samantha"}, usernames(m.State().VisibleUsers()))

	m.Update(runes("1"))
	assert.Equal(t, []logic.Field{logic.FieldCompany}, m.State().Search.Filters)
	assert.Len(t, m.State().VisibleUsers(), 2)

	m.Update(runes("x"))
	assert.Empty(t, m.State().Search.Query)
	assert.Len(t, m.State().VisibleUsers(), 3)
}

func TestLoadFailureShowsError(t *testing.T) {
	m := NewModel(nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(EventMsg{Event: eventbus.LoadStartedEvent{URL: "http://example.invalid"}})
	m.Update(EventMsg{Event: eventbus.UsersLoadFailedEvent{Err: errors.New("data load failure: boom")}})

	assert.False(t, m.State().Load.IsLoading)
	assert.Empty(t, m.State().VisibleUsers())
	assert.Contains(t, m.View(), "Could not load users")
}

func TestReloadPublishesLoadRequested(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventLoadRequested, func(e eventbus.DomainEvent) { got <- e })

	m := newLoadedModel(t, bus, config.DefaultConfig())
	m.Update(runes("r"))
	assert.True(t, m.State().Load.IsLoading)

	select {
	case e := <-got:
		assert.Equal(t, "reload", e.(eventbus.LoadRequestedEvent).Reason)
	case <-time.After(time.Second):
		t.Fatal("load request not published")
	}

	// A second press while loading is ignored
	m.Update(runes("r"))
	select {
	case <-got:
		t.Fatal("duplicate load request")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestLateLoadStartedDoesNotStickLoading(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventLoadRequested, func(e eventbus.DomainEvent) { got <- e })

	m := NewModel(bus, config.DefaultConfig())
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	// Outcome delivered before the start of the same attempt
	m.Update(EventMsg{Event: eventbus.UsersLoadedEvent{Users: fixtureUsers(), Attempt: 1}})
	m.Update(EventMsg{Event: eventbus.LoadStartedEvent{URL: "http://stub/users", Attempt: 1}})

	assert.False(t, m.State().Load.IsLoading)
	assert.Len(t, m.State().VisibleUsers(), 3)

	m.Update(runes("r"))
	select {
	case e := <-got:
		assert.Equal(t, "reload", e.(eventbus.LoadRequestedEvent).Reason)
	case <-time.After(time.Second):
		t.Fatal("reload not published")
	}

	// The next attempt starts and finishes normally
	m.Update(EventMsg{Event: eventbus.LoadStartedEvent{URL: "http://stub/users", Attempt: 2}})
	assert.True(t, m.State().Load.IsLoading)
	m.Update(EventMsg{Event: eventbus.UsersLoadFailedEvent{Err: errors.New("boom"), Attempt: 2}})
	assert.False(t, m.State().Load.IsLoading)
	assert.Equal(t, 2, m.State().Load.Finished)
}

func TestReloadKeepsQuery(t *testing.T) {
	m := newLoadedModel(t, nil, config.DefaultConfig())
	m.Update(runes("/"))
	typeText(m, "sam")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m.Update(EventMsg{Event: eventbus.UsersLoadedEvent{Users: fixtureUsers()}})

	assert.Equal(t, []string{"Samantha"}, usernames(m.State().VisibleUsers()))
	assert.Equal(t, "Reloaded 3 users", m.State().StatusMessage)
}

func TestInfoPopup(t *testing.T) {
	m := newLoadedModel(t, nil, config.DefaultConfig())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.State().ShowInfo)
	assert.Contains(t, m.State().InfoContent, "Antonette")
	assert.Contains(t, m.View(), "Ervin Howell")

	// Other keys are swallowed while the popup is open
	m.Update(runes("3"))
	assert.Equal(t, []logic.Field{logic.FieldUsername}, m.State().Search.Filters)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.State().ShowInfo)
}

func TestQuitPublishesFiltersWhenAutosaving(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 1)
	bus.Subscribe(eventbus.EventFiltersChanged, func(e eventbus.DomainEvent) { got <- e })

	cfg := config.DefaultConfig()
	cfg.UISettings.AutosaveOnExit = true
	m := newLoadedModel(t, bus, cfg)
	m.Update(runes("2"))

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.True(t, m.SaveRequested())

	select {
	case e := <-got:
		assert.Equal(t, []string{"username", "city"}, e.(eventbus.FiltersChangedEvent).Filters)
	case <-time.After(time.Second):
		t.Fatal("filters not published")
	}
}

func TestForceQuitSkipsSave(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UISettings.AutosaveOnExit = true
	m := newLoadedModel(t, nil, cfg)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.False(t, m.SaveRequested())
}

func TestViewShowsChrome(t *testing.T) {
	m := newLoadedModel(t, nil, config.DefaultConfig())
	out := m.View()

	assert.Contains(t, out, "Filter by Username")
	assert.Contains(t, out, "3 of 3 users")
	assert.Contains(t, out, "Bret")
}
