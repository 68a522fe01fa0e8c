package handlers

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"usertable/internal/eventbus"
	"usertable/internal/ui/state"
)

// ClearStatusMsg clears the status line after a delay
type ClearStatusMsg struct{}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state         *state.AppState
	onUsersChange func()
}

// NewEventHandler creates a new event handler. onUsersChange runs after the
// visible rows may have changed.
func NewEventHandler(appState *state.AppState, onUsersChange func()) *EventHandler {
	return &EventHandler{
		state:         appState,
		onUsersChange: onUsersChange,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.LoadStartedEvent:
		// Handlers run concurrently, so the start of a fetch can arrive
		// after its outcome
		if e.Attempt > 0 && e.Attempt <= h.state.Load.Finished {
			log.Printf("Ignoring stale start of load attempt %d", e.Attempt)
			return nil
		}
		if !h.state.Load.IsLoading {
			h.state.StartLoading()
		}

	case eventbus.UsersLoadedEvent:
		reload := h.state.Loaded
		h.finish(e.Attempt)
		h.state.UsersLoaded(e.Users)
		if h.onUsersChange != nil {
			h.onUsersChange()
		}
		if reload {
			h.state.StatusMessage = fmt.Sprintf("Reloaded %d users", len(e.Users))
			return clearStatusAfter(3 * time.Second)
		}

	case eventbus.UsersLoadFailedEvent:
		log.Printf("Load failed: %v", e.Err)
		h.finish(e.Attempt)
		h.state.UsersLoadFailed(e.Err)
		if h.onUsersChange != nil {
			h.onUsersChange()
		}

	default:
		log.Printf("Unhandled event in UI: %s", event.Type())
	}

	return nil
}

// finish records the latest loader attempt that has completed
func (h *EventHandler) finish(attempt int) {
	if attempt > h.state.Load.Finished {
		h.state.Load.Finished = attempt
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return ClearStatusMsg{} })
}
