package state

import (
	"usertable/internal/domain"
	"usertable/internal/ui/logic"
	"usertable/internal/ui/services/search"
)

// AppState contains all the application state
type AppState struct {
	// Search state, replaced on every transition
	Search search.State

	// Data source state
	Load   domain.LoadProgress
	Loaded bool // at least one load has completed successfully

	// UI state
	ShowInfo      bool
	InfoContent   string
	StatusMessage string
}

// NewAppState creates a new application state with the given initial filters
func NewAppState(filters ...logic.Field) *AppState {
	return &AppState{
		Search: search.NewState(filters...),
	}
}

// Load operations

// StartLoading marks a fetch as in flight
func (s *AppState) StartLoading() {
	s.Load.IsLoading = true
	s.Load.Attempt++
}

// UsersLoaded seeds or replaces the user list. The first load follows the
// plain seed semantics; later loads keep the on-screen query applied.
func (s *AppState) UsersLoaded(users []domain.User) {
	if s.Loaded {
		s.Search = search.Reload(s.Search, users)
	} else {
		s.Search = search.LoadData(s.Search, users)
		if s.Search.Query != "" {
			s.Search = search.ApplyQuery(s.Search, s.Search.Query)
		}
	}
	s.Loaded = true
	s.Load.IsLoading = false
	s.Load.LastError = ""
}

// UsersLoadFailed records the error. The user list is left as it was, which
// is empty when the first load fails.
func (s *AppState) UsersLoadFailed(err error) {
	s.Load.IsLoading = false
	if err != nil {
		s.Load.LastError = err.Error()
	} else {
		s.Load.LastError = "unknown error"
	}
}

// Search operations

// SetQuery applies a new free-text query
func (s *AppState) SetQuery(query string) {
	s.Search = search.ApplyQuery(s.Search, query)
}

// ResetQuery clears the query
func (s *AppState) ResetQuery() {
	s.Search = search.Reset(s.Search)
}

// ToggleFilter flips the checkbox for f and re-applies the query
func (s *AppState) ToggleFilter(f logic.Field) {
	s.Search = search.ToggleFilter(s.Search, f)
}

// VisibleUsers returns the rows currently displayed
func (s *AppState) VisibleUsers() []domain.User {
	return s.Search.Visible
}

// TotalUsers returns the size of the loaded list
func (s *AppState) TotalUsers() int {
	return len(s.Search.Source)
}
