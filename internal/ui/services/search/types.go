package search

import (
	"usertable/internal/domain"
	"usertable/internal/ui/logic"
)

// State holds the search state for the user table.
// Values are treated as immutable; every transition returns a new State.
type State struct {
	Source  []domain.User // full list as fetched
	Filters []logic.Field // active filter fields in insertion order
	Query   string        // current free-text query
	Visible []domain.User // subsequence of Source currently displayed
}

// NewState returns an empty state with the given initial filters
func NewState(filters ...logic.Field) State {
	return State{
		Source:  []domain.User{},
		Filters: append([]logic.Field(nil), filters...),
		Visible: []domain.User{},
	}
}
