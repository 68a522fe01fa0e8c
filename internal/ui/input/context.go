package input

import (
	"usertable/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State  *state.AppState
	Cursor int
}

// CurrentIndex returns the highlighted row
func (c *ModelContext) CurrentIndex() int {
	return c.Cursor
}

// TotalItems returns the number of visible rows
func (c *ModelContext) TotalItems() int {
	return len(c.State.VisibleUsers())
}

// SearchQuery returns the active query
func (c *ModelContext) SearchQuery() string {
	return c.State.Search.Query
}

// IsLoading reports whether a fetch is running
func (c *ModelContext) IsLoading() bool {
	return c.State.Load.IsLoading
}

// HasInfo reports whether the detail popup is open
func (c *ModelContext) HasInfo() bool {
	return c.State.ShowInfo
}
