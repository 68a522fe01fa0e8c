package search

import (
	"log"

	"usertable/internal/domain"
	"usertable/internal/ui/logic"
)

// LoadData seeds the state with a freshly fetched list.
// Filters and query are kept but not reapplied.
func LoadData(s State, users []domain.User) State {
	src := append([]domain.User(nil), users...)
	if src == nil {
		src = []domain.User{}
	}
	s.Source = src
	s.Visible = src
	return s
}

// ApplyQuery recomputes the visible rows for query
func ApplyQuery(s State, query string) State {
	s.Query = query
	if query == "" {
		s.Visible = s.Source
		return s
	}

	visible := make([]domain.User, 0, len(s.Source))
	for _, u := range s.Source {
		if logic.Matches(s.Filters, query, u) {
			visible = append(visible, u)
		}
	}
	s.Visible = visible

	log.Printf("Search completed for '%s': %d of %d users", query, len(visible), len(s.Source))
	return s
}

// AddFilter appends f to the active filters. Duplicates are not rejected.
func AddFilter(s State, f logic.Field) State {
	filters := make([]logic.Field, len(s.Filters), len(s.Filters)+1)
	copy(filters, s.Filters)
	s.Filters = append(filters, f)
	return s
}

// RemoveFilter removes the first occurrence of f; absent fields are a no-op
func RemoveFilter(s State, f logic.Field) State {
	idx := indexOf(s.Filters, f)
	if idx < 0 {
		return s
	}
	filters := make([]logic.Field, 0, len(s.Filters)-1)
	filters = append(filters, s.Filters[:idx]...)
	s.Filters = append(filters, s.Filters[idx+1:]...)
	return s
}

// ToggleFilter adds f if inactive, removes it otherwise, and re-applies the query
func ToggleFilter(s State, f logic.Field) State {
	if HasFilter(s, f) {
		s = RemoveFilter(s, f)
	} else {
		s = AddFilter(s, f)
	}
	return ApplyQuery(s, s.Query)
}

// Reset clears the query so every loaded user is visible again
func Reset(s State) State {
	return ApplyQuery(s, "")
}

// Reload replaces the source list and re-applies the current query
func Reload(s State, users []domain.User) State {
	return ApplyQuery(LoadData(s, users), s.Query)
}

// HasFilter reports whether f is active
func HasFilter(s State, f logic.Field) bool {
	return indexOf(s.Filters, f) >= 0
}

// FilterNames returns the active filters as strings, in order
func FilterNames(s State) []string {
	names := make([]string, 0, len(s.Filters))
	for _, f := range s.Filters {
		names = append(names, string(f))
	}
	return names
}

func indexOf(filters []logic.Field, f logic.Field) int {
	for i, existing := range filters {
		if existing == f {
			return i
		}
	}
	return -1
}
