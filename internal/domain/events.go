package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLoadRequested   EventType = "LoadRequested"
	EventLoadStarted     EventType = "LoadStarted"
	EventUsersLoaded     EventType = "UsersLoaded"
	EventUsersLoadFailed EventType = "UsersLoadFailed"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventFiltersChanged  EventType = "FiltersChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LoadRequestedEvent asks the loader to fetch the user list
type LoadRequestedEvent struct {
	Reason string // "startup" or "reload"
}

func (e LoadRequestedEvent) Type() EventType { return EventLoadRequested }

// LoadStartedEvent is emitted when the fetch begins. Attempt numbers the
// fetch and is echoed by its outcome event.
type LoadStartedEvent struct {
	URL     string
	Attempt int
}

func (e LoadStartedEvent) Type() EventType { return EventLoadStarted }

// UsersLoadedEvent carries the full list returned by the data source
type UsersLoadedEvent struct {
	Users   []User
	Attempt int
}

func (e UsersLoadedEvent) Type() EventType { return EventUsersLoaded }

// UsersLoadFailedEvent is emitted when the fetch could not produce a list
type UsersLoadFailedEvent struct {
	Err     error
	Attempt int
}

func (e UsersLoadFailedEvent) Type() EventType { return EventUsersLoadFailed }

// ConfigLoadedEvent is emitted after the configuration is read
type ConfigLoadedEvent struct {
	APIURL  string
	Filters []string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after the configuration is written
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// FiltersChangedEvent is emitted on quit with the active filter fields
type FiltersChangedEvent struct {
	Filters []string
}

func (e FiltersChangedEvent) Type() EventType { return EventFiltersChanged }
