package userapi

import (
	"context"
	"log"
	"sync"
	"time"

	"usertable/internal/domain"
	"usertable/internal/eventbus"
)

// Fetcher is the part of Client the loader depends on
type Fetcher interface {
	FetchUsers(ctx context.Context) ([]domain.User, error)
	URL() string
}

// Loader runs fetches in response to LoadRequested events
type Loader struct {
	bus     eventbus.EventBus
	fetcher Fetcher
	timeout time.Duration
	ctx     context.Context

	mu      sync.Mutex
	loading bool
	attempt int
}

// NewLoader creates a loader and subscribes it to the bus.
// ctx bounds every fetch; cancelling it aborts an in-flight request.
func NewLoader(ctx context.Context, bus eventbus.EventBus, fetcher Fetcher, timeout time.Duration) *Loader {
	l := &Loader{
		bus:     bus,
		fetcher: fetcher,
		timeout: timeout,
		ctx:     ctx,
	}

	bus.Subscribe(eventbus.EventLoadRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.LoadRequestedEvent); ok {
			l.Load(event.Reason)
		}
	})

	return l
}

// Load fetches the user list and publishes the outcome.
// A request arriving while a fetch is running is ignored.
func (l *Loader) Load(reason string) {
	l.mu.Lock()
	if l.loading {
		l.mu.Unlock()
		log.Printf("Load (%s) ignored: fetch already in progress", reason)
		return
	}
	l.loading = true
	l.attempt++
	attempt := l.attempt
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.loading = false
		l.mu.Unlock()
	}()

	ctx := l.ctx
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	log.Printf("Loading users from %s (%s, attempt %d)", l.fetcher.URL(), reason, attempt)
	l.bus.Publish(eventbus.LoadStartedEvent{URL: l.fetcher.URL(), Attempt: attempt})

	users, err := l.fetcher.FetchUsers(ctx)
	if err != nil {
		log.Printf("Failed to load users: %v", err)
		l.bus.Publish(eventbus.UsersLoadFailedEvent{Err: err, Attempt: attempt})
		return
	}

	log.Printf("Loaded %d users", len(users))
	l.bus.Publish(eventbus.UsersLoadedEvent{Users: users, Attempt: attempt})
}
