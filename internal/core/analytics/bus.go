package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/inspector/internal/core/interaction"
)

// Subscriber is a callback invoked for every emitted event.
type Subscriber func(Event)

// Bus is a synchronous in-process analytics reporter. Events are persisted to
// the Store (when set) and then dispatched to subscribers inline, which keeps
// it safe to call from the Bubble Tea Update loop.
type Bus struct {
	store       Store
	subscribers []Subscriber
	mu          sync.Mutex
}

var _ Reporter = (*Bus)(nil)

// NewBus creates an analytics bus backed by the given store.
// If store is nil, events are dispatched to subscribers but not persisted.
func NewBus(store Store) *Bus {
	return &Bus{store: store}
}

// Subscribe registers a callback invoked on every Emit.
func (b *Bus) Subscribe(fn Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, fn)
}

// Emit records a keyboard interaction addressed at target.
func (b *Bus) Emit(target *interaction.Node, p Payload) {
	e := Event{
		Target:    target.Path(),
		Key:       p.Key,
		CreatedAt: time.Now(),
	}

	if b.store != nil {
		id, err := b.store.Save(context.Background(), e)
		if err != nil {
			log.Error().Err(err).Str("target", e.Target).Msg("failed to persist analytics event")
		} else {
			e.ID = id
		}
	}

	b.mu.Lock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.Unlock()

	for _, fn := range subs {
		fn(e)
	}
}

// History returns all persisted events (newest first).
// Returns nil if no store is configured.
func (b *Bus) History() ([]Event, error) {
	if b.store == nil {
		return nil, nil
	}
	return b.store.List(context.Background())
}

// Clear deletes all persisted events.
func (b *Bus) Clear() error {
	if b.store == nil {
		return nil
	}
	return b.store.Clear(context.Background())
}

// LogSubscriber returns a subscriber that writes each event to logger at
// debug level.
func LogSubscriber(logger zerolog.Logger) Subscriber {
	return func(e Event) {
		logger.Debug().
			Int64("id", e.ID).
			Str("target", e.Target).
			Str("key", e.Key).
			Msg("interaction")
	}
}
