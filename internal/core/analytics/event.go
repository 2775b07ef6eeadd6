// Package analytics collects interaction analytics reported by property
// controls.
package analytics

import (
	"context"
	"time"

	"github.com/colonyops/inspector/internal/core/interaction"
)

// Payload is the normalized body of a keyboard interaction report.
type Payload struct {
	Key string `json:"key"`
}

// Event is a recorded interaction report.
type Event struct {
	ID        int64     `json:"id"`
	Target    string    `json:"target"` // path of the node the report is addressed at
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"created_at"`
}

// Reporter receives interaction reports addressed at a node.
type Reporter interface {
	Emit(target *interaction.Node, p Payload)
}

// Store persists analytics events.
type Store interface {
	Save(ctx context.Context, e Event) (int64, error)
	List(ctx context.Context) ([]Event, error)
	Clear(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

// Nop is a Reporter that discards every report.
type Nop struct{}

func (Nop) Emit(*interaction.Node, Payload) {}
