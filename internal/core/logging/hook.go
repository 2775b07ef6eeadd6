package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts entity and property names from context and adds them
// to log events.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if entity := GetEntity(ctx); entity != "" {
		e.Str("entity", entity)
	}

	if property := GetProperty(ctx); property != "" {
		e.Str("property", property)
	}
}
