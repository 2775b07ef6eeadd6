// Package logging provides zerolog helpers shared across the inspector.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// Control creates a logger for a property control instance.
func Control(controlType, property string) zerolog.Logger {
	return log.With().
		Str("cmp", "control").
		Str("control", controlType).
		Str("property", property).
		Logger()
}
