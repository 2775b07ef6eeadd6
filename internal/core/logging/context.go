package logging

import "context"

type contextKey string

const (
	entityKey   contextKey = "entity"
	propertyKey contextKey = "property"
)

// WithEntity adds the edited entity name to the context.
func WithEntity(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, entityKey, name)
}

// WithProperty adds a property name to the context.
func WithProperty(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, propertyKey, name)
}

// GetEntity retrieves the entity name from the context.
// Returns empty string if not present.
func GetEntity(ctx context.Context) string {
	if v, ok := ctx.Value(entityKey).(string); ok {
		return v
	}
	return ""
}

// GetProperty retrieves the property name from the context.
// Returns empty string if not present.
func GetProperty(ctx context.Context) string {
	if v, ok := ctx.Value(propertyKey).(string); ok {
		return v
	}
	return ""
}
