package helper

import (
	"context"
	"fmt"

	effectmodel "github.com/on-the-ground/effect_ive_stream/effects/internal/model"
)

// GetHandler returns the handler registered for enum in ctx.
// The error wraps ErrNoEffectHandler when there is none.
func GetHandler(ctx context.Context, enum effectmodel.EffectEnum) (any, error) {
	raw := ctx.Value(enum)
	if raw == nil {
		return nil, fmt.Errorf("%w: %v", effectmodel.ErrNoEffectHandler, enum)
	}
	return raw, nil
}

// HasHandler reports whether a handler for enum is registered in ctx.
func HasHandler(ctx context.Context, enum effectmodel.EffectEnum) bool {
	return ctx.Value(enum) != nil
}
