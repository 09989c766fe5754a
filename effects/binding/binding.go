package binding

import (
	"context"
	"errors"
	"fmt"

	"github.com/on-the-ground/effect_ive_stream/effects"
	"github.com/on-the-ground/effect_ive_stream/effects/configkeys"
	"github.com/on-the-ground/effect_ive_stream/effects/internal/helper"
	effectmodel "github.com/on-the-ground/effect_ive_stream/effects/internal/model"
)

// ErrKeyNotFound is returned when no scope, local or upper, binds the key.
var ErrKeyNotFound = errors.New("key not found")

// Payload defines a key-based lookup payload.
// Used as input to the Binding effect.
type Payload string

// PartitionKey routes lookups of the same key to the same worker.
func (bp Payload) PartitionKey() string {
	return string(bp)
}

// WithEffectHandler registers a resumable, partitionable effect handler for bindings.
//
//   - bufferSize and numWorkers below 1 are read from an upper binding scope
//     (configkeys.ConfigEffectBindingHandler*), else treated as 1.
//   - Accepts a key-value map used for lookups.
//   - Falls back to upper scopes if a key is not found locally.
//   - Returns a context with the effect handler registered.
//   - Returns a teardown function to close the handler.
//   - If the teardown function is called early, the effect handler will be closed,
//     you should use the context returned by the teardown function.
func WithEffectHandler(
	ctx context.Context,
	bufferSize, numWorkers int,
	bindingMap map[string]any,
) (context.Context, func() context.Context) {
	if bufferSize <= 0 {
		if n, err := GetOrDefault(ctx, configkeys.ConfigEffectBindingHandlerBufferSize, 1); err == nil {
			bufferSize = n
		}
	}
	if numWorkers <= 0 {
		if n, err := GetOrDefault(ctx, configkeys.ConfigEffectBindingHandlerNumWorkers, 1); err == nil {
			numWorkers = n
		}
	}
	bindingHandler := &bindingHandler{
		bindingMap: normalizeBindingMap(bindingMap),
	}
	return effects.WithResumablePartitionableEffectHandler[Payload, any](
		ctx,
		effectmodel.NewEffectScopeConfig(bufferSize, numWorkers),
		effectmodel.EffectBinding,
		bindingHandler.handle,
	)
}

// Effect performs a key-based lookup using the Binding effect handler.
//
// Returns either the value found or an error wrapping ErrKeyNotFound if no scope binds it.
// Panics if no binding handler is registered.
func Effect(ctx context.Context, key string) (val any, err error) {
	resultCh := effects.PerformResumableEffect[Payload, any](ctx, effectmodel.EffectBinding, Payload(key))
	select {
	case res := <-resultCh:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// normalizeBindingMap is an internal helper for normalizing binding map.
func normalizeBindingMap(bm map[string]any) map[string]any {
	if bm == nil {
		bm = make(map[string]any)
	}
	return bm
}

type bindingHandler struct {
	bindingMap map[string]any
}

// handle looks up the key in the local bindingMap.
//   - If found: returns the value.
//   - If not found: delegates to the handler of the upper scope, if there is one.
//   - Otherwise: returns ErrKeyNotFound.
//
// ctx is the context the handler was registered on, so it carries the upper scope.
func (bh bindingHandler) handle(ctx context.Context, payload Payload) (any, error) {
	key := string(payload)
	if v, ok := bh.bindingMap[key]; ok {
		return v, nil
	}
	if !helper.HasHandler(ctx, effectmodel.EffectBinding) {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return Effect(ctx, key)
}
