package effects

import (
	"context"
	"sync/atomic"

	"github.com/on-the-ground/effect_ive_stream/effects/internal/handlers"
	"github.com/on-the-ground/effect_ive_stream/effects/internal/helper"
	sharedHelper "github.com/on-the-ground/effect_ive_stream/shared/helper"
	"go.uber.org/zap"

	effectmodel "github.com/on-the-ground/effect_ive_stream/effects/internal/model"
)

var (
	// ErrNoEffectHandler is wrapped by every lookup of an effect that has no handler in the context.
	ErrNoEffectHandler = effectmodel.ErrNoEffectHandler

	// ErrHandlerClosed is wrapped by effects performed after their handler was torn down.
	ErrHandlerClosed = effectmodel.ErrHandlerClosed
)

var lifecycleLogger atomic.Pointer[zap.Logger]

func init() {
	lifecycleLogger.Store(zap.NewNop())
}

// SetLifecycleLogger sets the logger that records handler creation and teardown at debug level.
// Handlers log nothing until it is set.
func SetLifecycleLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	lifecycleLogger.Store(logger)
}

// withHandler stores handler under enum and builds the teardown returning the outer context.
func withHandler(
	ctx context.Context,
	enum effectmodel.EffectEnum,
	kind string,
	effectId string,
	handler any,
	closeFn func(),
) (context.Context, func() context.Context) {
	logger := lifecycleLogger.Load().Sugar()
	logger.Debugf("created %s effect handler: effectId: %v, enum: %v", kind, effectId, enum)

	return context.WithValue(ctx, enum, handler), func() context.Context {
		closeFn()
		logger.Debugf("closed %s effect handler: effectId: %v, enum: %v", kind, effectId, enum)
		return ctx
	}
}

// WithResumablePartitionableEffectHandler registers a resumable effect handler for a given effect enum.
//
// This handler supports hash-based partitioning via PartitionKey(), and is suitable for effects
// like configuration lookups where per-key ordering matters.
//
// Usage:
//
//	ctx, teardown := WithResumablePartitionableEffectHandler(ctx, config, MyEffectEnum, handleFn)
//	defer teardown()
func WithResumablePartitionableEffectHandler[P effectmodel.Partitionable, R any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P) (R, error),
	teardown ...func(),
) (context.Context, func() context.Context) {
	handler := handlers.NewPartitionableResumableHandler(ctx, config, handleFn, normalizeTeardown(teardown))
	return withHandler(ctx, enum, "resumable", handler.EffectId, handler, handler.Close)
}

// WithResumableEffectHandler registers a resumable effect handler served by a single worker.
//
// Requests are handled one at a time in arrival order, which suits effects
// over a shared resource such as a reader or a writer.
func WithResumableEffectHandler[P any, R any](
	ctx context.Context,
	bufferSize int,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P) (R, error),
	teardown ...func(),
) (context.Context, func() context.Context) {
	handler := handlers.NewResumableHandler(ctx, bufferSize, handleFn, normalizeTeardown(teardown))
	return withHandler(ctx, enum, "resumable", handler.EffectId, handler, handler.Close)
}

// PerformResumableEffect sends a payload to the resumable effect handler.
//
// The returned channel receives exactly one result and is then closed.
// Panics if no handler is registered for the given effect enum.
func PerformResumableEffect[P any, R any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) <-chan handlers.ResumableResult[R] {
	handler := sharedHelper.MustGetTypedValue[handlers.ResumableHandler[P, R]](
		func() (any, error) {
			return helper.GetHandler(ctx, enum)
		},
	)
	return handler.PerformEffect(ctx, payload)
}

// WithFireAndForgetEffectHandler registers a fire-and-forget effect handler for a given effect enum.
//
// Suitable for one-shot effects like logging or telemetry.
// This handler executes without returning a result.
func WithFireAndForgetEffectHandler[P any](
	ctx context.Context,
	bufferSize int,
	enum effectmodel.EffectEnum,
	handleFn func(context.Context, P),
	teardown ...func(),
) (context.Context, func() context.Context) {
	handler := handlers.NewFireAndForgetHandler(ctx, bufferSize, handleFn, normalizeTeardown(teardown))
	return withHandler(ctx, enum, "fire/forget", handler.EffectId, handler, handler.Close)
}

// FireAndForgetEffect queues payload for the handler registered under enum.
//
// Panics if no handler is registered for the given enum. The returned error
// only reports a payload that could not be queued.
func FireAndForgetEffect[P any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) error {
	handler := sharedHelper.MustGetTypedValue[handlers.FireAndForgetHandler[P]](
		func() (any, error) {
			return helper.GetHandler(ctx, enum)
		},
	)
	return handler.FireAndForgetEffect(ctx, payload)
}

// TryFireAndForgetEffect is FireAndForgetEffect returning ErrNoEffectHandler instead of panicking.
func TryFireAndForgetEffect[P any](
	ctx context.Context,
	enum effectmodel.EffectEnum,
	payload P,
) error {
	handler, err := sharedHelper.GetTypedValueOf[handlers.FireAndForgetHandler[P]](
		func() (any, error) {
			return helper.GetHandler(ctx, enum)
		},
	)
	if err != nil {
		return err
	}
	return handler.FireAndForgetEffect(ctx, payload)
}

// normalizeTeardown flattens optional teardown functions into a single callable.
//
// Accepts either 0 or 1 teardown functions. Panics if more than one is passed.
func normalizeTeardown(teardown []func()) func() {
	switch len(teardown) {
	case 1:
		return teardown[0]
	case 0:
		return func() {}
	default:
		panic("normalizeTeardown: only one or zero teardown functions allowed")
	}
}
