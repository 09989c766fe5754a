package handlers

import (
	"context"
	"fmt"
)

// NewFireAndForgetHandler handles payloads on a single worker without replying.
func NewFireAndForgetHandler[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
	teardown func(),
) FireAndForgetHandler[T] {
	return FireAndForgetHandler[T]{
		effectScope: newEffectScope(
			ctx,
			func(ctx context.Context) WorkerDispatcher[fireAndForgetEffectMessage[T]] {
				return NewSingleQueue(ctx, bufferSize, forget(handleFn))
			},
			teardown,
		),
	}
}

// forget drops payloads that reach a stopped worker.
func forget[T any](handleFn func(context.Context, T)) func(context.Context, fireAndForgetEffectMessage[T]) {
	return func(ctx context.Context, msg fireAndForgetEffectMessage[T]) {
		if ctx.Err() != nil {
			return
		}
		handleFn(ctx, msg.payload)
	}
}

type FireAndForgetHandler[T any] struct {
	*effectScope[fireAndForgetEffectMessage[T]]
}

// FireAndForgetEffect queues payload. It only fails when the handler is closed
// or ctx is done before the payload could be queued.
func (ffh FireAndForgetHandler[T]) FireAndForgetEffect(ctx context.Context, payload T) error {
	if err := ffh.send(ctx, fireAndForgetEffectMessage[T]{payload: payload}); err != nil {
		return fmt.Errorf("fire effect %s: %w", ffh.EffectId, err)
	}
	return nil
}

type fireAndForgetEffectMessage[T any] struct {
	payload T
}
