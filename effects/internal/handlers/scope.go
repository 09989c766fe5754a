package handlers

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	effectmodel "github.com/on-the-ground/effect_ive_stream/effects/internal/model"
)

// effectScope owns the workers of one handler.
//
// Close cancels the workers, runs the teardown and then waits for every
// worker to stop. Sending after Close reports ErrHandlerClosed.
type effectScope[T any] struct {
	EffectId   string
	dispatcher WorkerDispatcher[T]
	closeOnce  sync.Once
	closeFn    func()
}

func (es *effectScope[T]) Close() {
	es.closeOnce.Do(es.closeFn)
}

// send hands msg to its worker or gives up when ctx is done first.
func (es *effectScope[T]) send(ctx context.Context, msg T) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s", effectmodel.ErrHandlerClosed, es.EffectId)
		}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case es.dispatcher.GetChannelOf(msg) <- msg:
		return nil
	}
}

// newEffectScope builds the dispatcher on a cancelable child of ctx.
func newEffectScope[T any](
	ctx context.Context,
	newDispatcher func(context.Context) WorkerDispatcher[T],
	teardown func(),
) *effectScope[T] {
	ctx, cancelFn := context.WithCancel(ctx)
	dispatcher := newDispatcher(ctx)
	return &effectScope[T]{
		EffectId:   uuid.New().String(),
		dispatcher: dispatcher,
		closeFn: func() {
			cancelFn()
			teardown()
			dispatcher.Wait()
		},
	}
}
