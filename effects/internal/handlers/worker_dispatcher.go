package handlers

import (
	"context"
	"sync"

	effectmodel "github.com/on-the-ground/effect_ive_stream/effects/internal/model"
)

// WorkerDispatcher routes each message to the channel of the worker that owns it.
type WorkerDispatcher[T any] interface {
	GetChannelOf(msg T) chan T
	// Wait blocks until every worker has stopped.
	Wait()
}

// runWorker handles messages from ch until ctx is done.
// On exit it closes ch and hands every message still buffered to handleFn
// with the canceled ctx, so no sender is left waiting for a reply.
func runWorker[T any](ctx context.Context, ch chan T, handleFn func(context.Context, T)) {
	defer func() {
		close(ch)
		for msg := range ch {
			handleFn(ctx, msg)
		}
	}()
	for {
		select {
		case msg := <-ch:
			handleFn(ctx, msg)
		case <-ctx.Done():
			return
		}
	}
}

// --- single queue ---

type singleQueue[T any] struct {
	effectCh chan T
	stopped  *sync.WaitGroup
}

func (q singleQueue[T]) GetChannelOf(_ T) chan T {
	return q.effectCh
}

func (q singleQueue[T]) Wait() {
	q.stopped.Wait()
}

// NewSingleQueue starts one worker. Messages are handled in the order they are sent.
func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	effCh := make(chan T, bufferSize)
	stopped := &sync.WaitGroup{}
	stopped.Add(1)

	go func() {
		defer stopped.Done()
		runWorker(ctx, effCh, handleFn)
	}()

	return singleQueue[T]{effectCh: effCh, stopped: stopped}
}

// --- partitioned queue ---

type partitionedQueue[T effectmodel.Partitionable] struct {
	effectChs []chan T
	stopped   *sync.WaitGroup
}

func (pq partitionedQueue[T]) GetChannelOf(msg T) chan T {
	idx := getIndexByHash(msg, len(pq.effectChs))
	return pq.effectChs[idx]
}

func (pq partitionedQueue[T]) Wait() {
	pq.stopped.Wait()
}

// NewPartitionedQueue starts numWorkers workers. Messages with the same
// partition key always reach the same worker and keep their order.
func NewPartitionedQueue[T effectmodel.Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
) WorkerDispatcher[T] {
	channels := make([]chan T, numWorkers)
	stopped := &sync.WaitGroup{}
	for i := range numWorkers {
		ch := make(chan T, bufferSize)
		stopped.Add(1)
		go func() {
			defer stopped.Done()
			runWorker(ctx, ch, handleFn)
		}()
		channels[i] = ch
	}
	return partitionedQueue[T]{effectChs: channels, stopped: stopped}
}
