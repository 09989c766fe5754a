// Package stream provides effectful, lazily produced sequences for Go.
//
// A Stream interleaves values with effects and finishes with a result. It is a
// description, not a container: building one runs nothing, and a consumer
// that walks it drives every effect in order, one layer at a time.
//
// # What is a Stream?
//
// A Stream[A, R] is always in exactly one of three states:
//   - Done: the stream is over and carries its result R.
//   - Suspended: an Effect must run before the rest of the stream exists.
//   - Emit: one element A is available, followed by the rest of the stream.
//
// Effects are plain Go functions of the form
//
//	func(ctx context.Context) (Stream[A, R], error)
//
// so the context is the effect capability threaded through every consumer,
// and an error returned by an effect stops the consumer at exactly the point
// where it happened.
//
// # Why use it?
//
// Go's iterators and channels either hide the end-of-stream result or need
// goroutines. Streams keep both the result and the effects explicit:
//   - Pull based: nothing is produced until a consumer asks for it.
//   - Resumable: SplitAt, Span and Break return the unconsumed remainder as
//     the result, so no element, effect or result is ever lost.
//   - Single threaded: effects run on the consumer's goroutine, in the order
//     a hand written loop would run them.
//
// # How does it work?
//
// Producers (Each, Unfold, Repeat, ...) build streams, transformers (Map,
// Filter, Take, Scan, ZipWith, ...) wrap them layer by layer, and drivers
// (Next, Fold, ToList, Effects, ...) walk them to completion.
// Groups is the nested form used by ChunksOf and GroupBy: each layer is a
// whole Stream whose result is the rest of the groups.
//
// Example:
//
//	evens := stream.Filter(stream.Each([]int{1, 2, 3, 4}), func(n int) bool {
//	    return n%2 == 0
//	})
//	xs, err := stream.ToList(ctx, evens) // [2 4]
package stream
