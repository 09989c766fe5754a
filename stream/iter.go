package stream

import (
	"context"
	"iter"
)

// All adapts s to a range-over-func iterator.
//
// An effect error is yielded once with the zero element and ends the
// iteration. Breaking out of the loop simply stops pulling; the result of s
// is not available through this adapter.
func All[A, R any](ctx context.Context, s Stream[A, R]) iter.Seq2[A, error] {
	return func(yield func(A, error) bool) {
		cur := s
		for {
			n, err := force(ctx, cur)
			if err != nil {
				var zero A
				yield(zero, err)
				return
			}
			if n.kind == KindDone {
				return
			}
			if !yield(n.head, nil) {
				return
			}
			cur = n.rest()
		}
	}
}
