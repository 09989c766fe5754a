package stream

import (
	"cmp"
	"context"
	"strings"
)

// FoldOf walks s to the end, folding every element into an accumulator.
// It returns done of the final accumulator together with the result of s.
// The accumulator is updated in place on every element; nothing is deferred.
func FoldOf[A, X, B, R any](ctx context.Context, s Stream[A, R], step func(X, A) X, init X, done func(X) B) (Of[B, R], error) {
	acc := init
	for {
		n, err := force(ctx, s)
		if err != nil {
			return Of[B, R]{}, err
		}
		if n.kind == KindDone {
			return Of[B, R]{Value: done(acc), Rest: n.result}, nil
		}
		acc = step(acc, n.head)
		s = n.rest()
	}
}

// Fold is FoldOf without the result of s.
func Fold[A, X, B, R any](ctx context.Context, s Stream[A, R], step func(X, A) X, init X, done func(X) B) (B, error) {
	res, err := FoldOf(ctx, s, step, init, done)
	return res.Value, err
}

// FoldMOf is FoldOf with effectful init, step and done.
func FoldMOf[A, X, B, R any](
	ctx context.Context,
	s Stream[A, R],
	step func(ctx context.Context, acc X, a A) (X, error),
	init func(ctx context.Context) (X, error),
	done func(ctx context.Context, acc X) (B, error),
) (Of[B, R], error) {
	acc, err := init(ctx)
	if err != nil {
		return Of[B, R]{}, err
	}
	for {
		n, err := force(ctx, s)
		if err != nil {
			return Of[B, R]{}, err
		}
		if n.kind == KindDone {
			b, err := done(ctx, acc)
			if err != nil {
				return Of[B, R]{}, err
			}
			return Of[B, R]{Value: b, Rest: n.result}, nil
		}
		if acc, err = step(ctx, acc, n.head); err != nil {
			return Of[B, R]{}, err
		}
		s = n.rest()
	}
}

// FoldM is FoldMOf without the result of s.
func FoldM[A, X, B, R any](
	ctx context.Context,
	s Stream[A, R],
	step func(ctx context.Context, acc X, a A) (X, error),
	init func(ctx context.Context) (X, error),
	done func(ctx context.Context, acc X) (B, error),
) (B, error) {
	res, err := FoldMOf(ctx, s, step, init, done)
	return res.Value, err
}

func identity[X any](x X) X { return x }

// Effects runs every effect of s, ignoring its elements, and returns its result.
func Effects[A, R any](ctx context.Context, s Stream[A, R]) (R, error) {
	for {
		n, err := force(ctx, s)
		if err != nil {
			var zero R
			return zero, err
		}
		if n.kind == KindDone {
			return n.result, nil
		}
		s = n.rest()
	}
}

// Drain is Effects without the result.
func Drain[A, R any](ctx context.Context, s Stream[A, R]) error {
	_, err := Effects(ctx, s)
	return err
}

// ForEach runs f on every element in order and stops at the first error.
func ForEach[A, R any](ctx context.Context, s Stream[A, R], f func(ctx context.Context, a A) error) error {
	for {
		n, err := force(ctx, s)
		if err != nil || n.kind == KindDone {
			return err
		}
		if err := f(ctx, n.head); err != nil {
			return err
		}
		s = n.rest()
	}
}

// ToListOf collects every element into a slice and keeps the result of s.
func ToListOf[A, R any](ctx context.Context, s Stream[A, R]) (Of[[]A, R], error) {
	return FoldOf(ctx, s, func(xs []A, a A) []A { return append(xs, a) }, []A(nil), identity[[]A])
}

// ToList collects every element into a slice.
func ToList[A, R any](ctx context.Context, s Stream[A, R]) ([]A, error) {
	res, err := ToListOf(ctx, s)
	return res.Value, err
}

func SumOf[N Number, R any](ctx context.Context, s Stream[N, R]) (Of[N, R], error) {
	return FoldOf(ctx, s, func(total, n N) N { return total + n }, 0, identity[N])
}

func Sum[N Number, R any](ctx context.Context, s Stream[N, R]) (N, error) {
	res, err := SumOf(ctx, s)
	return res.Value, err
}

func ProductOf[N Number, R any](ctx context.Context, s Stream[N, R]) (Of[N, R], error) {
	return FoldOf(ctx, s, func(total, n N) N { return total * n }, 1, identity[N])
}

func Product[N Number, R any](ctx context.Context, s Stream[N, R]) (N, error) {
	res, err := ProductOf(ctx, s)
	return res.Value, err
}

func LengthOf[A, R any](ctx context.Context, s Stream[A, R]) (Of[int, R], error) {
	return FoldOf(ctx, s, func(count int, _ A) int { return count + 1 }, 0, identity[int])
}

func Length[A, R any](ctx context.Context, s Stream[A, R]) (int, error) {
	res, err := LengthOf(ctx, s)
	return res.Value, err
}

type extremum[A any] struct {
	value A
	found bool
}

// Maximum returns the largest element; ok is false for an empty stream.
func Maximum[A cmp.Ordered, R any](ctx context.Context, s Stream[A, R]) (largest A, ok bool, err error) {
	res, err := Fold(ctx, s, func(m extremum[A], a A) extremum[A] {
		if !m.found || a > m.value {
			return extremum[A]{value: a, found: true}
		}
		return m
	}, extremum[A]{}, identity[extremum[A]])
	return res.value, res.found, err
}

// Minimum returns the smallest element; ok is false for an empty stream.
func Minimum[A cmp.Ordered, R any](ctx context.Context, s Stream[A, R]) (smallest A, ok bool, err error) {
	res, err := Fold(ctx, s, func(m extremum[A], a A) extremum[A] {
		if !m.found || a < m.value {
			return extremum[A]{value: a, found: true}
		}
		return m
	}, extremum[A]{}, identity[extremum[A]])
	return res.value, res.found, err
}

// ConcatenateOf joins every string element with sep and keeps the result of s.
func ConcatenateOf[R any](ctx context.Context, s Stream[string, R], sep string) (Of[string, R], error) {
	first := true
	return FoldOf(ctx, s, func(b *strings.Builder, text string) *strings.Builder {
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(text)
		return b
	}, &strings.Builder{}, (*strings.Builder).String)
}

// Concatenate joins every string element with sep.
func Concatenate[R any](ctx context.Context, s Stream[string, R], sep string) (string, error) {
	res, err := ConcatenateOf(ctx, s, sep)
	return res.Value, err
}

// Head returns the first element without inspecting anything after it.
func Head[A, R any](ctx context.Context, s Stream[A, R]) (a A, ok bool, err error) {
	n, err := force(ctx, s)
	if err != nil || n.kind == KindDone {
		return a, false, err
	}
	return n.head, true, nil
}

// Last walks all of s and returns its final element.
func Last[A, R any](ctx context.Context, s Stream[A, R]) (A, bool, error) {
	res, err := Fold(ctx, s, func(_ extremum[A], a A) extremum[A] {
		return extremum[A]{value: a, found: true}
	}, extremum[A]{}, identity[extremum[A]])
	return res.value, res.found, err
}

// Any reports whether pred holds for some element. It stops at the first match.
func Any[A, R any](ctx context.Context, s Stream[A, R], pred func(A) bool) (bool, error) {
	for {
		n, err := force(ctx, s)
		if err != nil || n.kind == KindDone {
			return false, err
		}
		if pred(n.head) {
			return true, nil
		}
		s = n.rest()
	}
}

// Every reports whether pred holds for all elements. It stops at the first failure.
func Every[A, R any](ctx context.Context, s Stream[A, R], pred func(A) bool) (bool, error) {
	found, err := Any(ctx, s, func(a A) bool { return !pred(a) })
	return !found && err == nil, err
}

// Elem reports whether x occurs in s. It stops at the first match.
func Elem[A comparable, R any](ctx context.Context, s Stream[A, R], x A) (bool, error) {
	return Any(ctx, s, func(a A) bool { return a == x })
}
