package stream

import (
	"context"
	"fmt"
)

// Kind reports which of the three states a Stream is in.
type Kind uint8

const (
	// KindDone marks a finished stream carrying its result.
	KindDone Kind = iota

	// KindSuspended marks a stream waiting on an effect.
	KindSuspended

	// KindEmit marks a stream offering one element and a continuation.
	KindEmit

	// kindDeferred is a pure delayed construction. It never escapes View.
	kindDeferred
)

func (k Kind) String() string {
	switch k {
	case KindDone:
		return "done"
	case KindSuspended:
		return "suspended"
	case KindEmit:
		return "emit"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Effect is a suspended step of a stream. Running it yields the rest of the stream.
type Effect[A, R any] func(ctx context.Context) (Stream[A, R], error)

// Stream is a sequence of A values interleaved with effects, ending with an R.
//
// The zero Stream is Done with the zero result.
// A Stream may be walked more than once; every walk runs its effects again.
type Stream[A, R any] struct {
	n *node[A, R]
}

type node[A, R any] struct {
	kind   Kind
	result R
	effect Effect[A, R]
	head   A
	tail   func() Stream[A, R]
	thunk  func() Stream[A, R]
}

// View is one resolved layer of a Stream. Only the fields matching Kind are set.
type View[A, R any] struct {
	Kind   Kind
	Result R
	Effect Effect[A, R]
	Head   A
	Tail   func() Stream[A, R]
}

// Done returns a finished stream with result r.
func Done[A, R any](r R) Stream[A, R] {
	return Stream[A, R]{n: &node[A, R]{kind: KindDone, result: r}}
}

// Suspend returns a stream that runs e before going on.
func Suspend[A, R any](e Effect[A, R]) Stream[A, R] {
	return Stream[A, R]{n: &node[A, R]{kind: KindSuspended, effect: e}}
}

// Emit returns a stream offering a, followed by the stream built by tail.
// a is already evaluated; tail is only called when a consumer moves past a.
func Emit[A, R any](a A, tail func() Stream[A, R]) Stream[A, R] {
	return Stream[A, R]{n: &node[A, R]{kind: KindEmit, head: a, tail: tail}}
}

// Defer delays building a stream until it is first inspected.
// thunk must be pure: effects belong in Suspend.
func Defer[A, R any](thunk func() Stream[A, R]) Stream[A, R] {
	return Stream[A, R]{n: &node[A, R]{kind: kindDeferred, thunk: thunk}}
}

// Yield returns a one element stream.
func Yield[A any](a A) Stream[A, struct{}] {
	return Emit(a, func() Stream[A, struct{}] { return Done[A](struct{}{}) })
}

// Lift runs a single effect and finishes with its value.
func Lift[A, R any](f func(ctx context.Context) (R, error)) Stream[A, R] {
	return Suspend(func(ctx context.Context) (Stream[A, R], error) {
		r, err := f(ctx)
		if err != nil {
			return Stream[A, R]{}, err
		}
		return Done[A](r), nil
	})
}

// View resolves deferred construction and returns the current layer.
// No effect is run.
func (s Stream[A, R]) View() View[A, R] {
	n := s.view()
	v := View[A, R]{Kind: n.kind}
	switch n.kind {
	case KindDone:
		v.Result = n.result
	case KindSuspended:
		v.Effect = n.effect
	case KindEmit:
		v.Head = n.head
		v.Tail = n.tail
	}
	return v
}

func (s Stream[A, R]) view() *node[A, R] {
	for {
		if s.n == nil {
			return &node[A, R]{kind: KindDone}
		}
		if s.n.kind != kindDeferred {
			return s.n
		}
		s = s.n.thunk()
	}
}

// rest forces the continuation of an emitting node.
func (n *node[A, R]) rest() Stream[A, R] {
	if n.tail == nil {
		return Stream[A, R]{}
	}
	return n.tail()
}

// andThen runs e and hands the resulting stream to k.
func andThen[A, R, B, S any](e Effect[A, R], k func(Stream[A, R]) Stream[B, S]) Stream[B, S] {
	return Suspend(func(ctx context.Context) (Stream[B, S], error) {
		next, err := e(ctx)
		if err != nil {
			return Stream[B, S]{}, err
		}
		return k(next), nil
	})
}

// force runs effects until s finishes or emits.
func force[A, R any](ctx context.Context, s Stream[A, R]) (*node[A, R], error) {
	for {
		n := s.view()
		if n.kind != KindSuspended {
			return n, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		next, err := n.effect(ctx)
		if err != nil {
			return nil, err
		}
		s = next
	}
}

// Next runs effects until s finishes or emits.
// It returns Left with the result, or Right with the element and the rest.
func Next[A, R any](ctx context.Context, s Stream[A, R]) (Either[R, Of[A, Stream[A, R]]], error) {
	n, err := force(ctx, s)
	if err != nil {
		return Either[R, Of[A, Stream[A, R]]]{}, err
	}
	if n.kind == KindDone {
		return Left[R, Of[A, Stream[A, R]]](n.result), nil
	}
	return Right[R](Of[A, Stream[A, R]]{Value: n.head, Rest: Defer(n.rest)}), nil
}

// Uncons is Next without the result: ok is false once s has finished.
func Uncons[A, R any](ctx context.Context, s Stream[A, R]) (a A, rest Stream[A, R], ok bool, err error) {
	n, err := force(ctx, s)
	if err != nil || n.kind == KindDone {
		return a, rest, false, err
	}
	return n.head, Defer(n.rest), true, nil
}

// Unfold builds a stream from a seed. Each call to step is one effect; Left ends
// the stream with a result and Right emits an element and the next seed.
func Unfold[S, A, R any](seed S, step func(ctx context.Context, seed S) (Either[R, Of[A, S]], error)) Stream[A, R] {
	return Suspend(func(ctx context.Context) (Stream[A, R], error) {
		e, err := step(ctx, seed)
		if err != nil {
			return Stream[A, R]{}, err
		}
		if r, ok := e.GetLeft(); ok {
			return Done[A](r), nil
		}
		out, _ := e.GetRight()
		return Emit(out.Value, func() Stream[A, R] { return Unfold(out.Rest, step) }), nil
	})
}

// Unfoldr is Unfold with a pure step function; it runs no effects.
func Unfoldr[S, A, R any](seed S, step func(seed S) Either[R, Of[A, S]]) Stream[A, R] {
	return Defer(func() Stream[A, R] {
		e := step(seed)
		if r, ok := e.GetLeft(); ok {
			return Done[A](r)
		}
		out, _ := e.GetRight()
		return Emit(out.Value, func() Stream[A, R] { return Unfoldr(out.Rest, step) })
	})
}

// Bind walks s to its end and continues with f applied to its result.
// Every layer of s and of f's stream is kept in order.
//
// Each element of s passes through one Bind per level of nesting, so a loop
// that rebinds its accumulated stream (s = Then(s, Yield(i))) costs O(n²) to
// walk. Nest to the right, Then(Yield(i), rest), or build the loop with Unfold.
func Bind[A, R, S any](s Stream[A, R], f func(R) Stream[A, S]) Stream[A, S] {
	return Defer(func() Stream[A, S] {
		n := s.view()
		switch n.kind {
		case KindDone:
			return f(n.result)
		case KindSuspended:
			return andThen(n.effect, func(next Stream[A, R]) Stream[A, S] { return Bind(next, f) })
		default:
			return Emit(n.head, func() Stream[A, S] { return Bind(n.rest(), f) })
		}
	})
}

// Then runs s and continues with t, dropping the result of s.
func Then[A, R, S any](s Stream[A, R], t Stream[A, S]) Stream[A, S] {
	return Bind(s, func(R) Stream[A, S] { return t })
}

// MapResult replaces the result of s with f of it.
func MapResult[A, R, S any](s Stream[A, R], f func(R) S) Stream[A, S] {
	return Bind(s, func(r R) Stream[A, S] { return Done[A](f(r)) })
}

// Hoist runs every effect of s under the context returned by f.
func Hoist[A, R any](s Stream[A, R], f func(context.Context) context.Context) Stream[A, R] {
	return Defer(func() Stream[A, R] {
		n := s.view()
		switch n.kind {
		case KindDone:
			return Done[A](n.result)
		case KindSuspended:
			return Suspend(func(ctx context.Context) (Stream[A, R], error) {
				next, err := n.effect(f(ctx))
				if err != nil {
					return Stream[A, R]{}, err
				}
				return Hoist(next, f), nil
			})
		default:
			return Emit(n.head, func() Stream[A, R] { return Hoist(n.rest(), f) })
		}
	})
}
