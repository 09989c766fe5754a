package stream

import (
	"context"
	"fmt"
	"maps"
)

// Map applies f to every element. Length, result and effects are unchanged.
func Map[A, B, R any](s Stream[A, R], f func(A) B) Stream[B, R] {
	return Defer(func() Stream[B, R] {
		n := s.view()
		switch n.kind {
		case KindDone:
			return Done[B](n.result)
		case KindSuspended:
			return andThen(n.effect, func(next Stream[A, R]) Stream[B, R] { return Map(next, f) })
		default:
			return Emit(f(n.head), func() Stream[B, R] { return Map(n.rest(), f) })
		}
	})
}

// MapM replaces every element with the value of an effect run on it.
// The effect runs when the element is requested.
func MapM[A, B, R any](s Stream[A, R], f func(ctx context.Context, a A) (B, error)) Stream[B, R] {
	return Defer(func() Stream[B, R] {
		n := s.view()
		switch n.kind {
		case KindDone:
			return Done[B](n.result)
		case KindSuspended:
			return andThen(n.effect, func(next Stream[A, R]) Stream[B, R] { return MapM(next, f) })
		default:
			return Suspend(func(ctx context.Context) (Stream[B, R], error) {
				b, err := f(ctx, n.head)
				if err != nil {
					return Stream[B, R]{}, err
				}
				return Emit(b, func() Stream[B, R] { return MapM(n.rest(), f) }), nil
			})
		}
	})
}

// Chain runs f on every element and passes the element on unchanged.
func Chain[A, R any](s Stream[A, R], f func(ctx context.Context, a A) error) Stream[A, R] {
	return MapM(s, func(ctx context.Context, a A) (A, error) {
		return a, f(ctx, a)
	})
}

// Sequence runs every element as an effect and emits its value.
func Sequence[A, R any](s Stream[func(context.Context) (A, error), R]) Stream[A, R] {
	return MapM(s, func(ctx context.Context, f func(context.Context) (A, error)) (A, error) {
		return f(ctx)
	})
}

// Filter keeps the elements for which pred holds.
// Rejected elements emit nothing but their effects still run.
func Filter[A, R any](s Stream[A, R], pred func(A) bool) Stream[A, R] {
	return Defer(func() Stream[A, R] {
		for {
			n := s.view()
			switch n.kind {
			case KindDone:
				return Done[A](n.result)
			case KindSuspended:
				return andThen(n.effect, func(next Stream[A, R]) Stream[A, R] { return Filter(next, pred) })
			}
			if pred(n.head) {
				return Emit(n.head, func() Stream[A, R] { return Filter(n.rest(), pred) })
			}
			s = n.rest()
		}
	})
}

// FilterM is Filter with an effectful predicate.
func FilterM[A, R any](s Stream[A, R], pred func(ctx context.Context, a A) (bool, error)) Stream[A, R] {
	return Defer(func() Stream[A, R] {
		n := s.view()
		switch n.kind {
		case KindDone:
			return Done[A](n.result)
		case KindSuspended:
			return andThen(n.effect, func(next Stream[A, R]) Stream[A, R] { return FilterM(next, pred) })
		default:
			return Suspend(func(ctx context.Context) (Stream[A, R], error) {
				keep, err := pred(ctx, n.head)
				if err != nil {
					return Stream[A, R]{}, err
				}
				if !keep {
					return FilterM(n.rest(), pred), nil
				}
				return Emit(n.head, func() Stream[A, R] { return FilterM(n.rest(), pred) }), nil
			})
		}
	})
}

// MapMaybe applies f and keeps only the values it accepts.
func MapMaybe[A, B, R any](s Stream[A, R], f func(A) (B, bool)) Stream[B, R] {
	return Defer(func() Stream[B, R] {
		for {
			n := s.view()
			switch n.kind {
			case KindDone:
				return Done[B](n.result)
			case KindSuspended:
				return andThen(n.effect, func(next Stream[A, R]) Stream[B, R] { return MapMaybe(next, f) })
			}
			if b, ok := f(n.head); ok {
				return Emit(b, func() Stream[B, R] { return MapMaybe(n.rest(), f) })
			}
			s = n.rest()
		}
	})
}

// Read parses every element with parse.
//
// Elements that fail to parse are skipped without an error. Use MapM when a
// parse failure must stop the stream.
func Read[B, R any](s Stream[string, R], parse func(string) (B, error)) Stream[B, R] {
	return MapMaybe(s, func(text string) (B, bool) {
		b, err := parse(text)
		return b, err == nil
	})
}

// Show formats every element with fmt.Sprint.
func Show[A, R any](s Stream[A, R]) Stream[string, R] {
	return Map(s, func(a A) string { return fmt.Sprint(a) })
}

// Cons emits a in front of s.
func Cons[A, R any](a A, s Stream[A, R]) Stream[A, R] {
	return Emit(a, func() Stream[A, R] { return s })
}

// Concat emits the contents of every slice element in order. Empty slices emit nothing.
func Concat[A, R any](s Stream[[]A, R]) Stream[A, R] {
	return Defer(func() Stream[A, R] {
		n := s.view()
		switch n.kind {
		case KindDone:
			return Done[A](n.result)
		case KindSuspended:
			return andThen(n.effect, func(next Stream[[]A, R]) Stream[A, R] { return Concat(next) })
		default:
			return eachThen(n.head, func() Stream[A, R] { return Concat(n.rest()) })
		}
	})
}

// Intersperse emits sep between consecutive elements.
// sep is only emitted once the element after it is available.
func Intersperse[A, R any](s Stream[A, R], sep A) Stream[A, R] {
	return Defer(func() Stream[A, R] {
		n := s.view()
		switch n.kind {
		case KindDone:
			return Done[A](n.result)
		case KindSuspended:
			return andThen(n.effect, func(next Stream[A, R]) Stream[A, R] { return Intersperse(next, sep) })
		default:
			return Emit(n.head, func() Stream[A, R] { return prefixEach(n.rest(), sep) })
		}
	})
}

func prefixEach[A, R any](s Stream[A, R], sep A) Stream[A, R] {
	return Defer(func() Stream[A, R] {
		n := s.view()
		switch n.kind {
		case KindDone:
			return Done[A](n.result)
		case KindSuspended:
			return andThen(n.effect, func(next Stream[A, R]) Stream[A, R] { return prefixEach(next, sep) })
		default:
			return Emit(sep, func() Stream[A, R] {
				return Emit(n.head, func() Stream[A, R] { return prefixEach(n.rest(), sep) })
			})
		}
	})
}

// Scan emits done(init) and then done of every accumulator step, so N
// elements give N+1 outputs.
func Scan[A, X, B, R any](s Stream[A, R], step func(X, A) X, init X, done func(X) B) Stream[B, R] {
	return Defer(func() Stream[B, R] {
		return Emit(done(init), func() Stream[B, R] { return scanFrom(s, step, init, done) })
	})
}

func scanFrom[A, X, B, R any](s Stream[A, R], step func(X, A) X, acc X, done func(X) B) Stream[B, R] {
	return Defer(func() Stream[B, R] {
		n := s.view()
		switch n.kind {
		case KindDone:
			return Done[B](n.result)
		case KindSuspended:
			return andThen(n.effect, func(next Stream[A, R]) Stream[B, R] { return scanFrom(next, step, acc, done) })
		default:
			next := step(acc, n.head)
			return Emit(done(next), func() Stream[B, R] { return scanFrom(n.rest(), step, next, done) })
		}
	})
}

// ScanM is Scan with effectful steps. init runs when the first output is requested.
func ScanM[A, X, B, R any](
	s Stream[A, R],
	step func(ctx context.Context, acc X, a A) (X, error),
	init func(ctx context.Context) (X, error),
	done func(ctx context.Context, acc X) (B, error),
) Stream[B, R] {
	return Suspend(func(ctx context.Context) (Stream[B, R], error) {
		acc, err := init(ctx)
		if err != nil {
			return Stream[B, R]{}, err
		}
		b, err := done(ctx, acc)
		if err != nil {
			return Stream[B, R]{}, err
		}
		return Emit(b, func() Stream[B, R] { return scanMFrom(s, step, acc, done) }), nil
	})
}

func scanMFrom[A, X, B, R any](
	s Stream[A, R],
	step func(ctx context.Context, acc X, a A) (X, error),
	acc X,
	done func(ctx context.Context, acc X) (B, error),
) Stream[B, R] {
	return Defer(func() Stream[B, R] {
		n := s.view()
		switch n.kind {
		case KindDone:
			return Done[B](n.result)
		case KindSuspended:
			return andThen(n.effect, func(next Stream[A, R]) Stream[B, R] { return scanMFrom(next, step, acc, done) })
		default:
			return Suspend(func(ctx context.Context) (Stream[B, R], error) {
				next, err := step(ctx, acc, n.head)
				if err != nil {
					return Stream[B, R]{}, err
				}
				b, err := done(ctx, next)
				if err != nil {
					return Stream[B, R]{}, err
				}
				return Emit(b, func() Stream[B, R] { return scanMFrom(n.rest(), step, next, done) }), nil
			})
		}
	})
}

// Indexed pairs every element with its position, starting at 0.
func Indexed[A, R any](s Stream[A, R]) Stream[Pair[int, A], R] {
	return indexedFrom(s, 0)
}

func indexedFrom[A, R any](s Stream[A, R], i int) Stream[Pair[int, A], R] {
	return Defer(func() Stream[Pair[int, A], R] {
		n := s.view()
		switch n.kind {
		case KindDone:
			return Done[Pair[int, A]](n.result)
		case KindSuspended:
			return andThen(n.effect, func(next Stream[A, R]) Stream[Pair[int, A], R] { return indexedFrom(next, i) })
		default:
			return Emit(Pair[int, A]{V1: i, V2: n.head}, func() Stream[Pair[int, A], R] {
				return indexedFrom(n.rest(), i+1)
			})
		}
	})
}

// Nub drops elements already seen, keeping the first occurrence.
// Every continuation owns the set of elements emitted before it, so a rest
// taken from the middle can be walked again. The set is copied at each
// emitted element, which costs time proportional to the distinct elements so far.
func Nub[A comparable, R any](s Stream[A, R]) Stream[A, R] {
	return Defer(func() Stream[A, R] { return nubFrom(s, map[A]struct{}{}) })
}

func nubFrom[A comparable, R any](s Stream[A, R], seen map[A]struct{}) Stream[A, R] {
	return Defer(func() Stream[A, R] {
		for {
			n := s.view()
			switch n.kind {
			case KindDone:
				return Done[A](n.result)
			case KindSuspended:
				return andThen(n.effect, func(next Stream[A, R]) Stream[A, R] { return nubFrom(next, seen) })
			}
			if _, ok := seen[n.head]; !ok {
				head := n.head
				return Emit(head, func() Stream[A, R] {
					next := maps.Clone(seen)
					next[head] = struct{}{}
					return nubFrom(n.rest(), next)
				})
			}
			s = n.rest()
		}
	})
}
