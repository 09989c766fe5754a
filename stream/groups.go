package stream

import "context"

// Groups is a stream of streams. Each layer is a whole Stream whose result is
// the rest of the groups, so a group must be walked to its end before the next
// group can be reached.
type Groups[A, R any] struct {
	n *groupsNode[A, R]
}

type groupsNode[A, R any] struct {
	kind   Kind
	result R
	effect func(ctx context.Context) (Groups[A, R], error)
	inner  Stream[A, Groups[A, R]]
	thunk  func() Groups[A, R]
}

// GroupsView is one resolved layer of Groups.
type GroupsView[A, R any] struct {
	Kind   Kind
	Result R
	Effect func(ctx context.Context) (Groups[A, R], error)
	Inner  Stream[A, Groups[A, R]]
}

func GroupsDone[A, R any](r R) Groups[A, R] {
	return Groups[A, R]{n: &groupsNode[A, R]{kind: KindDone, result: r}}
}

func GroupsSuspend[A, R any](e func(ctx context.Context) (Groups[A, R], error)) Groups[A, R] {
	return Groups[A, R]{n: &groupsNode[A, R]{kind: KindSuspended, effect: e}}
}

// GroupsEmit returns Groups whose next group is inner.
func GroupsEmit[A, R any](inner Stream[A, Groups[A, R]]) Groups[A, R] {
	return Groups[A, R]{n: &groupsNode[A, R]{kind: KindEmit, inner: inner}}
}

// GroupsDefer delays building Groups until they are first inspected.
func GroupsDefer[A, R any](thunk func() Groups[A, R]) Groups[A, R] {
	return Groups[A, R]{n: &groupsNode[A, R]{kind: kindDeferred, thunk: thunk}}
}

// View resolves deferred construction and returns the current layer.
func (g Groups[A, R]) View() GroupsView[A, R] {
	n := g.view()
	return GroupsView[A, R]{Kind: n.kind, Result: n.result, Effect: n.effect, Inner: n.inner}
}

func (g Groups[A, R]) view() *groupsNode[A, R] {
	for {
		if g.n == nil {
			return &groupsNode[A, R]{kind: KindDone}
		}
		if g.n.kind != kindDeferred {
			return g.n
		}
		g = g.n.thunk()
	}
}

func groupsAfter[A, R any, B, S any](e Effect[A, R], k func(Stream[A, R]) Groups[B, S]) Groups[B, S] {
	return GroupsSuspend(func(ctx context.Context) (Groups[B, S], error) {
		next, err := e(ctx)
		if err != nil {
			return Groups[B, S]{}, err
		}
		return k(next), nil
	})
}

// ChunksOf splits s into groups of n elements; the last group may be shorter.
// n below 1 is treated as 1.
func ChunksOf[A, R any](s Stream[A, R], n int) Groups[A, R] {
	n = max(n, 1)
	return GroupsDefer(func() Groups[A, R] {
		v := s.view()
		switch v.kind {
		case KindDone:
			return GroupsDone[A](v.result)
		case KindSuspended:
			return groupsAfter(v.effect, func(next Stream[A, R]) Groups[A, R] { return ChunksOf(next, n) })
		default:
			chunk := SplitAt(Emit(v.head, v.tail), n)
			return GroupsEmit(MapResult(chunk, func(rest Stream[A, R]) Groups[A, R] { return ChunksOf(rest, n) }))
		}
	})
}

// GroupBy splits s into runs of elements equal to the first element of the run.
func GroupBy[A, R any](s Stream[A, R], eq func(A, A) bool) Groups[A, R] {
	return GroupsDefer(func() Groups[A, R] {
		v := s.view()
		switch v.kind {
		case KindDone:
			return GroupsDone[A](v.result)
		case KindSuspended:
			return groupsAfter(v.effect, func(next Stream[A, R]) Groups[A, R] { return GroupBy(next, eq) })
		default:
			first := v.head
			run := Span(v.rest(), func(a A) bool { return eq(first, a) })
			return GroupsEmit(Cons(first, MapResult(run, func(rest Stream[A, R]) Groups[A, R] { return GroupBy(rest, eq) })))
		}
	})
}

// Group splits s into runs of equal elements.
func Group[A comparable, R any](s Stream[A, R]) Groups[A, R] {
	return GroupBy(s, func(a, b A) bool { return a == b })
}

// Concats flattens g back into a single stream.
func Concats[A, R any](g Groups[A, R]) Stream[A, R] {
	return Defer(func() Stream[A, R] {
		v := g.view()
		switch v.kind {
		case KindDone:
			return Done[A](v.result)
		case KindSuspended:
			return Suspend(func(ctx context.Context) (Stream[A, R], error) {
				next, err := v.effect(ctx)
				if err != nil {
					return Stream[A, R]{}, err
				}
				return Concats(next), nil
			})
		default:
			return Bind(v.inner, Concats[A, R])
		}
	})
}

// Mapped turns every group into one value with f. f must walk the group to
// its end and return the rest of the groups; it runs when the value is requested.
func Mapped[A, B, R any](g Groups[A, R], f func(ctx context.Context, group Stream[A, Groups[A, R]]) (B, Groups[A, R], error)) Stream[B, R] {
	return Defer(func() Stream[B, R] {
		v := g.view()
		switch v.kind {
		case KindDone:
			return Done[B](v.result)
		case KindSuspended:
			return Suspend(func(ctx context.Context) (Stream[B, R], error) {
				next, err := v.effect(ctx)
				if err != nil {
					return Stream[B, R]{}, err
				}
				return Mapped(next, f), nil
			})
		default:
			return Suspend(func(ctx context.Context) (Stream[B, R], error) {
				b, rest, err := f(ctx, v.inner)
				if err != nil {
					return Stream[B, R]{}, err
				}
				return Emit(b, func() Stream[B, R] { return Mapped(rest, f) }), nil
			})
		}
	})
}

// ToLists collects every group into a slice.
func ToLists[A, R any](g Groups[A, R]) Stream[[]A, R] {
	return Mapped(g, func(ctx context.Context, group Stream[A, Groups[A, R]]) ([]A, Groups[A, R], error) {
		res, err := ToListOf(ctx, group)
		return res.Value, res.Rest, err
	})
}

// TakeGroups keeps the first n groups. The rest of g is never inspected.
func TakeGroups[A, R any](g Groups[A, R], n int) Groups[A, struct{}] {
	return GroupsDefer(func() Groups[A, struct{}] {
		if n <= 0 {
			return GroupsDone[A](struct{}{})
		}
		v := g.view()
		switch v.kind {
		case KindDone:
			return GroupsDone[A](struct{}{})
		case KindSuspended:
			return GroupsSuspend(func(ctx context.Context) (Groups[A, struct{}], error) {
				next, err := v.effect(ctx)
				if err != nil {
					return Groups[A, struct{}]{}, err
				}
				return TakeGroups(next, n), nil
			})
		default:
			return GroupsEmit(MapResult(v.inner, func(rest Groups[A, R]) Groups[A, struct{}] {
				return TakeGroups(rest, n-1)
			}))
		}
	})
}
