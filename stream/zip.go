package stream

// ZipWith walks left and right in lockstep, emitting f of each pair.
//
// Each step inspects left first and runs its effects until it emits; only then
// is right inspected. The zipped stream finishes as soon as either side does,
// with that side's result. When both are finished at the same step left wins,
// because right is never inspected. If left has emitted and right then
// finishes, the element taken from left is dropped.
func ZipWith[A, B, C, R any](left Stream[A, R], right Stream[B, R], f func(A, B) C) Stream[C, R] {
	return Defer(func() Stream[C, R] {
		l := left.view()
		switch l.kind {
		case KindDone:
			return Done[C](l.result)
		case KindSuspended:
			return andThen(l.effect, func(next Stream[A, R]) Stream[C, R] { return ZipWith(next, right, f) })
		default:
			return zipRight(l, right, f)
		}
	})
}

// zipRight finishes a zip step once left is known to be emitting.
func zipRight[A, B, C, R any](l *node[A, R], right Stream[B, R], f func(A, B) C) Stream[C, R] {
	return Defer(func() Stream[C, R] {
		r := right.view()
		switch r.kind {
		case KindDone:
			return Done[C](r.result)
		case KindSuspended:
			return andThen(r.effect, func(next Stream[B, R]) Stream[C, R] { return zipRight(l, next, f) })
		default:
			return Emit(f(l.head, r.head), func() Stream[C, R] { return ZipWith(l.rest(), r.rest(), f) })
		}
	})
}

// Zip pairs the elements of left and right. See ZipWith for how it ends.
func Zip[A, B, R any](left Stream[A, R], right Stream[B, R]) Stream[Pair[A, B], R] {
	return ZipWith(left, right, func(a A, b B) Pair[A, B] { return Pair[A, B]{V1: a, V2: b} })
}

// ZipWith3 zips three streams, inspecting them from left to right.
// The first of them found finished decides the result.
func ZipWith3[A, B, C, D, R any](s1 Stream[A, R], s2 Stream[B, R], s3 Stream[C, R], f func(A, B, C) D) Stream[D, R] {
	return ZipWith(Zip(s1, s2), s3, func(p Pair[A, B], c C) D { return f(p.V1, p.V2, c) })
}

// Triple is the element type produced by Zip3.
type Triple[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

// Zip3 is ZipWith3 building a Triple.
func Zip3[A, B, C, R any](s1 Stream[A, R], s2 Stream[B, R], s3 Stream[C, R]) Stream[Triple[A, B, C], R] {
	return ZipWith3(s1, s2, s3, func(a A, b B, c C) Triple[A, B, C] { return Triple[A, B, C]{V1: a, V2: b, V3: c} })
}
