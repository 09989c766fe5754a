package stream

// Take emits the first n elements of s.
//
// The result of s is dropped: the returned stream always finishes with
// struct{}{}. Nothing past the n-th element is inspected, so no later effect
// runs. Use SplitAt to keep the remainder.
func Take[A, R any](s Stream[A, R], n int) Stream[A, struct{}] {
	return Defer(func() Stream[A, struct{}] {
		if n <= 0 {
			return Done[A](struct{}{})
		}
		v := s.view()
		switch v.kind {
		case KindDone:
			return Done[A](struct{}{})
		case KindSuspended:
			return andThen(v.effect, func(next Stream[A, R]) Stream[A, struct{}] { return Take(next, n) })
		default:
			return Emit(v.head, func() Stream[A, struct{}] {
				if n == 1 {
					return Done[A](struct{}{})
				}
				return Take(v.rest(), n-1)
			})
		}
	})
}

// TakeWhile emits elements while pred holds. The first failing element and
// the result of s are dropped.
func TakeWhile[A, R any](s Stream[A, R], pred func(A) bool) Stream[A, struct{}] {
	return Defer(func() Stream[A, struct{}] {
		v := s.view()
		switch v.kind {
		case KindDone:
			return Done[A](struct{}{})
		case KindSuspended:
			return andThen(v.effect, func(next Stream[A, R]) Stream[A, struct{}] { return TakeWhile(next, pred) })
		}
		if !pred(v.head) {
			return Done[A](struct{}{})
		}
		return Emit(v.head, func() Stream[A, struct{}] { return TakeWhile(v.rest(), pred) })
	})
}

// Drop skips the first n elements. Effects between skipped elements still run.
func Drop[A, R any](s Stream[A, R], n int) Stream[A, R] {
	return Defer(func() Stream[A, R] {
		for left := n; ; left-- {
			if left <= 0 {
				return s
			}
			v := s.view()
			switch v.kind {
			case KindDone:
				return Done[A](v.result)
			case KindSuspended:
				remaining := left
				return andThen(v.effect, func(next Stream[A, R]) Stream[A, R] { return Drop(next, remaining) })
			}
			s = v.rest()
		}
	})
}

// DropWhile skips elements while pred holds, then emits the rest unchanged.
func DropWhile[A, R any](s Stream[A, R], pred func(A) bool) Stream[A, R] {
	return Defer(func() Stream[A, R] {
		for {
			v := s.view()
			switch v.kind {
			case KindDone:
				return Done[A](v.result)
			case KindSuspended:
				return andThen(v.effect, func(next Stream[A, R]) Stream[A, R] { return DropWhile(next, pred) })
			}
			if !pred(v.head) {
				return Emit(v.head, v.tail)
			}
			s = v.rest()
		}
	})
}

// SplitAt emits the first n elements of s and finishes with the rest of s.
//
// Walking the prefix and then its result walks s exactly once: no element is
// lost or repeated and no effect runs twice. With n <= 0 the result is s
// itself and nothing is inspected.
func SplitAt[A, R any](s Stream[A, R], n int) Stream[A, Stream[A, R]] {
	return Defer(func() Stream[A, Stream[A, R]] {
		if n <= 0 {
			return Done[A](s)
		}
		v := s.view()
		switch v.kind {
		case KindDone:
			return Done[A](Done[A](v.result))
		case KindSuspended:
			return andThen(v.effect, func(next Stream[A, R]) Stream[A, Stream[A, R]] { return SplitAt(next, n) })
		default:
			return Emit(v.head, func() Stream[A, Stream[A, R]] { return SplitAt(v.rest(), n-1) })
		}
	})
}

// Span emits elements while pred holds and finishes with the rest of s,
// starting at the first element that failed pred.
func Span[A, R any](s Stream[A, R], pred func(A) bool) Stream[A, Stream[A, R]] {
	return Defer(func() Stream[A, Stream[A, R]] {
		v := s.view()
		switch v.kind {
		case KindDone:
			return Done[A](Done[A](v.result))
		case KindSuspended:
			return andThen(v.effect, func(next Stream[A, R]) Stream[A, Stream[A, R]] { return Span(next, pred) })
		}
		if !pred(v.head) {
			return Done[A](Emit(v.head, v.tail))
		}
		return Emit(v.head, func() Stream[A, Stream[A, R]] { return Span(v.rest(), pred) })
	})
}

// Break is Span with the predicate negated: it stops at the first element
// for which pred holds.
func Break[A, R any](s Stream[A, R], pred func(A) bool) Stream[A, Stream[A, R]] {
	return Span(s, func(a A) bool { return !pred(a) })
}
