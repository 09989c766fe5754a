package stream

import "context"

type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Empty returns a stream that finishes at once.
func Empty[A any]() Stream[A, struct{}] {
	return Done[A](struct{}{})
}

// Each emits the elements of xs in order.
func Each[A any](xs []A) Stream[A, struct{}] {
	return eachThen(xs, func() Stream[A, struct{}] { return Done[A](struct{}{}) })
}

// eachThen emits xs and continues with rest.
func eachThen[A, R any](xs []A, rest func() Stream[A, R]) Stream[A, R] {
	if len(xs) == 0 {
		return Defer(rest)
	}
	return Emit(xs[0], func() Stream[A, R] { return eachThen(xs[1:], rest) })
}

// Repeat emits a forever.
func Repeat[A any](a A) Stream[A, struct{}] {
	var loop func() Stream[A, struct{}]
	loop = func() Stream[A, struct{}] { return Emit(a, loop) }
	return Defer(loop)
}

// RepeatM runs f forever, emitting each value it returns.
func RepeatM[A any](f func(ctx context.Context) (A, error)) Stream[A, struct{}] {
	return Suspend(func(ctx context.Context) (Stream[A, struct{}], error) {
		a, err := f(ctx)
		if err != nil {
			return Stream[A, struct{}]{}, err
		}
		return Emit(a, func() Stream[A, struct{}] { return RepeatM(f) }), nil
	})
}

// Replicate emits a n times.
func Replicate[A any](n int, a A) Stream[A, struct{}] {
	return Take(Repeat(a), n)
}

// ReplicateM runs f n times, emitting each value.
func ReplicateM[A any](n int, f func(ctx context.Context) (A, error)) Stream[A, struct{}] {
	return Take(RepeatM(f), n)
}

// Iterate emits a, f(a), f(f(a)), ...
func Iterate[A any](a A, f func(A) A) Stream[A, struct{}] {
	return Emit(a, func() Stream[A, struct{}] { return Iterate(f(a), f) })
}

// IterateM emits a and then each value f produces from the previous one.
// f runs only when the next element is requested.
func IterateM[A any](a A, f func(ctx context.Context, a A) (A, error)) Stream[A, struct{}] {
	return Emit(a, func() Stream[A, struct{}] {
		return Suspend(func(ctx context.Context) (Stream[A, struct{}], error) {
			next, err := f(ctx, a)
			if err != nil {
				return Stream[A, struct{}]{}, err
			}
			return IterateM(next, f), nil
		})
	})
}

// Cycle walks s again and again, running its effects on every pass.
// Cycling a stream that never emits or suspends never yields.
func Cycle[A, R any](s Stream[A, R]) Stream[A, struct{}] {
	return Defer(func() Stream[A, struct{}] {
		return Bind(s, func(R) Stream[A, struct{}] { return Cycle(s) })
	})
}

// EnumFrom emits from, from+1, from+2, ...
func EnumFrom[N Number](from N) Stream[N, struct{}] {
	return Iterate(from, func(n N) N { return n + 1 })
}

// EnumFromThen emits from, then, and continues with the same step.
func EnumFromThen[N Number](from, then N) Stream[N, struct{}] {
	step := then - from
	return Iterate(from, func(n N) N { return n + step })
}
