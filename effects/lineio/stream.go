package lineio

import (
	"context"
	"errors"

	"github.com/on-the-ground/effect_ive_stream/stream"
)

// ReadLines emits every input line. Each element costs one read; the stream
// finishes at end of input.
func ReadLines() stream.Stream[string, struct{}] {
	return stream.Unfold(struct{}{}, func(ctx context.Context, _ struct{}) (stream.Either[struct{}, stream.Of[string, struct{}]], error) {
		line, ok, err := ReadLine(ctx)
		if err != nil {
			return stream.Either[struct{}, stream.Of[string, struct{}]]{}, err
		}
		if !ok {
			return stream.Left[struct{}, stream.Of[string, struct{}]](struct{}{}), nil
		}
		return stream.Right[struct{}](stream.Of[string, struct{}]{Value: line}), nil
	})
}

// ReadLinesUntil emits input lines up to, not including, the first line stop accepts.
// That line is consumed from the input.
func ReadLinesUntil(stop func(line string) bool) stream.Stream[string, struct{}] {
	return stream.TakeWhile(ReadLines(), func(line string) bool { return !stop(line) })
}

// WriteLines writes every element of s as a line.
//
// When the output is closed the walk stops and nil is returned: a reader that
// went away ends the stream normally. Any other error is returned.
func WriteLines[R any](ctx context.Context, s stream.Stream[string, R]) error {
	_, closed, err := writeAll(ctx, s)
	if closed {
		return nil
	}
	return err
}

// WriteLinesOf is WriteLines keeping the result of s. There is no result to
// return when the output closes early, so that case is an error wrapping ErrBrokenPipe.
func WriteLinesOf[R any](ctx context.Context, s stream.Stream[string, R]) (R, error) {
	r, _, err := writeAll(ctx, s)
	return r, err
}

// writeAll reports closed only for a broken pipe raised by its own writes,
// never for one coming out of the effects of s.
func writeAll[R any](ctx context.Context, s stream.Stream[string, R]) (R, bool, error) {
	var zero R
	for {
		e, err := stream.Next(ctx, s)
		if err != nil {
			return zero, false, err
		}
		if res, done := e.GetLeft(); done {
			return res, false, nil
		}
		out, _ := e.GetRight()
		if err := WriteLine(ctx, out.Value); err != nil {
			return zero, errors.Is(err, ErrBrokenPipe), err
		}
		s = out.Rest
	}
}
