package stream_test

import (
	"context"
	"fmt"

	"github.com/on-the-ground/effect_ive_stream/stream"
)

func Example() {
	ctx := context.Background()

	squares := stream.Map(stream.Filter(stream.EnumFrom(1), func(n int) bool { return n%2 == 1 }), func(n int) int { return n * n })
	xs, err := stream.ToList(ctx, stream.Take(squares, 4))
	if err != nil {
		panic(err)
	}
	fmt.Println(xs)
	// Output: [1 9 25 49]
}

func ExampleSplitAt() {
	ctx := context.Background()

	prefix, _ := stream.ToListOf(ctx, stream.SplitAt(stream.Each([]string{"a", "b", "c"}), 2))
	rest, _ := stream.ToList(ctx, prefix.Rest)
	fmt.Println(prefix.Value, rest)
	// Output: [a b] [c]
}

func ExampleUnfold() {
	ctx := context.Background()

	countdown := stream.Unfold(3, func(_ context.Context, n int) (stream.Either[string, stream.Of[int, int]], error) {
		if n == 0 {
			return stream.Left[string, stream.Of[int, int]]("liftoff"), nil
		}
		return stream.Right[string](stream.Of[int, int]{Value: n, Rest: n - 1}), nil
	})
	res, _ := stream.ToListOf(ctx, countdown)
	fmt.Println(res.Value, res.Rest)
	// Output: [3 2 1] liftoff
}

func ExampleChunksOf() {
	ctx := context.Background()

	chunks, _ := stream.ToList(ctx, stream.ToLists(stream.ChunksOf(stream.Each([]int{1, 2, 3, 4, 5}), 2)))
	fmt.Println(chunks)
	// Output: [[1 2] [3 4] [5]]
}
