package stream_test

import (
	"context"
	"testing"

	"github.com/on-the-ground/effect_ive_stream/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTake_RunsNoEffectPastTheLastElement(t *testing.T) {
	for k := 0; k <= 3; k++ {
		runs := 0
		xs, err := stream.ToList(context.Background(), stream.Take(counted([]int{1, 2, 3, 4, 5}, &runs), k))
		require.NoError(t, err)
		assert.Len(t, xs, k)
		assert.Equal(t, k, runs, "take %d", k)
	}
}

func TestTake_ShorterSource(t *testing.T) {
	runs := 0
	xs, err := stream.ToList(context.Background(), stream.Take(counted([]int{1, 2}, &runs), 5))
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, xs)
	assert.Equal(t, 3, runs)
}

func TestTakeWhile(t *testing.T) {
	xs, err := stream.ToList(context.Background(), stream.TakeWhile(stream.EnumFrom(1), func(n int) bool { return n < 4 }))
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, xs)
}

func TestDrop(t *testing.T) {
	ctx := context.Background()

	runs := 0
	res, err := stream.ToListOf(ctx, stream.Drop(counted([]int{1, 2, 3}, &runs), 2))
	assert.NoError(t, err)
	assert.Equal(t, []int{3}, res.Value)
	assert.Equal(t, "end", res.Rest)
	assert.Equal(t, 4, runs)

	xs, err := stream.ToList(ctx, stream.Drop(stream.Each([]int{1, 2}), 5))
	assert.NoError(t, err)
	assert.Empty(t, xs)

	xs, err = stream.ToList(ctx, stream.Drop(stream.Each([]int{1, 2}), -1))
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2}, xs)
}

func TestDropWhile(t *testing.T) {
	xs, err := stream.ToList(context.Background(), stream.DropWhile(stream.Each([]int{1, 2, 5, 1}), func(n int) bool { return n < 3 }))
	assert.NoError(t, err)
	assert.Equal(t, []int{5, 1}, xs)
}

func TestSplitAt(t *testing.T) {
	ctx := context.Background()

	prefix, err := stream.ToListOf(ctx, stream.SplitAt(stream.Each([]int{1, 2, 3}), 2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, prefix.Value)

	rest, err := stream.ToList(ctx, prefix.Rest)
	assert.NoError(t, err)
	assert.Equal(t, []int{3}, rest)
}

func TestSplitAt_PrefixThenRemainderWalksTheSourceOnce(t *testing.T) {
	ctx := context.Background()
	xs := []int{1, 2, 3, 4}

	for k := -1; k <= len(xs)+1; k++ {
		runs := 0
		prefix, err := stream.ToListOf(ctx, stream.SplitAt(counted(xs, &runs), k))
		require.NoError(t, err)
		rest, err := stream.ToListOf(ctx, prefix.Rest)
		require.NoError(t, err)

		assert.Equal(t, xs, append(prefix.Value, rest.Value...), "split at %d", k)
		assert.Equal(t, "end", rest.Rest)
		assert.Equal(t, len(xs)+1, runs, "split at %d", k)
	}
}

func TestSpan(t *testing.T) {
	ctx := context.Background()

	front, err := stream.ToListOf(ctx, stream.Span(stream.Each([]int{2, 4, 5, 6}), even))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, front.Value)

	back, err := stream.ToList(ctx, front.Rest)
	assert.NoError(t, err)
	assert.Equal(t, []int{5, 6}, back)
}

func TestBreak(t *testing.T) {
	ctx := context.Background()

	front, err := stream.ToListOf(ctx, stream.Break(stream.Each([]int{1, 3, 4, 5}), even))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, front.Value)

	back, err := stream.ToList(ctx, front.Rest)
	assert.NoError(t, err)
	assert.Equal(t, []int{4, 5}, back)
}
