package stream_test

import (
	"context"
	"testing"

	"github.com/on-the-ground/effect_ive_stream/stream"
	"github.com/stretchr/testify/assert"
)

func TestTakeRepeat(t *testing.T) {
	res, err := stream.ToListOf(context.Background(), stream.Take(stream.Repeat(1), 3))
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, res.Value)
	assert.Equal(t, struct{}{}, res.Rest)
}

func TestEach(t *testing.T) {
	ctx := context.Background()

	xs, err := stream.ToList(ctx, stream.Each([]string{"a", "b", "c"}))
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, xs)

	xs, err = stream.ToList(ctx, stream.Each([]string(nil)))
	assert.NoError(t, err)
	assert.Empty(t, xs)

	n, err := stream.Length(ctx, stream.Empty[float64]())
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestReplicate(t *testing.T) {
	ctx := context.Background()

	xs, err := stream.ToList(ctx, stream.Replicate(3, "x"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "x", "x"}, xs)

	xs, err = stream.ToList(ctx, stream.Replicate(-1, "x"))
	assert.NoError(t, err)
	assert.Empty(t, xs)
}

func TestReplicateM_RunsTheEffectExactlyNTimes(t *testing.T) {
	calls := 0
	xs, err := stream.ToList(context.Background(), stream.ReplicateM(4, func(context.Context) (int, error) {
		calls++
		return calls, nil
	}))
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, xs)
	assert.Equal(t, 4, calls)
}

func TestIterate(t *testing.T) {
	xs, err := stream.ToList(context.Background(), stream.Take(stream.Iterate(1, func(n int) int { return n * 2 }), 5))
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 8, 16}, xs)
}

func TestIterateM_RunsOnlyForRequestedElements(t *testing.T) {
	calls := 0
	s := stream.IterateM(1, func(_ context.Context, n int) (int, error) {
		calls++
		return n + 1, nil
	})

	xs, err := stream.ToList(context.Background(), stream.Take(s, 3))
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, xs)
	assert.Equal(t, 2, calls)
}

func TestCycle_RerunsEffectsOnEveryPass(t *testing.T) {
	runs := 0
	xs, err := stream.ToList(context.Background(), stream.Take(stream.Cycle(counted([]int{1, 2}, &runs)), 5))
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1, 2, 1}, xs)
	assert.Equal(t, 7, runs)
}

func TestEnumFrom(t *testing.T) {
	ctx := context.Background()

	xs, err := stream.ToList(ctx, stream.Take(stream.EnumFrom(3), 3))
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5}, xs)

	fs, err := stream.ToList(ctx, stream.Take(stream.EnumFromThen(10.0, 7.5), 3))
	assert.NoError(t, err)
	assert.Equal(t, []float64{10, 7.5, 5}, fs)
}
