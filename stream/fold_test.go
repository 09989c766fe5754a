package stream_test

import (
	"context"
	"errors"
	"testing"

	"github.com/on-the-ground/effect_ive_stream/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	total, err := stream.Fold(context.Background(), stream.Each([]int{1, 2, 3}),
		func(acc, n int) int { return acc + n }, 0, func(acc int) int { return acc })
	assert.NoError(t, err)
	assert.Equal(t, 6, total)
}

func TestFoldOf_KeepsTheResult(t *testing.T) {
	runs := 0
	res, err := stream.FoldOf(context.Background(), counted([]int{1, 2, 3}, &runs),
		func(acc string, n int) string { return acc + string(rune('a'+n-1)) }, "", func(acc string) string { return acc })
	assert.NoError(t, err)
	assert.Equal(t, "abc", res.Value)
	assert.Equal(t, "end", res.Rest)
	assert.Equal(t, 4, runs)
}

func TestFold_OverAppendedStreams(t *testing.T) {
	ctx := context.Background()
	left := []int{1, 2, 3}
	right := []int{4, 5}

	joined, err := stream.Sum(ctx, stream.Then(stream.Each(left), stream.Each(right)))
	require.NoError(t, err)

	leftSum, err := stream.Sum(ctx, stream.Each(left))
	require.NoError(t, err)
	continued, err := stream.Fold(ctx, stream.Each(right), func(acc, n int) int { return acc + n }, leftSum, func(acc int) int { return acc })
	require.NoError(t, err)

	assert.Equal(t, continued, joined)
}

func TestFoldM(t *testing.T) {
	var trace []string
	out, err := stream.FoldM(context.Background(), stream.Each([]int{1, 2}),
		func(_ context.Context, acc int, n int) (int, error) {
			trace = append(trace, "step")
			return acc + n, nil
		},
		func(context.Context) (int, error) {
			trace = append(trace, "init")
			return 10, nil
		},
		func(_ context.Context, acc int) (int, error) {
			trace = append(trace, "done")
			return acc * 2, nil
		},
	)
	assert.NoError(t, err)
	assert.Equal(t, 26, out)
	assert.Equal(t, []string{"init", "step", "step", "done"}, trace)
}

func TestEffects_ReturnsTheResult(t *testing.T) {
	runs := 0
	r, err := stream.Effects(context.Background(), counted([]int{1, 2}, &runs))
	assert.NoError(t, err)
	assert.Equal(t, "end", r)
	assert.Equal(t, 3, runs)

	assert.NoError(t, stream.Drain(context.Background(), counted([]int{1}, &runs)))
	assert.Equal(t, 5, runs)
}

func TestForEach_StopsAtTheFirstError(t *testing.T) {
	boom := errors.New("boom")
	var seen []int
	err := stream.ForEach(context.Background(), stream.Each([]int{1, 2, 3}), func(_ context.Context, n int) error {
		seen = append(seen, n)
		if n == 2 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestArithmeticFolds(t *testing.T) {
	ctx := context.Background()

	sum, err := stream.Sum(ctx, stream.Each([]float64{1.5, 2.5}))
	assert.NoError(t, err)
	assert.Equal(t, 4.0, sum)

	product, err := stream.Product(ctx, stream.Each([]int{2, 3, 4}))
	assert.NoError(t, err)
	assert.Equal(t, 24, product)

	product, err = stream.Product(ctx, stream.Empty[int]())
	assert.NoError(t, err)
	assert.Equal(t, 1, product)

	n, err := stream.Length(ctx, stream.Each([]string{"a", "b"}))
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMaximumMinimum(t *testing.T) {
	ctx := context.Background()

	largest, ok, err := stream.Maximum(ctx, stream.Each([]int{3, 9, 1}))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 9, largest)

	smallest, ok, err := stream.Minimum(ctx, stream.Each([]string{"b", "a", "c"}))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "a", smallest)

	_, ok, err = stream.Maximum(ctx, stream.Empty[int]())
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestConcatenate(t *testing.T) {
	ctx := context.Background()

	text, err := stream.Concatenate(ctx, stream.Each([]string{"a", "b", "c"}), ", ")
	assert.NoError(t, err)
	assert.Equal(t, "a, b, c", text)

	text, err = stream.Concatenate(ctx, stream.Empty[string](), ", ")
	assert.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestHead_InspectsOnlyTheFirstElement(t *testing.T) {
	runs := 0
	a, ok, err := stream.Head(context.Background(), counted([]int{4, 5, 6}, &runs))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4, a)
	assert.Equal(t, 1, runs)

	_, ok, err = stream.Head(context.Background(), stream.Empty[int]())
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestLast(t *testing.T) {
	a, ok, err := stream.Last(context.Background(), stream.Each([]int{4, 5, 6}))
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 6, a)
}

func TestAnyEveryElem_StopEarly(t *testing.T) {
	ctx := context.Background()

	runs := 0
	found, err := stream.Any(ctx, counted([]int{1, 2, 3, 4}, &runs), even)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 2, runs)

	runs = 0
	all, err := stream.Every(ctx, counted([]int{2, 3, 4}, &runs), even)
	assert.NoError(t, err)
	assert.False(t, all)
	assert.Equal(t, 2, runs)

	all, err = stream.Every(ctx, stream.Empty[int](), even)
	assert.NoError(t, err)
	assert.True(t, all)

	found, err = stream.Elem(ctx, stream.Take(stream.EnumFrom(0), 100), 42)
	assert.NoError(t, err)
	assert.True(t, found)
}

func TestFold_AfterMapEqualsFoldWithComposedStep(t *testing.T) {
	ctx := context.Background()
	xs := []int{3, 1, 4, 1, 5}
	double := func(n int) int { return n * 2 }
	step := func(acc []int, n int) []int { return append(acc, n+acc[len(acc)-1]) }
	done := func(acc []int) []int { return acc }

	mapped, err := stream.Fold(ctx, stream.Map(stream.Each(xs), double), step, []int{0}, done)
	require.NoError(t, err)
	composed, err := stream.Fold(ctx, stream.Each(xs), func(acc []int, n int) []int { return step(acc, double(n)) }, []int{0}, done)
	require.NoError(t, err)

	assert.Equal(t, composed, mapped)
	assert.Equal(t, []int{0, 6, 8, 16, 18, 28}, mapped)
}

type cents int64

func TestSum_OverANamedNumericType(t *testing.T) {
	total, err := stream.Sum(context.Background(), stream.Take(stream.EnumFrom(cents(10)), 3))
	assert.NoError(t, err)
	assert.Equal(t, cents(33), total)
}
