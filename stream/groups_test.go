package stream_test

import (
	"context"
	"testing"

	"github.com/on-the-ground/effect_ive_stream/stream"
	"github.com/stretchr/testify/assert"
)

func TestChunksOf(t *testing.T) {
	ctx := context.Background()

	chunks, err := stream.ToList(ctx, stream.ToLists(stream.ChunksOf(stream.Each([]int{1, 2, 3, 4, 5}), 2)))
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, chunks)

	chunks, err = stream.ToList(ctx, stream.ToLists(stream.ChunksOf(stream.Each([]int{1, 2}), 0)))
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {2}}, chunks)
}

func TestChunksOf_KeepsResultAndEffects(t *testing.T) {
	runs := 0
	res, err := stream.ToListOf(context.Background(), stream.ToLists(stream.ChunksOf(counted([]int{1, 2, 3}, &runs), 2)))
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3}}, res.Value)
	assert.Equal(t, "end", res.Rest)
	assert.Equal(t, 4, runs)
}

func TestGroup(t *testing.T) {
	groups, err := stream.ToList(context.Background(), stream.ToLists(stream.Group(stream.Each([]int{1, 1, 2, 3, 3, 3}))))
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{1, 1}, {2}, {3, 3, 3}}, groups)
}

func TestGroupBy(t *testing.T) {
	sameParity := func(a, b int) bool { return even(a) == even(b) }
	groups, err := stream.ToList(context.Background(), stream.ToLists(stream.GroupBy(stream.Each([]int{2, 4, 1, 3, 6}), sameParity)))
	assert.NoError(t, err)
	assert.Equal(t, [][]int{{2, 4}, {1, 3}, {6}}, groups)
}

func TestConcats_UndoesGrouping(t *testing.T) {
	xs := []int{1, 2, 3, 4, 5, 6, 7}
	out, err := stream.ToList(context.Background(), stream.Concats(stream.ChunksOf(stream.Each(xs), 3)))
	assert.NoError(t, err)
	assert.Equal(t, xs, out)
}

func TestMapped(t *testing.T) {
	lengths := stream.Mapped(stream.ChunksOf(stream.Each([]string{"a", "b", "c"}), 2),
		func(ctx context.Context, group stream.Stream[string, stream.Groups[string, struct{}]]) (int, stream.Groups[string, struct{}], error) {
			res, err := stream.LengthOf(ctx, group)
			return res.Value, res.Rest, err
		})

	xs, err := stream.ToList(context.Background(), lengths)
	assert.NoError(t, err)
	assert.Equal(t, []int{2, 1}, xs)
}

func TestTakeGroups_OnAnInfiniteSource(t *testing.T) {
	out, err := stream.ToList(context.Background(), stream.Concats(stream.TakeGroups(stream.ChunksOf(stream.EnumFrom(1), 3), 2)))
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, out)
}

func TestGroupsView(t *testing.T) {
	g := stream.ChunksOf(stream.Each([]int{1}), 2)
	assert.Equal(t, stream.KindEmit, g.View().Kind)

	var zero stream.Groups[int, string]
	assert.Equal(t, stream.KindDone, zero.View().Kind)
}
