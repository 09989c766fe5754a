package textparse_test

import (
	"context"
	"testing"

	"github.com/govalues/decimal"
	"github.com/on-the-ground/effect_ive_stream/shared/textparse"
	"github.com/on-the-ground/effect_ive_stream/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInt(t *testing.T) {
	n, err := textparse.Int(" 42 ")
	assert.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = textparse.Int("4x2")
	assert.Error(t, err)
}

func TestFloat(t *testing.T) {
	f, err := textparse.Float("2.5")
	assert.NoError(t, err)
	assert.Equal(t, 2.5, f)
}

func TestBool(t *testing.T) {
	for text, want := range map[string]bool{"true": true, "F": false, "1": true} {
		got, err := textparse.Bool(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, got, text)
	}
	_, err := textparse.Bool("yes")
	assert.Error(t, err)
}

func TestDate(t *testing.T) {
	d, err := textparse.Date("2024-02-29")
	assert.NoError(t, err)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = textparse.Date("29/02/2024")
	assert.Error(t, err)
}

func TestDecimal_KeepsScale(t *testing.T) {
	d, err := textparse.Decimal("1.50")
	assert.NoError(t, err)
	assert.Equal(t, "1.50", d.String())
}

func TestRead_SumsParsedDecimalsSkippingGarbage(t *testing.T) {
	amounts := stream.Read(stream.Each([]string{"1.10", "n/a", "2.20", ""}), textparse.Decimal)

	total, err := stream.FoldM(context.Background(), amounts,
		func(_ context.Context, acc decimal.Decimal, d decimal.Decimal) (decimal.Decimal, error) {
			return acc.Add(d)
		},
		func(context.Context) (decimal.Decimal, error) { return decimal.Zero, nil },
		func(_ context.Context, acc decimal.Decimal) (string, error) { return acc.String(), nil },
	)
	assert.NoError(t, err)
	assert.Equal(t, "3.30", total)
}

func TestRead_CountsValidDates(t *testing.T) {
	dates := stream.Read(stream.Each([]string{"2024-01-31", "2024-02-30", "2023-12-25"}), textparse.Date)
	n, err := stream.Length(context.Background(), dates)
	assert.NoError(t, err)
	assert.Equal(t, 2, n)
}
