package dataset

import (
	"slices"
	"strings"
	"testing"

	"github.com/kabu1204/go-sortbench/record"
	"github.com/kabu1204/go-sortbench/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quotes = `Symbol,Price
AAPL,189.5

MSFT, 410.25
broken line
GOOG,141.8
AAPL,190
  NVDA , 875.1
`

func TestLoad(t *testing.T) {
	recs, err := Load(strings.NewReader(quotes), LoadOptions{SkipLines: 1})
	require.NoError(t, err)
	assert.Equal(t, []record.Record{
		{Symbol: "AAPL", Price: 189.5},
		{Symbol: "MSFT", Price: 410.25},
		{Symbol: "GOOG", Price: 141.8},
		{Symbol: "AAPL", Price: 190},
		{Symbol: "NVDA", Price: 875.1},
	}, recs)
}

func TestLoadLimitAndDedupe(t *testing.T) {
	recs, err := Load(strings.NewReader(quotes), LoadOptions{SkipLines: 1, Lines: 2})
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	recs, err = Load(strings.NewReader(quotes), LoadOptions{SkipLines: 1, Dedupe: true})
	require.NoError(t, err)
	assert.Len(t, recs, 4)
	assert.Equal(t, 189.5, recs[0].Price)
}

func TestLoadBadPrice(t *testing.T) {
	_, err := Load(strings.NewReader(quotes), LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestLoadNoData(t *testing.T) {
	_, err := Load(strings.NewReader("\n\njunk\n"), LoadOptions{})
	assert.Equal(t, ErrNoData, errors.Cause(err))
}

func TestDistributions(t *testing.T) {
	natural := types.Natural[int]()
	data := []int{5, 3, 9, 1, 7, 3, 8}
	orig := slices.Clone(data)

	dists := Distributions(data, natural, 42)
	require.Len(t, dists, 3)
	assert.Equal(t, orig, data)

	assert.Equal(t, Sorted, dists[0].Kind)
	assert.Equal(t, []int{1, 3, 3, 5, 7, 8, 9}, dists[0].Data)

	assert.Equal(t, Shuffled, dists[1].Kind)
	assert.ElementsMatch(t, orig, dists[1].Data)
	assert.Equal(t, dists[1].Data, Distributions(data, natural, 42)[1].Data)

	assert.Equal(t, Reversed, dists[2].Kind)
	assert.Equal(t, []int{9, 8, 7, 5, 3, 3, 1}, dists[2].Data)

	dists[0].Data[0] = 100
	assert.Equal(t, 1, dists[2].Data[6])
	assert.NotContains(t, dists[1].Data, 100)
}

func TestDistributionsEmpty(t *testing.T) {
	dists := Distributions([]int{}, types.Natural[int](), 1)
	for _, d := range dists {
		assert.Empty(t, d.Data)
	}
}
