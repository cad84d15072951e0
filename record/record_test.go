package record

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	r, err := Parse("  AAPL , 189.5 ")
	require.NoError(t, err)
	assert.Equal(t, Record{Symbol: "AAPL", Price: 189.5}, r)
	assert.Equal(t, "AAPL,189.5", r.String())
}

func TestParseMalformed(t *testing.T) {
	for _, line := range []string{"AAPL", "AAPL,1,2", ""} {
		_, err := Parse(line)
		assert.Equal(t, ErrMalformed, errors.Cause(err), line)
	}
}

func TestParseBadPrice(t *testing.T) {
	_, err := Parse("AAPL,abc")
	require.Error(t, err)
	assert.NotEqual(t, ErrMalformed, errors.Cause(err))
	assert.Contains(t, err.Error(), "parsing price")
}

func TestCompare(t *testing.T) {
	a := Record{Symbol: "A", Price: 10}
	b := Record{Symbol: "B", Price: 10}
	c := Record{Symbol: "C", Price: 5}

	assert.Negative(t, Compare(a, b))
	assert.Positive(t, Compare(b, a))
	assert.Positive(t, Compare(a, c))
	assert.Zero(t, Compare(a, a))
}
