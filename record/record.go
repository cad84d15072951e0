// Package record holds the stock quote benchmarked by sortbench: a ticker
// symbol and its price, read from "symbol,price" lines.
package record

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/utils"
	"github.com/pkg/errors"
)

// ErrMalformed marks a line that does not have exactly two comma separated
// fields. Loaders skip such lines.
var ErrMalformed = errors.New("malformed record line")

type Record struct {
	Symbol string
	Price  float64
}

// Compare orders records by price, then by symbol.
func Compare(a, b Record) int {
	if c := utils.Float64Comparator(a.Price, b.Price); c != 0 {
		return c
	}
	return utils.StringComparator(a.Symbol, b.Symbol)
}

func (r Record) String() string {
	return r.Symbol + "," + strconv.FormatFloat(r.Price, 'f', -1, 64)
}

// Parse reads one "symbol,price" line. Surrounding whitespace on the line and
// on each field is ignored.
func Parse(line string) (Record, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) != 2 {
		return Record{}, errors.Wrapf(ErrMalformed, "%q has %d fields", line, len(parts))
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Record{}, errors.Wrapf(err, "parsing price of %q", line)
	}
	return Record{Symbol: strings.TrimSpace(parts[0]), Price: price}, nil
}
