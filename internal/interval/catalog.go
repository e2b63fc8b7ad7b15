package interval

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned for interval codes outside the catalog.
var ErrUnsupported = errors.New("unsupported interval")

// Lookback is the maximum historical span the provider serves for an interval.
type Lookback struct {
	Days      int
	Unbounded bool
}

type entry struct {
	code        string
	period      string // provider default-period token
	lookback    Lookback
	description string
}

// Catalog order doubles as display order in the CLI picker.
var catalog = []entry{
	{"1m", "7d", Lookback{Days: 7}, "One minute intervals - Last 7 days"},
	{"2m", "60d", Lookback{Days: 60}, "Two minute intervals - Last 60 days"},
	{"5m", "60d", Lookback{Days: 60}, "Five minute intervals - Last 60 days"},
	{"15m", "60d", Lookback{Days: 60}, "Fifteen minute intervals - Last 60 days"},
	{"30m", "60d", Lookback{Days: 60}, "Thirty minute intervals - Last 60 days"},
	{"60m", "60d", Lookback{Days: 60}, "Hourly intervals - Last 60 days"},
	{"90m", "60d", Lookback{Days: 60}, "Ninety minute intervals - Last 60 days"},
	{"1h", "60d", Lookback{Days: 60}, "Hourly intervals - Last 60 days"},
	{"1d", "max", Lookback{Unbounded: true}, "Daily intervals"},
	{"5d", "max", Lookback{Unbounded: true}, "Five day intervals"},
	{"1wk", "max", Lookback{Unbounded: true}, "Weekly intervals"},
	{"1mo", "max", Lookback{Unbounded: true}, "Monthly intervals"},
	{"3mo", "max", Lookback{Unbounded: true}, "Quarterly intervals"},
}

var index = func() map[string]entry {
	m := make(map[string]entry, len(catalog))
	for _, e := range catalog {
		m[e.code] = e
	}
	return m
}()

// Supported reports whether the interval code is in the catalog.
func Supported(code string) bool {
	_, ok := index[code]
	return ok
}

// MaxLookback returns the maximum retrievable span for the interval.
func MaxLookback(code string) (Lookback, error) {
	e, ok := index[code]
	if !ok {
		return Lookback{}, fmt.Errorf("%w: %s", ErrUnsupported, code)
	}
	return e.lookback, nil
}

// DefaultPeriod returns the provider period token used when no explicit
// date range is requested.
func DefaultPeriod(code string) (string, error) {
	e, ok := index[code]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, code)
	}
	return e.period, nil
}

// Codes returns all supported interval codes in catalog order.
func Codes() []string {
	codes := make([]string, len(catalog))
	for i, e := range catalog {
		codes[i] = e.code
	}
	return codes
}

// Describe returns the human-readable description for a code, or "" if unknown.
func Describe(code string) string {
	return index[code].description
}
