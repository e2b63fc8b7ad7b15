package model

import "time"

// Bar represents a single OHLCV candlestick sample.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Series holds the fetched price history for one ticker.
type Series struct {
	Ticker    string
	Interval  string
	Bars      []Bar
	FetchedAt time.Time
}

// Empty reports whether the series carries no rows.
func (s *Series) Empty() bool {
	return s == nil || len(s.Bars) == 0
}
