package collector

import (
	"context"
	"time"

	"StockUniverse/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	// SeriesByTicker maps ticker to bars. Missing tickers yield no rows.
	SeriesByTicker map[string][]model.Bar
	// Err, when set, is returned from every fetch.
	Err error
	// Price generates a synthetic series when SeriesByTicker is nil.
	Price float64

	Calls        int
	LastTicker   string
	LastInterval string
	LastPeriod   string
	LastStart    time.Time
	LastEnd      time.Time
	UsedRange    bool
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) FetchPeriod(_ context.Context, ticker, interval, period string) ([]model.Bar, error) {
	m.Calls++
	m.LastTicker = ticker
	m.LastInterval = interval
	m.LastPeriod = period
	m.UsedRange = false
	return m.bars(ticker)
}

func (m *MockProvider) FetchRange(_ context.Context, ticker, interval string, start, end time.Time) ([]model.Bar, error) {
	m.Calls++
	m.LastTicker = ticker
	m.LastInterval = interval
	m.LastStart = start
	m.LastEnd = end
	m.UsedRange = true
	return m.bars(ticker)
}

func (m *MockProvider) bars(ticker string) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.SeriesByTicker != nil {
		return m.SeriesByTicker[ticker], nil
	}
	if m.Price > 0 {
		return GenerateBars(m.Price, 30), nil
	}
	return nil, nil
}

// GenerateBars builds a synthetic ascending series around a base price.
func GenerateBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().UTC().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
