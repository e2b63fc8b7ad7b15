package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"StockUniverse/internal/interval"
	"StockUniverse/internal/model"
	"StockUniverse/internal/ratelimit"
)

func newTestFetcher(p Provider) *Fetcher {
	return NewFetcher(p, ratelimit.New(time.Millisecond), zap.NewNop())
}

func TestFetch_UnsupportedIntervalSkipsProvider(t *testing.T) {
	mock := &MockProvider{Price: 100}
	f := newTestFetcher(mock)

	_, err := f.Fetch(context.Background(), "AAPL", "42m", time.Time{}, time.Time{})
	require.ErrorIs(t, err, interval.ErrUnsupported)
	assert.Zero(t, mock.Calls, "provider must not be invoked for an unsupported interval")
}

func TestFetch_InvalidRangePropagates(t *testing.T) {
	mock := &MockProvider{Price: 100}
	f := newTestFetcher(mock)

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := f.Fetch(context.Background(), "AAPL", "1d", start, end)
	require.ErrorIs(t, err, interval.ErrInvalidRange)
	assert.Zero(t, mock.Calls)
}

func TestFetch_DefaultPeriodWhenNoDates(t *testing.T) {
	mock := &MockProvider{Price: 100}
	f := newTestFetcher(mock)

	outcome, err := f.Fetch(context.Background(), "AAPL", "1m", time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Equal(t, model.StatusSuccess, outcome.Status)
	assert.False(t, mock.UsedRange)
	assert.Equal(t, "7d", mock.LastPeriod)
	assert.Equal(t, "1m", mock.LastInterval)
}

func TestFetch_ExplicitRangeClamped(t *testing.T) {
	mock := &MockProvider{Price: 100}
	f := newTestFetcher(mock)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	outcome, err := f.Fetch(context.Background(), "AAPL", "1m", start, end)
	require.NoError(t, err)

	assert.Equal(t, model.StatusSuccess, outcome.Status)
	assert.True(t, mock.UsedRange)
	assert.Equal(t, end.AddDate(0, 0, -7), mock.LastStart)
	assert.Equal(t, end, mock.LastEnd)
}

func TestFetch_ProviderErrorClassified(t *testing.T) {
	mock := &MockProvider{Err: errors.New("connection refused")}
	f := newTestFetcher(mock)

	outcome, err := f.Fetch(context.Background(), "AAPL", "1d", time.Time{}, time.Time{})
	require.NoError(t, err, "provider failures must not abort the batch")

	assert.Equal(t, model.StatusError, outcome.Status)
	assert.Contains(t, outcome.Message, "AAPL")
	assert.Contains(t, outcome.Message, "connection refused")
}

func TestFetch_EmptyResultClassified(t *testing.T) {
	mock := &MockProvider{SeriesByTicker: map[string][]model.Bar{}}
	f := newTestFetcher(mock)

	outcome, err := f.Fetch(context.Background(), "BADTICKER", "1d", time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, model.StatusEmpty, outcome.Status)
	assert.Nil(t, outcome.Series)
}

func TestFetch_SuccessCarriesSeries(t *testing.T) {
	bars := GenerateBars(150, 10)
	mock := &MockProvider{SeriesByTicker: map[string][]model.Bar{"AAPL": bars}}
	f := newTestFetcher(mock)

	outcome, err := f.Fetch(context.Background(), "AAPL", "1d", time.Time{}, time.Time{})
	require.NoError(t, err)

	require.Equal(t, model.StatusSuccess, outcome.Status)
	assert.Equal(t, "AAPL", outcome.Series.Ticker)
	assert.Equal(t, "1d", outcome.Series.Interval)
	assert.Len(t, outcome.Series.Bars, 10)
}
