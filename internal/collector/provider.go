package collector

import (
	"context"
	"time"

	"StockUniverse/internal/model"
)

// Provider supplies historical OHLCV series for a ticker. An empty slice
// with a nil error means the provider has no rows for the request, which
// is distinct from a transport or provider failure.
type Provider interface {
	// FetchPeriod requests the provider default window for the interval,
	// identified by a period token such as "7d", "60d", or "max".
	FetchPeriod(ctx context.Context, ticker, interval, period string) ([]model.Bar, error)
	// FetchRange requests an explicit start/end window.
	FetchRange(ctx context.Context, ticker, interval string, start, end time.Time) ([]model.Bar, error)
	Name() string
}
