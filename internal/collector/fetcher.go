// Package collector orchestrates market-data acquisition: interval
// validation, rate limiting, date-range resolution, the provider call, and
// outcome classification.
package collector

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"StockUniverse/internal/interval"
	"StockUniverse/internal/model"
	"StockUniverse/internal/ratelimit"
)

// Fetcher retrieves and classifies the series for a single ticker.
type Fetcher struct {
	provider Provider
	limiter  *ratelimit.Limiter
	resolver *interval.Resolver
	logger   *zap.Logger
}

// NewFetcher creates a Fetcher. The limiter is shared across all calls so
// consecutive provider requests keep their minimum spacing.
func NewFetcher(p Provider, limiter *ratelimit.Limiter, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		provider: p,
		limiter:  limiter,
		resolver: interval.NewResolver(),
		logger:   logger,
	}
}

// Fetch retrieves the series for one ticker. Provider failures and empty
// results are classified into the returned outcome; an unsupported
// interval, an invalid date range, or a cancelled context is returned as
// an error and aborts the batch. The interval is validated before the rate
// limiter or the provider is touched.
func (f *Fetcher) Fetch(ctx context.Context, ticker, code string, start, end time.Time) (*model.Outcome, error) {
	if !interval.Supported(code) {
		return nil, fmt.Errorf("%w: %s", interval.ErrUnsupported, code)
	}

	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	rng, err := f.resolver.Resolve(code, start, end)
	if err != nil {
		return nil, err
	}
	if rng.Clamped {
		f.logger.Info("adjusted start date due to interval limitations",
			zap.String("ticker", ticker),
			zap.String("interval", code),
			zap.String("start", rng.Start.Format("2006-01-02")))
	}

	var bars []model.Bar
	if rng.Explicit() {
		bars, err = f.provider.FetchRange(ctx, ticker, code, rng.Start, rng.End)
	} else {
		period, perr := interval.DefaultPeriod(code)
		if perr != nil {
			return nil, perr
		}
		bars, err = f.provider.FetchPeriod(ctx, ticker, code, period)
	}
	if err != nil {
		f.logger.Error("fetch failed", zap.String("ticker", ticker), zap.Error(err))
		return &model.Outcome{
			Status:  model.StatusError,
			Message: fmt.Sprintf("fetching data for %s: %v", ticker, err),
		}, nil
	}
	if len(bars) == 0 {
		f.logger.Warn("no data returned", zap.String("ticker", ticker))
		return &model.Outcome{Status: model.StatusEmpty}, nil
	}

	return &model.Outcome{
		Status: model.StatusSuccess,
		Series: &model.Series{
			Ticker:    ticker,
			Interval:  code,
			Bars:      bars,
			FetchedAt: time.Now(),
		},
	}, nil
}
