package collector

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"StockUniverse/internal/model"
	"StockUniverse/internal/tickers"
)

// SeriesStore persists a fetched series under the run directory.
type SeriesStore interface {
	Save(series *model.Series, baseDir string) (model.SavedPaths, error)
}

// BatchRunner processes an ordered ticker list sequentially, persisting
// each successful fetch and collecting per-ticker outcomes.
type BatchRunner struct {
	fetcher *Fetcher
	store   SeriesStore
	logger  *zap.Logger
}

// NewBatchRunner creates a BatchRunner.
func NewBatchRunner(fetcher *Fetcher, store SeriesStore, logger *zap.Logger) *BatchRunner {
	return &BatchRunner{fetcher: fetcher, store: store, logger: logger}
}

// Run fetches and saves every ticker in the comma-separated list. A
// provider failure, an empty result, or a save failure is recorded in the
// report and processing continues with the next ticker; an unsupported
// interval or invalid date range aborts the batch. An empty result is
// reported in the same error bucket as a failed fetch.
func (b *BatchRunner) Run(ctx context.Context, tickerListText, baseDir, code string, start, end time.Time) (*model.Report, error) {
	report := model.NewReport()

	for _, ticker := range tickers.ParseList(tickerListText) {
		b.logger.Info("fetching data", zap.String("ticker", ticker), zap.String("interval", code))

		outcome, err := b.fetcher.Fetch(ctx, ticker, code, start, end)
		if err != nil {
			return nil, err
		}

		switch outcome.Status {
		case model.StatusSuccess:
			paths, err := b.store.Save(outcome.Series, baseDir)
			if err != nil {
				b.logger.Error("save failed", zap.String("ticker", ticker), zap.Error(err))
				report.Set(ticker, &model.Outcome{
					Status:  model.StatusError,
					Message: fmt.Sprintf("Error saving data: %v", err),
				})
				continue
			}
			outcome.Paths = paths
			report.Set(ticker, outcome)
			b.logger.Info("saved data", zap.String("ticker", ticker), zap.String("path", paths.DataPath))
		case model.StatusError:
			report.Set(ticker, outcome)
		default:
			report.Set(ticker, &model.Outcome{
				Status:  model.StatusError,
				Message: "Failed to fetch data",
			})
		}
	}

	return report, nil
}
