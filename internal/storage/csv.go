// Package storage persists fetched series as CSV files under the per-run
// directory layout: <base>/<TICKER>/data/<TICKER>_<interval>.csv.
package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"StockUniverse/internal/model"
)

const timeLayout = time.RFC3339

var header = []string{"Date", "Open", "High", "Low", "Close", "Volume"}

// NewRunDir creates a timestamped run directory under root and returns it.
func NewRunDir(root string, now time.Time) (string, error) {
	dir := filepath.Join(root, now.Format("20060102_150405"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create run directory: %w", err)
	}
	return dir, nil
}

// Store writes and reads series CSV files.
type Store struct{}

// NewStore creates a Store.
func NewStore() *Store {
	return &Store{}
}

// Save writes the series under baseDir and returns the created paths.
func (s *Store) Save(series *model.Series, baseDir string) (model.SavedPaths, error) {
	tickerDir := filepath.Join(baseDir, series.Ticker)
	dataDir := filepath.Join(tickerDir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return model.SavedPaths{}, fmt.Errorf("create data directory: %w", err)
	}

	dataPath := filepath.Join(dataDir, fmt.Sprintf("%s_%s.csv", series.Ticker, series.Interval))
	f, err := os.Create(dataPath)
	if err != nil {
		return model.SavedPaths{}, fmt.Errorf("create data file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return model.SavedPaths{}, fmt.Errorf("write header: %w", err)
	}
	for _, b := range series.Bars {
		row := []string{
			b.Time.Format(timeLayout),
			formatFloat(b.Open),
			formatFloat(b.High),
			formatFloat(b.Low),
			formatFloat(b.Close),
			formatFloat(b.Volume),
		}
		if err := w.Write(row); err != nil {
			return model.SavedPaths{}, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return model.SavedPaths{}, fmt.Errorf("flush csv: %w", err)
	}
	return model.SavedPaths{TickerDir: tickerDir, DataPath: dataPath}, nil
}

// Load reads bars back from a CSV file written by Save.
func (s *Store) Load(path string) ([]model.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	bars := make([]model.Bar, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) != len(header) {
			return nil, fmt.Errorf("row %d: expected %d columns, got %d", i+1, len(header), len(rec))
		}
		t, err := time.Parse(timeLayout, rec[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: parse date: %w", i+1, err)
		}
		vals := make([]float64, 5)
		for j := 1; j < 6; j++ {
			v, err := strconv.ParseFloat(rec[j], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: parse %s: %w", i+1, header[j], err)
			}
			vals[j-1] = v
		}
		bars = append(bars, model.Bar{
			Time:   t,
			Open:   vals[0],
			High:   vals[1],
			Low:    vals[2],
			Close:  vals[3],
			Volume: vals[4],
		})
	}
	return bars, nil
}

// formatFloat uses the shortest decimal representation that round-trips
// exactly through ParseFloat.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
