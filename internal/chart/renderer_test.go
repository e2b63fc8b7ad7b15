package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockUniverse/internal/model"
)

func testSeries(n int) *model.Series {
	bars := make([]model.Bar, n)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		p := 100 + float64(i)
		bars[i] = model.Bar{
			Time:   base.AddDate(0, 0, i),
			Open:   p - 0.5,
			High:   p + 1,
			Low:    p - 1,
			Close:  p,
			Volume: float64(1000 * (i + 1)),
		}
	}
	return &model.Series{Ticker: "AAPL", Interval: "1d", Bars: bars}
}

func TestRenderAll_WritesBothCharts(t *testing.T) {
	tickerDir := filepath.Join(t.TempDir(), "AAPL")
	r := NewRenderer([]int{5, 200}) // 200 exceeds the series and is skipped

	files, err := r.RenderAll(testSeries(30), tickerDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tickerDir, "charts", "AAPL_candlestick.html"), files.Candlestick)
	assert.Equal(t, filepath.Join(tickerDir, "charts", "AAPL_technical.html"), files.Technical)

	for _, path := range []string{files.Candlestick, files.Technical} {
		info, err := os.Stat(path)
		require.NoError(t, err, path)
		assert.Greater(t, info.Size(), int64(0), path)
	}
}

func TestNewRenderer_DefaultPeriods(t *testing.T) {
	r := NewRenderer(nil)
	assert.Equal(t, []int{20, 50, 200}, r.MAPeriods)
}
