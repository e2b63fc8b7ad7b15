// Package chart renders interactive HTML charts for fetched series using
// go-echarts: a candlestick/volume chart and a technical chart with moving
// average overlays.
package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/markcheno/go-talib"

	"StockUniverse/internal/model"
)

const (
	volumeUpColor   = "green"
	volumeDownColor = "red"
)

// Files records the chart files written for one ticker.
type Files struct {
	Candlestick string
	Technical   string
}

// Renderer writes chart HTML files into <tickerDir>/charts.
type Renderer struct {
	// MAPeriods are the moving-average windows overlaid on the technical
	// chart. Periods longer than the series are skipped.
	MAPeriods []int
}

// NewRenderer creates a Renderer. Empty maPeriods defaults to 20/50/200.
func NewRenderer(maPeriods []int) *Renderer {
	if len(maPeriods) == 0 {
		maPeriods = []int{20, 50, 200}
	}
	return &Renderer{MAPeriods: maPeriods}
}

// RenderAll writes the candlestick and technical charts for a series and
// returns their paths.
func (r *Renderer) RenderAll(series *model.Series, tickerDir string) (Files, error) {
	chartsDir := filepath.Join(tickerDir, "charts")
	if err := os.MkdirAll(chartsDir, 0o755); err != nil {
		return Files{}, fmt.Errorf("create charts directory: %w", err)
	}

	candlestickPath := filepath.Join(chartsDir, fmt.Sprintf("%s_candlestick.html", series.Ticker))
	if err := r.renderPage(series, candlestickPath, false); err != nil {
		return Files{}, fmt.Errorf("render candlestick chart: %w", err)
	}

	technicalPath := filepath.Join(chartsDir, fmt.Sprintf("%s_technical.html", series.Ticker))
	if err := r.renderPage(series, technicalPath, true); err != nil {
		return Files{}, fmt.Errorf("render technical chart: %w", err)
	}

	return Files{Candlestick: candlestickPath, Technical: technicalPath}, nil
}

func (r *Renderer) renderPage(series *model.Series, path string, withMAs bool) error {
	dates := make([]string, len(series.Bars))
	klineData := make([]opts.KlineData, len(series.Bars))
	volumeData := make([]opts.BarData, len(series.Bars))
	for i, b := range series.Bars {
		dates[i] = b.Time.Format("2006-01-02 15:04")
		klineData[i] = opts.KlineData{Value: [4]float64{b.Open, b.Close, b.Low, b.High}}
		color := volumeUpColor
		if b.Close < b.Open {
			color = volumeDownColor
		}
		volumeData[i] = opts.BarData{
			Value:     b.Volume,
			ItemStyle: &opts.ItemStyle{Color: color, Opacity: 0.5},
		}
	}

	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s Stock Price", series.Ticker)}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Start: 0, End: 100}),
	)
	kline.SetXAxis(dates).AddSeries("OHLC", klineData)

	if withMAs {
		closes := make([]float64, len(series.Bars))
		for i, b := range series.Bars {
			closes[i] = b.Close
		}
		for _, period := range r.MAPeriods {
			if period <= 0 || len(closes) < period {
				continue
			}
			ma := talib.Ma(closes, period, talib.SMA)
			lineData := make([]opts.LineData, len(ma))
			for i, v := range ma {
				if i < period-1 {
					lineData[i] = opts.LineData{Value: "-"}
					continue
				}
				lineData[i] = opts.LineData{Value: v}
			}
			line := charts.NewLine()
			line.SetXAxis(dates).AddSeries(fmt.Sprintf("MA%d", period), lineData)
			kline.Overlap(line)
		}
	}

	volume := charts.NewBar()
	volume.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s Volume", series.Ticker)}),
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "250px"}),
	)
	volume.SetXAxis(dates).AddSeries("Volume", volumeData)

	page := components.NewPage()
	page.AddCharts(kline, volume)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	return page.Render(f)
}
