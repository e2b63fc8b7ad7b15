package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"StockUniverse/internal/chart"
	"StockUniverse/internal/model"
)

// Display renders selection summaries and batch results to the terminal,
// generating charts for successful tickers when requested.
type Display struct {
	Renderer *chart.Renderer
	Out      io.Writer
}

// NewDisplay creates a Display writing to stdout.
func NewDisplay(renderer *chart.Renderer) *Display {
	return &Display{Renderer: renderer, Out: os.Stdout}
}

// ShowSummary prints the selections before the run is confirmed.
func (d *Display) ShowSummary(sel *Selections) {
	fmt.Fprintln(d.Out, "\nSummary of Selections")

	w := tabwriter.NewWriter(d.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Stocks\t%s\n", sel.Tickers)
	fmt.Fprintf(w, "Data Frequency\t%s\n", sel.Interval)
	if !sel.Start.IsZero() && !sel.End.IsZero() {
		fmt.Fprintf(w, "Date Range\t%s to %s\n", sel.Start.Format(dateLayout), sel.End.Format(dateLayout))
	} else {
		fmt.Fprintf(w, "Date Range\tMaximum available\n")
	}
	charts := "No"
	if sel.Charts {
		charts = "Yes"
	}
	fmt.Fprintf(w, "Generate Charts\t%s\n", charts)
	w.Flush()
}

// ShowResults prints the collection summary and the per-ticker results
// table. Chart generation failures downgrade a row to partial success but
// never affect other tickers.
func (d *Display) ShowResults(report *model.Report, renderCharts bool) {
	successes := report.Successes()
	failed := report.Len() - successes

	baseDir := "N/A"
	for _, ticker := range report.Tickers() {
		if o, ok := report.Get(ticker); ok && o.Status == model.StatusSuccess {
			baseDir = filepath.Dir(o.Paths.TickerDir)
			break
		}
	}

	fmt.Fprintln(d.Out, "\nCollection Summary:")
	fmt.Fprintf(d.Out, "  Successfully processed: %d tickers\n", successes)
	fmt.Fprintf(d.Out, "  Failed: %d tickers\n", failed)
	fmt.Fprintf(d.Out, "  Total files location: %s\n", baseDir)

	fmt.Fprintln(d.Out, "\nData Collection Results")
	w := tabwriter.NewWriter(d.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Ticker\tStatus\tFiles Generated")
	for _, ticker := range report.Tickers() {
		o, _ := report.Get(ticker)
		if o.Status != model.StatusSuccess {
			msg := o.Message
			if msg == "" {
				msg = "Unknown error"
			}
			fmt.Fprintf(w, "%s\tError\t%s\n", ticker, msg)
			continue
		}
		d.writeSuccessRow(w, ticker, o, renderCharts)
	}
	w.Flush()
}

func (d *Display) writeSuccessRow(w io.Writer, ticker string, o *model.Outcome, renderCharts bool) {
	dataFile := filepath.Base(o.Paths.DataPath)
	if !renderCharts {
		fmt.Fprintf(w, "%s\tSuccess\tData: %s\n", ticker, dataFile)
		return
	}

	files, err := d.Renderer.RenderAll(o.Series, o.Paths.TickerDir)
	if err != nil {
		fmt.Fprintf(w, "%s\tPartial Success\tData saved, but chart generation failed: %v\n", ticker, err)
		return
	}
	fmt.Fprintf(w, "%s\tSuccess\tData: %s; Charts: %s, %s\n",
		ticker, dataFile, filepath.Base(files.Candlestick), filepath.Base(files.Technical))
}
