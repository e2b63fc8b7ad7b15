package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"StockUniverse/internal/chart"
	"StockUniverse/internal/cli"
	"StockUniverse/internal/collector"
	"StockUniverse/internal/config"
	"StockUniverse/internal/ratelimit"
	"StockUniverse/internal/scheduler"
	"StockUniverse/internal/storage"
	"StockUniverse/internal/tickers"
)

const dateLayout = "2006-01-02"

var (
	flagConfig     string
	flagTickers    string
	flagTickerFile string
	flagInterval   string
	flagStart      string
	flagEnd        string
	flagCharts     bool
	flagYes        bool
	flagCron       string
	flagMock       bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stockuniverse",
		Short:         "Fetch historical stock data and generate interactive charts",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
	cmd.Flags().StringVar(&flagConfig, "config", "configs/config.yaml", "path to config file")
	cmd.Flags().StringVar(&flagTickers, "tickers", "", "comma-separated tickers (skips prompts)")
	cmd.Flags().StringVar(&flagTickerFile, "ticker-file", "", "ticker list file (skips prompts)")
	cmd.Flags().StringVar(&flagInterval, "interval", "", "data interval, e.g. 1d, 1h, 5m")
	cmd.Flags().StringVar(&flagStart, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flagEnd, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&flagCharts, "charts", true, "generate interactive charts")
	cmd.Flags().BoolVar(&flagYes, "yes", false, "skip the confirmation prompt")
	cmd.Flags().StringVar(&flagCron, "cron", "", "repeat the collection on a cron schedule")
	cmd.Flags().BoolVar(&flagMock, "mock", false, "use the mock data source")
	return cmd
}

func run(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	defer logger.Sync()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}

	prompter := cli.NewPrompter(cfg.TickerFile, cfg.DefaultInterval)
	renderer := chart.NewRenderer(cfg.Charts.MAPeriods)
	display := cli.NewDisplay(renderer)

	sel, err := selections(cfg, prompter)
	if err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			fmt.Println("\nOperation cancelled by user. Exiting...")
			return nil
		}
		return err
	}

	display.ShowSummary(sel)
	if !flagYes {
		ok, err := prompter.Confirm("Proceed with these selections?", true)
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				ok = false
			} else {
				return err
			}
		}
		if !ok {
			fmt.Println("Operation cancelled by user. Exiting...")
			return nil
		}
	}

	var prov collector.Provider = collector.NewYahooProvider(cfg.DataSource.BaseURL, cfg.Proxy)
	if flagMock {
		prov = &collector.MockProvider{Price: 100}
	}
	logger.Info("data source selected", zap.String("provider", prov.Name()))

	limiter := ratelimit.New(cfg.MinRequestGap())
	fetcher := collector.NewFetcher(prov, limiter, logger)
	runner := collector.NewBatchRunner(fetcher, storage.NewStore(), logger)

	runOnce := func() error {
		runDir, err := storage.NewRunDir(cfg.DataRoot, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("\nCreated data directory: %s\n", runDir)

		report, err := runner.Run(cmd.Context(), sel.Tickers, runDir, sel.Interval, sel.Start, sel.End)
		if err != nil {
			return err
		}
		display.ShowResults(report, sel.Charts)
		return nil
	}

	if flagCron != "" {
		sched := scheduler.New(logger)
		if err := sched.Register(flagCron, runOnce); err != nil {
			return err
		}
		if err := runOnce(); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nOperation cancelled by user. Exiting...")
		return nil
	}

	return runOnce()
}

// selections builds the run parameters from flags when given, otherwise
// walks the interactive flow.
func selections(cfg *config.Config, prompter *cli.Prompter) (*cli.Selections, error) {
	if flagTickers == "" && flagTickerFile == "" {
		sel, err := prompter.Collect()
		if err != nil {
			return nil, err
		}
		sel.Charts = sel.Charts && flagCharts
		return sel, nil
	}

	tickerText := flagTickers
	if flagTickerFile != "" {
		list, err := tickers.ReadFile(flagTickerFile)
		if err != nil {
			return nil, err
		}
		tickerText = strings.Join(list, ", ")
	}

	code := flagInterval
	if code == "" {
		code = cfg.DefaultInterval
	}

	var start, end time.Time
	if flagStart != "" {
		t, err := time.Parse(dateLayout, flagStart)
		if err != nil {
			return nil, fmt.Errorf("parse --start: %w", err)
		}
		start = t
	}
	if flagEnd != "" {
		t, err := time.Parse(dateLayout, flagEnd)
		if err != nil {
			return nil, fmt.Errorf("parse --end: %w", err)
		}
		end = t
	}

	return &cli.Selections{
		Tickers:  tickerText,
		Interval: code,
		Start:    start,
		End:      end,
		Charts:   flagCharts,
	}, nil
}

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.TimeKey = "time"
	return zap.Must(cfg.Build())
}
