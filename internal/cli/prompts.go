// Package cli implements the interactive collection flow: ticker selection,
// data frequency, date range, chart confirmation, and result display.
package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"

	"StockUniverse/internal/interval"
	"StockUniverse/internal/tickers"
)

const dateLayout = "2006-01-02"

// Selections holds everything the user chose for one collection run.
type Selections struct {
	Tickers  string
	Interval string
	Start    time.Time
	End      time.Time
	Charts   bool
}

// Prompter walks the user through the four selection steps.
type Prompter struct {
	TickerFile      string
	DefaultInterval string
	Now             func() time.Time
}

// NewPrompter creates a Prompter using the wall clock.
func NewPrompter(tickerFile, defaultInterval string) *Prompter {
	return &Prompter{
		TickerFile:      tickerFile,
		DefaultInterval: defaultInterval,
		Now:             time.Now,
	}
}

// Collect runs the interactive selection flow.
func (p *Prompter) Collect() (*Selections, error) {
	fmt.Println("\nStock Universe - Data Collection")

	fmt.Println("\nStep 1: Stock Selection")
	tickerInput, err := p.promptTickers()
	if err != nil {
		return nil, err
	}

	fmt.Println("\nStep 2: Data Frequency Selection")
	code, err := p.promptInterval()
	if err != nil {
		return nil, err
	}

	fmt.Println("\nStep 3: Date Range Selection")
	start, end, err := p.promptDateRange(code)
	if err != nil {
		return nil, err
	}

	fmt.Println("\nStep 4: Visualization Options")
	charts := true
	if err := survey.AskOne(&survey.Confirm{
		Message: "Would you like to generate interactive charts?",
		Default: true,
	}, &charts); err != nil {
		return nil, err
	}

	return &Selections{
		Tickers:  tickerInput,
		Interval: code,
		Start:    start,
		End:      end,
		Charts:   charts,
	}, nil
}

// Confirm asks a yes/no question.
func (p *Prompter) Confirm(message string, def bool) (bool, error) {
	answer := def
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer); err != nil {
		return false, err
	}
	return answer, nil
}

func (p *Prompter) promptTickers() (string, error) {
	if fileTickers := p.fileTickers(); len(fileTickers) > 0 {
		fmt.Println("\nAvailable tickers in input file:")
		fmt.Println(strings.Join(fileTickers, ", "))

		useFile, err := p.Confirm("Would you like to use tickers from the input file?", true)
		if err != nil {
			return "", err
		}
		if useFile {
			return strings.Join(fileTickers, ", "), nil
		}
	} else {
		fmt.Println("\nNo input file found or file is empty. Please enter tickers manually.")
	}

	var input string
	err := survey.AskOne(&survey.Input{
		Message: "Enter stock tickers (comma-separated)",
	}, &input, survey.WithValidator(survey.Required))
	return input, err
}

func (p *Prompter) fileTickers() []string {
	if _, err := os.Stat(p.TickerFile); err != nil {
		return nil
	}
	list, err := tickers.ReadFile(p.TickerFile)
	if err != nil {
		return nil
	}
	return list
}

func (p *Prompter) promptInterval() (string, error) {
	codes := interval.Codes()
	options := make([]string, len(codes))
	defaultOption := ""
	for i, code := range codes {
		options[i] = fmt.Sprintf("%s (%s)", code, interval.Describe(code))
		if code == p.DefaultInterval {
			defaultOption = options[i]
		}
	}
	if defaultOption == "" {
		defaultOption = options[0]
	}

	var choice string
	if err := survey.AskOne(&survey.Select{
		Message: "Select data frequency:",
		Options: options,
		Default: defaultOption,
	}, &choice); err != nil {
		return "", err
	}
	return strings.Fields(choice)[0], nil
}

func (p *Prompter) promptDateRange(code string) (time.Time, time.Time, error) {
	var choice string
	if err := survey.AskOne(&survey.Select{
		Message: "Select date range:",
		Options: choicesForInterval(code),
	}, &choice); err != nil {
		return time.Time{}, time.Time{}, err
	}

	if start, end, ok := presetRange(choice, p.Now()); ok {
		return start, end, nil
	}
	return p.promptCustomRange()
}

func (p *Prompter) promptCustomRange() (time.Time, time.Time, error) {
	var startStr string
	if err := survey.AskOne(&survey.Input{
		Message: "Enter start date (YYYY-MM-DD):",
	}, &startStr, survey.WithValidator(validDate(false))); err != nil {
		return time.Time{}, time.Time{}, err
	}

	var endStr string
	if err := survey.AskOne(&survey.Input{
		Message: "Enter end date (YYYY-MM-DD or press enter for today):",
	}, &endStr, survey.WithValidator(validDate(true))); err != nil {
		return time.Time{}, time.Time{}, err
	}

	start, _ := time.Parse(dateLayout, strings.TrimSpace(startStr))
	end := p.Now()
	if s := strings.TrimSpace(endStr); s != "" {
		end, _ = time.Parse(dateLayout, s)
	}
	return start, end, nil
}

func validDate(allowEmpty bool) survey.Validator {
	return func(ans interface{}) error {
		s, _ := ans.(string)
		s = strings.TrimSpace(s)
		if s == "" {
			if allowEmpty {
				return nil
			}
			return fmt.Errorf("a date is required")
		}
		if _, err := time.Parse(dateLayout, s); err != nil {
			return fmt.Errorf("expected YYYY-MM-DD, got %q", s)
		}
		return nil
	}
}
