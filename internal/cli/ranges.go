package cli

import "time"

const (
	choiceCustom = "Custom range"
	choiceMax    = "Maximum available"
)

// rangeChoices lists the date-range presets offered per interval. Minute
// intervals only offer spans inside their lookback window; unbounded
// intervals additionally offer the provider's full history.
var rangeChoices = map[string][]string{
	"1m":  {"Last 7 days"},
	"2m":  {"Last 7 days", "Last 30 days", "Last 60 days"},
	"5m":  {"Last 7 days", "Last 30 days", "Last 60 days"},
	"15m": {"Last 7 days", "Last 30 days", "Last 60 days"},
	"30m": {"Last 7 days", "Last 30 days", "Last 60 days"},
	"60m": {"Last 7 days", "Last 30 days", "Last 60 days"},
	"90m": {"Last 7 days", "Last 30 days", "Last 60 days"},
	"1h":  {"Last 7 days", "Last 30 days", "Last 60 days"},
	"1d":  {"Last 7 days", "Last 30 days", "Last 3 months", "Last 6 months", "Last 1 year", "Last 5 years", choiceMax, choiceCustom},
	"5d":  {"Last 30 days", "Last 3 months", "Last 6 months", "Last 1 year", "Last 5 years", choiceMax, choiceCustom},
	"1wk": {"Last 3 months", "Last 6 months", "Last 1 year", "Last 5 years", choiceMax, choiceCustom},
	"1mo": {"Last 6 months", "Last 1 year", "Last 5 years", choiceMax, choiceCustom},
	"3mo": {"Last 1 year", "Last 5 years", choiceMax, choiceCustom},
}

func choicesForInterval(code string) []string {
	if c, ok := rangeChoices[code]; ok {
		return c
	}
	return []string{"Last 1 year", choiceCustom}
}

// presetRange maps a preset choice to concrete dates. Zero times with
// ok=true mean "maximum available"; ok=false means the choice needs a
// custom range prompt.
func presetRange(choice string, now time.Time) (start, end time.Time, ok bool) {
	switch choice {
	case "Last 7 days":
		return now.AddDate(0, 0, -7), now, true
	case "Last 30 days":
		return now.AddDate(0, 0, -30), now, true
	case "Last 60 days":
		return now.AddDate(0, 0, -60), now, true
	case "Last 3 months":
		return now.AddDate(0, -3, 0), now, true
	case "Last 6 months":
		return now.AddDate(0, -6, 0), now, true
	case "Last 1 year":
		return now.AddDate(-1, 0, 0), now, true
	case "Last 5 years":
		return now.AddDate(-5, 0, 0), now, true
	case choiceMax:
		return time.Time{}, time.Time{}, true
	default:
		return time.Time{}, time.Time{}, false
	}
}
