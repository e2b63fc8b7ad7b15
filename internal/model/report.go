package model

// Status classifies the outcome of one ticker in a batch run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusEmpty   Status = "empty"
	StatusError   Status = "error"
)

// SavedPaths records where a ticker's files were written.
type SavedPaths struct {
	TickerDir string
	DataPath  string
}

// Outcome is the result of fetching (and persisting) one ticker.
type Outcome struct {
	Status  Status
	Series  *Series
	Paths   SavedPaths
	Message string
}

// Report collects per-ticker outcomes for one batch run, in request order.
// Setting an outcome for a ticker already present overwrites the earlier
// entry but keeps the original position.
type Report struct {
	order   []string
	entries map[string]*Outcome
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{entries: make(map[string]*Outcome)}
}

// Set records the outcome for a ticker.
func (r *Report) Set(ticker string, o *Outcome) {
	if _, ok := r.entries[ticker]; !ok {
		r.order = append(r.order, ticker)
	}
	r.entries[ticker] = o
}

// Get returns the outcome for a ticker, if recorded.
func (r *Report) Get(ticker string) (*Outcome, bool) {
	o, ok := r.entries[ticker]
	return o, ok
}

// Tickers returns the tickers in request order.
func (r *Report) Tickers() []string {
	return r.order
}

// Len returns the number of recorded tickers.
func (r *Report) Len() int {
	return len(r.order)
}

// Successes counts entries that fetched and persisted without error.
func (r *Report) Successes() int {
	n := 0
	for _, o := range r.entries {
		if o.Status == StatusSuccess {
			n++
		}
	}
	return n
}
