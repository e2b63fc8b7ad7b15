package interval

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange is returned when the requested end date precedes the start.
var ErrInvalidRange = errors.New("invalid date range")

// Range is an effective date range for one fetch. A zero Start and End
// means "use the provider default period for the interval".
type Range struct {
	Start   time.Time
	End     time.Time
	Clamped bool
}

// Explicit reports whether the range carries concrete dates.
func (r Range) Explicit() bool {
	return !r.Start.IsZero() || !r.End.IsZero()
}

// Resolver clamps requested date ranges to an interval's maximum lookback.
type Resolver struct {
	Now func() time.Time
}

// NewResolver creates a resolver using the wall clock.
func NewResolver() *Resolver {
	return &Resolver{Now: time.Now}
}

// Resolve produces the effective range for a fetch. A zero start means no
// explicit range was requested and the provider default period applies.
// When only the start is given, the end defaults to the current time. A
// span exceeding the interval's bounded lookback moves the start forward
// to end minus the maximum; the caller should surface the adjustment.
func (r *Resolver) Resolve(code string, start, end time.Time) (Range, error) {
	lb, err := MaxLookback(code)
	if err != nil {
		return Range{}, err
	}
	if start.IsZero() {
		return Range{}, nil
	}
	if end.IsZero() {
		end = r.Now()
	}
	if end.Before(start) {
		return Range{}, fmt.Errorf("%w: end %s before start %s",
			ErrInvalidRange, end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	res := Range{Start: start, End: end}
	if !lb.Unbounded {
		spanDays := int(end.Sub(start).Hours() / 24)
		if spanDays > lb.Days {
			res.Start = end.AddDate(0, 0, -lb.Days)
			res.Clamped = true
		}
	}
	return res, nil
}
