package analytics

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// MaxRangeDays bounds the number of days a requested range may span.
const MaxRangeDays = 366

var ErrInvalidDateRange = errors.New("invalid date range")

// DateRange is an inclusive span of calendar days. Start and End are both
// midnight of their day in the same location.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from the day of from to the day of to,
// independent of DST transitions.
func daysBetween(from, to time.Time) int {
	y1, m1, d1 := from.Date()
	y2, m2, d2 := to.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// NewDateRange truncates both ends to their calendar day in loc. Ranges
// longer than MaxRangeDays are rejected.
func NewDateRange(start, end time.Time, loc *time.Location) (DateRange, error) {
	s := startOfDay(start.In(loc))
	e := startOfDay(end.In(loc))
	if e.Before(s) {
		return DateRange{}, fmt.Errorf("%w: %s is before %s", ErrInvalidDateRange, e.Format(DateLayout), s.Format(DateLayout))
	}
	if n := daysBetween(s, e) + 1; n > MaxRangeDays {
		return DateRange{}, fmt.Errorf("%w: %d days exceeds the maximum of %d", ErrInvalidDateRange, n, MaxRangeDays)
	}
	return DateRange{Start: s, End: e}, nil
}

// ParseDateRange reads two yyyy-mm-dd dates in loc.
func ParseDateRange(start, end string, loc *time.Location) (DateRange, error) {
	s, err := time.ParseInLocation(DateLayout, start, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: start date %q", ErrInvalidDateRange, start)
	}
	e, err := time.ParseInLocation(DateLayout, end, loc)
	if err != nil {
		return DateRange{}, fmt.Errorf("%w: end date %q", ErrInvalidDateRange, end)
	}
	return NewDateRange(s, e, loc)
}

// LastDays returns the window of n days ending on the day of now, today
// included.
func LastDays(now time.Time, n int) DateRange {
	end := startOfDay(now)
	return DateRange{Start: end.AddDate(0, 0, 1-n), End: end}
}

// Days lists the midnight of every day in the range, oldest first.
func (r DateRange) Days() []time.Time {
	days := make([]time.Time, 0)
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// Contains reports whether t falls within [Start, End + 1 day).
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End.AddDate(0, 0, 1))
}
