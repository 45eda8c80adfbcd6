// Package daterange builds publish-time windows for video searches.
//
// A window side can come from an absolute YYYY-MM-DD date or a relative
// "N days ago" offset; the absolute date wins when both are given. A side
// with neither input is left unbounded.
package daterange

import (
	"fmt"
	"time"
)

const (
	dateLayout       = "2006-01-02"
	startOfDayLayout = "2006-01-02T00:00:00Z"
	endOfDayLayout   = "2006-01-02T23:59:59Z"
)

// Input is the raw date-range selection collected from the user.
// Zero values mean "not provided".
type Input struct {
	DaysAgoStart int
	DaysAgoEnd   int
	StartDate    string
	EndDate      string
}

// Range is a publish-time window in the ISO-8601 form the search API expects.
// An empty side means that bound is absent.
type Range struct {
	After  string
	Before string
}

// InvalidDateError reports an absolute date that does not parse as YYYY-MM-DD.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", e.Value)
}

// Build converts in into a Range relative to now. The start side expands to
// 00:00:00Z, the end side to 23:59:59Z, so the window is inclusive on both
// ends.
func Build(now time.Time, in Input) (Range, error) {
	var r Range

	switch {
	case in.StartDate != "":
		day, err := time.Parse(dateLayout, in.StartDate)
		if err != nil {
			return Range{}, &InvalidDateError{Value: in.StartDate}
		}
		r.After = day.Format(startOfDayLayout)
	case in.DaysAgoStart > 0:
		r.After = now.AddDate(0, 0, -in.DaysAgoStart).Format(startOfDayLayout)
	}

	switch {
	case in.EndDate != "":
		day, err := time.Parse(dateLayout, in.EndDate)
		if err != nil {
			return Range{}, &InvalidDateError{Value: in.EndDate}
		}
		r.Before = day.Format(endOfDayLayout)
	case in.DaysAgoEnd > 0:
		r.Before = now.AddDate(0, 0, -in.DaysAgoEnd).Format(endOfDayLayout)
	}

	return r, nil
}
