package hours

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidRange = errors.New("invalid time range")

var layouts = []string{
	"2006-01-02",
	"2006-01-02 15",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ParseInLocation parses a date, a date with hour or an RFC3339 timestamp.
// Values without an offset are interpreted in loc.
func ParseInLocation(str string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, str); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, str, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse time %q", str)
}

// Range returns the timestamps from start through end, both included, spaced by step.
func Range(start, end time.Time, step time.Duration) ([]time.Time, error) {
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %s", ErrInvalidRange, step)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidRange,
			end.Format(time.RFC3339), start.Format(time.RFC3339))
	}

	n := int(end.Sub(start)/step) + 1
	times := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		times = append(times, start.Add(time.Duration(i)*step))
	}
	return times, nil
}
