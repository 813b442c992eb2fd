package hours

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"
)

func TestParseInLocation(t *testing.T) {
	stockholm, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "date only",
			input:    "2025-06-01",
			expected: time.Date(2025, time.June, 1, 0, 0, 0, 0, stockholm),
		},
		{
			name:     "date and hour",
			input:    "2025-06-01 13",
			expected: time.Date(2025, time.June, 1, 13, 0, 0, 0, stockholm),
		},
		{
			name:     "date and minutes",
			input:    "2025-06-01 13:30",
			expected: time.Date(2025, time.June, 1, 13, 30, 0, 0, stockholm),
		},
		{
			name:     "rfc3339 keeps the instant",
			input:    "2025-06-01T12:00:00Z",
			expected: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseInLocation(tt.input, stockholm)
			if err != nil {
				t.Fatalf("ParseInLocation(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("ParseInLocation(%q) expected %v, got %v", tt.input, tt.expected, got)
			}
		})
	}

	if _, err := ParseInLocation("not a date", stockholm); err == nil {
		t.Errorf("expected an error for an invalid date string")
	}
}

func TestRangeInclusive(t *testing.T) {
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 1, 23, 0, 0, 0, time.UTC)

	times, err := Range(start, end, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 24 {
		t.Fatalf("expected 24 timestamps, got %d", len(times))
	}
	if !times[0].Equal(start) {
		t.Errorf("expected first timestamp %v, got %v", start, times[0])
	}
	if !times[23].Equal(end) {
		t.Errorf("expected last timestamp %v, got %v", end, times[23])
	}
}

func TestRangeSingleAndPartialStep(t *testing.T) {
	start := time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)

	times, err := Range(start, start, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 1 {
		t.Errorf("expected a single timestamp, got %d", len(times))
	}

	// The end is only included when it falls on a step
	times, err = Range(start, start.Add(90*time.Minute), time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 2 {
		t.Errorf("expected 2 timestamps, got %d", len(times))
	}

	times, err = Range(start, start.Add(time.Hour), 15*time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 5 {
		t.Errorf("expected 5 timestamps, got %d", len(times))
	}
}

func TestRangeInvalid(t *testing.T) {
	start := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)

	if _, err := Range(start, start.Add(-time.Hour), time.Hour); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for end before start, got %v", err)
	}
	if _, err := Range(start, start.Add(time.Hour), 0); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange for a zero step, got %v", err)
	}
}

func TestRangeAcrossDaylightSaving(t *testing.T) {
	stockholm, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}
	// Clocks go forward at 02:00 on 2025-03-30, the local day has 23 hours
	start := time.Date(2025, time.March, 30, 0, 0, 0, 0, stockholm)
	end := time.Date(2025, time.March, 30, 23, 0, 0, 0, stockholm)

	times, err := Range(start, end, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(times) != 23 {
		t.Errorf("expected 23 timestamps, got %d", len(times))
	}
}
