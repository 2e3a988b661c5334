package timeline

import (
	"testing"
	"time"

	"github.com/Haston00/DABO/pkg/errors"
	"github.com/Haston00/DABO/pkg/schedule"
)

// date builds a midnight-UTC calendar day for tests.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// act builds a minimal activity spanning [start, end].
func act(id, wbs string, start, end time.Time) schedule.Activity {
	return schedule.Activity{
		ID:      id,
		Name:    id,
		Start:   start,
		End:     end,
		WBSCode: wbs,
	}
}

func TestComputeRange(t *testing.T) {
	activities := []schedule.Activity{
		act("A1", "03", date(2026, 3, 18), date(2026, 3, 24)),
		act("A2", "03", date(2026, 3, 25), date(2026, 4, 5)),
		act("M1", "01", date(2026, 4, 6), date(2026, 4, 6)),
	}

	rng, err := ComputeRange(activities)
	if err != nil {
		t.Fatalf("ComputeRange() error = %v", err)
	}

	wantStart := date(2026, 3, 11) // earliest start minus 7 days
	wantEnd := date(2026, 4, 20)   // latest end plus 14 days
	if !rng.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", rng.Start, wantStart)
	}
	if !rng.End.Equal(wantEnd) {
		t.Errorf("End = %v, want %v", rng.End, wantEnd)
	}
	if got, want := rng.Days(), 40; got != want {
		t.Errorf("Days() = %d, want %d", got, want)
	}
}

func TestComputeRangeSingleDay(t *testing.T) {
	activities := []schedule.Activity{
		act("M1", "01", date(2026, 6, 1), date(2026, 6, 1)),
	}

	rng, err := ComputeRange(activities)
	if err != nil {
		t.Fatalf("ComputeRange() error = %v", err)
	}
	if got, want := rng.Days(), LeadDays+TrailDays; got != want {
		t.Errorf("Days() = %d, want %d", got, want)
	}
}

func TestComputeRangeErrors(t *testing.T) {
	tests := []struct {
		name       string
		activities []schedule.Activity
		code       errors.Code
	}{
		{
			name:       "empty list",
			activities: nil,
			code:       errors.ErrCodeEmptySchedule,
		},
		{
			name: "zero start date",
			activities: []schedule.Activity{
				act("A1", "03", time.Time{}, date(2026, 3, 24)),
			},
			code: errors.ErrCodeInvalidDate,
		},
		{
			name: "zero end date",
			activities: []schedule.Activity{
				act("A1", "03", date(2026, 3, 18), time.Time{}),
			},
			code: errors.ErrCodeInvalidDate,
		},
		{
			name: "end precedes start",
			activities: []schedule.Activity{
				act("A1", "03", date(2026, 3, 24), date(2026, 3, 18)),
			},
			code: errors.ErrCodeInvalidActivity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeRange(tt.activities)
			if err == nil {
				t.Fatal("ComputeRange() error = nil, want error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	rng := Range{Start: date(2026, 3, 11), End: date(2026, 4, 20)}

	tests := []struct {
		name string
		t    time.Time
		want bool
	}{
		{"start bound", date(2026, 3, 11), true},
		{"end bound", date(2026, 4, 20), true},
		{"inside", date(2026, 4, 1), true},
		{"before", date(2026, 3, 10), false},
		{"after", date(2026, 4, 21), false},
		{"inside with time of day", time.Date(2026, 4, 1, 15, 30, 0, 0, time.UTC), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rng.Contains(tt.t); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", date(2026, 3, 18), date(2026, 3, 18), 0},
		{"one day", date(2026, 3, 18), date(2026, 3, 19), 1},
		{"across month", date(2026, 3, 25), date(2026, 4, 5), 11},
		{"across DST change", date(2026, 3, 1), date(2026, 4, 1), 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := daysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("daysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}
