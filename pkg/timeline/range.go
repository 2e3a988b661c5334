package timeline

import (
	"time"

	"github.com/Haston00/DABO/pkg/errors"
	"github.com/Haston00/DABO/pkg/schedule"
)

// Visible-window padding around the activity extents, in calendar days.
// The trailing pad is deliberately larger: float extensions and arrowheads
// draw past a bar's end and need the room.
const (
	LeadDays  = 7
	TrailDays = 14
)

// Range is the visible date window of a layout. Both bounds are
// day-granular, midnight UTC.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days returns the number of calendar days spanned by the range.
func (r Range) Days() int {
	return daysBetween(r.Start, r.End)
}

// Contains reports whether t (truncated to its calendar day) falls within
// the range, bounds inclusive.
func (r Range) Contains(t time.Time) bool {
	d := midnightUTC(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// ComputeRange derives the padded visible window from activity extents:
// min(start) − LeadDays through max(end) + TrailDays.
//
// It fails before any geometry is computed when the input cannot produce an
// ordered range: an empty activity list, a missing (zero) date, or an
// activity whose end precedes its start.
func ComputeRange(activities []schedule.Activity) (Range, error) {
	if len(activities) == 0 {
		return Range{}, errors.New(errors.ErrCodeEmptySchedule, "no activities to lay out")
	}

	var minStart, maxEnd time.Time
	for _, a := range activities {
		if a.Start.IsZero() || a.End.IsZero() {
			return Range{}, errors.New(errors.ErrCodeInvalidDate, "activity %s: missing date", a.ID)
		}
		start := midnightUTC(a.Start)
		end := midnightUTC(a.End)
		if end.Before(start) {
			return Range{}, errors.New(errors.ErrCodeInvalidActivity,
				"activity %s: end %s precedes start %s",
				a.ID, end.Format(schedule.DateLayout), start.Format(schedule.DateLayout))
		}
		if minStart.IsZero() || start.Before(minStart) {
			minStart = start
		}
		if maxEnd.IsZero() || end.After(maxEnd) {
			maxEnd = end
		}
	}

	return Range{
		Start: minStart.AddDate(0, 0, -LeadDays),
		End:   maxEnd.AddDate(0, 0, TrailDays),
	}, nil
}

// daysBetween returns the exact number of calendar days from a to b.
// Both arguments must be midnight UTC; midnightUTC normalizes.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / (24 * time.Hour))
}

// midnightUTC truncates t to its calendar day in UTC.
func midnightUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
