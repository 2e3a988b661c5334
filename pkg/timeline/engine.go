package timeline

import (
	"math"
	"time"

	"github.com/Haston00/DABO/pkg/schedule"
)

// Build computes the complete layout for activities at the given
// pixels-per-day scale. today positions the optional today marker and is
// injected rather than read from the clock so layouts are reproducible.
//
// The scale is clamped defensively to the zoom bounds; callers going
// through Session never pass an out-of-range value, but Build does not
// trust that.
func Build(activities []schedule.Activity, pixelsPerDay int, today time.Time) (*Layout, error) {
	rng, err := ComputeRange(activities)
	if err != nil {
		return nil, err
	}

	scale := ClampScale(pixelsPerDay)
	ppd := float64(scale)
	groups := GroupActivities(activities)

	l := &Layout{
		PixelsPerDay: scale,
		RangeStart:   rng.Start,
		RangeEnd:     rng.End,
		TotalWidth:   float64(rng.Days()) * ppd,
		Bars:         make(map[string]Bar, len(activities)),
		FloatExt:     make(map[string]Span),
		GroupBars:    make(map[string]GroupSpan, len(groups)),
	}

	for _, g := range groups {
		l.Rows = append(l.Rows, Row{
			Kind:        RowGroupHeader,
			WBSCode:     g.Code,
			DisplayName: g.Name,
			MemberCount: len(g.Members),
		})
		l.GroupBars[g.Code] = GroupSpan{
			X1: dayX(rng.Start, g.Start, ppd),
			X2: dayX(rng.Start, g.End, ppd),
		}

		for _, a := range g.Members {
			l.Rows = append(l.Rows, Row{
				Kind:        RowTask,
				WBSCode:     g.Code,
				DisplayName: a.Name,
				ActivityID:  a.ID,
			})
			l.Bars[a.ID] = barFor(a, rng.Start, ppd)

			if ext, ok := floatExtFor(a, rng.Start, ppd); ok {
				l.FloatExt[a.ID] = ext
			}
		}
	}

	l.TotalHeight = heightFor(len(l.Rows))
	l.MonthBands = monthBands(rng, ppd)
	l.WeekBands = weekBands(rng, ppd)

	if rng.Contains(today) {
		l.TodayX = dayX(rng.Start, today, ppd)
		l.HasToday = true
	}

	l.MeanFloatDays = meanFloat(activities)

	return l, nil
}

// barFor computes one activity's horizontal geometry. Milestones get a
// fixed-size marker centered on their date; everything else gets a span
// with the minimum-width floor applied.
func barFor(a schedule.Activity, rangeStart time.Time, ppd float64) Bar {
	x := dayX(rangeStart, a.Start, ppd)
	if a.Milestone {
		return Bar{X: x, Width: MilestoneSize, Milestone: true, Critical: a.Critical}
	}

	width := float64(daysBetween(midnightUTC(a.Start), midnightUTC(a.End))) * ppd
	return Bar{X: x, Width: math.Max(MinBarWidth, width), Critical: a.Critical}
}

// floatExtFor computes the float extension drawn after a task bar.
// Critical activities never get one, whatever their FloatDays says: the
// engine does not trust upstream data to zero float on the critical path.
func floatExtFor(a schedule.Activity, rangeStart time.Time, ppd float64) (Span, bool) {
	if a.Critical || a.Milestone || a.FloatDays <= 0 {
		return Span{}, false
	}
	bar := barFor(a, rangeStart, ppd)
	return Span{X: bar.Right(), Width: float64(a.FloatDays) * ppd}, true
}

// dayX maps a date to its pixel offset from the range start.
func dayX(rangeStart time.Time, t time.Time, ppd float64) float64 {
	return float64(daysBetween(rangeStart, midnightUTC(t))) * ppd
}

// monthBands slices the range at calendar month boundaries. Band widths
// come from each month's true day span clipped to the range, so a 31-day
// month is wider than February at every scale.
func monthBands(rng Range, ppd float64) []Band {
	var bands []Band

	y, m, _ := rng.Start.Date()
	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)

	for !monthStart.After(rng.End) {
		next := monthStart.AddDate(0, 1, 0)
		bands = append(bands, clipBand(monthStart, next, rng, ppd, monthStart.Format("Jan 2006")))
		monthStart = next
	}

	return bands
}

// weekBands slices the range at week boundaries, Monday-aligned.
func weekBands(rng Range, ppd float64) []Band {
	var bands []Band

	weekStart := startOfWeek(rng.Start)
	for !weekStart.After(rng.End) {
		next := weekStart.AddDate(0, 0, 7)
		bands = append(bands, clipBand(weekStart, next, rng, ppd, weekStart.Format("Jan 02")))
		weekStart = next
	}

	return bands
}

// clipBand clips [bandStart, bandEnd) to the visible range and maps it to
// pixels. start names the unclipped calendar boundary for labeling.
func clipBand(bandStart, bandEnd time.Time, rng Range, ppd float64, label string) Band {
	visStart := bandStart
	if visStart.Before(rng.Start) {
		visStart = rng.Start
	}
	visEnd := bandEnd
	if visEnd.After(rng.End) {
		visEnd = rng.End
	}

	return Band{
		Label: label,
		Start: bandStart,
		X:     dayX(rng.Start, visStart, ppd),
		Width: float64(daysBetween(visStart, visEnd)) * ppd,
	}
}

// startOfWeek returns the Monday on or before t.
func startOfWeek(t time.Time) time.Time {
	d := midnightUTC(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	return d.AddDate(0, 0, -offset)
}

// meanFloat is the mean float over non-milestone activities, rounded to
// the nearest integer.
func meanFloat(activities []schedule.Activity) int {
	sum, n := 0, 0
	for _, a := range activities {
		if a.Milestone {
			continue
		}
		sum += a.FloatDays
		n++
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}
