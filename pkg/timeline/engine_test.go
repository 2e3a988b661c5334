package timeline

import (
	"testing"
	"time"

	"github.com/Haston00/DABO/pkg/schedule"
)

// scenario builds the reference three-activity schedule used across the
// engine tests: a critical task, a non-critical task with float, and a
// closing milestone.
func scenario() []schedule.Activity {
	a1 := act("A1", "03", date(2026, 3, 18), date(2026, 3, 24))
	a1.Critical = true

	a2 := act("A2", "03", date(2026, 3, 25), date(2026, 4, 5))
	a2.FloatDays = 5
	a2.Predecessors = []schedule.Predecessor{{ID: "A1", Type: schedule.RelationFinishStart}}

	m1 := act("M1", "01", date(2026, 4, 6), date(2026, 4, 6))
	m1.Milestone = true
	m1.Critical = true
	m1.Predecessors = []schedule.Predecessor{{ID: "A2", Type: schedule.RelationFinishStart}}

	return []schedule.Activity{a1, a2, m1}
}

func TestBuildBars(t *testing.T) {
	l, err := Build(scenario(), 8, date(2026, 3, 20))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if l.PixelsPerDay != 8 {
		t.Fatalf("PixelsPerDay = %d, want 8", l.PixelsPerDay)
	}
	if got, want := l.TotalWidth, 40*8.0; got != want {
		t.Errorf("TotalWidth = %v, want %v", got, want)
	}

	// A1: 7 days after range start, 6 days long, critical.
	a1 := l.Bars["A1"]
	if a1.X != 7*8 {
		t.Errorf("A1.X = %v, want %v", a1.X, 7*8)
	}
	if a1.Width != 6*8 {
		t.Errorf("A1.Width = %v, want %v", a1.Width, 6*8)
	}
	if !a1.Critical {
		t.Error("A1.Critical = false, want true")
	}

	// A2: 14 days after range start, 11 days long.
	a2 := l.Bars["A2"]
	if a2.X != 14*8 {
		t.Errorf("A2.X = %v, want %v", a2.X, 14*8)
	}
	if a2.Width != 11*8 {
		t.Errorf("A2.Width = %v, want %v", a2.Width, 11*8)
	}
	if a2.Critical {
		t.Error("A2.Critical = true, want false")
	}

	// M1: fixed-size marker centered 26 days after range start.
	m1 := l.Bars["M1"]
	if !m1.Milestone {
		t.Fatal("M1.Milestone = false, want true")
	}
	if m1.X != 26*8 {
		t.Errorf("M1.X = %v, want %v", m1.X, 26*8)
	}
	if m1.Width != MilestoneSize {
		t.Errorf("M1.Width = %v, want %v", m1.Width, MilestoneSize)
	}
	if m1.Left() != 26*8-MilestoneSize/2 || m1.Right() != 26*8+MilestoneSize/2 {
		t.Errorf("M1 extent = [%v, %v], want centered on %v", m1.Left(), m1.Right(), 26*8)
	}
}

func TestBuildRows(t *testing.T) {
	l, err := Build(scenario(), 8, date(2026, 3, 20))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []struct {
		kind RowKind
		key  string
	}{
		{RowGroupHeader, "03"},
		{RowTask, "A1"},
		{RowTask, "A2"},
		{RowGroupHeader, "01"},
		{RowTask, "M1"},
	}
	if len(l.Rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(l.Rows), len(want))
	}
	for i, w := range want {
		row := l.Rows[i]
		if row.Kind != w.kind {
			t.Errorf("row %d kind = %v, want %v", i, row.Kind, w.kind)
		}
		key := row.WBSCode
		if row.Kind == RowTask {
			key = row.ActivityID
		}
		if key != w.key {
			t.Errorf("row %d key = %q, want %q", i, key, w.key)
		}
	}

	if got, want := l.TotalHeight, HeaderHeight+5*RowHeight; got != want {
		t.Errorf("TotalHeight = %v, want %v", got, want)
	}
}

func TestBuildFloatExtension(t *testing.T) {
	l, err := Build(scenario(), 8, date(2026, 3, 20))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	ext, ok := l.FloatExt["A2"]
	if !ok {
		t.Fatal("A2 has no float extension")
	}
	a2 := l.Bars["A2"]
	if ext.X != a2.Right() {
		t.Errorf("ext.X = %v, want bar right edge %v", ext.X, a2.Right())
	}
	if ext.Width != 5*8 {
		t.Errorf("ext.Width = %v, want %v", ext.Width, 5*8)
	}

	if _, ok := l.FloatExt["A1"]; ok {
		t.Error("critical A1 has a float extension")
	}
	if _, ok := l.FloatExt["M1"]; ok {
		t.Error("milestone M1 has a float extension")
	}
}

func TestBuildFloatExtensionCriticalWithFloat(t *testing.T) {
	// Upstream data sometimes reports nonzero float on critical
	// activities; the extension must still be suppressed.
	a := act("A1", "03", date(2026, 3, 18), date(2026, 3, 24))
	a.Critical = true
	a.FloatDays = 3

	l, err := Build([]schedule.Activity{a}, 8, time.Time{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := l.FloatExt["A1"]; ok {
		t.Error("critical activity with reported float got an extension")
	}
}

func TestBuildMinBarWidth(t *testing.T) {
	// A same-day, non-milestone activity spans zero days; the width floor
	// keeps it visible at every scale.
	a := act("A1", "03", date(2026, 3, 18), date(2026, 3, 18))

	l, err := Build([]schedule.Activity{a}, MinPixelsPerDay, time.Time{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := l.Bars["A1"].Width; got != MinBarWidth {
		t.Errorf("Width = %v, want floor %v", got, MinBarWidth)
	}
}

func TestBuildScaleClamped(t *testing.T) {
	tests := []struct {
		scale int
		want  int
	}{
		{0, MinPixelsPerDay},
		{-1, MinPixelsPerDay},
		{100, MaxPixelsPerDay},
		{8, 8},
	}

	for _, tt := range tests {
		l, err := Build(scenario(), tt.scale, time.Time{})
		if err != nil {
			t.Fatalf("Build(scale=%d) error = %v", tt.scale, err)
		}
		if l.PixelsPerDay != tt.want {
			t.Errorf("Build(scale=%d).PixelsPerDay = %d, want %d", tt.scale, l.PixelsPerDay, tt.want)
		}
	}
}

func TestBuildTodayMarker(t *testing.T) {
	activities := scenario()

	inside, err := Build(activities, 8, date(2026, 3, 20))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !inside.HasToday {
		t.Fatal("HasToday = false for a date inside the range")
	}
	if inside.TodayX != 9*8 {
		t.Errorf("TodayX = %v, want %v", inside.TodayX, 9*8)
	}

	outside, err := Build(activities, 8, date(2027, 1, 1))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if outside.HasToday {
		t.Error("HasToday = true for a date outside the range")
	}
	if outside.TodayX != 0 {
		t.Errorf("TodayX = %v, want 0 when absent", outside.TodayX)
	}
}

func TestBuildMonthBands(t *testing.T) {
	l, err := Build(scenario(), 8, time.Time{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	// Range 2026-03-11 through 2026-04-20 touches March and April.
	if len(l.MonthBands) != 2 {
		t.Fatalf("got %d month bands, want 2", len(l.MonthBands))
	}

	mar := l.MonthBands[0]
	if mar.Label != "Mar 2026" {
		t.Errorf("band 0 label = %q, want %q", mar.Label, "Mar 2026")
	}
	if mar.X != 0 {
		t.Errorf("clipped first band X = %v, want 0", mar.X)
	}
	if mar.Width != 21*8 { // Mar 11 through Apr 1
		t.Errorf("band 0 width = %v, want %v", mar.Width, 21*8)
	}

	apr := l.MonthBands[1]
	if apr.Label != "Apr 2026" {
		t.Errorf("band 1 label = %q, want %q", apr.Label, "Apr 2026")
	}
	if apr.X != 21*8 {
		t.Errorf("band 1 X = %v, want %v", apr.X, 21*8)
	}
	if apr.Width != 19*8 { // Apr 1 through range end Apr 20
		t.Errorf("band 1 width = %v, want %v", apr.Width, 19*8)
	}
}

func TestBuildWeekBands(t *testing.T) {
	l, err := Build(scenario(), 8, time.Time{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if len(l.WeekBands) == 0 {
		t.Fatal("no week bands")
	}

	// 2026-03-11 is a Wednesday; the first band belongs to Monday the 9th
	// and is clipped to the range start.
	first := l.WeekBands[0]
	if !first.Start.Equal(date(2026, 3, 9)) {
		t.Errorf("first week start = %v, want 2026-03-09", first.Start)
	}
	if first.X != 0 {
		t.Errorf("first week X = %v, want 0", first.X)
	}
	if first.Width != 5*8 { // Wed 11 through Mon 16
		t.Errorf("first week width = %v, want %v", first.Width, 5*8)
	}

	// Interior bands are full weeks on Monday boundaries.
	second := l.WeekBands[1]
	if !second.Start.Equal(date(2026, 3, 16)) {
		t.Errorf("second week start = %v, want 2026-03-16", second.Start)
	}
	if second.Width != 7*8 {
		t.Errorf("second week width = %v, want %v", second.Width, 7*8)
	}
}

func TestBuildMeanFloat(t *testing.T) {
	a1 := act("A1", "03", date(2026, 3, 1), date(2026, 3, 5))
	a1.FloatDays = 2
	a2 := act("A2", "03", date(2026, 3, 6), date(2026, 3, 10))
	a2.FloatDays = 5
	m1 := act("M1", "01", date(2026, 3, 11), date(2026, 3, 11))
	m1.Milestone = true
	m1.FloatDays = 100 // must not participate

	l, err := Build([]schedule.Activity{a1, a2, m1}, 8, time.Time{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	// mean(2, 5) = 3.5, rounds to 4
	if l.MeanFloatDays != 4 {
		t.Errorf("MeanFloatDays = %d, want 4", l.MeanFloatDays)
	}
}

func TestBuildMeanFloatAllMilestones(t *testing.T) {
	m := act("M1", "01", date(2026, 3, 11), date(2026, 3, 11))
	m.Milestone = true

	l, err := Build([]schedule.Activity{m}, 8, time.Time{})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if l.MeanFloatDays != 0 {
		t.Errorf("MeanFloatDays = %d, want 0", l.MeanFloatDays)
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	l, err := Build(scenario(), 8, date(2026, 3, 20))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	data, err := MarshalLayout(l)
	if err != nil {
		t.Fatalf("MarshalLayout() error = %v", err)
	}
	back, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout() error = %v", err)
	}

	if back.PixelsPerDay != l.PixelsPerDay || back.TotalWidth != l.TotalWidth {
		t.Errorf("round trip changed geometry: %+v vs %+v", back, l)
	}
	if len(back.Rows) != len(l.Rows) || len(back.Bars) != len(l.Bars) {
		t.Errorf("round trip changed structure: %d/%d rows, %d/%d bars",
			len(back.Rows), len(l.Rows), len(back.Bars), len(l.Bars))
	}
}
