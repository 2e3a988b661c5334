package timeline

import (
	"encoding/json"
	"time"
)

// Fixed geometry of the chart pane, in abstract pixels. These are part of
// the layout contract, not configuration: renderers may restyle colors and
// fonts but every consumer agrees on where things are.
const (
	// RowHeight is the vertical pitch of one render line.
	RowHeight = 28.0

	// BandHeight is the height of one calendar band strip; months and
	// weeks stack, so the chart content starts at HeaderHeight.
	BandHeight   = 22.0
	HeaderHeight = 2 * BandHeight

	// MinBarWidth guarantees visibility for very short or same-day
	// activities.
	MinBarWidth = 4.0

	// MilestoneSize is the edge length of the fixed milestone marker,
	// centered on the milestone's date.
	MilestoneSize = 10.0

	// FloatBarInset shrinks the float extension vertically relative to
	// its task bar so the extension reads as an appendix, not more work.
	FloatBarInset = 7.0
)

// RowKind discriminates the two row variants.
type RowKind string

// Row kinds.
const (
	RowGroupHeader RowKind = "group"
	RowTask        RowKind = "task"
)

// Row is one render line: either a group header or a task line.
type Row struct {
	Kind        RowKind `json:"kind"`
	WBSCode     string  `json:"wbs"`
	DisplayName string  `json:"name"`
	MemberCount int     `json:"members,omitempty"`     // group headers only
	ActivityID  string  `json:"activity_id,omitempty"` // task rows only
}

// Bar is the horizontal geometry of one activity. X and Width are pixels
// from the range start. For milestones Width holds the fixed marker size
// and X the marker center; Left/Right account for the difference.
type Bar struct {
	X         float64 `json:"x"`
	Width     float64 `json:"width"`
	Milestone bool    `json:"milestone,omitempty"`

	// Critical tags the bar for critical-path styling. Renderers key off
	// this rather than re-deriving criticality from float data.
	Critical bool `json:"critical,omitempty"`
}

// Left returns the leftmost pixel of the bar or marker.
func (b Bar) Left() float64 {
	if b.Milestone {
		return b.X - b.Width/2
	}
	return b.X
}

// Right returns the rightmost pixel of the bar or marker.
func (b Bar) Right() float64 {
	if b.Milestone {
		return b.X + b.Width/2
	}
	return b.X + b.Width
}

// Span is a horizontal pixel extent (float extensions).
type Span struct {
	X     float64 `json:"x"`
	Width float64 `json:"width"`
}

// GroupSpan is the horizontal extent of a group summary bar, rendered as a
// thin bracket across the group's aggregate date range.
type GroupSpan struct {
	X1 float64 `json:"x1"`
	X2 float64 `json:"x2"`
}

// Band is one calendar strip (a month or a week) clipped to the visible
// range. Start is the calendar boundary the band belongs to, which may lie
// before the visible range when the first band is clipped; Label is a
// locale-independent rendering of Start.
type Band struct {
	Label string    `json:"label"`
	Start time.Time `json:"start"`
	X     float64   `json:"x"`
	Width float64   `json:"width"`
}

// Layout is the full positioned structure for one (activities, scale)
// pair. It is recomputed wholesale on every triggering action and never
// mutated in place; collapse filtering happens in View without touching
// the Layout it was derived from.
type Layout struct {
	PixelsPerDay int       `json:"pixels_per_day"`
	RangeStart   time.Time `json:"range_start"`
	RangeEnd     time.Time `json:"range_end"`
	TotalWidth   float64   `json:"total_width"`
	TotalHeight  float64   `json:"total_height"`

	// Rows is the complete, unfiltered row sequence. Collapse state
	// filters a copy (View.Rows); the full set stays available so toggles
	// can restore hidden rows.
	Rows []Row `json:"rows"`

	// Bars has exactly one entry per activity id.
	Bars map[string]Bar `json:"bars"`

	// FloatExt holds float extensions, present only for non-critical,
	// non-milestone activities with positive float.
	FloatExt map[string]Span `json:"float_ext,omitempty"`

	// GroupBars maps WBS code to the group summary span.
	GroupBars map[string]GroupSpan `json:"group_bars"`

	MonthBands []Band `json:"month_bands"`
	WeekBands  []Band `json:"week_bands"`

	// TodayX is the pixel offset of the today marker; meaningful only
	// when HasToday is set (today falls inside the visible range).
	TodayX   float64 `json:"today_x,omitempty"`
	HasToday bool    `json:"has_today,omitempty"`

	// MeanFloatDays is the mean float over non-milestone activities,
	// rounded to the nearest integer. Summary display only; not part of
	// the geometry contract.
	MeanFloatDays int `json:"mean_float_days"`
}

// RowY returns the top pixel of the i-th row (in whatever row sequence the
// caller is using, full or filtered).
func RowY(i int) float64 {
	return HeaderHeight + float64(i)*RowHeight
}

// RowCenterY returns the vertical center of the i-th row.
func RowCenterY(i int) float64 {
	return RowY(i) + RowHeight/2
}

// heightFor returns the pane height for a row count.
func heightFor(rows int) float64 {
	return HeaderHeight + float64(rows)*RowHeight
}

// MarshalLayout serializes a Layout to pretty-printed JSON.
func MarshalLayout(l *Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
func UnmarshalLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	return &l, nil
}
