package timeline

import (
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Haston00/DABO/pkg/schedule"
)

// Snapshot pairs a layout with its collapse-filtered view. Snapshots are
// immutable: every triggering action produces a new one.
type Snapshot struct {
	Project   string   `json:"project,omitempty"`
	Layout    *Layout  `json:"layout"`
	View      *View    `json:"view"`
	Collapsed []string `json:"collapsed,omitempty"`
}

// MarshalSnapshot serializes a snapshot to pretty-printed JSON.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Session owns the interactive timeline state: the activity list cached
// since the last successful load, the current zoom scale, and the collapse
// state. It is the session-scoped replacement for the ambient globals the
// dashboard UI would otherwise keep — all mutation goes through its
// methods, and the methods are synchronous and single-threaded by
// contract.
type Session struct {
	logger *log.Logger
	now    func() time.Time

	project    string
	activities []schedule.Activity
	scale      int
	collapse   *Collapse

	layout *Layout
	view   *View
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger attaches a structured logger for action tracing.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithClock injects the time source for the today marker. Tests pin it.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) { s.now = now }
}

// WithScale sets the initial pixels-per-day scale, clamped to the zoom
// bounds.
func WithScale(scale int) SessionOption {
	return func(s *Session) { s.scale = ClampScale(scale) }
}

// NewSession creates an empty session at the default scale. No layout
// exists until the first successful Load.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		logger:   log.NewWithOptions(io.Discard, log.Options{}),
		now:      time.Now,
		scale:    DefaultPixelsPerDay,
		collapse: NewCollapse(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the session's activity list and recomputes the layout.
// On failure the previous valid layout (if any) is retained untouched and
// the error is returned to the caller; the session never exposes
// half-updated geometry.
//
// Collapse state carries over for groups that survive the reload; groups
// new to this load start expanded.
func (s *Session) Load(sched *schedule.Schedule) (*Snapshot, error) {
	layout, err := Build(sched.Activities, s.scale, s.now())
	if err != nil {
		s.logger.Error("schedule load rejected", "err", err)
		return s.Snapshot(), err
	}

	groups := GroupActivities(sched.Activities)
	codes := make([]string, len(groups))
	for i, g := range groups {
		codes[i] = g.Code
	}
	s.collapse.retarget(codes)

	s.project = sched.Project
	s.activities = sched.Activities
	s.layout = layout
	s.refreshView()

	s.logger.Info("schedule loaded",
		"project", sched.Project,
		"activities", len(sched.Activities),
		"groups", len(groups),
		"scale", s.scale)

	return s.Snapshot(), nil
}

// Zoom steps the scale and regenerates the layout from the cached activity
// list. Out-of-range steps clamp; collapse state is preserved. Before the
// first successful Load, Zoom only adjusts the scale.
func (s *Session) Zoom(dir ZoomDirection) *Snapshot {
	next := ZoomScale(s.scale, dir)
	if next == s.scale {
		return s.Snapshot()
	}
	s.scale = next

	if s.layout != nil {
		// The cached list already produced a valid layout once; a scale
		// change cannot introduce a data error.
		layout, err := Build(s.activities, s.scale, s.now())
		if err != nil {
			s.logger.Error("relayout after zoom failed", "err", err)
			return s.Snapshot()
		}
		s.layout = layout
		s.refreshView()
	}

	s.logger.Debug("zoomed", "scale", s.scale)
	return s.Snapshot()
}

// ToggleGroup flips one group's collapse state and refreshes the view.
// Unknown codes are a no-op.
func (s *Session) ToggleGroup(code string) *Snapshot {
	s.collapse.Toggle(code)
	s.refreshView()
	return s.Snapshot()
}

// ExpandAll expands every group.
func (s *Session) ExpandAll() *Snapshot {
	s.collapse.ExpandAll()
	s.refreshView()
	return s.Snapshot()
}

// CollapseAll collapses every group.
func (s *Session) CollapseAll() *Snapshot {
	s.collapse.CollapseAll()
	s.refreshView()
	return s.Snapshot()
}

// Scale returns the current pixels-per-day scale.
func (s *Session) Scale() int {
	return s.scale
}

// Collapsed reports whether a group is currently collapsed.
func (s *Session) Collapsed(code string) bool {
	return s.collapse.Collapsed(code)
}

// Activities returns the activity list cached since the last successful
// load. Callers must not mutate it.
func (s *Session) Activities() []schedule.Activity {
	return s.activities
}

// Snapshot returns the current layout and view. Nil before the first
// successful Load.
func (s *Session) Snapshot() *Snapshot {
	if s.layout == nil {
		return nil
	}
	return &Snapshot{
		Project:   s.project,
		Layout:    s.layout,
		View:      s.view,
		Collapsed: s.collapse.CollapsedCodes(),
	}
}

// refreshView rebuilds the filtered view from the current layout and
// collapse state.
func (s *Session) refreshView() {
	if s.layout == nil {
		return
	}
	s.view = BuildView(s.layout, s.activities, s.collapse.Collapsed)
}
