package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Haston00/DABO/pkg/schedule"
	"github.com/Haston00/DABO/pkg/timeline"
)

// Timeline styles
var (
	tuiSelectedStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	tuiGroupStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	tuiTaskStyle      = lipgloss.NewStyle().Foreground(colorGray)
	tuiBarStyle       = lipgloss.NewStyle().Foreground(colorBlue)
	tuiCriticalStyle  = lipgloss.NewStyle().Foreground(colorRed)
	tuiFloatStyle     = lipgloss.NewStyle().Foreground(colorDim)
	tuiMilestoneStyle = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	tuiTodayStyle     = lipgloss.NewStyle().Foreground(colorGreen)
)

// Terminal bar glyphs.
const (
	glyphBar       = "█"
	glyphFloat     = "░"
	glyphGroupSpan = "▔"
	glyphMilestone = "◆"
	glyphToday     = "│"
)

// tablePaneChars is the width of the left name pane in terminal cells.
const tablePaneChars = 34

// =============================================================================
// TimelineModel - Interactive schedule browser
// =============================================================================

// TimelineModel is the bubbletea model for the interactive schedule viewer.
// It owns a timeline.Session and translates key presses into session
// actions; every action yields a fresh snapshot that View renders.
type TimelineModel struct {
	Path    string
	Session *timeline.Session

	snapshot *timeline.Snapshot
	loadErr  error

	cursor int
	offset int
	height int
	width  int
}

// NewTimelineModel creates a viewer over an already-loaded session.
func NewTimelineModel(path string, session *timeline.Session) TimelineModel {
	return TimelineModel{
		Path:     path,
		Session:  session,
		snapshot: session.Snapshot(),
		height:   20,
		width:    100,
	}
}

func (m TimelineModel) Init() tea.Cmd {
	return nil
}

func (m TimelineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < m.rowCount()-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "enter", " ":
			if row, ok := m.rowAt(m.cursor); ok && row.Kind == timeline.RowGroupHeader {
				m.snapshot = m.Session.ToggleGroup(row.WBSCode)
				m.clampCursor()
			}
		case "+", "=":
			m.snapshot = m.Session.Zoom(timeline.ZoomIn)
		case "-", "_":
			m.snapshot = m.Session.Zoom(timeline.ZoomOut)
		case "e":
			m.snapshot = m.Session.ExpandAll()
		case "c":
			m.snapshot = m.Session.CollapseAll()
			m.clampCursor()
		case "r":
			m.loadErr = m.reload()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height - 7
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

// reload re-reads the schedule file into the session. On failure the
// previous snapshot stays on screen and the error shows in the header.
func (m *TimelineModel) reload() error {
	sched, err := schedule.ReadFile(m.Path)
	if err != nil {
		return err
	}
	snap, err := m.Session.Load(sched)
	if err != nil {
		return err
	}
	m.snapshot = snap
	m.clampCursor()
	return nil
}

func (m *TimelineModel) clampCursor() {
	if n := m.rowCount(); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
}

func (m TimelineModel) rowCount() int {
	if m.snapshot == nil || m.snapshot.View == nil {
		return 0
	}
	return len(m.snapshot.View.Rows)
}

func (m TimelineModel) rowAt(i int) (timeline.Row, bool) {
	if i < 0 || i >= m.rowCount() {
		return timeline.Row{}, false
	}
	return m.snapshot.View.Rows[i], true
}

func (m TimelineModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("DABO Schedule"))
	if m.snapshot != nil && m.snapshot.Project != "" {
		b.WriteString(" " + StyleValue.Render(m.snapshot.Project))
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ collapse/expand  +/- zoom  e expand all  c collapse all  r reload  q quit"))
	b.WriteString("\n")

	if m.loadErr != nil {
		b.WriteString(StyleWarning.Render(fmt.Sprintf("reload failed: %v (showing last good schedule)", m.loadErr)))
		b.WriteString("\n")
	}

	if m.snapshot == nil {
		b.WriteString("\n" + StyleDim.Render("No schedule loaded") + "\n")
		return b.String()
	}

	l := m.snapshot.Layout
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s → %s  ·  scale %dpx/day  ·  mean float %dd",
		l.RangeStart.Format(schedule.DateLayout),
		l.RangeEnd.Format(schedule.DateLayout),
		l.PixelsPerDay,
		l.MeanFloatDays)))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > m.rowCount() {
		end = m.rowCount()
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	return b.String()
}

// renderRow draws one visible row: cursor, name pane, then the bar track.
func (m TimelineModel) renderRow(i int) string {
	row := m.snapshot.View.Rows[i]

	cursor := "  "
	if i == m.cursor {
		cursor = tuiSelectedStyle.Render("▸ ")
	}

	var name string
	switch row.Kind {
	case timeline.RowGroupHeader:
		marker := "▾"
		if m.Session.Collapsed(row.WBSCode) {
			marker = "▸"
		}
		name = tuiGroupStyle.Render(fmt.Sprintf("%s %s · %s (%d)", marker, row.WBSCode, row.DisplayName, row.MemberCount))
	default:
		name = tuiTaskStyle.Render("    " + row.DisplayName)
	}
	name = padOrClip(name, tablePaneChars)

	return cursor + name + m.renderTrack(row)
}

// renderTrack draws the bar area of one row scaled to the terminal width.
func (m TimelineModel) renderTrack(row timeline.Row) string {
	l := m.snapshot.Layout
	cols := m.width - tablePaneChars - 2
	if cols < 10 || l.TotalWidth <= 0 {
		return ""
	}
	pxPerCol := l.TotalWidth / float64(cols)

	track := make([]string, cols)
	for i := range track {
		track[i] = " "
	}

	cell := func(px float64) int {
		c := int(px / pxPerCol)
		if c < 0 {
			c = 0
		}
		if c >= cols {
			c = cols - 1
		}
		return c
	}

	switch row.Kind {
	case timeline.RowGroupHeader:
		if span, ok := l.GroupBars[row.WBSCode]; ok {
			for c := cell(span.X1); c <= cell(span.X2); c++ {
				track[c] = tuiGroupStyle.Render(glyphGroupSpan)
			}
		}
	default:
		if ext, ok := l.FloatExt[row.ActivityID]; ok {
			for c := cell(ext.X); c <= cell(ext.X+ext.Width); c++ {
				track[c] = tuiFloatStyle.Render(glyphFloat)
			}
		}
		if bar, ok := l.Bars[row.ActivityID]; ok {
			style := tuiBarStyle
			if bar.Critical {
				style = tuiCriticalStyle
			}
			if bar.Milestone {
				track[cell(bar.X)] = tuiMilestoneStyle.Render(glyphMilestone)
			} else {
				for c := cell(bar.Left()); c <= cell(bar.Right()); c++ {
					track[c] = style.Render(glyphBar)
				}
			}
		}
	}

	if l.HasToday {
		c := cell(l.TodayX)
		if track[c] == " " {
			track[c] = tuiTodayStyle.Render(glyphToday)
		}
	}

	return strings.Join(track, "")
}

// padOrClip fits a styled string into width terminal cells.
func padOrClip(s string, width int) string {
	w := lipgloss.Width(s)
	if w > width {
		return lipgloss.NewStyle().MaxWidth(width).Render(s)
	}
	return s + strings.Repeat(" ", width-w)
}
