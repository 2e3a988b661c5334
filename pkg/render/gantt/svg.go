package gantt

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Haston00/DABO/pkg/timeline"
)

// SVGOption configures the SVG renderer.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme Theme
}

// WithTheme overrides the default theme.
func WithTheme(t Theme) SVGOption {
	return func(r *svgRenderer) { r.theme = t }
}

// RenderSVG renders a snapshot to a standalone SVG document. The left
// pane lists visible rows (group headers bold, tasks indented); the right
// pane carries the calendar bands, bars, float extensions, group summary
// brackets, routed arrows, and the today marker.
func RenderSVG(s *timeline.Snapshot, opts ...SVGOption) []byte {
	r := svgRenderer{theme: DefaultTheme()}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer

	if s == nil || s.Layout == nil {
		fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 60" width="400" height="60">`+"\n")
		fmt.Fprintf(&buf, `  <text x="16" y="36" font-family=%q font-size="14" fill=%q>No schedule loaded</text>`+"\n",
			r.theme.FontFamily, r.theme.MutedColor)
		buf.WriteString("</svg>\n")
		return buf.Bytes()
	}

	l, v := s.Layout, s.View
	ox := r.theme.TablePaneWidth
	width := ox + l.TotalWidth
	height := v.Height

	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	r.renderDefs(&buf)

	r.renderBands(&buf, l, ox, height)
	r.renderRowStripes(&buf, v, width)
	r.renderTablePane(&buf, v)
	r.renderGroupBars(&buf, l, v, ox)
	r.renderBars(&buf, l, v, ox)
	r.renderArrows(&buf, v, ox)
	r.renderToday(&buf, l, ox, height)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <style>
    text { font-family: %s; font-size: %dpx; fill: %s; }
    .muted { fill: %s; font-size: %dpx; }
    .band-label { font-size: %dpx; fill: %s; }
    .group-label { font-weight: bold; }
  </style>
`, r.theme.FontFamily, r.theme.FontSize, r.theme.TextColor,
		r.theme.MutedColor, r.theme.FontSize-2,
		r.theme.FontSize-2, r.theme.MutedColor)
}

// renderBands draws the month and week strips across the chart pane, plus
// a faint vertical grid line at every week boundary.
func (r *svgRenderer) renderBands(buf *bytes.Buffer, l *timeline.Layout, ox, height float64) {
	for i, b := range l.MonthBands {
		fill := r.theme.MonthBandFill
		if i%2 == 1 {
			fill = r.theme.WeekBandFill
		}
		fmt.Fprintf(buf, `  <rect x="%.1f" y="0" width="%.1f" height="%.1f" fill=%q/>`+"\n",
			ox+b.X, b.Width, timeline.BandHeight, fill)
		if b.Width > 40 {
			fmt.Fprintf(buf, `  <text class="band-label" x="%.1f" y="%.1f">%s</text>`+"\n",
				ox+b.X+4, timeline.BandHeight-7, escape(b.Label))
		}
	}

	for _, b := range l.WeekBands {
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill=%q/>`+"\n",
			ox+b.X, timeline.BandHeight, b.Width, timeline.BandHeight, r.theme.WeekBandFill)
		if b.Width > 34 {
			fmt.Fprintf(buf, `  <text class="band-label" x="%.1f" y="%.1f">%s</text>`+"\n",
				ox+b.X+4, 2*timeline.BandHeight-7, escape(b.Label))
		}
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke=%q stroke-width="1"/>`+"\n",
			ox+b.X, timeline.HeaderHeight, ox+b.X, height, r.theme.GridStroke)
	}
}

func (r *svgRenderer) renderRowStripes(buf *bytes.Buffer, v *timeline.View, width float64) {
	for i := range v.Rows {
		if i%2 == 0 {
			continue
		}
		fmt.Fprintf(buf, `  <rect x="0" y="%.1f" width="%.1f" height="%.1f" fill=%q/>`+"\n",
			timeline.RowY(i), width, timeline.RowHeight, r.theme.RowStripeFill)
	}
}

func (r *svgRenderer) renderTablePane(buf *bytes.Buffer, v *timeline.View) {
	for i, row := range v.Rows {
		y := timeline.RowCenterY(i) + 4
		switch row.Kind {
		case timeline.RowGroupHeader:
			fmt.Fprintf(buf, `  <text class="group-label" x="8" y="%.1f">%s %s</text>`+"\n",
				y, escape(row.WBSCode), escape(row.DisplayName))
			fmt.Fprintf(buf, `  <text class="muted" x="%.1f" y="%.1f">(%d)</text>`+"\n",
				r.theme.TablePaneWidth-34, y, row.MemberCount)
		case timeline.RowTask:
			fmt.Fprintf(buf, `  <text x="24" y="%.1f">%s</text>`+"\n", y, escape(clip(row.DisplayName, 34)))
		}
	}
}

// renderGroupBars draws the thin summary bracket on each group header row,
// spanning the group's aggregate date range.
func (r *svgRenderer) renderGroupBars(buf *bytes.Buffer, l *timeline.Layout, v *timeline.View, ox float64) {
	const barH = 6.0
	for code, span := range l.GroupBars {
		i, ok := v.GroupRowIndex[code]
		if !ok {
			continue
		}
		y := timeline.RowCenterY(i) - barH/2
		width := span.X2 - span.X1
		if width < timeline.MinBarWidth {
			width = timeline.MinBarWidth
		}
		fmt.Fprintf(buf, `  <rect id="group-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill=%q/>`+"\n",
			escape(code), ox+span.X1, y, width, barH, r.theme.GroupBarFill)
	}
}

func (r *svgRenderer) renderBars(buf *bytes.Buffer, l *timeline.Layout, v *timeline.View, ox float64) {
	const barH = 14.0
	for _, row := range v.Rows {
		if row.Kind != timeline.RowTask {
			continue
		}
		id := row.ActivityID
		i := v.RowIndex[id]
		bar := l.Bars[id]
		cy := timeline.RowCenterY(i)

		if bar.Milestone {
			half := bar.Width / 2
			fmt.Fprintf(buf, `  <polygon id="bar-%s" points="%.1f,%.1f %.1f,%.1f %.1f,%.1f %.1f,%.1f" fill=%q/>`+"\n",
				escape(id),
				ox+bar.X, cy-half,
				ox+bar.X+half, cy,
				ox+bar.X, cy+half,
				ox+bar.X-half, cy,
				r.theme.MilestoneFill)
			continue
		}

		fill := r.theme.TaskFill
		if bar.Critical {
			fill = r.theme.CriticalFill
		}
		if ext, ok := l.FloatExt[id]; ok {
			fmt.Fprintf(buf, `  <rect id="float-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill=%q opacity="0.6"/>`+"\n",
				escape(id), ox+ext.X, cy-barH/2+timeline.FloatBarInset/2, ext.Width,
				barH-timeline.FloatBarInset, r.theme.FloatFill)
		}
		fmt.Fprintf(buf, `  <rect id="bar-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill=%q/>`+"\n",
			escape(id), ox+bar.X, cy-barH/2, bar.Width, barH, fill)
	}
}

func (r *svgRenderer) renderArrows(buf *bytes.Buffer, v *timeline.View, ox float64) {
	for _, a := range v.Arrows {
		pts := make([]string, len(a.Points))
		for i, p := range a.Points {
			pts[i] = fmt.Sprintf("%.1f,%.1f", ox+p.X, p.Y)
		}
		fmt.Fprintf(buf, `  <polyline points="%s" fill="none" stroke=%q stroke-width="1.5"/>`+"\n",
			strings.Join(pts, " "), r.theme.ArrowStroke)

		head := make([]string, len(a.Head))
		for i, p := range a.Head {
			head[i] = fmt.Sprintf("%.1f,%.1f", ox+p.X, p.Y)
		}
		fmt.Fprintf(buf, `  <polygon points="%s" fill=%q/>`+"\n",
			strings.Join(head, " "), r.theme.ArrowStroke)
	}
}

func (r *svgRenderer) renderToday(buf *bytes.Buffer, l *timeline.Layout, ox, height float64) {
	if !l.HasToday {
		return
	}
	x := ox + l.TodayX
	fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke=%q stroke-width="1.5" stroke-dasharray="4 3"/>`+"\n",
		x, timeline.HeaderHeight, x, height, r.theme.TodayStroke)
	fmt.Fprintf(buf, `  <text class="band-label" x="%.1f" y="%.1f" fill=%q>today</text>`+"\n",
		x+4, timeline.HeaderHeight+12, r.theme.TodayStroke)
}

// escape sanitizes text for inclusion in SVG.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escape(s string) string {
	return escaper.Replace(s)
}

// clip truncates long activity names for the table pane. The cut must land
// on a rune boundary so multibyte names stay valid UTF-8 in the SVG text.
func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max - 1
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
