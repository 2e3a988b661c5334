package network

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/Haston00/DABO/pkg/schedule"
)

// Options configures precedence diagram generation.
type Options struct {
	// Detailed includes dates and float in node labels.
	// When false, only the id and name are shown.
	Detailed bool
}

// ToDOT converts an activity list to Graphviz DOT format. Critical
// activities render red, milestones as diamonds. Edges follow declared
// predecessor links; references to unknown activity ids are dropped.
func ToDOT(activities []schedule.Activity, opts Options) string {
	ids := make(map[string]bool, len(activities))
	for _, a := range activities {
		ids[a.ID] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph schedule {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, a := range activities {
		fmt.Fprintf(&buf, "  %q [%s];\n", a.ID, fmtAttrs(a, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, a := range activities {
		for _, p := range a.Predecessors {
			if !ids[p.ID] {
				continue
			}
			attrs := ""
			if critical(activities, p.ID) && a.Critical {
				attrs = " [color=\"#d32f2f\", penwidth=2]"
			}
			fmt.Fprintf(&buf, "  %q -> %q%s;\n", p.ID, a.ID, attrs)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(a schedule.Activity, detailed bool) string {
	label := a.ID
	if a.Name != "" && a.Name != a.ID {
		label += "\n" + a.Name
	}
	if detailed {
		label += fmt.Sprintf("\n%s → %s",
			a.Start.Format(schedule.DateLayout), a.End.Format(schedule.DateLayout))
		if !a.Critical {
			label += fmt.Sprintf("\nfloat %dd", a.FloatDays)
		}
	}

	attrs := fmt.Sprintf("label=%q", label)
	if a.Milestone {
		attrs += ", shape=diamond"
	}
	if a.Critical {
		attrs += `, color="#d32f2f", fontcolor="#d32f2f", penwidth=2`
	}
	return attrs
}

func critical(activities []schedule.Activity, id string) bool {
	for _, a := range activities {
		if a.ID == id {
			return a.Critical
		}
	}
	return false
}

// RenderSVG renders a DOT precedence graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG header so the diagram scales
// to its container instead of carrying absolute point sizes.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(header))
}
