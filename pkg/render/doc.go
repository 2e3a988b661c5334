// Package render provides visualization rendering for schedule layouts.
//
// # Overview
//
// This package groups the output sinks that turn a computed timeline layout
// or an activity list into visual artifacts:
//
//   - Gantt timeline SVG (in [gantt] subpackage)
//   - Dependency network diagrams (in [network] subpackage)
//
// # Gantt Timelines
//
// The [gantt] subpackage renders the two-pane Gantt view: a fixed table pane
// listing divisions and activities, and a scrollable timeline pane with
// calendar bands, bars, milestone markers, float extensions, dependency
// arrows, and the today line. Colors and fonts come from a [gantt.Theme],
// optionally loaded from a TOML file.
//
//	svg := gantt.RenderSVG(snapshot, gantt.WithTheme(theme))
//
// # Network Diagrams
//
// The [network] subpackage renders the activity dependency network as a
// traditional directed graph using Graphviz. Critical activities and
// relations are highlighted, milestones appear as diamonds.
//
//	dot := network.ToDOT(activities, network.Options{Detailed: true})
//	svg, err := network.RenderSVG(ctx, dot)
//
// [gantt]: github.com/Haston00/DABO/pkg/render/gantt
// [network]: github.com/Haston00/DABO/pkg/render/network
package render
