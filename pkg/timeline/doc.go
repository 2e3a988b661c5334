// Package timeline turns a flat activity list into a fully positioned
// two-pane Gantt structure: a grouped row sequence plus time-scaled bar
// geometry with routed dependency arrows, collapsible WBS groups, and an
// adjustable pixels-per-day scale.
//
// # Pipeline
//
// Layout is computed in stages, each a pure function:
//
//  1. ComputeRange derives the padded visible date window from activity
//     extents (−7 days leading, +14 trailing).
//  2. GroupActivities partitions activities into WBS groups in first-seen
//     order.
//  3. Build produces the row sequence and all pixel geometry (bars, float
//     extensions, group summary spans, month/week bands, today marker) at a
//     given scale.
//  4. BuildView applies the collapse state, yielding the visible row set
//     and the orthogonal dependency arrows routed against it.
//
// Every triggering action (load, zoom, collapse toggle) recomputes the
// affected stages wholesale; nothing is mutated in place. A failed
// recomputation leaves the previously valid layout untouched.
//
// # Session
//
// Session owns the interactive state — the cached activity list, the
// current scale, and the collapse state — and exposes the synchronous
// action surface: Load, Zoom, ToggleGroup, ExpandAll, CollapseAll. It is
// single-threaded by contract; callers serialize triggering events.
//
// All coordinates are abstract pixels with the origin at the top-left of
// the chart pane. The consuming surface may be SVG, a terminal grid, or
// anything else that can place rectangles.
package timeline
