// Package gantt renders timeline snapshots as two-pane SVG charts: an
// activity table on the left, the time-scaled bar chart with calendar
// bands, dependency arrows, and the today marker on the right.
//
// The renderer consumes only the abstract geometry in a
// timeline.Snapshot; it adds no layout logic of its own. Colors, fonts,
// and the table pane width come from a Theme, loadable from TOML.
package gantt
