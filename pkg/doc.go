// Package pkg provides the core libraries for DABO schedule visualization.
//
// # Overview
//
// DABO turns CPM construction schedules into two-pane Gantt timelines with
// critical-path highlighting, CSI division grouping, and dependency arrows.
// The pkg directory is organized into five main areas:
//
//  1. [schedule] - Domain types (activities, predecessors, CSI divisions)
//  2. [timeline] - Layout engine (date range, rows, bars, arrows, sessions)
//  3. [render] - Output sinks (Gantt SVG, network diagrams)
//  4. [pipeline] - Orchestration (load -> layout -> render, artifact caching)
//  5. [cache] - Artifact cache backends (file, Redis)
//
// # Architecture
//
// The typical data flow:
//
//	Schedule file (JSON/TOML)
//	         |
//	schedule.ReadFile           decode + validate
//	         |
//	timeline.Session.Load       group, lay out, route arrows
//	         |
//	gantt.RenderSVG             or layout JSON / Graphviz network
//	         |
//	SVG / JSON / DOT artifacts
//
// # Quick Start
//
// Render a schedule to SVG:
//
//	sched, _ := schedule.ReadFile("schedule.json")
//	session := timeline.NewSession()
//	snap, _ := session.Load(sched)
//	svg := gantt.RenderSVG(snap)
//
// Or run the whole pipeline with caching:
//
//	runner := pipeline.NewRunner(nil, nil)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Input:   "schedule.json",
//	    Formats: []string{pipeline.FormatSVG},
//	})
//
// # Main Packages
//
// ## Domain
//
// [schedule] - Activity and predecessor types, JSON/TOML decoding, the CSI
// MasterFormat division table, and structural validation (dangling
// references, relation cycles).
//
// [timeline] - The layout engine. Computes the padded date range, groups
// activities by division in first-seen order, positions bars and milestone
// markers, extends float, routes orthogonal dependency arrows, and derives
// collapsed views. Session wraps it all with zoom and collapse state.
//
// ## Rendering
//
// [render/gantt] - Two-pane Gantt SVG with calendar bands, today marker,
// and TOML-configurable themes.
//
// [render/network] - Graphviz DOT export and SVG rendering of the activity
// dependency network.
//
// ## Infrastructure
//
// [pipeline] - One-call orchestration used by the CLI and HTTP server, with
// per-format artifact caching keyed on schedule content.
//
// [cache] - Cache backends: FileCache for the CLI, RedisCache for servers,
// NullCache for tests and --no-cache runs.
//
// [errors] - Coded errors with user-safe messages and input validation.
//
// [observability] - Optional pipeline and cache hooks for metrics backends.
package pkg
