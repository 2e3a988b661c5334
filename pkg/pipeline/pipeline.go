// Package pipeline provides the load → layout → render pipeline for DABO
// schedule visualizations.
//
// This package implements the complete flow shared by the CLI render
// command and the serve surface: decode a schedule file, run the timeline
// layout engine, and render the snapshot in one or more formats, with
// rendered artifacts cached by content hash. Centralizing this keeps the
// two entry points byte-identical in behavior.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Input:   "schedule.json",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Haston00/DABO/pkg/errors"
	"github.com/Haston00/DABO/pkg/schedule"
	"github.com/Haston00/DABO/pkg/timeline"
)

// =============================================================================
// Defaults - Single Source of Truth for CLI and Serve
// =============================================================================

// DefaultScale is the default pixels-per-day scale for non-interactive
// renders.
const DefaultScale = timeline.DefaultPixelsPerDay

// Format constants for output formats.
const (
	FormatSVG     = "svg"     // two-pane Gantt chart
	FormatJSON    = "json"    // serialized layout snapshot
	FormatDOT     = "dot"     // precedence graph as Graphviz DOT text
	FormatNetwork = "network" // precedence graph rendered to SVG
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:     true,
	FormatJSON:    true,
	FormatDOT:     true,
	FormatNetwork: true,
}

// =============================================================================
// Options
// =============================================================================

// Options contains all configuration for one pipeline run.
// The struct supports JSON serialization for the serve surface.
type Options struct {
	// Input is the schedule file path (.json or .toml).
	Input string `json:"input"`

	// Layout options.
	Scale     int      `json:"scale,omitempty"`     // pixels per day, clamped to zoom bounds
	Collapsed []string `json:"collapsed,omitempty"` // WBS codes to collapse
	Today     string   `json:"today,omitempty"`     // YYYY-MM-DD override for the today marker

	// Render options.
	Formats  []string `json:"formats,omitempty"`
	Theme    string   `json:"theme,omitempty"` // theme TOML path, empty for defaults
	Detailed bool     `json:"detailed,omitempty"`

	// Refresh bypasses the artifact cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized).
	Logger *log.Logger `json:"-"`

	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input schedule path is required")
	}
	if err := errors.ValidateSchedulePath(o.Input); err != nil {
		return err
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.Scale = timeline.ClampScale(o.Scale)
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Today != "" {
		if err := errors.ValidateDateString(o.Today); err != nil {
			return err
		}
		// The regex only checks shape; reject impossible dates here too.
		if _, err := time.Parse(schedule.DateLayout, o.Today); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDate, err, "invalid today date %q", o.Today)
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json, dot, network)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID correlates log lines across the run.
	RunID string

	// Snapshot is the computed layout and view.
	Snapshot *timeline.Snapshot

	// ScheduleHash is the content hash of the decoded schedule.
	ScheduleHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ActivityCount int
	GroupCount    int
	RowCount      int
	LoadTime      time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits per artifact format.
type CacheInfo struct {
	Hits   []string // formats served from cache
	Misses []string // formats rendered fresh
}
