package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Haston00/DABO/pkg/cache"
	"github.com/Haston00/DABO/pkg/errors"
	"github.com/Haston00/DABO/pkg/observability"
	"github.com/Haston00/DABO/pkg/render/gantt"
	"github.com/Haston00/DABO/pkg/render/network"
	"github.com/Haston00/DABO/pkg/schedule"
	"github.com/Haston00/DABO/pkg/timeline"
)

// =============================================================================
// Runner
// =============================================================================

// Runner executes the load → layout → render pipeline with artifact
// caching. The zero-value dependencies fall back to a NullCache and the
// default keyer, so embedding a Runner in tests needs no setup.
type Runner struct {
	Cache cache.Cache
	Keyer cache.Keyer
}

// NewRunner creates a pipeline runner. A nil cache disables caching.
func NewRunner(c cache.Cache, k cache.Keyer) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if k == nil {
		k = cache.NewDefaultKeyer()
	}
	return &Runner{Cache: c, Keyer: k}
}

// Execute runs the full pipeline for one schedule file.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte, len(opts.Formats)),
	}
	logger := opts.Logger.With("run", result.RunID)

	// --- Load ----------------------------------------------------------

	observability.Pipeline().OnLoadStart(ctx, opts.Input)
	loadStart := time.Now()

	sched, err := schedule.ReadFile(opts.Input)
	result.Stats.LoadTime = time.Since(loadStart)
	observability.Pipeline().OnLoadComplete(ctx, opts.Input, activityCount(sched), result.Stats.LoadTime, err)
	if err != nil {
		return nil, err
	}
	result.Stats.ActivityCount = len(sched.Activities)

	for _, problem := range schedule.Validate(sched.Activities) {
		logger.Warn("schedule problem", "detail", problem)
	}
	if schedule.HasCycle(sched.Activities) {
		logger.Warn("predecessor graph contains a cycle")
	}

	hash, err := scheduleHash(sched)
	if err != nil {
		return nil, err
	}
	result.ScheduleHash = hash

	// --- Layout --------------------------------------------------------

	observability.Pipeline().OnLayoutStart(ctx, len(sched.Activities))
	layoutStart := time.Now()

	snap, err := r.buildSnapshot(sched, opts)
	result.Stats.LayoutTime = time.Since(layoutStart)
	rowCount := 0
	if snap != nil && snap.Layout != nil {
		rowCount = len(snap.Layout.Rows)
	}
	observability.Pipeline().OnLayoutComplete(ctx, rowCount, result.Stats.LayoutTime, err)
	if err != nil {
		return nil, err
	}
	result.Snapshot = snap
	result.Stats.RowCount = rowCount
	result.Stats.GroupCount = rowCount - result.Stats.ActivityCount

	logger.Debug("layout computed",
		"rows", rowCount,
		"scale", opts.Scale,
		"mean_float_days", snap.Layout.MeanFloatDays)

	// --- Render --------------------------------------------------------

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	renderStart := time.Now()

	theme, themeHash, err := loadTheme(opts.Theme)
	if err != nil {
		return nil, err
	}

	var renderErr error
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(hash, cache.ArtifactKeyOpts{
			Format:    format,
			Scale:     opts.Scale,
			Collapsed: snap.Collapsed,
			Theme:     themeHash,
		})

		if !opts.Refresh {
			if data, ok, cerr := r.Cache.Get(ctx, key); cerr == nil && ok {
				observability.Cache().OnCacheHit(ctx, "artifact")
				result.Artifacts[format] = data
				result.CacheInfo.Hits = append(result.CacheInfo.Hits, format)
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "artifact")
		}

		data, err := r.renderFormat(ctx, format, snap, sched, theme, opts)
		if err != nil {
			renderErr = err
			break
		}
		result.Artifacts[format] = data
		result.CacheInfo.Misses = append(result.CacheInfo.Misses, format)

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			logger.Warn("artifact cache write failed", "format", format, "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}

	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, renderErr)
	if renderErr != nil {
		return nil, renderErr
	}

	logger.Info("pipeline complete",
		"activities", result.Stats.ActivityCount,
		"formats", len(result.Artifacts),
		"cache_hits", len(result.CacheInfo.Hits),
		"load", result.Stats.LoadTime,
		"layout", result.Stats.LayoutTime,
		"render", result.Stats.RenderTime)

	return result, nil
}

// Snapshot loads the schedule and returns its serialized layout snapshot,
// skipping artifact rendering entirely. The marshaled bytes are cached
// under a snapshot key with the shorter snapshot TTL; layout.json requests
// on the serve surface go through here instead of Execute.
func (r *Runner) Snapshot(ctx context.Context, opts Options) ([]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	sched, err := schedule.ReadFile(opts.Input)
	if err != nil {
		return nil, err
	}
	hash, err := scheduleHash(sched)
	if err != nil {
		return nil, err
	}

	collapsed := append([]string(nil), opts.Collapsed...)
	sort.Strings(collapsed)
	key := r.Keyer.SnapshotKey(hash, cache.SnapshotKeyOpts{
		Scale:     opts.Scale,
		Collapsed: collapsed,
	})

	if !opts.Refresh {
		if data, ok, cerr := r.Cache.Get(ctx, key); cerr == nil && ok {
			observability.Cache().OnCacheHit(ctx, "snapshot")
			return data, nil
		}
		observability.Cache().OnCacheMiss(ctx, "snapshot")
	}

	snap, err := r.buildSnapshot(sched, opts)
	if err != nil {
		return nil, err
	}
	data, err := timeline.MarshalSnapshot(snap)
	if err != nil {
		return nil, err
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLSnapshot); err != nil {
		opts.Logger.Warn("snapshot cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, "snapshot", len(data))
	}
	return data, nil
}

// buildSnapshot runs a one-shot session over the decoded schedule with the
// requested scale and collapse set.
func (r *Runner) buildSnapshot(sched *schedule.Schedule, opts Options) (*timeline.Snapshot, error) {
	sessionOpts := []timeline.SessionOption{timeline.WithScale(opts.Scale)}
	if opts.Today != "" {
		today, err := time.Parse(schedule.DateLayout, opts.Today)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDate, err, "invalid today date %q", opts.Today)
		}
		sessionOpts = append(sessionOpts, timeline.WithClock(func() time.Time { return today }))
	}

	session := timeline.NewSession(sessionOpts...)
	if _, err := session.Load(sched); err != nil {
		return nil, err
	}
	for _, code := range opts.Collapsed {
		session.ToggleGroup(code)
	}
	return session.Snapshot(), nil
}

// renderFormat produces one artifact.
func (r *Runner) renderFormat(ctx context.Context, format string, snap *timeline.Snapshot, sched *schedule.Schedule, theme gantt.Theme, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		return gantt.RenderSVG(snap, gantt.WithTheme(theme)), nil
	case FormatJSON:
		return timeline.MarshalSnapshot(snap)
	case FormatDOT:
		dot := network.ToDOT(sched.Activities, network.Options{Detailed: opts.Detailed})
		return []byte(dot), nil
	case FormatNetwork:
		dot := network.ToDOT(sched.Activities, network.Options{Detailed: opts.Detailed})
		return network.RenderSVG(ctx, dot)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
}

// OutputExtension returns the file extension for a format.
func OutputExtension(format string) string {
	switch format {
	case FormatJSON:
		return ".json"
	case FormatDOT:
		return ".dot"
	default:
		return ".svg"
	}
}

// scheduleHash hashes the decoded schedule so formatting-only edits to the
// input file still hit the cache.
func scheduleHash(s *schedule.Schedule) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "failed to hash schedule")
	}
	return cache.Hash(data), nil
}

// loadTheme resolves the theme path to a theme plus its content hash for
// cache keying. An empty path yields the default theme and an empty hash.
func loadTheme(path string) (gantt.Theme, string, error) {
	if path == "" {
		return gantt.DefaultTheme(), "", nil
	}
	theme, err := gantt.LoadTheme(path)
	if err != nil {
		return gantt.Theme{}, "", err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return gantt.Theme{}, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read theme %q", path)
	}
	return theme, cache.Hash(raw), nil
}

func activityCount(s *schedule.Schedule) int {
	if s == nil {
		return 0
	}
	return len(s.Activities)
}
