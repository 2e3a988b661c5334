// Package cache provides artifact caching for rendered schedule outputs.
//
// Rendering a large schedule to SVG or a precedence network through
// Graphviz is the only expensive step in the pipeline, so rendered
// artifacts are cached keyed by the schedule content hash plus every
// option that changes the output (scale, collapse set, format, theme).
// The layout computation itself is cheap enough that only its serialized
// snapshot is cached, for the serve surface.
//
// Backends:
//   - FileCache: per-user cache directory, for CLI runs
//   - RedisCache: shared cache for a long-running serve deployment
//   - NullCache: caching disabled (tests, --no-cache)
//
// The engine itself (pkg/timeline) never touches this package; caching is
// strictly an outer-surface concern.
package cache

import (
	"context"
	"strings"
	"time"
)

// Default TTLs per entry class. Schedule inputs are immutable files, so
// artifacts can live long; snapshots are cheap to rebuild.
const (
	TTLArtifact = 7 * 24 * time.Hour
	TTLSnapshot = 24 * time.Hour
)

// Cache stores raw bytes by key with per-entry TTL.
type Cache interface {
	// Get returns the cached bytes and whether the key was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts are the options that change a rendered artifact's bytes.
type ArtifactKeyOpts struct {
	Format    string
	Scale     int
	Collapsed []string // sorted group codes
	Theme     string   // theme content hash, empty for the default theme
}

// SnapshotKeyOpts are the options that change a serialized snapshot.
type SnapshotKeyOpts struct {
	Scale     int
	Collapsed []string
}

// Keyer generates cache keys. The scheduleHash argument is always the
// content hash of the decoded schedule, not of the file bytes, so
// formatting-only edits to an input file still hit.
type Keyer interface {
	ArtifactKey(scheduleHash string, opts ArtifactKeyOpts) string
	SnapshotKey(scheduleHash string, opts SnapshotKeyOpts) string
}

// DefaultKeyer hashes key components with SHA-256 under a type prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(scheduleHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", scheduleHash, opts.Format, opts.Scale,
		strings.Join(opts.Collapsed, ","), opts.Theme)
}

// SnapshotKey generates a key for a serialized layout snapshot.
func (k *DefaultKeyer) SnapshotKey(scheduleHash string, opts SnapshotKeyOpts) string {
	return hashKey("snapshot", scheduleHash, opts.Scale, strings.Join(opts.Collapsed, ","))
}

// ScopedKeyer wraps a Keyer with a prefix, isolating cache namespaces when
// one serve process hosts several schedule files.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(scheduleHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(scheduleHash, opts)
}

// SnapshotKey generates a prefixed snapshot key.
func (k *ScopedKeyer) SnapshotKey(scheduleHash string, opts SnapshotKeyOpts) string {
	return k.prefix + k.inner.SnapshotKey(scheduleHash, opts)
}
