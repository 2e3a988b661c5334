package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Haston00/DABO/pkg/cache"
	"github.com/Haston00/DABO/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file path (or base path for multiple formats)
	formats   []string // output formats: "svg", "json", "dot", "network"
	scale     int      // pixels per day
	collapsed []string // WBS codes to render collapsed
	theme     string   // theme TOML path
	today     string   // YYYY-MM-DD override for the today marker
	detailed  bool     // show detailed metadata in the network diagram
	refresh   bool     // bypass the artifact cache
	noCache   bool     // disable the artifact cache entirely
	redisAddr string   // use a Redis cache backend at this address
}

// newRenderCmd creates the render command for generating schedule
// visualizations. It supports multiple output formats (SVG, JSON, DOT,
// network SVG) written to separate files.
//
// Default settings:
//   - format: svg
//   - scale: 8 pixels per day
//   - cache: per-user file cache
func newRenderCmd() *cobra.Command {
	var formatsStr, collapsedStr string
	opts := renderOpts{
		scale: pipeline.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a schedule to a Gantt timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = splitList(formatsStr, pipeline.FormatSVG)
			opts.collapsed = splitList(collapsedStr, "")
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, dot, network (comma-separated)")
	cmd.Flags().IntVar(&opts.scale, "scale", opts.scale, "pixels per day (clamped to 4-40)")
	cmd.Flags().StringVar(&collapsedStr, "collapse", "", "WBS group code(s) to render collapsed (comma-separated)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme TOML file")
	cmd.Flags().StringVar(&opts.today, "today", "", "override the today marker date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show detailed information (network)")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached artifact exists")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "use a Redis cache backend at host:port")

	return cmd
}

// splitList parses a comma-separated flag value, falling back to def when
// the flag is empty. An empty def yields a nil slice.
func splitList(s, def string) []string {
	if s == "" {
		if def == "" {
			return nil
		}
		return []string{def}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// newCacheBackend selects the artifact cache backend from flags.
func newCacheBackend(ctx context.Context, noCache bool, redisAddr string) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, cache.RedisConfig{Addr: redisAddr})
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

// runRender executes the pipeline and writes each artifact to disk.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)
	prog := newProgress(logger)

	backend, err := newCacheBackend(ctx, opts.noCache, opts.redisAddr)
	if err != nil {
		return err
	}
	defer backend.Close()

	runner := pipeline.NewRunner(backend, nil)
	result, err := runner.Execute(ctx, pipeline.Options{
		Input:     input,
		Scale:     opts.scale,
		Collapsed: opts.collapsed,
		Today:     opts.today,
		Formats:   opts.formats,
		Theme:     opts.theme,
		Detailed:  opts.detailed,
		Refresh:   opts.refresh,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := artifactPath(base, format, len(opts.formats) > 1)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	prog.done(fmt.Sprintf("Rendered %d activities", result.Stats.ActivityCount))
	printStats(result.Stats.ActivityCount, result.Stats.GroupCount, len(result.CacheInfo.Hits) > 0)
	if len(opts.formats) == 1 && opts.formats[0] == pipeline.FormatSVG {
		printNextStep("Browse interactively", "dabo view "+input)
	}
	return nil
}

// basePath derives the base output path from the output and input paths.
// If output is empty, the extension is stripped from input. If output has a
// known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] || ext == ".svg" {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// artifactPath builds the output path for one format. With multiple formats
// the format name is appended to keep the files distinct.
func artifactPath(base, format string, multi bool) string {
	if multi {
		return fmt.Sprintf("%s_%s%s", base, format, pipeline.OutputExtension(format))
	}
	return base + pipeline.OutputExtension(format)
}
