package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/Haston00/DABO/pkg/cache"
	pkgerrors "github.com/Haston00/DABO/pkg/errors"
	"github.com/Haston00/DABO/pkg/pipeline"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr      string // listen address
	theme     string // theme TOML path
	noCache   bool
	redisAddr string
}

// newServeCmd creates the serve command: a small HTTP surface over one
// schedule file. The file is re-read per request, so edits show up on
// refresh; unchanged files hit the artifact cache.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve [file]",
		Short: "Serve the Gantt chart over HTTP",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "theme TOML file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "use a Redis cache backend at host:port")

	return cmd
}

// server executes pipeline runs on behalf of HTTP requests.
type server struct {
	input  string
	theme  string
	runner *pipeline.Runner
}

func runServe(ctx context.Context, input string, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	backend, err := newCacheBackend(ctx, opts.noCache, opts.redisAddr)
	if err != nil {
		return err
	}
	defer backend.Close()

	// Keys are scoped per input file so serve processes pointed at
	// different schedules can share one Redis backend without colliding.
	s := &server{
		input:  input,
		theme:  opts.theme,
		runner: pipeline.NewRunner(backend, cache.NewScopedKeyer(nil, input+"|")),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/", s.handleIndex)
	r.Get("/gantt.svg", s.handleArtifact(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/layout.json", s.handleLayout)
	r.Get("/network.svg", s.handleArtifact(pipeline.FormatNetwork, "image/svg+xml"))
	r.Get("/network.dot", s.handleArtifact(pipeline.FormatDOT, "text/vnd.graphviz"))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infof("Serving %s on %s", input, opts.addr)
	printNextStep("Open in a browser", "http://localhost"+opts.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// optionsFromRequest builds pipeline options from query parameters.
// Unparseable values fall back to defaults rather than failing the request.
func (s *server) optionsFromRequest(r *http.Request, format string) pipeline.Options {
	q := r.URL.Query()

	scale := pipeline.DefaultScale
	if v := q.Get("scale"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			scale = n
		}
	}

	return pipeline.Options{
		Input:     s.input,
		Scale:     scale,
		Collapsed: splitList(q.Get("collapse"), ""),
		Today:     q.Get("today"),
		Formats:   []string{format},
		Theme:     s.theme,
		Detailed:  q.Get("detailed") == "true",
		Refresh:   q.Get("refresh") == "true",
	}
}

// handleLayout serves the serialized layout snapshot. It skips artifact
// rendering and uses the snapshot cache with its shorter TTL.
func (s *server) handleLayout(w http.ResponseWriter, r *http.Request) {
	data, err := s.runner.Snapshot(r.Context(), s.optionsFromRequest(r, pipeline.FormatJSON))
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

// handleArtifact serves one rendered format.
func (s *server) handleArtifact(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := s.runner.Execute(r.Context(), s.optionsFromRequest(r, format))
		if err != nil {
			writeError(w, err)
			return
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(result.Artifacts[format])
	}
}

// handleIndex serves a minimal page embedding the Gantt SVG, forwarding its
// query string so scale and collapse links keep working.
func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	query := ""
	if r.URL.RawQuery != "" {
		query = "?" + r.URL.RawQuery
	}
	fmt.Fprintf(w, `<!DOCTYPE html>
<html>
<head><title>DABO Schedule</title></head>
<body style="margin:0">
<img src="/gantt.svg%s" alt="schedule" style="max-width:100%%">
</body>
</html>
`, query)
}

// writeError maps pipeline errors to HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if pkgerrors.IsData(err) {
		status = http.StatusUnprocessableEntity
	}
	switch pkgerrors.GetCode(err) {
	case pkgerrors.ErrCodeFileNotFound, pkgerrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case pkgerrors.ErrCodeInvalidInput, pkgerrors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	}
	http.Error(w, pkgerrors.UserMessage(err), status)
}
