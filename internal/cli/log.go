package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/noticegen/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time, rounded to the millisecond.
// Example output: "Rendered 42 licenses (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Pipeline Hooks
// =============================================================================

// logHooks reports pipeline stages as debug log lines.
type logHooks struct {
	logger *log.Logger
}

var _ observability.PipelineHooks = logHooks{}

func (h logHooks) OnLoadStart(_ context.Context, path string) {
	h.logger.Debug("reading input", "path", path)
}

func (h logHooks) OnLoadComplete(_ context.Context, path, shape string, records int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("input failed", "path", path, "error", err)
		return
	}
	h.logger.Debug("input decoded", "path", path, "shape", shape, "records", records, "duration", d)
}

func (h logHooks) OnSelectComplete(_ context.Context, kept, total int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("filter failed", "error", err)
		return
	}
	h.logger.Debug("filtered", "kept", kept, "total", total, "duration", d)
}

func (h logHooks) OnRenderComplete(_ context.Context, bodies, size int, d time.Duration, _ error) {
	h.logger.Debug("rendered", "bodies", bodies, "bytes", size, "duration", d)
}
