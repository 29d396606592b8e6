package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/breadboard/pkg/observability"
	"github.com/matzehuels/breadboard/pkg/prefab"
)

// newLogger creates the CLI logger. Debug level also reports the caller so
// --verbose output can be traced back to a board or sink call.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		ReportCaller:    level <= log.DebugLevel,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by the root command, or
// log.Default() outside a command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// exportProgress times one export from board construction to the sink
// write and reports it with the sizes of the finished document.
type exportProgress struct {
	logger *log.Logger
	start  time.Time
}

func newExportProgress(l *log.Logger) *exportProgress {
	return &exportProgress{logger: l, start: time.Now()}
}

func (p *exportProgress) done(res prefab.Result) {
	p.logger.Info("exported "+res.Name,
		"nodes", res.Nodes,
		"payload", formatBytes(res.PayloadSize),
		"document", formatBytes(res.DocumentSize),
		"elapsed", time.Since(p.start).Round(time.Millisecond))
}

func (p *exportProgress) failed(name string, err error) {
	p.logger.Error("export failed", "name", name,
		"code", errorCode(err),
		"elapsed", time.Since(p.start).Round(time.Millisecond))
}

// =============================================================================
// Observability hooks
// =============================================================================

// logHooks reports export and render events at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.ExportHooks = logHooks{}
	_ observability.RenderHooks = logHooks{}
)

func (h logHooks) OnEncodeStart(_ context.Context, name string, nodes int) {
	h.logger.Debug("encoding board", "name", name, "nodes", nodes)
}

func (h logHooks) OnEncodeComplete(_ context.Context, name string, size int, d time.Duration) {
	h.logger.Debug("encoded board", "name", name, "payload", formatBytes(size), "duration", d)
}

func (h logHooks) OnWriteStart(_ context.Context, name string, size int) {
	h.logger.Debug("writing document", "name", name, "size", formatBytes(size))
}

func (h logHooks) OnWriteComplete(_ context.Context, name, location string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("write failed", "name", name, "code", errorCode(err))
		return
	}
	h.logger.Debug("wrote document", "name", name, "location", location, "duration", d)
}

func (h logHooks) OnRenderStart(_ context.Context, format string, nodes int) {
	h.logger.Debug("rendering wiring", "format", format, "nodes", nodes)
}

func (h logHooks) OnRenderComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("render failed", "format", format, "code", errorCode(err))
		return
	}
	h.logger.Debug("rendered wiring", "format", format, "size", formatBytes(size), "duration", d)
}

// registerHooks installs logHooks as the global observability hooks.
func registerHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetExportHooks(h)
	observability.SetRenderHooks(h)
}
