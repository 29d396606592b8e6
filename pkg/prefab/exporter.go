package prefab

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/breadboard/pkg/breadboard"
	"github.com/matzehuels/breadboard/pkg/errors"
	"github.com/matzehuels/breadboard/pkg/observability"
	"github.com/matzehuels/breadboard/pkg/sink"
)

// Exporter encodes boards, packages them and writes the documents to a sink.
//
// An Exporter holds no per-export state. It may be shared by goroutines as
// long as each exports a different board and the sink is safe for
// concurrent use.
type Exporter struct {
	Packager Packager
	Sink     sink.Sink
	Logger   *log.Logger
}

// NewExporter creates an exporter.
// If p is nil, the default template with default metadata is used.
// If s is nil, a NullSink is used (documents are discarded).
func NewExporter(p Packager, s sink.Sink, logger *log.Logger) *Exporter {
	if p == nil {
		p = DefaultTemplate(DefaultMeta())
	}
	if s == nil {
		s = sink.NewNullSink()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Exporter{
		Packager: p,
		Sink:     s,
		Logger:   logger,
	}
}

// Result describes a finished export.
type Result struct {
	Name         string
	Location     string
	Nodes        int
	PayloadSize  int
	DocumentSize int
	Duration     time.Duration
}

// Export encodes b, wraps it in a document named name and writes it.
//
// Invalid names are rejected with INVALID_NAME before the board is encoded.
// Sink failures are returned as STORAGE_ERROR.
func (e *Exporter) Export(ctx context.Context, name string, b *breadboard.Board) (*Result, error) {
	if err := errors.ValidateName(name); err != nil {
		return nil, err
	}
	hooks := observability.Export()
	start := time.Now()

	hooks.OnEncodeStart(ctx, name, b.Len())
	payload := b.EncodeBase64()
	hooks.OnEncodeComplete(ctx, name, len(payload), time.Since(start))

	doc, err := e.Packager.Package(name, payload)
	if err != nil {
		return nil, err
	}
	e.Logger.Debug("packaged blueprint", "name", name, "payload", len(payload), "document", len(doc))

	writeStart := time.Now()
	hooks.OnWriteStart(ctx, name, len(doc))
	loc, err := e.Sink.Write(ctx, name, []byte(doc))
	hooks.OnWriteComplete(ctx, name, loc, time.Since(writeStart), err)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Name:         name,
		Location:     loc,
		Nodes:        b.Len(),
		PayloadSize:  len(payload),
		DocumentSize: len(doc),
		Duration:     time.Since(start),
	}
	e.Logger.Info("exported blueprint", "name", name, "location", loc, "nodes", res.Nodes, "duration", res.Duration)
	return res, nil
}
