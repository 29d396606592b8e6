package sink

import (
	"context"

	"github.com/matzehuels/breadboard/pkg/errors"
)

// NullSink discards every document. Useful for dry runs.
type NullSink struct{}

// NewNullSink creates a null sink.
func NewNullSink() *NullSink { return &NullSink{} }

// Write validates name and discards doc.
func (s *NullSink) Write(ctx context.Context, name string, doc []byte) (string, error) {
	if err := errors.ValidateName(name); err != nil {
		return "", err
	}
	return "", nil
}

// Read always reports NOT_FOUND.
func (s *NullSink) Read(ctx context.Context, name string) ([]byte, error) {
	return nil, notFound(name)
}

// Close does nothing.
func (s *NullSink) Close() error { return nil }

var _ Sink = (*NullSink)(nil)
