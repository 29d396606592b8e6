package sink

import (
	"context"
	"slices"
	"sync"

	"github.com/matzehuels/breadboard/pkg/errors"
)

// MemorySink keeps documents in memory.
// It is safe for concurrent use.
type MemorySink struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemorySink creates an empty memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{docs: make(map[string][]byte)}
}

// Write stores a copy of doc.
func (s *MemorySink) Write(ctx context.Context, name string, doc []byte) (string, error) {
	if err := errors.ValidateName(name); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[name] = slices.Clone(doc)
	return "memory:" + name, nil
}

// Read returns a copy of the document stored under name.
func (s *MemorySink) Read(ctx context.Context, name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[name]
	if !ok {
		return nil, notFound(name)
	}
	return slices.Clone(doc), nil
}

// Names returns the stored names in sorted order.
func (s *MemorySink) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Close does nothing.
func (s *MemorySink) Close() error { return nil }

var _ Sink = (*MemorySink)(nil)
