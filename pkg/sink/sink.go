package sink

import (
	"context"

	"github.com/matzehuels/breadboard/pkg/errors"
)

// Extension is appended to blueprint names to form file names.
const Extension = ".blueprint"

// Sink persists packaged documents.
type Sink interface {
	// Write stores doc under name, replacing any previous document, and
	// returns a backend-specific location for display.
	Write(ctx context.Context, name string, doc []byte) (string, error)
	// Read returns the document stored under name.
	Read(ctx context.Context, name string) ([]byte, error)
	// Close releases backend resources.
	Close() error
}

func notFound(name string) error {
	return errors.New(errors.ErrCodeNotFound, "blueprint %q not found", name)
}

// Kind names a sink backend.
type Kind string

const (
	KindFile   Kind = "file"
	KindRedis  Kind = "redis"
	KindMongo  Kind = "mongo"
	KindMemory Kind = "memory"
	KindNull   Kind = "null"
)

// Options selects and configures a backend for [Open].
type Options struct {
	Kind  Kind
	Dir   string // file
	Redis RedisConfig
	Mongo MongoConfig
}

// Open creates the sink selected by opts.Kind.
func Open(ctx context.Context, opts Options) (Sink, error) {
	switch opts.Kind {
	case KindFile, "":
		s, err := NewFileSink(opts.Dir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindRedis:
		s, err := NewRedisSink(ctx, opts.Redis)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindMongo:
		s, err := NewMongoSink(ctx, opts.Mongo)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindMemory:
		return NewMemorySink(), nil
	case KindNull:
		return NewNullSink(), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown sink %q", opts.Kind)
}
