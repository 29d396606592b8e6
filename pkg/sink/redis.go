package sink

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/breadboard/pkg/errors"
)

// RedisConfig configures a [RedisSink].
type RedisConfig struct {
	Addr     string        // host:port
	Password string        // optional
	DB       int           // database number
	Prefix   string        // key prefix, default "breadboard:"
	TTL      time.Duration // zero keeps documents forever
}

// RedisSink stores documents as redis string values.
type RedisSink struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisSink connects to redis and verifies the connection.
func NewRedisSink(ctx context.Context, cfg RedisConfig) (*RedisSink, error) {
	if cfg.Addr == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "redis address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "connect to redis at %s", cfg.Addr)
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "breadboard:"
	}
	return &RedisSink{client: client, prefix: prefix, ttl: cfg.TTL}, nil
}

// Key returns the redis key for name.
func (s *RedisSink) Key(name string) string { return s.prefix + name + Extension }

// Write stores doc under the name's key.
func (s *RedisSink) Write(ctx context.Context, name string, doc []byte) (string, error) {
	if err := errors.ValidateName(name); err != nil {
		return "", err
	}
	key := s.Key(name)
	if err := s.client.Set(ctx, key, doc, s.ttl).Err(); err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "redis set %s", key)
	}
	return "redis:" + key, nil
}

// Read fetches the document stored under the name's key.
func (s *RedisSink) Read(ctx context.Context, name string) ([]byte, error) {
	key := s.Key(name)
	data, err := s.client.Get(ctx, key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "redis get %s", key)
	}
	return data, nil
}

// Close closes the redis client.
func (s *RedisSink) Close() error { return s.client.Close() }

var _ Sink = (*RedisSink)(nil)
