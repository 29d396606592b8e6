package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/matzehuels/breadboard/pkg/breadboard"
	"github.com/matzehuels/breadboard/pkg/errors"
	"github.com/matzehuels/breadboard/pkg/prefab"
	"github.com/matzehuels/breadboard/pkg/sink"
)

// Config holds all export settings.
type Config struct {
	Prefab Prefab `toml:"prefab"`
	Layout Layout `toml:"layout"`
	Output Output `toml:"output"`
}

// Prefab holds the document metadata.
type Prefab struct {
	Name        string `toml:"name"`
	GameVersion string `toml:"game_version"`
	CreatorName string `toml:"creator_name"`
	CreatorID   string `toml:"creator_id"`
	ObjectID    string `toml:"object_id"`
}

// Layout holds editor canvas placement.
type Layout struct {
	Spacing    float32 `toml:"spacing"`
	NodeWidth  float32 `toml:"node_width"`
	NodeHeight float32 `toml:"node_height"`
}

// Output selects where documents are written.
type Output struct {
	Sink            string   `toml:"sink"`
	Dir             string   `toml:"dir"`
	RedisAddr       string   `toml:"redis_addr"`
	RedisPassword   string   `toml:"redis_password"`
	RedisDB         int      `toml:"redis_db"`
	RedisPrefix     string   `toml:"redis_prefix"`
	RedisTTL        Duration `toml:"redis_ttl"`
	MongoURI        string   `toml:"mongo_uri"`
	MongoDatabase   string   `toml:"mongo_database"`
	MongoCollection string   `toml:"mongo_collection"`
}

// Duration is a time.Duration written as a string such as "90s" or "24h".
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// DefaultName is the blueprint name used when none is configured.
const DefaultName = "TEST_BREADBOARD"

// Default returns the built-in configuration: the stock prefab metadata, the
// editor's default layout and a file sink in the current directory.
func Default() *Config {
	meta := prefab.DefaultMeta()
	layout := breadboard.DefaultLayout()
	return &Config{
		Prefab: Prefab{
			Name:        DefaultName,
			GameVersion: meta.GameVersion,
			CreatorName: meta.CreatorName,
			CreatorID:   meta.CreatorID,
			ObjectID:    meta.ObjectID,
		},
		Layout: Layout{
			Spacing:    layout.Spacing,
			NodeWidth:  layout.Width,
			NodeHeight: layout.Height,
		},
		Output: Output{
			Sink:            string(sink.KindFile),
			Dir:             ".",
			RedisPrefix:     "breadboard:",
			MongoDatabase:   "breadboard",
			MongoCollection: "blueprints",
		},
	}
}

// Load reads and validates the TOML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(data)
}

// Parse decodes TOML data over [Default] and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the prefab name, author ids, layout and the fields the
// selected sink requires.
func (c *Config) Validate() error {
	if err := errors.ValidateName(c.Prefab.Name); err != nil {
		return err
	}
	if _, err := uuid.Parse(c.Prefab.CreatorID); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "prefab.creator_id must be a UUID")
	}
	if _, err := uuid.Parse(c.Prefab.ObjectID); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "prefab.object_id must be a UUID")
	}
	if c.Layout.Spacing < 0 || c.Layout.NodeWidth <= 0 || c.Layout.NodeHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "layout sizes must be positive")
	}

	o := c.Output
	switch sink.Kind(o.Sink) {
	case sink.KindFile:
		if err := errors.ValidatePath(o.Dir); err != nil {
			return err
		}
	case sink.KindRedis:
		if o.RedisAddr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "output.redis_addr is required for the redis sink")
		}
		if o.RedisTTL < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "output.redis_ttl cannot be negative")
		}
	case sink.KindMongo:
		if o.MongoURI == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "output.mongo_uri is required for the mongo sink")
		}
	case sink.KindMemory, sink.KindNull:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown output.sink %q", o.Sink)
	}
	return nil
}

// SinkOptions converts the output table for [sink.Open].
func (c *Config) SinkOptions() sink.Options {
	o := c.Output
	return sink.Options{
		Kind: sink.Kind(o.Sink),
		Dir:  o.Dir,
		Redis: sink.RedisConfig{
			Addr:     o.RedisAddr,
			Password: o.RedisPassword,
			DB:       o.RedisDB,
			Prefix:   o.RedisPrefix,
			TTL:      time.Duration(o.RedisTTL),
		},
		Mongo: sink.MongoConfig{
			URI:        o.MongoURI,
			Database:   o.MongoDatabase,
			Collection: o.MongoCollection,
		},
	}
}

// BoardLayout converts the layout table for [breadboard.WithLayout].
func (c *Config) BoardLayout() breadboard.Layout {
	return breadboard.Layout{
		Spacing: c.Layout.Spacing,
		Width:   c.Layout.NodeWidth,
		Height:  c.Layout.NodeHeight,
	}
}

// Meta converts the prefab table for [prefab.DefaultTemplate].
func (c *Config) Meta() prefab.Meta {
	return prefab.Meta{
		GameVersion: c.Prefab.GameVersion,
		CreatorName: c.Prefab.CreatorName,
		CreatorID:   c.Prefab.CreatorID,
		ObjectID:    c.Prefab.ObjectID,
	}
}
