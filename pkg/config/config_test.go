package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/breadboard/pkg/breadboard"
	"github.com/matzehuels/breadboard/pkg/errors"
	"github.com/matzehuels/breadboard/pkg/prefab"
	"github.com/matzehuels/breadboard/pkg/sink"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() error: %v", err)
	}
	if cfg.BoardLayout() != breadboard.DefaultLayout() {
		t.Errorf("BoardLayout() = %+v, want %+v", cfg.BoardLayout(), breadboard.DefaultLayout())
	}
	if cfg.Meta() != prefab.DefaultMeta() {
		t.Errorf("Meta() = %+v, want %+v", cfg.Meta(), prefab.DefaultMeta())
	}
	if cfg.Prefab.Name != DefaultName {
		t.Errorf("Prefab.Name = %q, want %q", cfg.Prefab.Name, DefaultName)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	data := `
[prefab]
name = "AimAssist"
creator_name = "Ann"

[layout]
spacing = 150.0

[output]
sink = "redis"
redis_addr = "localhost:6379"
redis_db = 2
redis_ttl = "24h"
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cfg.Prefab.Name != "AimAssist" {
		t.Errorf("Prefab.Name = %q, want AimAssist", cfg.Prefab.Name)
	}
	meta := cfg.Meta()
	if meta.CreatorName != "Ann" || meta.GameVersion != prefab.DefaultMeta().GameVersion {
		t.Errorf("Meta() = %+v, want creator Ann with default game version", meta)
	}
	if got := cfg.BoardLayout(); got != (breadboard.Layout{Spacing: 150, Width: 25, Height: 25}) {
		t.Errorf("BoardLayout() = %+v", got)
	}

	want := sink.Options{
		Kind: sink.KindRedis,
		Dir:  ".",
		Redis: sink.RedisConfig{
			Addr:   "localhost:6379",
			DB:     2,
			Prefix: "breadboard:",
			TTL:    24 * time.Hour,
		},
		Mongo: sink.MongoConfig{Database: "breadboard", Collection: "blueprints"},
	}
	if diff := cmp.Diff(want, cfg.SinkOptions()); diff != "" {
		t.Errorf("SinkOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"syntax", "[prefab\nname = 1", errors.ErrCodeInvalidConfig},
		{"unknown key", "[output]\nsnik = \"file\"", errors.ErrCodeInvalidConfig},
		{"unknown sink", "[output]\nsink = \"s3\"", errors.ErrCodeInvalidConfig},
		{"redis without addr", "[output]\nsink = \"redis\"", errors.ErrCodeInvalidConfig},
		{"mongo without uri", "[output]\nsink = \"mongo\"", errors.ErrCodeInvalidConfig},
		{"bad ttl", "[output]\nredis_ttl = \"soon\"", errors.ErrCodeInvalidConfig},
		{"bad creator id", "[prefab]\ncreator_id = \"nobody\"", errors.ErrCodeInvalidConfig},
		{"zero width", "[layout]\nnode_width = 0.0", errors.ErrCodeInvalidConfig},
		{"bad name", "[prefab]\nname = \"../x\"", errors.ErrCodeInvalidName},
		{"empty dir", "[output]\ndir = \"\"", errors.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, tt.code) {
				t.Errorf("Parse() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "breadboard.toml")
	if err := os.WriteFile(path, []byte("[output]\nsink = \"null\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Output.Sink != string(sink.KindNull) {
		t.Errorf("Output.Sink = %q, want null", cfg.Output.Sink)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExampleConfigs(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "config", "*.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Fatal("no example configs found")
	}

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if want := strings.TrimSuffix(filepath.Base(path), ".toml"); cfg.Output.Sink != want {
				t.Errorf("Output.Sink = %q, want %q", cfg.Output.Sink, want)
			}
		})
	}
}
