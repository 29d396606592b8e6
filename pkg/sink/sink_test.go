package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/breadboard/pkg/errors"
)

func TestFileSink(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "prefabs")

	s, err := NewFileSink(dir)
	if err != nil {
		t.Fatalf("NewFileSink() error: %v", err)
	}
	defer s.Close()

	loc, err := s.Write(ctx, "AimAssist", []byte("v1"))
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if want := filepath.Join(dir, "AimAssist.blueprint"); loc != want {
		t.Errorf("Write() location = %q, want %q", loc, want)
	}

	if _, err := s.Write(ctx, "AimAssist", []byte("v2")); err != nil {
		t.Fatalf("second Write() error: %v", err)
	}
	got, err := s.Read(ctx, "AimAssist")
	if err != nil || string(got) != "v2" {
		t.Errorf("Read() = %q, %v, want v2", got, err)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("directory holds %d files, want 1 (temporary files must be cleaned up)", len(entries))
	}
}

func TestFileSinkErrors(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileSink(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := s.Read(ctx, "missing"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Read(missing) error = %v, want NOT_FOUND", err)
	}
	if _, err := s.Write(ctx, "../escape", nil); !errors.Is(err, errors.ErrCodeInvalidName) {
		t.Errorf("Write(../escape) error = %v, want INVALID_NAME", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := s.Write(cancelled, "late", nil); !errors.Is(err, errors.ErrCodeStorage) {
		t.Errorf("Write(cancelled) error = %v, want STORAGE_ERROR", err)
	}

	if _, err := NewFileSink(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("NewFileSink(\"\") error = %v, want INVALID_PATH", err)
	}
}

func TestFileSinkUnwritableDirectory(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}
	dir := t.TempDir()
	s, err := NewFileSink(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(dir, 0500); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(dir, 0755)

	if _, err := s.Write(context.Background(), "blocked", []byte("x")); !errors.Is(err, errors.ErrCodeStorage) {
		t.Errorf("Write() error = %v, want STORAGE_ERROR", err)
	}
}

func TestMemorySink(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySink()

	doc := []byte("doc")
	if _, err := s.Write(ctx, "b", doc); err != nil {
		t.Fatal(err)
	}
	doc[0] = 'X'
	if _, err := s.Write(ctx, "a", nil); err != nil {
		t.Fatal(err)
	}

	got, err := s.Read(ctx, "b")
	if err != nil || string(got) != "doc" {
		t.Errorf("Read() = %q, %v, want an unaliased copy", got, err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, s.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if _, err := s.Read(ctx, "c"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Read(c) error = %v, want NOT_FOUND", err)
	}
}

func TestNullSink(t *testing.T) {
	ctx := context.Background()
	s := NewNullSink()
	if _, err := s.Write(ctx, "x", []byte("data")); err != nil {
		t.Errorf("Write() error: %v", err)
	}
	if _, err := s.Read(ctx, "x"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Read() error = %v, want NOT_FOUND", err)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		opts     Options
		wantType string
		wantCode errors.Code
	}{
		{"file", Options{Kind: KindFile, Dir: t.TempDir()}, "*sink.FileSink", ""},
		{"default is file", Options{Dir: t.TempDir()}, "*sink.FileSink", ""},
		{"memory", Options{Kind: KindMemory}, "*sink.MemorySink", ""},
		{"null", Options{Kind: KindNull}, "*sink.NullSink", ""},
		{"redis without address", Options{Kind: KindRedis}, "", errors.ErrCodeInvalidConfig},
		{"mongo without uri", Options{Kind: KindMongo}, "", errors.ErrCodeInvalidConfig},
		{"unknown", Options{Kind: "s3"}, "", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Open(ctx, tt.opts)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Errorf("Open() error = %v, want %s", err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() error: %v", err)
			}
			defer s.Close()
			if got := fmt.Sprintf("%T", s); got != tt.wantType {
				t.Errorf("Open() = %s, want %s", got, tt.wantType)
			}
		})
	}
}
