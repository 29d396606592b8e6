package sink

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matzehuels/breadboard/pkg/errors"
)

// FileSink writes documents as files in one directory.
type FileSink struct {
	dir string
}

// NewFileSink creates a sink writing to dir. The directory is created if
// it does not exist.
func NewFileSink(dir string) (*FileSink, error) {
	if err := errors.ValidatePath(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "create output directory %s", dir)
	}
	return &FileSink{dir: dir}, nil
}

// Dir returns the output directory.
func (s *FileSink) Dir() string { return s.dir }

// Path returns the file a document named name is written to.
func (s *FileSink) Path(name string) string {
	return filepath.Join(s.dir, name+Extension)
}

// Write stores doc as <dir>/<name>.blueprint. The file is written to a
// temporary name first and renamed, so readers never see a partial
// document.
func (s *FileSink) Write(ctx context.Context, name string, doc []byte) (string, error) {
	if err := errors.ValidateName(name); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "write %s", name)
	}

	path := s.Path(name)
	tmp, err := os.CreateTemp(s.dir, "."+name+"-*")
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "write %s", path)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(doc); err != nil {
		tmp.Close()
		return "", errors.Wrap(errors.ErrCodeStorage, err, "write %s", path)
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "write %s", path)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "write %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", errors.Wrap(errors.ErrCodeStorage, err, "write %s", path)
	}
	return path, nil
}

// Read returns the contents of <dir>/<name>.blueprint.
func (s *FileSink) Read(ctx context.Context, name string) ([]byte, error) {
	if err := errors.ValidateName(name); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(name))
	if os.IsNotExist(err) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "read %s", s.Path(name))
	}
	return data, nil
}

// Close does nothing for file sinks.
func (s *FileSink) Close() error { return nil }

var _ Sink = (*FileSink)(nil)
