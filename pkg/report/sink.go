package report

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

type SinkConfig struct {
	File       string
	Overwrite  bool
	MaxSize    int
	MaxBackups int
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// OpenSink returns the report destination: stderr when no file is
// configured, a size rotated file otherwise.
func OpenSink(config SinkConfig) (io.WriteCloser, error) {
	if config.File == "" {
		return nopCloser{os.Stderr}, nil
	}

	if err := os.MkdirAll(filepath.Dir(config.File), 0755); err != nil {
		return nil, errors.Wrapf(err, "Unable to create directory for %s", config.File)
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if config.Overwrite {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}

	// lumberjack opens lazily, so check the destination now to fail early
	f, err := os.OpenFile(config.File, flags, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to open %s", config.File)
	}
	if err := f.Close(); err != nil {
		return nil, errors.Wrapf(err, "Unable to open %s", config.File)
	}

	return &lumberjack.Logger{
		Filename:   config.File,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
	}, nil
}
