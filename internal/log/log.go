// Package log holds the shared structured logger.
package log

import (
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
)

// Logger is the process-wide logger. It starts as a console logger at info
// level and is replaced by Setup once configuration is known.
var Logger *zap.Logger

func init() {
	var err error
	if Logger, err = build("info", "stderr"); err != nil {
		panic(err)
	}
	Logger = Logger.Named("skyfinder")
}

// Setup rebuilds Logger for the given level and output path.
// An empty path discards every entry, which keeps a full-screen TUI clean.
func Setup(level, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		Logger = zap.NewNop()
		return nil
	}

	l, err := build(level, path)
	if err != nil {
		return err
	}
	Logger = l.Named("skyfinder")
	return nil
}

func build(level, path string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, errors.Wrapf(err, "parse log level %q", level)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Encoding = "console"
	cfg.Sampling = nil
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}

	l, err := cfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return l, nil
}
