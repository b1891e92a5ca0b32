package logger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"odoo-steps/internal/fsname"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a logger that writes human-readable lines to stderr and, when
// dir is set, JSON lines to <dir>/<timestamp>_<run>.log.
func New(level, dir, run string) (*zap.Logger, string, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, "", fmt.Errorf("parse log level %q: %w", level, err)
	}

	console := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stderr),
		lvl,
	)
	if dir == "" {
		return zap.New(console), "", nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("create log dir: %w", err)
	}
	path := fsname.Timestamped(dir, run, "run", time.Now()) + ".log"
	file, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("create log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.RFC3339TimeEncoder
	jsonCore := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), lvl)

	return zap.New(zapcore.NewTee(console, jsonCore)), path, nil
}
