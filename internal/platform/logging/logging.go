package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the program logger. Levels follow the config file: "none"
// disables logging, "normal" logs info and above, "debug" logs everything.
// An empty destination writes to stderr.
func New(level, destination string) (*zap.Logger, func() error, error) {
	noop := func() error { return nil }

	var enabler zapcore.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "normal":
		enabler = zapcore.InfoLevel
	case "debug":
		enabler = zapcore.DebugLevel
	case "none":
		return zap.NewNop(), noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown log level %q (expected none|normal|debug)", level)
	}

	var (
		sink    io.Writer = os.Stderr
		closeFn           = noop
	)
	if dest := strings.TrimSpace(destination); dest != "" {
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return nil, noop, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("open log file: %w", err)
		}
		sink = f
		closeFn = f.Close
	}

	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(zapcore.AddSync(sink)), enabler)

	log := zap.New(core)
	return log, func() error {
		_ = log.Sync()
		return closeFn()
	}, nil
}
