package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/seasons/config"
)

const (
	logDir      = "logs"
	logFileName = "seasons.log"
	// maxLogSize is the rotation threshold in megabytes
	maxLogSize    = 10
	maxLogBackups = 3
)

// setupLogging builds the process logger and installs it as the slog default
// Logs are discarded unless debug is enabled, the screen owns stdout and stderr
// The returned closer is nil when nothing was opened
func setupLogging(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	if !cfg.Logging.Debug {
		logger := slog.New(slog.DiscardHandler)
		slog.SetDefault(logger)
		return logger, nil, nil
	}

	path := cfg.Logging.File
	if path == "" {
		path = filepath.Join(logDir, logFileName)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log directory: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSize,
		MaxBackups: maxLogBackups,
	}
	logger := slog.New(slog.NewTextHandler(sink, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)
	return logger, sink, nil
}
