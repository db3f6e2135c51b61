package cmd

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/seasons/config"
)

func debugConfig(dir string) *config.Config {
	return &config.Config{Logging: config.LoggingConfig{
		Debug: true,
		File:  filepath.Join(dir, logDir, logFileName),
		Level: "debug",
	}}
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	logger, closer, err := setupLogging(&config.Config{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if closer != nil {
		t.Error("Expected nil closer when debug=false")
		closer.Close()
	}

	// Verify log output is discarded
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("Expected logger to discard every level")
	}
	if slog.Default().Enabled(context.Background(), slog.LevelError) {
		t.Error("Expected default logger to discard every level")
	}
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	dir := t.TempDir()
	cfg := debugConfig(dir)

	logger, closer, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if closer == nil {
		t.Fatal("Expected non-nil closer when debug=true")
	}
	defer closer.Close()

	// Verify logs directory was created
	if _, err := os.Stat(filepath.Join(dir, logDir)); os.IsNotExist(err) {
		t.Error("Expected logs directory to be created")
	}

	logger.Info("Test log message")

	info, err := os.Stat(cfg.Logging.File)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestSetupLogging_LevelFilter(t *testing.T) {
	cfg := debugConfig(t.TempDir())
	cfg.Logging.Level = "warn"

	logger, closer, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer closer.Close()

	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Expected info to be filtered at warn level")
	}
	if !logger.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Expected warn to be enabled")
	}
}

func TestSetupLogging_Rotation(t *testing.T) {
	dir := t.TempDir()
	cfg := debugConfig(dir)
	logPath := cfg.Logging.File

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		t.Fatalf("Failed to create logs directory: %v", err)
	}

	// Write just over the rotation threshold
	data := make([]byte, maxLogSize*1024*1024+1)
	if err := os.WriteFile(logPath, data, 0o644); err != nil {
		t.Fatalf("Failed to write large log file: %v", err)
	}

	logger, closer, err := setupLogging(cfg)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	defer closer.Close()

	// First write triggers rotation
	logger.Info("after rotation")

	entries, err := os.ReadDir(filepath.Dir(logPath))
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat new log file: %v", err)
	}
	if info.Size() >= int64(len(data)) {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", len(data), info.Size())
	}
}
