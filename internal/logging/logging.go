package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Init initializes the logging system, writing logs to ~/.tick/logs/tick.log
// Uses text format for human readability. On failure logging stays discarded
// and the error is returned so the caller can decide whether it matters.
func Init() (io.Closer, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nopCloser{}, err
	}
	return InitAt(filepath.Join(homeDir, ".tick", "logs"))
}

// InitAt is Init with an explicit log directory
func InitAt(logDir string) (io.Closer, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nopCloser{}, err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "tick.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nopCloser{}, err
	}

	// Create text handler (human readable)
	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	slog.SetDefault(slog.New(handler))

	// Redirect standard log package output to the same file
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
