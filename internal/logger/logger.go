// Package logger provides structured logging setup for swipeconfirm.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/swipeconfirm/internal/config"
)

// New creates a *slog.Logger from the log config. The terminal belongs to the
// TUI, so records go to cfg.File (opened through tea.LogToFile) or nowhere.
// The returned close func must be called on exit.
func New(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	if strings.TrimSpace(cfg.File) == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := tea.LogToFile(cfg.File, "swipeconfirm")
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: parseLevel(cfg.Level)})
	return slog.New(handler).With("service", "swipeconfirm"), f.Close, nil
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
