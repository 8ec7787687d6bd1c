package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jwulff/routines/internal/app"
	"github.com/jwulff/routines/internal/config"
	"github.com/jwulff/routines/internal/db"
	"github.com/jwulff/routines/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// run returns startup and program errors instead of exiting so the log file
// and database are closed before main reports them.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, closeLog, err := openLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closeLog.Close()

	var slots state.Slots
	if cfg.Database.Path == "" {
		logger.Info("no database path, routines will not be saved")
		slots = db.NewMemorySlots()
	} else {
		store, err := db.Open(cfg.Database.Path)
		if err != nil {
			logger.Error("open db failed", "path", cfg.Database.Path, "error", err)
			return fmt.Errorf("open db: %w", err)
		}
		defer store.Close()
		slots = store
	}

	p := tea.NewProgram(app.New(state.Load(slots, logger)), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// openLogger sends slog output to the configured file. The terminal belongs
// to the TUI, so an empty path discards logs instead of writing to stderr.
// The standard logger is left alone; startup errors still reach stderr.
func openLogger(c config.LogConfig) (*slog.Logger, io.Closer, error) {
	if c.Path == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := tea.LogToFileWith(c.Path, "routines", log.New(io.Discard, "", log.LstdFlags))
	if err != nil {
		return nil, nil, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: c.SlogLevel()})
	return slog.New(h), f, nil
}
