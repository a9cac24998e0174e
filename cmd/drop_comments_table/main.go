package main

import (
	"context"
	"fmt"

	"github.com/hetulpatel/ndc-comments/internal/config"
	"github.com/hetulpatel/ndc-comments/internal/logging"
	"github.com/hetulpatel/ndc-comments/internal/storage/sqlite"
)

func main() {
	defer logging.Sync()
	if err := run(); err != nil {
		logging.Fatalf("[drop-comments] %v", err)
	}
}

func run() error {
	cfg := config.Load()
	logging.SetLevel(cfg.LogLevel)

	store, err := sqlite.Open(cfg.SQLitePath)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer store.Close()

	if err := store.DropCommentsTable(context.Background()); err != nil {
		return err
	}
	logging.Infof("[drop-comments] comments table dropped at %s", store.Path())
	return nil
}
