package main

import (
	"context"
	"fmt"
	"os"

	"github.com/hetulpatel/ndc-comments/internal/comments"
	"github.com/hetulpatel/ndc-comments/internal/config"
	"github.com/hetulpatel/ndc-comments/internal/logging"
	"github.com/hetulpatel/ndc-comments/internal/storage/sqlite"
)

func main() {
	defer logging.Sync()
	if err := run(); err != nil {
		logging.Fatalf("[add-comments] %v", err)
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

	logging.Debugf("[add-comments] ensuring comments table in %s", store.Path())
	ok, err := comments.Initialize(context.Background(), store, os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		logging.Errorf("[add-comments] comments table missing from catalog at %s", store.Path())
	}
	return nil
}
