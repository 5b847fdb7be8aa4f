package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"todo-list/internal/announce"
	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/persist"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/store"
	"todo-list/internal/theme"
)

// app bundles what every command needs: config, an open database, and a
// restored store.
type app struct {
	cfg    *config.Config
	db     *sqlite.DB
	store  *store.Store
	logger *log.Logger
	styles *theme.Styles
}

// loadApp opens the app for one-shot commands: stderr logging, and
// announcements written to the log at debug level.
func loadApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewStderr(cfg.LogLevel)
	return openApp(ctx, cfg, logger, announce.LogAnnouncer{Logger: logger})
}

// opens the database and restores the store
func openApp(ctx context.Context, cfg *config.Config, logger *log.Logger, announcer announce.Announcer) (*app, error) {
	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	adapter := persist.NewAdapter(sqlite.NewKVRepository(db), logger)
	s := store.New(adapter, announcer, logger)
	s.Restore(ctx)

	logger.Debug("opened database", "path", cfg.DBPath, "tasks", s.Len())

	return &app{
		cfg:    cfg,
		db:     db,
		store:  s,
		logger: logger,
		styles: theme.NewStyles(theme.ForMode(s.Theme())),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}
