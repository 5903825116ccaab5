// Package app wires configuration, logging and the language components
// together for the command-line entry points.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/myenglish-langs/internal/adapter/postgres"
	languagerepo "github.com/heartmarshall/myenglish-langs/internal/adapter/postgres/language"
	"github.com/heartmarshall/myenglish-langs/internal/catalog"
	"github.com/heartmarshall/myenglish-langs/internal/config"
	"github.com/heartmarshall/myenglish-langs/internal/definition"
	"github.com/heartmarshall/myenglish-langs/internal/parser"
	"github.com/heartmarshall/myenglish-langs/internal/service/language"
)

// App holds the components shared by every command. Components that need
// no database are built eagerly; the store is connected on first use.
type App struct {
	Config  *config.Config
	Log     *slog.Logger
	Loader  *definition.Loader
	Catalog *catalog.Catalog
	Parsers *parser.Registry

	mu       sync.Mutex
	pool     *pgxpool.Pool
	services *language.Service
}

// New builds the database-free part of the application.
func New(cfg *config.Config, log *slog.Logger, opts ...parser.Option) *App {
	loader := definition.NewLoader(log)
	return &App{
		Config:  cfg,
		Log:     log,
		Loader:  loader,
		Catalog: catalog.New(log, loader, cfg.Catalog),
		Parsers: parser.NewRegistry(cfg.Parser, opts...),
	}
}

// Languages returns the language service, connecting to the database the
// first time it is called. It fails with config.ErrNoDatabase when no DSN
// is configured.
func (a *App) Languages(ctx context.Context) (*language.Service, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.services != nil {
		return a.services, nil
	}

	pool, err := postgres.NewPool(ctx, a.Config.Database)
	if err != nil {
		return nil, fmt.Errorf("connect language store: %w", err)
	}

	txm := postgres.NewTxManager(pool)
	a.pool = pool
	a.services = language.NewService(a.Log, languagerepo.New(pool, txm), a.Catalog, a.Parsers, txm)

	a.Log.DebugContext(ctx, "language store connected",
		slog.Int("max_conns", int(a.Config.Database.MaxConns)),
	)
	return a.services, nil
}

// Close releases the database pool, if one was opened.
func (a *App) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.pool != nil {
		a.pool.Close()
		a.pool = nil
		a.services = nil
	}
}
