// Package catalog lists the predefined language definitions shipped in a
// directory.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/myenglish-langs/internal/config"
	"github.com/heartmarshall/myenglish-langs/internal/domain"
)

type definitionLoader interface {
	LoadFile(path string) (*domain.Language, error)
}

// Catalog reads definitions matching the configured pattern. Every call
// reads the directory again; nothing is cached between calls.
type Catalog struct {
	log     *slog.Logger
	loader  definitionLoader
	dir     string
	pattern string
	workers int
}

// New creates a Catalog over cfg.Dir.
func New(log *slog.Logger, loader definitionLoader, cfg config.CatalogConfig) *Catalog {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	pattern := cfg.Pattern
	if pattern == "" {
		pattern = "*.yaml"
	}
	return &Catalog{
		log:     log.With("component", "catalog"),
		loader:  loader,
		dir:     cfg.Dir,
		pattern: pattern,
		workers: workers,
	}
}

// List loads the catalog directory.
func (c *Catalog) List(ctx context.Context) ([]*domain.Language, error) {
	return c.ListPredefined(ctx, c.dir)
}

// ListPredefined loads every definition in dir, sorted by name. The first
// file that fails to load or validate aborts the whole listing.
func (c *Catalog) ListPredefined(ctx context.Context, dir string) ([]*domain.Language, error) {
	paths, err := filepath.Glob(filepath.Join(dir, c.pattern))
	if err != nil {
		return nil, fmt.Errorf("glob definitions: %w", err)
	}
	slices.Sort(paths)

	langs := make([]*domain.Language, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			lang, err := c.loader.LoadFile(path)
			if err != nil {
				return err
			}
			if err := lang.Validate(); err != nil {
				return fmt.Errorf("definition %s: %w", path, err)
			}
			langs[i] = lang
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(langs, func(a, b *domain.Language) int {
		return strings.Compare(a.Name, b.Name)
	})

	c.log.DebugContext(ctx, "catalog loaded",
		slog.String("dir", dir),
		slog.Int("count", len(langs)),
	)
	return langs, nil
}

// Find returns the predefined language whose name matches name, ignoring
// case and surrounding or repeated whitespace.
func (c *Catalog) Find(ctx context.Context, name string) (*domain.Language, error) {
	langs, err := c.List(ctx)
	if err != nil {
		return nil, err
	}
	name = domain.NormalizeName(name)
	for _, l := range langs {
		if strings.EqualFold(domain.NormalizeName(l.Name), name) {
			return l, nil
		}
	}
	return nil, fmt.Errorf("predefined language %q: %w", name, domain.ErrNotFound)
}
