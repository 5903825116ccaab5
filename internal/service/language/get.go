package language

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-langs/internal/domain"
	"github.com/heartmarshall/myenglish-langs/pkg/ctxutil"
)

// Get returns an installed language by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}
	lang, err := s.langs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}
	return lang, nil
}

// FindByName returns an installed language by name, ignoring case.
func (s *Service) FindByName(ctx context.Context, name string) (*domain.Language, error) {
	name = domain.NormalizeName(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	lang, err := s.langs.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find language: %w", err)
	}
	return lang, nil
}

// ListInstalled returns the installed languages ordered by name.
func (s *Service) ListInstalled(ctx context.Context) ([]*domain.Language, error) {
	langs, err := s.langs.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	return langs, nil
}

// Delete removes an installed language together with its dependent data.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	lang, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.langs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete language: %w", err)
	}

	s.log.InfoContext(ctxutil.WithLanguageID(ctx, id), "language deleted",
		slog.String("name", lang.Name),
	)
	return nil
}
