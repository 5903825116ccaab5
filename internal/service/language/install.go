package language

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/myenglish-langs/internal/domain"
	"github.com/heartmarshall/myenglish-langs/pkg/ctxutil"
)

// ListPredefined returns the shipped language definitions sorted by name.
func (s *Service) ListPredefined(ctx context.Context) ([]*domain.Language, error) {
	langs, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list predefined: %w", err)
	}
	return langs, nil
}

// InstallPredefined copies the predefined language called name into the
// store. It fails with domain.ErrAlreadyExists when a language of that name
// (ignoring case) is already installed and with domain.ErrUnknownParser when
// no parser is registered for it.
func (s *Service) InstallPredefined(ctx context.Context, name string) (*domain.Language, error) {
	name = domain.NormalizeName(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	def, err := s.catalog.Find(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("find predefined: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.parsers.Resolve(def.ParserType); err != nil {
		return nil, fmt.Errorf("install %s: %w", def.Name, err)
	}

	var installed *domain.Language
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, findErr := s.langs.FindByName(txCtx, def.Name)
		switch {
		case findErr == nil:
			return fmt.Errorf("language %s (%s): %w", existing.Name, existing.ID, domain.ErrAlreadyExists)
		case !errors.Is(findErr, domain.ErrNotFound):
			return fmt.Errorf("find installed: %w", findErr)
		}

		var createErr error
		installed, createErr = s.langs.Create(txCtx, def)
		if createErr != nil {
			return fmt.Errorf("create language: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctxutil.WithLanguageID(ctx, installed.ID), "predefined language installed",
		slog.String("name", installed.Name),
		slog.String("parser_type", installed.ParserType.String()),
	)

	return installed, nil
}
