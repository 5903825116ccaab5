package language

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-langs/internal/domain"
	"github.com/heartmarshall/myenglish-langs/internal/parser"
)

type languageRepo interface {
	Create(ctx context.Context, lang *domain.Language) (*domain.Language, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	FindByName(ctx context.Context, name string) (*domain.Language, error)
	List(ctx context.Context) ([]*domain.Language, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type predefinedCatalog interface {
	List(ctx context.Context) ([]*domain.Language, error)
	Find(ctx context.Context, name string) (*domain.Language, error)
}

type tokenizer interface {
	Resolve(tag domain.ParserType) (parser.Parser, error)
	Tokenize(lang *domain.Language, text string) ([]parser.Token, error)
	Lowercase(lang *domain.Language, text string) (string, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service installs, looks up and tokenizes with language profiles.
type Service struct {
	langs   languageRepo
	catalog predefinedCatalog
	parsers tokenizer
	tx      txManager
	log     *slog.Logger
}

// NewService creates a new Language service.
func NewService(
	log *slog.Logger,
	langs languageRepo,
	catalog predefinedCatalog,
	parsers tokenizer,
	tx txManager,
) *Service {
	return &Service{
		langs:   langs,
		catalog: catalog,
		parsers: parsers,
		tx:      tx,
		log:     log.With("service", "language"),
	}
}
