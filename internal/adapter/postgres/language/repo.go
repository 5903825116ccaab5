// Package language implements the Language repository using PostgreSQL.
// Queries are built with squirrel; dependent rows (texts) are removed by
// ON DELETE CASCADE when a language is deleted.
package language

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/myenglish-langs/internal/adapter/postgres"
	"github.com/heartmarshall/myenglish-langs/internal/domain"
)

const table = "languages"

var columns = []string{
	"id", "name", "dict_1_uri", "dict_2_uri", "sentence_translate_uri",
	"character_substitutions", "sentence_split_pattern", "sentence_split_exceptions",
	"word_characters", "remove_spaces", "split_each_char", "right_to_left",
	"show_romanization", "parser_type", "created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type txRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo provides language persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   txRunner
}

// New creates a new language repository.
func New(pool *pgxpool.Pool, tx txRunner) *Repo {
	return &Repo{pool: pool, tx: tx}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a language by primary key.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	query, args, err := psql.Select(columns...).From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get language query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	lang, err := scanLanguage(row)
	if err != nil {
		return nil, postgres.MapError(err, "language", id)
	}
	return lang, nil
}

// FindByName returns the language whose name equals name ignoring case.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) FindByName(ctx context.Context, name string) (*domain.Language, error) {
	query, args, err := psql.Select(columns...).From(table).
		Where(sq.Expr("lower(name) = lower(?)", domain.NormalizeName(name))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find language query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	lang, err := scanLanguage(row)
	if err != nil {
		return nil, postgres.MapError(err, "language", name)
	}
	return lang, nil
}

// List returns all languages ordered by name.
// Returns an empty slice (not nil) when the store is empty.
func (r *Repo) List(ctx context.Context) ([]*domain.Language, error) {
	query, args, err := psql.Select(columns...).From(table).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list languages query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()

	langs := []*domain.Language{}
	for rows.Next() {
		lang, err := scanLanguage(rows)
		if err != nil {
			return nil, fmt.Errorf("list languages: %w", err)
		}
		langs = append(langs, lang)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}

	return langs, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts lang and returns the persisted copy with its ID and
// timestamps. The name is stored in its domain.NormalizeName form so that
// FindByName matches it. The input is not modified.
// Returns domain.ErrAlreadyExists if a language with the same name (ignoring
// case) is already stored.
func (r *Repo) Create(ctx context.Context, lang *domain.Language) (*domain.Language, error) {
	name := domain.NormalizeName(lang.Name)

	query, args, err := psql.Insert(table).
		Columns(columns[1:14]...).
		Values(
			name,
			lang.Dict1URI,
			lang.Dict2URI,
			lang.SentenceTranslateURI,
			lang.CharacterSubstitutions,
			lang.SentenceSplitPattern,
			lang.SentenceSplitExceptions,
			lang.WordCharacters(),
			lang.RemoveSpaces,
			lang.SplitEachChar,
			lang.RightToLeft,
			lang.ShowRomanization,
			string(lang.ParserType),
		).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert language query: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...)
	created, err := scanLanguage(row)
	if err != nil {
		return nil, postgres.MapError(err, "language", name)
	}
	return created, nil
}

// Delete removes a language and, through the schema, everything that
// references it. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete language query: %w", err)
	}

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
		if err != nil {
			return postgres.MapError(err, "language", id)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("language %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanLanguage(row pgx.Row) (*domain.Language, error) {
	var (
		l          domain.Language
		wordChars  string
		parserType string
	)
	err := row.Scan(
		&l.ID,
		&l.Name,
		&l.Dict1URI,
		&l.Dict2URI,
		&l.SentenceTranslateURI,
		&l.CharacterSubstitutions,
		&l.SentenceSplitPattern,
		&l.SentenceSplitExceptions,
		&wordChars,
		&l.RemoveSpaces,
		&l.SplitEachChar,
		&l.RightToLeft,
		&l.ShowRomanization,
		&parserType,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	l.SetWordCharacters(wordChars)
	l.ParserType = domain.ParserType(parserType)
	return &l, nil
}
