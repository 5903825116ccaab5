package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/myenglish-langs/internal/domain"
)

// UniqueName returns prefix with a short random suffix so tests sharing the
// database never collide on the unique language name.
func UniqueName(prefix string) string {
	return prefix + " " + uuid.New().String()[:8]
}

// SeedLanguage inserts a default profile under a unique name derived from
// prefix and returns it as stored.
func SeedLanguage(t *testing.T, pool *pgxpool.Pool, prefix string) *domain.Language {
	t.Helper()

	lang := domain.NewLanguage()
	lang.Name = UniqueName(prefix)

	err := pool.QueryRow(context.Background(),
		`INSERT INTO languages (name, character_substitutions, sentence_split_pattern,
		     sentence_split_exceptions, word_characters, parser_type)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		lang.Name, lang.CharacterSubstitutions, lang.SentenceSplitPattern,
		lang.SentenceSplitExceptions, lang.WordCharacters(), string(lang.ParserType),
	).Scan(&lang.ID, &lang.CreatedAt, &lang.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLanguage: %v", err)
	}

	return lang
}

// SeedText inserts a text belonging to languageID and returns its ID.
func SeedText(t *testing.T, pool *pgxpool.Pool, languageID uuid.UUID, title string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := pool.QueryRow(context.Background(),
		`INSERT INTO texts (language_id, title) VALUES ($1, $2) RETURNING id`,
		languageID, title,
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: SeedText: %v", err)
	}
	return id
}

// CountTexts returns how many texts reference languageID.
func CountTexts(t *testing.T, pool *pgxpool.Pool, languageID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM texts WHERE language_id = $1`, languageID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountTexts: %v", err)
	}
	return n
}
