package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey      ctxKey = "run_id"
	languageIDKey ctxKey = "language_id"
)

// WithRunID stores the ID of the current command invocation in the context.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromCtx extracts the run ID from the context.
// Returns an empty string if absent.
func RunIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey).(string)
	return id
}

// WithLanguageID stores the ID of the language being worked on.
func WithLanguageID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, languageIDKey, id)
}

// LanguageIDFromCtx extracts the language ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func LanguageIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(languageIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
