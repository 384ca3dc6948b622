package usecase

import (
	"context"
	"errors"

	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/model"
)

// ErrStoreUnavailable wraps any backend failure reaching the content store.
// Callers surface it as a generic failure; there is no retry or backoff.
var ErrStoreUnavailable = errors.New("content store unavailable")

// ContentStore persists the single content document. Get seeds a default
// document when none exists; Upsert replaces the document's fields wholesale.
// No partial update operation exists.
type ContentStore interface {
	Get(ctx context.Context) (*domain.SiteRecord, error)
	Upsert(ctx context.Context, doc *model.Document) (*domain.SiteRecord, error)
}

// AdminStore looks up editor accounts for the auth gate.
type AdminStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
}
