package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/model"
	"portfolio-cms/internal/usecase"
)

// ErrNotFound reports a missing row.
var ErrNotFound = errors.New("not found")

// ContentRepo stores the single content document as a jsonb row. There is no
// partial update: every save replaces the document and bumps the version
// counter. Concurrent saves are last-writer-wins.
type ContentRepo struct {
	pool *pgxpool.Pool
}

func NewContentRepo(pool *pgxpool.Pool) *ContentRepo {
	return &ContentRepo{pool: pool}
}

// Get returns the latest record, seeding the default document when the table
// is empty.
func (r *ContentRepo) Get(ctx context.Context) (*domain.SiteRecord, error) {
	if r.pool == nil {
		return nil, usecase.ErrStoreUnavailable
	}

	rec, err := r.scanLatest(ctx)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %v", usecase.ErrStoreUnavailable, err)
	}

	// Lazy seed on first read.
	seeded, err := r.Upsert(ctx, DefaultDocument())
	if err != nil {
		return nil, err
	}
	return seeded, nil
}

// Upsert replaces the document's fields wholesale, validating against the
// content schema first. Returns the stored result.
func (r *ContentRepo) Upsert(ctx context.Context, doc *model.Document) (*domain.SiteRecord, error) {
	if r.pool == nil {
		return nil, usecase.ErrStoreUnavailable
	}
	if err := model.Validate(doc); err != nil {
		return nil, err
	}

	raw, err := model.EncodeDocument(doc)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	if cur, err := r.scanLatest(ctx); err == nil {
		id = cur.ID
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %v", usecase.ErrStoreUnavailable, err)
	}

	now := time.Now().UTC()
	_, err = r.pool.Exec(ctx, `INSERT INTO site_content (id, doc, version, created_at, updated_at)
		VALUES ($1, $2, 1, $3, $3)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, version = site_content.version + 1, updated_at = EXCLUDED.updated_at`,
		id, raw, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrStoreUnavailable, err)
	}

	rec, err := r.scanLatest(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrStoreUnavailable, err)
	}
	return rec, nil
}

func (r *ContentRepo) scanLatest(ctx context.Context) (*domain.SiteRecord, error) {
	var (
		rec domain.SiteRecord
		raw []byte
	)
	err := r.pool.QueryRow(ctx, `SELECT id, doc, version, created_at, updated_at
		FROM site_content ORDER BY created_at DESC LIMIT 1`).
		Scan(&rec.ID, &raw, &rec.Version, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	doc, err := model.DecodeDocument(raw)
	if err != nil {
		return nil, err
	}
	rec.Document = doc
	return &rec, nil
}
