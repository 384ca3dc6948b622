package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-cms/internal/domain"
	"portfolio-cms/internal/model"
	"portfolio-cms/internal/usecase"
)

// MemoryContent is an in-memory ContentStore with the same lazy-seed and
// version-bump semantics as the Postgres repo. It backs tests and local runs
// without a database.
type MemoryContent struct {
	mu   sync.RWMutex
	rec  *domain.SiteRecord
	seed func() *model.Document

	// FailWith, when set, makes every call fail with a store-unavailable
	// error. Tests use it to exercise the failure paths.
	FailWith error
}

// NewMemoryContent builds an empty store. seed may be nil to use
// DefaultDocument.
func NewMemoryContent(seed func() *model.Document) *MemoryContent {
	if seed == nil {
		seed = DefaultDocument
	}
	return &MemoryContent{seed: seed}
}

func (s *MemoryContent) Get(ctx context.Context) (*domain.SiteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return nil, s.FailWith
	}
	if s.rec == nil {
		if err := s.put(s.seed()); err != nil {
			return nil, err
		}
	}
	return s.copyRec()
}

func (s *MemoryContent) Upsert(ctx context.Context, doc *model.Document) (*domain.SiteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWith != nil {
		return nil, s.FailWith
	}
	if err := model.Validate(doc); err != nil {
		return nil, err
	}
	if err := s.put(doc); err != nil {
		return nil, err
	}
	return s.copyRec()
}

func (s *MemoryContent) put(doc *model.Document) error {
	clone, err := doc.Clone()
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	if s.rec == nil {
		s.rec = &domain.SiteRecord{
			ID:        uuid.New(),
			Document:  clone,
			Version:   1,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return nil
	}
	s.rec.Document = clone
	s.rec.Version++
	s.rec.UpdatedAt = now
	return nil
}

func (s *MemoryContent) copyRec() (*domain.SiteRecord, error) {
	clone, err := s.rec.Document.Clone()
	if err != nil {
		return nil, err
	}
	out := *s.rec
	out.Document = clone
	return &out, nil
}

var _ usecase.ContentStore = (*MemoryContent)(nil)

// MemoryAdmins is an in-memory AdminStore.
type MemoryAdmins struct {
	mu    sync.RWMutex
	users map[string]domain.AdminUser
}

func NewMemoryAdmins() *MemoryAdmins {
	return &MemoryAdmins{users: make(map[string]domain.AdminUser)}
}

func (s *MemoryAdmins) Put(u domain.AdminUser) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.Email] = u
}

func (s *MemoryAdmins) FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

var _ usecase.AdminStore = (*MemoryAdmins)(nil)
