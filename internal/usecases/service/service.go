package service

import (
	"context"
	"errors"
	"log"

	"github.com/aishwaryaDel/tesa-ai-template/internal/usecases/domain"
	"github.com/aishwaryaDel/tesa-ai-template/internal/usecases/validation"
)

// Repository is the persistence contract the service orchestrates.
type Repository interface {
	FindAll(ctx context.Context) ([]domain.UseCase, error)
	FindByID(ctx context.Context, id string) (*domain.UseCase, error)
	Create(ctx context.Context, req domain.CreateUseCaseRequest) (*domain.UseCase, error)
	Update(ctx context.Context, id string, req domain.UpdateUseCaseRequest) (*domain.UseCase, error)
	Delete(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// Publisher announces state transitions after they have been committed.
type Publisher interface {
	Publish(ctx context.Context, eventType string, data any, metadata ...map[string]any)
}

// Cache is an optional read-through snapshot store for single records.
type Cache interface {
	Get(ctx context.Context, id string) (*domain.UseCase, bool)
	Set(ctx context.Context, uc *domain.UseCase)
}

// UseCaseService is the single orchestration point for the use-case
// lifecycle: validate, persist, announce.
type UseCaseService struct {
	repo  Repository
	bus   Publisher
	cache Cache
}

// NewUseCaseService creates a lifecycle service. cache may be nil.
func NewUseCaseService(repo Repository, bus Publisher, cache Cache) *UseCaseService {
	return &UseCaseService{
		repo:  repo,
		bus:   bus,
		cache: cache,
	}
}

// Create validates and persists a new use case, then announces it.
// Validation failures surface before storage or the bus is touched.
func (s *UseCaseService) Create(ctx context.Context, req domain.CreateUseCaseRequest) (*domain.UseCase, error) {
	if err := validation.ValidateCreate(req); err != nil {
		return nil, err
	}

	uc, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, s.internal("create use case", err)
	}

	s.bus.Publish(ctx, domain.EventUseCaseCreated, map[string]any{
		"id":         uc.ID,
		"title":      uc.Title,
		"department": uc.Department,
		"status":     uc.Status,
	})

	if s.cache != nil {
		s.cache.Set(ctx, uc)
	}

	return uc, nil
}

// Get returns a single use case, consulting the cache first when one is
// wired.
func (s *UseCaseService) Get(ctx context.Context, id string) (*domain.UseCase, error) {
	if s.cache != nil {
		if uc, ok := s.cache.Get(ctx, id); ok {
			return uc, nil
		}
	}

	uc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, s.internal("get use case", err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, uc)
	}

	return uc, nil
}

// List returns every use case, newest first.
func (s *UseCaseService) List(ctx context.Context) ([]domain.UseCase, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, s.internal("list use cases", err)
	}
	return items, nil
}

// Update applies a partial update. An empty payload is rejected before the
// validator; a missing record surfaces as not-found without any mutation.
// The published event carries the raw requested fields, not the merged
// record.
func (s *UseCaseService) Update(ctx context.Context, id string, req domain.UpdateUseCaseRequest) (*domain.UseCase, error) {
	if req.Empty() {
		return nil, domain.ErrEmptyUpdate
	}

	if err := validation.ValidateUpdate(req); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, s.internal("update use case", err)
	}

	uc, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, s.internal("update use case", err)
	}

	s.bus.Publish(ctx, domain.EventUseCaseUpdated, map[string]any{
		"id":      uc.ID,
		"title":   uc.Title,
		"changes": req,
	})

	return uc, nil
}

// Delete removes a use case, announcing the removal after it is committed.
func (s *UseCaseService) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return s.internal("delete use case", err)
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return s.internal("delete use case", err)
	}
	if !deleted {
		return domain.ErrNotFound
	}

	s.bus.Publish(ctx, domain.EventUseCaseDeleted, map[string]any{
		"id":    id,
		"title": existing.Title,
	})

	return nil
}

// internal logs the underlying cause and returns the generic internal
// failure; storage details never leak to the caller.
func (s *UseCaseService) internal(op string, err error) error {
	log.Printf("[usecases] operation=%s err=%v", op, err)
	return domain.ErrInternal
}
