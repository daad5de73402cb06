package services

import (
	"context"
	"fmt"

	"github.com/alazar/finance-backend/internal/apperrors"
	"github.com/alazar/finance-backend/internal/core/ports"
	"github.com/alazar/finance-backend/internal/models"
	"github.com/alazar/finance-backend/internal/utils"
)

// Entity is any record living in a document collection.
type Entity[T any] interface {
	EntityID() string
	WithID(id string) T
}

// Patch is a field-level partial update for an entity.
type Patch[T any] interface {
	Apply(T) T
}

// CollectionService implements the uniform CRUD contract over one entity
// collection inside the document. Every operation is a full
// load → mutate → save cycle; there is no finer-grained persistence.
type CollectionService[T Entity[T], P Patch[T]] struct {
	repo    ports.DocumentRepository
	slice   func(*models.Document) *[]T
	prepare func(T) T // optional, runs on create before persisting
}

// NewCollectionService builds a CRUD service for the collection selected
// by slice. prepare may be nil; incomes pass their derivation hook here.
func NewCollectionService[T Entity[T], P Patch[T]](
	repo ports.DocumentRepository,
	slice func(*models.Document) *[]T,
	prepare func(T) T,
) *CollectionService[T, P] {
	return &CollectionService[T, P]{repo: repo, slice: slice, prepare: prepare}
}

// List returns the collection, empty when absent.
func (s *CollectionService[T, P]) List(ctx context.Context) ([]T, error) {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	items := *s.slice(&doc)
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Create assigns a fresh id, appends the entity and persists the document.
// The stored entity is returned.
func (s *CollectionService[T, P]) Create(ctx context.Context, entity T) (T, error) {
	var zero T
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return zero, fmt.Errorf("failed to load document: %w", err)
	}

	entity = entity.WithID(utils.GenerateID())
	if s.prepare != nil {
		entity = s.prepare(entity)
	}

	items := s.slice(&doc)
	*items = append(*items, entity)
	if err := s.repo.Save(ctx, doc); err != nil {
		return zero, fmt.Errorf("failed to save document: %w", err)
	}
	return entity, nil
}

// Update locates the entity by id, merges the supplied fields over it and
// persists. A missing id yields apperrors.ErrNotFound.
func (s *CollectionService[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return zero, fmt.Errorf("failed to load document: %w", err)
	}

	items := s.slice(&doc)
	for idx, item := range *items {
		if item.EntityID() != id {
			continue
		}
		merged := patch.Apply(item)
		(*items)[idx] = merged
		if err := s.repo.Save(ctx, doc); err != nil {
			return zero, fmt.Errorf("failed to save document: %w", err)
		}
		return merged, nil
	}
	return zero, apperrors.ErrNotFound
}

// Remove filters the entity out by id and persists. Removing a
// non-existent id is a no-op success.
func (s *CollectionService[T, P]) Remove(ctx context.Context, id string) error {
	doc, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	items := s.slice(&doc)
	kept := (*items)[:0:0]
	for _, item := range *items {
		if item.EntityID() != id {
			kept = append(kept, item)
		}
	}
	if kept == nil {
		kept = []T{}
	}
	*items = kept
	if err := s.repo.Save(ctx, doc); err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}
