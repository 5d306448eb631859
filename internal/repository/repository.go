package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/invoice/internal/entity"
)

// Repository keeps drafts in process memory. Every write replaces the stored snapshot as a whole.
type Repository struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]entity.Draft
}

func New() *Repository {
	return &Repository{
		drafts: make(map[uuid.UUID]entity.Draft),
	}
}

func (r *Repository) CreateDraft(_ context.Context, draft entity.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drafts[draft.ID]; ok {
		return fmt.Errorf("%w: draft %s already exists", entity.ErrInvalidArgument, draft.ID)
	}

	r.drafts[draft.ID] = draft

	return nil
}

func (r *Repository) Draft(_ context.Context, id uuid.UUID) (entity.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, ok := r.drafts[id]
	if !ok {
		return entity.Draft{}, entity.ErrNotFound
	}

	return draft, nil
}

// UpdateDraft replaces the draft document with fn(current) while holding the write lock, so a
// concurrent update never works on a stale snapshot.
func (r *Repository) UpdateDraft(
	_ context.Context,
	id uuid.UUID,
	updatedAt time.Time,
	fn func(entity.Document) entity.Document,
) (entity.Draft, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	draft, ok := r.drafts[id]
	if !ok {
		return entity.Draft{}, entity.ErrNotFound
	}

	draft.Document = fn(draft.Document)
	draft.UpdatedAt = updatedAt
	r.drafts[id] = draft

	return draft, nil
}

func (r *Repository) DeleteDraft(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.drafts[id]; !ok {
		return entity.ErrNotFound
	}

	delete(r.drafts, id)

	return nil
}

// DeleteDraftsUpdatedBefore removes drafts idle since before t and returns how many were removed.
func (r *Repository) DeleteDraftsUpdatedBefore(_ context.Context, t time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int

	for id, draft := range r.drafts {
		if draft.UpdatedAt.Before(t) {
			delete(r.drafts, id)
			n++
		}
	}

	return n, nil
}
