package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/invoice/internal/entity"
	"github.com/samandr77/microservices/invoice/internal/repository"
)

func newDraft(t *testing.T, updatedAt time.Time) entity.Draft {
	t.Helper()

	return entity.Draft{
		ID:        uuid.Must(uuid.NewV4()),
		Document:  entity.NewDocument(updatedAt, entity.DefaultSeller()),
		CreatedAt: updatedAt,
		UpdatedAt: updatedAt,
	}
}

func TestRepository_CreateDraft(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.New()
	draft := newDraft(t, time.Now())

	err := repo.CreateDraft(ctx, draft)
	require.NoError(t, err)

	got, err := repo.Draft(ctx, draft.ID)
	require.NoError(t, err)
	require.Equal(t, draft, got)

	err = repo.CreateDraft(ctx, draft)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestRepository_Draft_NotFound(t *testing.T) {
	t.Parallel()

	_, err := repository.New().Draft(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_UpdateDraft(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.New()
	draft := newDraft(t, time.Now().Add(-time.Hour))

	require.NoError(t, repo.CreateDraft(ctx, draft))

	now := time.Now()

	got, err := repo.UpdateDraft(ctx, draft.ID, now, func(d entity.Document) entity.Document {
		return d.Apply(entity.SetField{Field: entity.FieldInvoiceNo, Value: "PI-1"})
	})
	require.NoError(t, err)
	require.Equal(t, "PI-1", got.Document.InvoiceNo)
	require.Equal(t, now, got.UpdatedAt)
	require.Equal(t, draft.CreatedAt, got.CreatedAt)

	stored, err := repo.Draft(ctx, draft.ID)
	require.NoError(t, err)
	require.Equal(t, got, stored)

	_, err = repo.UpdateDraft(ctx, uuid.Must(uuid.NewV4()), now, func(d entity.Document) entity.Document { return d })
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_UpdateDraft_Concurrent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.New()
	draft := newDraft(t, time.Now())
	itemID := draft.Document.Items[0].ID

	require.NoError(t, repo.CreateDraft(ctx, draft))

	const workers = 50

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := repo.UpdateDraft(ctx, draft.ID, time.Now(), func(d entity.Document) entity.Document {
				item, _ := d.Item(itemID)

				return d.Apply(entity.SetItemField{
					ID:     itemID,
					Field:  entity.ItemFieldAmount,
					Number: decimal.NewNullDecimal(item.Amount.Add(decimal.NewFromInt(1))),
				})
			})
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	got, err := repo.Draft(ctx, draft.ID)
	require.NoError(t, err)
	require.True(t, got.Document.Totals.Basic.Equal(decimal.NewFromInt(workers)))
}

func TestRepository_DeleteDraftsUpdatedBefore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.New()
	now := time.Now()

	fresh := newDraft(t, now)
	stale := newDraft(t, now.Add(-2*time.Hour))

	require.NoError(t, repo.CreateDraft(ctx, fresh))
	require.NoError(t, repo.CreateDraft(ctx, stale))

	n, err := repo.DeleteDraftsUpdatedBefore(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	_, err = repo.Draft(ctx, fresh.ID)
	require.NoError(t, err)

	_, err = repo.Draft(ctx, stale.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)

	require.NoError(t, repo.DeleteDraft(ctx, fresh.ID))
	require.ErrorIs(t, repo.DeleteDraft(ctx, fresh.ID), entity.ErrNotFound)
}
