package rental

import (
	"context"
	"errors"
	"testing"
	"time"

	"glamrent/model"

	"github.com/stretchr/testify/require"
)

func rec(id string, itemID int64, status model.RentalStatus) model.Rental {
	return model.Rental{
		ID:        id,
		ItemID:    itemID,
		Start:     "2025-01-10",
		End:       "2025-01-12",
		CreatedAt: time.Now().UTC(),
		Status:    status,
	}
}

func TestAppendAndActiveForItem(t *testing.T) {
	ctx := context.Background()
	r, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, r.Append(ctx, rec("a", 1, model.RentalActive)))
	require.NoError(t, r.Append(ctx, rec("b", 1, model.RentalCanceled)))
	require.NoError(t, r.Append(ctx, rec("c", 2, model.RentalActive)))

	active, err := r.ActiveForItem(ctx, 1)
	require.NoError(t, err)
	require.Len(t, active, 1)
	require.Equal(t, "a", active[0].ID)

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestSetStatusPersists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	r, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, r.Append(ctx, rec("a", 1, model.RentalActive)))
	require.NoError(t, r.SetStatus(ctx, "a", model.RentalCanceled))

	// canceled survives a reload; the record is never deleted
	r2, err := New(dir)
	require.NoError(t, err)
	got, err := r2.Get(ctx, "a")
	require.NoError(t, err)
	require.Equal(t, model.RentalCanceled, got.Status)

	err = r2.SetStatus(ctx, "zzz", model.RentalCanceled)
	require.True(t, errors.Is(err, ErrNotFound))
}
