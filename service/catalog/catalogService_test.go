// service/catalog/catalog_service_test.go
package catalog_test

import (
	"context"
	"math"
	"testing"

	"glamrent/model"
	catalogrepo "glamrent/repository/catalog"
	colorrepo "glamrent/repository/color"
	catalogsvc "glamrent/service/catalog"

	"github.com/stretchr/testify/require"
)

type ledgerMock struct {
	activeFn func(ctx context.Context, itemID int64) ([]model.Rental, error)
}

func (m *ledgerMock) ActiveForItem(ctx context.Context, itemID int64) ([]model.Rental, error) {
	if m.activeFn == nil {
		return nil, nil
	}
	return m.activeFn(ctx, itemID)
}

func newService(t *testing.T, ledger catalogsvc.Ledger) catalogsvc.Service {
	t.Helper()
	dir := t.TempDir()
	cr, err := catalogrepo.New(dir)
	require.NoError(t, err)
	clr, err := colorrepo.New(dir)
	require.NoError(t, err)
	if ledger == nil {
		ledger = &ledgerMock{}
	}
	return catalogsvc.New(cr, clr, ledger)
}

func oneActiveRental(itemID int64) catalogsvc.Ledger {
	return &ledgerMock{activeFn: func(ctx context.Context, id int64) ([]model.Rental, error) {
		if id == itemID {
			return []model.Rental{{ID: "r1", ItemID: id, Start: "2025-01-10", End: "2025-01-12", Status: model.RentalActive}}, nil
		}
		return nil, nil
	}}
}

func TestAddThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newService(t, nil)

	in := model.Item{
		Name:        "Quilted Tote",
		Category:    "bag",
		PricePerDay: 22,
		Sizes:       []string{"Medium"},
		Color:       "black",
		Description: "Roomy quilted tote.",
		Images:      []string{"/images/bags/quilted-tote.jpg"},
		Alt:         "Quilted tote bag",
	}
	added, err := s.Add(ctx, in)
	require.NoError(t, err)
	require.NotZero(t, added.ID)

	got, err := s.Get(ctx, added.ID)
	require.NoError(t, err)
	want := in
	want.ID = added.ID
	require.Equal(t, want, *got)
}

func TestAdd_Validation(t *testing.T) {
	ctx := context.Background()
	s := newService(t, nil)

	cases := []model.Item{
		{Name: "", Category: "dress", PricePerDay: 10},
		{Name: "   ", Category: "dress", PricePerDay: 10},
		{Name: "Thing", Category: "hat", PricePerDay: 10},
		{Name: "Thing", Category: "dress", PricePerDay: -1},
		{Name: "Thing", Category: "dress", PricePerDay: math.NaN()},
		{Name: "Thing", Category: "dress", PricePerDay: math.Inf(1)},
	}
	for _, in := range cases {
		_, err := s.Add(ctx, in)
		require.Equal(t, catalogsvc.ErrValidation, catalogsvc.Code(err), "item %+v", in)
	}
}

func TestUpdate_MergePatch(t *testing.T) {
	ctx := context.Background()
	s := newService(t, nil)

	price := 129.0
	style := "gala"
	got, err := s.Update(ctx, 2, model.ItemPatch{PricePerDay: &price, Style: &style})
	require.NoError(t, err)
	require.Equal(t, 129.0, got.PricePerDay)
	require.Equal(t, "gala", got.Style)
	// untouched fields survive
	require.Equal(t, "Black Tie Dress", got.Name)
	require.Equal(t, "black", got.Color)
}

func TestUpdate_NotFound(t *testing.T) {
	s := newService(t, nil)
	name := "x"
	_, err := s.Update(context.Background(), 999, model.ItemPatch{Name: &name})
	require.Equal(t, catalogsvc.ErrNotFound, catalogsvc.Code(err))
}

func TestUpdate_BlockedByActiveRental(t *testing.T) {
	ctx := context.Background()
	s := newService(t, oneActiveRental(1))

	price := 5.0
	_, err := s.Update(ctx, 1, model.ItemPatch{PricePerDay: &price})
	require.Equal(t, catalogsvc.ErrActiveRentals, catalogsvc.Code(err))

	// item unchanged
	got, err := s.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 79.0, got.PricePerDay)

	// other items remain editable
	_, err = s.Update(ctx, 2, model.ItemPatch{PricePerDay: &price})
	require.NoError(t, err)
}

func TestDelete_BlockedByActiveRental(t *testing.T) {
	ctx := context.Background()
	s := newService(t, oneActiveRental(1))

	_, err := s.Delete(ctx, 1)
	require.Equal(t, catalogsvc.ErrActiveRentals, catalogsvc.Code(err))

	got, err := s.Get(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ID)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newService(t, nil)

	removed, err := s.Delete(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, "Floral Midi Dress", removed.Name)

	_, err = s.Get(ctx, 3)
	require.Equal(t, catalogsvc.ErrNotFound, catalogsvc.Code(err))

	_, err = s.Delete(ctx, 3)
	require.Equal(t, catalogsvc.ErrNotFound, catalogsvc.Code(err))
}

func TestColors(t *testing.T) {
	ctx := context.Background()
	s := newService(t, nil)

	colors, err := s.Colors(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Champagne", "Black", "Floral", "Burgundy"}, colors)

	name, err := s.AddColor(ctx, "  Emerald ")
	require.NoError(t, err)
	require.Equal(t, "Emerald", name)

	// duplicates are rejected case-insensitively
	_, err = s.AddColor(ctx, "emerald")
	require.Equal(t, catalogsvc.ErrColorExists, catalogsvc.Code(err))

	_, err = s.AddColor(ctx, "   ")
	require.Equal(t, catalogsvc.ErrValidation, catalogsvc.Code(err))

	_, err = s.RemoveColor(ctx, "EMERALD")
	require.NoError(t, err)
	_, err = s.RemoveColor(ctx, "Emerald")
	require.Equal(t, catalogsvc.ErrColorNotFound, catalogsvc.Code(err))
}
