package rental_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"glamrent/model"
	catalogrepo "glamrent/repository/catalog"
	rentalrepo "glamrent/repository/rental"
	rentalsvc "glamrent/service/rental"

	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) rentalsvc.Service {
	t.Helper()
	dir := t.TempDir()
	cr, err := catalogrepo.New(dir) // seeds items 1..4
	require.NoError(t, err)
	rr, err := rentalrepo.New(dir)
	require.NoError(t, err)
	return rentalsvc.New(rr, cr)
}

func book(t *testing.T, s rentalsvc.Service, itemID int64, start, end string) *model.Rental {
	t.Helper()
	r, err := s.Create(context.Background(), rentalsvc.CreateReq{
		ItemID: itemID,
		Start:  start,
		End:    end,
		Customer: model.Customer{
			Name:  "Ada Lovelace",
			Email: "ada@example.com",
			Phone: "555-0100",
		},
	})
	require.NoError(t, err)
	return r
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{"disjoint before", "2025-01-01", "2025-01-05", "2025-01-06", "2025-01-10", false},
		{"disjoint after", "2025-01-06", "2025-01-10", "2025-01-01", "2025-01-05", false},
		{"shared boundary day", "2025-01-01", "2025-01-05", "2025-01-05", "2025-01-10", true},
		{"one day inside", "2025-01-11", "2025-01-13", "2025-01-10", "2025-01-12", true},
		{"containment", "2025-01-01", "2025-01-31", "2025-01-10", "2025-01-12", true},
		{"identical", "2025-01-10", "2025-01-12", "2025-01-10", "2025-01-12", true},
		{"single days equal", "2025-01-10", "2025-01-10", "2025-01-10", "2025-01-10", true},
		{"adjacent", "2025-01-13", "2025-01-15", "2025-01-10", "2025-01-12", false},
	}
	for _, tc := range cases {
		if got := rentalsvc.Overlaps(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd); got != tc.want {
			t.Errorf("%s: Overlaps(%s,%s,%s,%s) = %v; want %v",
				tc.name, tc.aStart, tc.aEnd, tc.bStart, tc.bEnd, got, tc.want)
		}
	}
}

func TestIsAvailable_NoRentals(t *testing.T) {
	s := newService(t)
	ok, err := s.IsAvailable(context.Background(), 1, "2025-01-10", "2025-01-12")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCreateThenAvailability(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	book(t, s, 1, "2025-01-10", "2025-01-12")

	ok, err := s.IsAvailable(ctx, 1, "2025-01-11", "2025-01-13")
	require.NoError(t, err)
	require.False(t, ok, "overlapping by one day must be unavailable")

	ok, err = s.IsAvailable(ctx, 1, "2025-01-13", "2025-01-15")
	require.NoError(t, err)
	require.True(t, ok, "adjacent range must stay available")

	// the booked dates block a second booking
	_, err = s.Create(ctx, rentalsvc.CreateReq{ItemID: 1, Start: "2025-01-11", End: "2025-01-13"})
	require.Equal(t, rentalsvc.ErrUnavailable, rentalsvc.Code(err))

	// other items are unaffected
	ok, err = s.IsAvailable(ctx, 2, "2025-01-10", "2025-01-12")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCreateRecordShape(t *testing.T) {
	s := newService(t)
	r := book(t, s, 1, "2025-01-10", "2025-01-12")

	require.NotEmpty(t, r.ID)
	require.Equal(t, model.RentalActive, r.Status)
	require.Equal(t, int64(1), r.ItemID)
	require.Equal(t, "ada@example.com", r.Customer.Email)
	require.WithinDuration(t, time.Now().UTC(), r.CreatedAt, 5*time.Second)
}

func TestCancelRestoresAvailabilityAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	r := book(t, s, 1, "2025-01-10", "2025-01-12")

	require.NoError(t, s.Cancel(ctx, r.ID))
	ok, err := s.IsAvailable(ctx, 1, "2025-01-11", "2025-01-13")
	require.NoError(t, err)
	require.True(t, ok, "canceled rentals must not count toward availability")

	// second cancel succeeds and leaves the rental canceled
	require.NoError(t, s.Cancel(ctx, r.ID))
	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, model.RentalCanceled, all[0].Status)
}

func TestCancel_NotFound(t *testing.T) {
	s := newService(t)
	err := s.Cancel(context.Background(), "no-such-id")
	require.Equal(t, rentalsvc.ErrRentalNotFound, rentalsvc.Code(err))
}

func TestCreate_ItemNotFound(t *testing.T) {
	s := newService(t)
	_, err := s.Create(context.Background(), rentalsvc.CreateReq{ItemID: 999, Start: "2025-01-10", End: "2025-01-12"})
	require.Equal(t, rentalsvc.ErrItemNotFound, rentalsvc.Code(err))
}

func TestCreate_InvalidRange(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	for _, tc := range []struct{ start, end string }{
		{"2025-01-12", "2025-01-10"}, // reversed
		{"2025-1-10", "2025-01-12"},  // malformed
		{"", "2025-01-12"},
		{"2025-01-10", "someday"},
	} {
		_, err := s.Create(ctx, rentalsvc.CreateReq{ItemID: 1, Start: tc.start, End: tc.end})
		require.Equal(t, rentalsvc.ErrInvalidRange, rentalsvc.Code(err), "start=%q end=%q", tc.start, tc.end)
	}
}

func TestList_MostRecentFirst(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	first := book(t, s, 1, "2025-01-01", "2025-01-02")
	time.Sleep(2 * time.Millisecond)
	second := book(t, s, 2, "2025-01-01", "2025-01-02")
	time.Sleep(2 * time.Millisecond)
	third := book(t, s, 3, "2025-01-01", "2025-01-02")

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, third.ID, all[0].ID)
	require.Equal(t, second.ID, all[1].ID)
	require.Equal(t, first.ID, all[2].ID)
}

// Two concurrent bookings for the same dates must never both succeed; the
// service serializes the availability check and the ledger append.
func TestConcurrentBooking_SingleWinner(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Create(ctx, rentalsvc.CreateReq{
				ItemID: 1,
				Start:  "2025-03-10",
				End:    "2025-03-14",
			})
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case rentalsvc.Code(err) == rentalsvc.ErrUnavailable:
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, won)
	require.Equal(t, n-1, lost)

	active, err := s.ActiveForItem(ctx, 1)
	require.NoError(t, err)
	require.Len(t, active, 1)
}

// Active rentals on one item must stay pairwise non-overlapping no matter
// the booking order.
func TestActiveRentalsPairwiseDisjoint(t *testing.T) {
	ctx := context.Background()
	s := newService(t)

	ranges := [][2]string{
		{"2025-02-01", "2025-02-03"},
		{"2025-02-03", "2025-02-05"}, // overlaps the first on the boundary day
		{"2025-02-04", "2025-02-06"},
		{"2025-02-10", "2025-02-12"},
		{"2025-02-06", "2025-02-09"},
	}
	for _, rg := range ranges {
		_, _ = s.Create(ctx, rentalsvc.CreateReq{ItemID: 1, Start: rg[0], End: rg[1]})
	}

	active, err := s.ActiveForItem(ctx, 1)
	require.NoError(t, err)
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			a, b := active[i], active[j]
			require.False(t, rentalsvc.Overlaps(a.Start, a.End, b.Start, b.End),
				"active rentals overlap: [%s,%s] and [%s,%s]", a.Start, a.End, b.Start, b.End)
		}
	}
}
