package rental

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"glamrent/model"
	catalogrepo "glamrent/repository/catalog"
	rentalrepo "glamrent/repository/rental"

	"github.com/google/uuid"
)

// errors used by controllers

type ErrCode string

const (
	ErrItemNotFound   ErrCode = "ITEM_NOT_FOUND"
	ErrRentalNotFound ErrCode = "RENTAL_NOT_FOUND"
	ErrUnavailable    ErrCode = "UNAVAILABLE"
	ErrInvalidRange   ErrCode = "INVALID_RANGE"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Overlaps reports whether the inclusive ranges [aStart, aEnd] and
// [bStart, bEnd] share at least one calendar day. YYYY-MM-DD strings sort
// exactly like the dates they spell, so string comparison is the whole
// algorithm.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return !(aEnd < bStart || bEnd < aStart)
}

// CreateReq carries a booking request into the engine. Customer fields are
// opaque here; the transport layer validates them.
type CreateReq struct {
	ItemID   int64
	Start    string
	End      string
	Customer model.Customer
}

type Service interface {
	// ActiveForItem lists the active rentals for an item; canceled
	// rentals never come back.
	ActiveForItem(ctx context.Context, itemID int64) ([]model.Rental, error)

	// IsAvailable reports whether no active rental on the item overlaps
	// [start, end].
	IsAvailable(ctx context.Context, itemID int64, start, end string) (bool, error)

	// Create books the item for the range after an availability check.
	Create(ctx context.Context, req CreateReq) (*model.Rental, error)

	// Cancel sets the rental canceled. Canceling an already canceled
	// rental succeeds and leaves it canceled.
	Cancel(ctx context.Context, id string) error

	// List returns every rental, both statuses, most recent first.
	List(ctx context.Context) ([]model.Rental, error)
}

type Catalog interface {
	Get(ctx context.Context, id int64) (*model.Item, error)
}

type service struct {
	// mu serializes the check-then-append sequence in Create so two
	// concurrent bookings for overlapping dates cannot both pass the
	// availability check. Cancel takes it too.
	mu sync.Mutex

	rentals rentalrepo.Repo
	catalog Catalog
}

func New(rentals rentalrepo.Repo, catalog Catalog) Service {
	return &service{rentals: rentals, catalog: catalog}
}

func (s *service) ActiveForItem(ctx context.Context, itemID int64) ([]model.Rental, error) {
	return s.rentals.ActiveForItem(ctx, itemID)
}

func (s *service) IsAvailable(ctx context.Context, itemID int64, start, end string) (bool, error) {
	active, err := s.rentals.ActiveForItem(ctx, itemID)
	if err != nil {
		return false, err
	}
	for _, r := range active {
		if Overlaps(start, end, r.Start, r.End) {
			return false, nil
		}
	}
	return true, nil
}

func (s *service) Create(ctx context.Context, req CreateReq) (*model.Rental, error) {
	if !model.ValidDate(req.Start) || !model.ValidDate(req.End) || req.End < req.Start {
		return nil, makeErr(ErrInvalidRange)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.catalog.Get(ctx, req.ItemID); err != nil {
		if errors.Is(err, catalogrepo.ErrNotFound) {
			return nil, makeErr(ErrItemNotFound)
		}
		return nil, err
	}

	ok, err := s.IsAvailable(ctx, req.ItemID, req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, makeErr(ErrUnavailable)
	}

	rec := model.Rental{
		ID:        uuid.NewString(),
		ItemID:    req.ItemID,
		Start:     req.Start,
		End:       req.End,
		Customer:  req.Customer,
		CreatedAt: time.Now().UTC(),
		Status:    model.RentalActive,
	}
	if err := s.rentals.Append(ctx, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *service) Cancel(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.rentals.SetStatus(ctx, id, model.RentalCanceled)
	if errors.Is(err, rentalrepo.ErrNotFound) {
		return makeErr(ErrRentalNotFound)
	}
	return err
}

func (s *service) List(ctx context.Context) ([]model.Rental, error) {
	all, err := s.rentals.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}
