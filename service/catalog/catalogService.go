package catalog

import (
	"context"
	"errors"
	"math"
	"strings"

	"glamrent/model"
	catalogrepo "glamrent/repository/catalog"
	colorrepo "glamrent/repository/color"
)

type ErrCode string

const (
	ErrNotFound      ErrCode = "ITEM_NOT_FOUND"
	ErrActiveRentals ErrCode = "HAS_ACTIVE_RENTALS"
	ErrValidation    ErrCode = "VALIDATION"
	ErrColorExists   ErrCode = "COLOR_EXISTS"
	ErrColorNotFound ErrCode = "COLOR_NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Ledger is the slice of the reservation side the catalog needs: whether an
// item still has active bookings. Destructive edits are refused while it
// does, so a held booking can never be re-priced or re-described under the
// customer.
type Ledger interface {
	ActiveForItem(ctx context.Context, itemID int64) ([]model.Rental, error)
}

type Service interface {
	List(ctx context.Context) ([]model.Item, error)
	Get(ctx context.Context, id int64) (*model.Item, error)
	Add(ctx context.Context, it model.Item) (*model.Item, error)
	Update(ctx context.Context, id int64, patch model.ItemPatch) (*model.Item, error)
	Delete(ctx context.Context, id int64) (*model.Item, error)

	Colors(ctx context.Context) ([]string, error)
	AddColor(ctx context.Context, name string) (string, error)
	RemoveColor(ctx context.Context, name string) (string, error)
}

type service struct {
	items  catalogrepo.Repo
	colors colorrepo.Repo
	ledger Ledger
}

func New(items catalogrepo.Repo, colors colorrepo.Repo, ledger Ledger) Service {
	return &service{items: items, colors: colors, ledger: ledger}
}

func (s *service) List(ctx context.Context) ([]model.Item, error) {
	return s.items.List(ctx)
}

func (s *service) Get(ctx context.Context, id int64) (*model.Item, error) {
	it, err := s.items.Get(ctx, id)
	if errors.Is(err, catalogrepo.ErrNotFound) {
		return nil, makeErr(ErrNotFound)
	}
	return it, err
}

func (s *service) Add(ctx context.Context, it model.Item) (*model.Item, error) {
	if err := validateItem(it); err != nil {
		return nil, err
	}
	return s.items.Insert(ctx, it)
}

func (s *service) Update(ctx context.Context, id int64, patch model.ItemPatch) (*model.Item, error) {
	cur, err := s.items.Get(ctx, id)
	if err != nil {
		if errors.Is(err, catalogrepo.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}

	if err := s.guardNoActiveRentals(ctx, id); err != nil {
		return nil, err
	}

	next := *cur
	patch.Apply(&next)
	if err := validateItem(next); err != nil {
		return nil, err
	}
	return s.items.Replace(ctx, next)
}

func (s *service) Delete(ctx context.Context, id int64) (*model.Item, error) {
	if _, err := s.items.Get(ctx, id); err != nil {
		if errors.Is(err, catalogrepo.ErrNotFound) {
			return nil, makeErr(ErrNotFound)
		}
		return nil, err
	}
	if err := s.guardNoActiveRentals(ctx, id); err != nil {
		return nil, err
	}
	return s.items.Remove(ctx, id)
}

func (s *service) guardNoActiveRentals(ctx context.Context, id int64) error {
	active, err := s.ledger.ActiveForItem(ctx, id)
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return makeErr(ErrActiveRentals)
	}
	return nil
}

func validateItem(it model.Item) error {
	if strings.TrimSpace(it.Name) == "" {
		return makeErr(ErrValidation)
	}
	if _, ok := model.NormalizeCategory(it.Category); !ok {
		return makeErr(ErrValidation)
	}
	if it.PricePerDay < 0 || math.IsNaN(it.PricePerDay) || math.IsInf(it.PricePerDay, 0) {
		return makeErr(ErrValidation)
	}
	return nil
}

// colors

func (s *service) Colors(ctx context.Context) ([]string, error) {
	return s.colors.List(ctx)
}

func (s *service) AddColor(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", makeErr(ErrValidation)
	}
	if err := s.colors.Add(ctx, name); err != nil {
		if errors.Is(err, colorrepo.ErrExists) {
			return "", makeErr(ErrColorExists)
		}
		return "", err
	}
	return name, nil
}

func (s *service) RemoveColor(ctx context.Context, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", makeErr(ErrValidation)
	}
	if err := s.colors.Remove(ctx, name); err != nil {
		if errors.Is(err, colorrepo.ErrNotFound) {
			return "", makeErr(ErrColorNotFound)
		}
		return "", err
	}
	return name, nil
}
