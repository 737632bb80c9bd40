// repository/rental/repo.go
package rental

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"glamrent/model"
	"glamrent/util/jsonfile"
)

var ErrNotFound = errors.New("rental not found")

// Repo is the rental ledger. Rentals are only ever appended or have their
// status flipped; nothing is physically deleted.
type Repo interface {
	List(ctx context.Context) ([]model.Rental, error)
	Get(ctx context.Context, id string) (*model.Rental, error)
	// ActiveForItem returns the active rentals referencing itemID, in
	// ledger order.
	ActiveForItem(ctx context.Context, itemID int64) ([]model.Rental, error)
	Append(ctx context.Context, r model.Rental) error
	SetStatus(ctx context.Context, id string, status model.RentalStatus) error
}

type repo struct {
	mu      sync.Mutex
	path    string
	rentals []model.Rental
}

func New(dir string) (Repo, error) {
	path := filepath.Join(dir, "rentals.json")
	rentals, err := jsonfile.Load(path, []model.Rental{})
	if err != nil {
		return nil, err
	}
	return &repo{path: path, rentals: rentals}, nil
}

func (r *repo) List(ctx context.Context) ([]model.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Rental, len(r.rentals))
	copy(out, r.rentals)
	return out, nil
}

func (r *repo) Get(ctx context.Context, id string) (*model.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rentals {
		if r.rentals[i].ID == id {
			rec := r.rentals[i]
			return &rec, nil
		}
	}
	return nil, ErrNotFound
}

func (r *repo) ActiveForItem(ctx context.Context, itemID int64) ([]model.Rental, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.Rental
	for _, rec := range r.rentals {
		if rec.ItemID == itemID && rec.Status == model.RentalActive {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *repo) Append(ctx context.Context, rec model.Rental) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rentals = append(r.rentals, rec)
	if err := jsonfile.Save(r.path, r.rentals); err != nil {
		r.rentals = r.rentals[:len(r.rentals)-1]
		return err
	}
	return nil
}

func (r *repo) SetStatus(ctx context.Context, id string, status model.RentalStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rentals {
		if r.rentals[i].ID == id {
			prev := r.rentals[i].Status
			r.rentals[i].Status = status
			if err := jsonfile.Save(r.path, r.rentals); err != nil {
				r.rentals[i].Status = prev
				return err
			}
			return nil
		}
	}
	return ErrNotFound
}
