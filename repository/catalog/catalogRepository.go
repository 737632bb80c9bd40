// repository/catalog/repo.go
package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"sync"

	"glamrent/model"
	"glamrent/util/jsonfile"
)

// ErrNotFound indicates the requested item does not exist. Check with errors.Is.
var ErrNotFound = errors.New("item not found")

type Repo interface {
	List(ctx context.Context) ([]model.Item, error)
	Get(ctx context.Context, id int64) (*model.Item, error)
	// Insert assigns the next id (max existing + 1, or 1 on an empty
	// catalog), appends and persists.
	Insert(ctx context.Context, it model.Item) (*model.Item, error)
	// Replace swaps the stored record with the same id.
	Replace(ctx context.Context, it model.Item) (*model.Item, error)
	Remove(ctx context.Context, id int64) (*model.Item, error)
}

type repo struct {
	mu    sync.Mutex
	path  string
	items []model.Item
}

// New loads items.json from dir, seeding the demo catalog on first run.
func New(dir string) (Repo, error) {
	path := filepath.Join(dir, "items.json")
	items, err := jsonfile.Load(path, seedItems())
	if err != nil {
		return nil, err
	}
	return &repo{path: path, items: items}, nil
}

func (r *repo) List(ctx context.Context) ([]model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *repo) Get(ctx context.Context, id int64) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			it := r.items[i]
			return &it, nil
		}
	}
	return nil, ErrNotFound
}

func (r *repo) Insert(ctx context.Context, it model.Item) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var next int64 = 1
	for i := range r.items {
		if r.items[i].ID >= next {
			next = r.items[i].ID + 1
		}
	}
	it.ID = next

	r.items = append(r.items, it)
	if err := jsonfile.Save(r.path, r.items); err != nil {
		// roll the in-memory append back so state does not diverge from disk
		r.items = r.items[:len(r.items)-1]
		return nil, err
	}
	return &it, nil
}

func (r *repo) Replace(ctx context.Context, it model.Item) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == it.ID {
			prev := r.items[i]
			r.items[i] = it
			if err := jsonfile.Save(r.path, r.items); err != nil {
				r.items[i] = prev
				return nil, err
			}
			return &it, nil
		}
	}
	return nil, ErrNotFound
}

func (r *repo) Remove(ctx context.Context, id int64) (*model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			removed := r.items[i]
			rest := append(r.items[:i:i], r.items[i+1:]...)
			if err := jsonfile.Save(r.path, rest); err != nil {
				return nil, err
			}
			r.items = rest
			return &removed, nil
		}
	}
	return nil, ErrNotFound
}

// seedItems is the demo catalog the storefront ships with.
func seedItems() []model.Item {
	return []model.Item{
		{
			ID:          1,
			Name:        "Silk Evening Gown",
			Category:    "dress",
			PricePerDay: 79,
			Sizes:       []string{"XS", "S", "M", "L"},
			Color:       "champagne",
			Style:       "evening",
			Description: "Luxurious silk gown with flattering silhouette.",
			Images:      []string{"/images/dresses/silk-evening-gown.jpg"},
			Alt:         "Model wearing a champagne silk evening gown",
		},
		{
			ID:          2,
			Name:        "Black Tie Dress",
			Category:    "dress",
			PricePerDay: 99,
			Sizes:       []string{"S", "M", "L", "XL"},
			Color:       "black",
			Style:       "black-tie",
			Description: "Elegant black-tie dress for formal events.",
			Images:      []string{"/images/dresses/black-tie-dress.jpg"},
			Alt:         "Elegant black tie dress",
		},
		{
			ID:          3,
			Name:        "Floral Midi Dress",
			Category:    "dress",
			PricePerDay: 49,
			Sizes:       []string{"XS", "S", "M"},
			Color:       "floral",
			Style:       "daytime",
			Description: "Bright floral midi for daytime events.",
			Images:      []string{"/images/dresses/floral-midi-dress.jpg"},
			Alt:         "Floral midi dress perfect for daytime events",
		},
		{
			ID:          4,
			Name:        "Velvet Cocktail Dress",
			Category:    "dress",
			PricePerDay: 59,
			Sizes:       []string{"S", "M", "L"},
			Color:       "burgundy",
			Style:       "cocktail",
			Description: "Rich velvet cocktail dress in deep tones.",
			Images:      []string{"/images/dresses/velvet-cocktail-dress.jpg"},
			Alt:         "Velvet cocktail dress in deep tones",
		},
	}
}
