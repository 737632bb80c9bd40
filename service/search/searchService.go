package search

import (
	"context"
	"strings"

	"glamrent/model"
)

// Filters narrows the catalog. Every field is optional; supplied filters
// combine with logical AND. Start/End only apply when both are present.
type Filters struct {
	Q        string
	Category string
	Size     string
	Color    string
	Style    string
	MinPrice *float64
	MaxPrice *float64
	Start    string
	End      string
}

type Catalog interface {
	List(ctx context.Context) ([]model.Item, error)
}

type Availability interface {
	IsAvailable(ctx context.Context, itemID int64, start, end string) (bool, error)
}

type Service interface {
	// Search returns the items passing every supplied filter, in catalog
	// order.
	Search(ctx context.Context, f Filters) ([]model.Item, error)
}

type service struct {
	catalog Catalog
	avail   Availability
}

func New(catalog Catalog, avail Availability) Service {
	return &service{catalog: catalog, avail: avail}
}

func (s *service) Search(ctx context.Context, f Filters) ([]model.Item, error) {
	items, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(f.Q))
	wantCat, hasCat := model.Category(""), false
	if f.Category != "" {
		wantCat, hasCat = model.NormalizeCategory(f.Category)
		if !hasCat {
			// unknown category matches nothing
			return []model.Item{}, nil
		}
	}
	checkDates := f.Start != "" && f.End != ""

	out := make([]model.Item, 0, len(items))
	for _, it := range items {
		if hasCat {
			got, _ := model.NormalizeCategory(it.Category)
			if got != wantCat {
				continue
			}
		}
		// size matching is case-sensitive on purpose; the other facets
		// are not
		if f.Size != "" && !contains(it.Sizes, f.Size) {
			continue
		}
		if f.Color != "" && !strings.EqualFold(it.Color, f.Color) {
			continue
		}
		if f.Style != "" && !strings.EqualFold(it.Style, f.Style) {
			continue
		}
		if f.MinPrice != nil && it.PricePerDay < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && it.PricePerDay > *f.MaxPrice {
			continue
		}
		if q != "" {
			hay := strings.ToLower(strings.Join([]string{it.Name, it.Color, it.Style, it.Category}, " "))
			if !strings.Contains(hay, q) {
				continue
			}
		}
		if checkDates {
			ok, err := s.avail.IsAvailable(ctx, it.ID, f.Start, f.End)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		out = append(out, it)
	}
	return out, nil
}

func contains(xs []string, want string) bool {
	for _, x := range xs {
		if x == want {
			return true
		}
	}
	return false
}
