// repository/color/repo.go
package color

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"

	"glamrent/util/jsonfile"
)

var (
	ErrNotFound = errors.New("color not found")
	ErrExists   = errors.New("color already exists")
)

// Repo holds the curated color list used as a search facet. Membership is
// case-insensitive; the stored casing is whatever the admin first entered.
type Repo interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) error
	Remove(ctx context.Context, name string) error
}

type repo struct {
	mu     sync.Mutex
	path   string
	colors []string
}

func New(dir string) (Repo, error) {
	path := filepath.Join(dir, "colors.json")
	colors, err := jsonfile.Load(path, []string{"Champagne", "Black", "Floral", "Burgundy"})
	if err != nil {
		return nil, err
	}
	return &repo{path: path, colors: colors}, nil
}

func (r *repo) List(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.colors))
	copy(out, r.colors)
	return out, nil
}

func (r *repo) Add(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.colors {
		if strings.EqualFold(c, name) {
			return ErrExists
		}
	}
	r.colors = append(r.colors, name)
	if err := jsonfile.Save(r.path, r.colors); err != nil {
		r.colors = r.colors[:len(r.colors)-1]
		return err
	}
	return nil
}

func (r *repo) Remove(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.colors {
		if strings.EqualFold(c, name) {
			rest := append(r.colors[:i:i], r.colors[i+1:]...)
			if err := jsonfile.Save(r.path, rest); err != nil {
				return err
			}
			r.colors = rest
			return nil
		}
	}
	return ErrNotFound
}
