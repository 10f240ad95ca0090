package memory

import (
	"context"
	"sort"
	"sync"

	"vetstock/internal/domain/products"
)

type productRepo struct {
	mu     sync.RWMutex
	byID   map[int64]products.Product
	nextID int64
}

func NewProductRepo() products.Repository {
	return &productRepo{
		byID: make(map[int64]products.Product),
	}
}

func (r *productRepo) Create(ctx context.Context, p products.Product) (products.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	return p, nil
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (products.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return products.Product{}, products.ErrNotFound
	}
	return p, nil
}

func (r *productRepo) ListByUser(ctx context.Context, userID int64) ([]products.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]products.Product, 0)
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *productRepo) Update(ctx context.Context, p products.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return products.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return products.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
