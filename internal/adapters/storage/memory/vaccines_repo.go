package memory

import (
	"context"
	"sort"
	"sync"

	"vetstock/internal/domain/vaccines"
)

type vaccineRepo struct {
	mu     sync.RWMutex
	byID   map[int64]vaccines.Vaccine
	nextID int64
}

func NewVaccineRepo() vaccines.Repository {
	return &vaccineRepo{
		byID: make(map[int64]vaccines.Vaccine),
	}
}

func (r *vaccineRepo) Create(ctx context.Context, v vaccines.Vaccine) (vaccines.Vaccine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	v.ID = r.nextID
	r.byID[v.ID] = v
	return v, nil
}

func (r *vaccineRepo) GetByID(ctx context.Context, id int64) (vaccines.Vaccine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vaccines.Vaccine{}, vaccines.ErrNotFound
	}
	return v, nil
}

func (r *vaccineRepo) ListByAnimal(ctx context.Context, animalID int64) ([]vaccines.Vaccine, error) {
	return r.ListByAnimals(ctx, []int64{animalID})
}

func (r *vaccineRepo) ListByAnimals(ctx context.Context, animalIDs []int64) ([]vaccines.Vaccine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	want := make(map[int64]struct{}, len(animalIDs))
	for _, id := range animalIDs {
		want[id] = struct{}{}
	}

	out := make([]vaccines.Vaccine, 0)
	for _, v := range r.byID {
		if _, ok := want[v.AnimalID]; ok {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *vaccineRepo) Update(ctx context.Context, v vaccines.Vaccine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return vaccines.ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *vaccineRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return vaccines.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
