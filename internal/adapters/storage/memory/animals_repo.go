package memory

import (
	"context"
	"sort"
	"sync"

	"vetstock/internal/domain/animals"
)

type animalRepo struct {
	mu     sync.RWMutex
	byID   map[int64]animals.Animal
	nextID int64
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[int64]animals.Animal),
	}
}

func (r *animalRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a, nil
}

func (r *animalRepo) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) ListByTutor(ctx context.Context, tutorID int64) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if a.TutorID == tutorID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *animalRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return animals.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *animalRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return animals.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
