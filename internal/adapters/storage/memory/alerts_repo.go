package memory

import (
	"context"
	"sort"
	"sync"

	"vetstock/internal/domain/alerts"
)

type alertRepo struct {
	mu     sync.RWMutex
	byID   map[int64]alerts.Alert
	nextID int64
}

func NewAlertRepo() alerts.Repository {
	return &alertRepo{
		byID: make(map[int64]alerts.Alert),
	}
}

func (r *alertRepo) Create(ctx context.Context, a alerts.Alert) (alerts.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	return a, nil
}

func (r *alertRepo) GetByID(ctx context.Context, id int64) (alerts.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return alerts.Alert{}, alerts.ErrNotFound
	}
	return a, nil
}

func (r *alertRepo) ListByUser(ctx context.Context, userID int64) ([]alerts.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]alerts.Alert, 0)
	for _, a := range r.byID {
		if a.UserID == userID {
			out = append(out, a)
		}
	}

	// Más nuevas primero; el id desempata alertas del mismo instante.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *alertRepo) Resolve(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return alerts.ErrNotFound
	}
	a.Resolved = true
	r.byID[id] = a
	return nil
}
