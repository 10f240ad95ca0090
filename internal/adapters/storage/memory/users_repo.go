package memory

import (
	"context"
	"strings"
	"sync"

	"vetstock/internal/domain/users"
)

type userRepo struct {
	mu     sync.RWMutex
	byID   map[int64]users.User
	nextID int64
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID: make(map[int64]users.User),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.byID {
		if strings.EqualFold(other.Email, u.Email) {
			return users.User{}, users.ErrEmailTaken
		}
	}

	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	return u, nil
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *userRepo) GetBySubscriptionID(ctx context.Context, subscriptionID string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.StripeSubscriptionID != nil && *u.StripeSubscriptionID == subscriptionID {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *userRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[u.ID]; !exists {
		return users.ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}
