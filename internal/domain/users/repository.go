package users

import "context"

type Repository interface {
	// Create asigna el ID y devuelve el usuario persistido.
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	// GetByEmail compara sin distinguir mayúsculas.
	GetByEmail(ctx context.Context, email string) (User, error)
	GetBySubscriptionID(ctx context.Context, subscriptionID string) (User, error)
	Update(ctx context.Context, u User) error
}
