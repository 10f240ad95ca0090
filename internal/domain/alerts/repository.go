package alerts

import "context"

type Repository interface {
	// Create asigna el ID y devuelve la alerta persistida.
	Create(ctx context.Context, a Alert) (Alert, error)
	GetByID(ctx context.Context, id int64) (Alert, error)
	// ListByUser devuelve las más nuevas primero (createdAt desc, id desc).
	ListByUser(ctx context.Context, userID int64) ([]Alert, error)
	// Resolve marca resolved=true. Idempotente.
	Resolve(ctx context.Context, id int64) error
}
