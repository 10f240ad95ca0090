package products

import "context"

type Repository interface {
	// Create asigna el ID y devuelve el producto persistido.
	Create(ctx context.Context, p Product) (Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	ListByUser(ctx context.Context, userID int64) ([]Product, error)
	Update(ctx context.Context, p Product) error
	Delete(ctx context.Context, id int64) error
}
