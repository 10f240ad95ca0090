package animals

import "context"

type Repository interface {
	// Create asigna el ID y devuelve el animal persistido.
	Create(ctx context.Context, a Animal) (Animal, error)
	GetByID(ctx context.Context, id int64) (Animal, error)
	ListByTutor(ctx context.Context, tutorID int64) ([]Animal, error)
	Update(ctx context.Context, a Animal) error
	Delete(ctx context.Context, id int64) error
}
