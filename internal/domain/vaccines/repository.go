package vaccines

import "context"

type Repository interface {
	// Create asigna el ID y devuelve la vacuna persistida.
	Create(ctx context.Context, v Vaccine) (Vaccine, error)
	GetByID(ctx context.Context, id int64) (Vaccine, error)
	ListByAnimal(ctx context.Context, animalID int64) ([]Vaccine, error)
	ListByAnimals(ctx context.Context, animalIDs []int64) ([]Vaccine, error)
	Update(ctx context.Context, v Vaccine) error
	Delete(ctx context.Context, id int64) error
}
