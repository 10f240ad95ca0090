package postgres

import (
	"context"
	"database/sql"

	"vetstock/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO animals (name, species, breed, tutor_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`,
		a.Name,
		a.Species,
		toNullString(a.Breed),
		a.TutorID,
	).Scan(&a.ID)
	if err != nil {
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id int64) (animals.Animal, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, species, breed, tutor_id
		FROM animals
		WHERE id = $1
	`, id)

	var (
		a     animals.Animal
		breed sql.NullString
	)
	if err := row.Scan(&a.ID, &a.Name, &a.Species, &breed, &a.TutorID); err != nil {
		return animals.Animal{}, notFoundIfNoRows(err, animals.ErrNotFound)
	}
	a.Breed = fromNullString(breed)
	return a, nil
}

func (r *AnimalsRepo) ListByTutor(ctx context.Context, tutorID int64) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, species, breed, tutor_id
		FROM animals
		WHERE tutor_id = $1
		ORDER BY id ASC
	`, tutorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		var (
			a     animals.Animal
			breed sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Name, &a.Species, &breed, &a.TutorID); err != nil {
			return nil, err
		}
		a.Breed = fromNullString(breed)
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET name = $2, species = $3, breed = $4
		WHERE id = $1
	`,
		a.ID,
		a.Name,
		a.Species,
		toNullString(a.Breed),
	)
	if err != nil {
		return err
	}
	return checkAffected(res, animals.ErrNotFound)
}

func (r *AnimalsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, animals.ErrNotFound)
}
