package postgres

import (
	"context"
	"database/sql"

	"vetstock/internal/domain/vaccines"
)

type VaccinesRepo struct {
	db *sql.DB
}

func NewVaccinesRepo(db *sql.DB) *VaccinesRepo {
	return &VaccinesRepo{db: db}
}

func (r *VaccinesRepo) Create(ctx context.Context, v vaccines.Vaccine) (vaccines.Vaccine, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO vaccines (name, application_date, expiration_date, animal_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`,
		v.Name,
		v.ApplicationDate,
		v.ExpirationDate,
		v.AnimalID,
	).Scan(&v.ID)
	if err != nil {
		return vaccines.Vaccine{}, err
	}
	return v, nil
}

func (r *VaccinesRepo) GetByID(ctx context.Context, id int64) (vaccines.Vaccine, error) {
	var v vaccines.Vaccine
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, application_date, expiration_date, animal_id
		FROM vaccines
		WHERE id = $1
	`, id).Scan(&v.ID, &v.Name, &v.ApplicationDate, &v.ExpirationDate, &v.AnimalID)
	if err != nil {
		return vaccines.Vaccine{}, notFoundIfNoRows(err, vaccines.ErrNotFound)
	}
	return v, nil
}

func (r *VaccinesRepo) ListByAnimal(ctx context.Context, animalID int64) ([]vaccines.Vaccine, error) {
	return r.ListByAnimals(ctx, []int64{animalID})
}

// ListByAnimals trae las vacunas de varios animales en una sola query.
func (r *VaccinesRepo) ListByAnimals(ctx context.Context, animalIDs []int64) ([]vaccines.Vaccine, error) {
	if len(animalIDs) == 0 {
		return []vaccines.Vaccine{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, application_date, expiration_date, animal_id
		FROM vaccines
		WHERE animal_id = ANY($1)
		ORDER BY id ASC
	`, animalIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vaccines.Vaccine, 0)
	for rows.Next() {
		var v vaccines.Vaccine
		if err := rows.Scan(&v.ID, &v.Name, &v.ApplicationDate, &v.ExpirationDate, &v.AnimalID); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *VaccinesRepo) Update(ctx context.Context, v vaccines.Vaccine) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE vaccines
		SET
			name = $2,
			application_date = $3,
			expiration_date = $4,
			animal_id = $5
		WHERE id = $1
	`,
		v.ID,
		v.Name,
		v.ApplicationDate,
		v.ExpirationDate,
		v.AnimalID,
	)
	if err != nil {
		return err
	}
	return checkAffected(res, vaccines.ErrNotFound)
}

func (r *VaccinesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vaccines WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, vaccines.ErrNotFound)
}
