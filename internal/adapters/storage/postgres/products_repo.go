package postgres

import (
	"context"
	"database/sql"

	"vetstock/internal/domain/products"
)

type ProductsRepo struct {
	db *sql.DB
}

func NewProductsRepo(db *sql.DB) *ProductsRepo {
	return &ProductsRepo{db: db}
}

func (r *ProductsRepo) Create(ctx context.Context, p products.Product) (products.Product, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products (name, quantity, min_quantity, max_quantity, category, user_id)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		p.Name,
		p.Quantity,
		p.MinQuantity,
		toNullInt(p.MaxQuantity),
		toNullString(p.Category),
		p.UserID,
	).Scan(&p.ID)
	if err != nil {
		return products.Product{}, err
	}
	return p, nil
}

func (r *ProductsRepo) GetByID(ctx context.Context, id int64) (products.Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, quantity, min_quantity, max_quantity, category, user_id
		FROM products
		WHERE id = $1
	`, id)

	p, err := scanProduct(row)
	if err != nil {
		return products.Product{}, notFoundIfNoRows(err, products.ErrNotFound)
	}
	return p, nil
}

func (r *ProductsRepo) ListByUser(ctx context.Context, userID int64) ([]products.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, quantity, min_quantity, max_quantity, category, user_id
		FROM products
		WHERE user_id = $1
		ORDER BY id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]products.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductsRepo) Update(ctx context.Context, p products.Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET
			name = $2,
			quantity = $3,
			min_quantity = $4,
			max_quantity = $5,
			category = $6
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Quantity,
		p.MinQuantity,
		toNullInt(p.MaxQuantity),
		toNullString(p.Category),
	)
	if err != nil {
		return err
	}
	return checkAffected(res, products.ErrNotFound)
}

func (r *ProductsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, products.ErrNotFound)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(s rowScanner) (products.Product, error) {
	var (
		p        products.Product
		max      sql.NullInt64
		category sql.NullString
	)
	if err := s.Scan(&p.ID, &p.Name, &p.Quantity, &p.MinQuantity, &max, &category, &p.UserID); err != nil {
		return products.Product{}, err
	}
	p.MaxQuantity = fromNullInt(max)
	p.Category = fromNullString(category)
	return p, nil
}
