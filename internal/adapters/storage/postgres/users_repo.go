package postgres

import (
	"context"
	"database/sql"

	"vetstock/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `
	id, name, email, password_hash, role, active,
	trial_start_date, stripe_customer_id, stripe_subscription_id`

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (
			name, email, password_hash, role, active,
			trial_start_date, stripe_customer_id, stripe_subscription_id
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id
	`,
		u.Name,
		u.Email,
		u.PasswordHash,
		string(u.Role),
		u.Active,
		u.TrialStartDate,
		toNullString(u.StripeCustomerID),
		toNullString(u.StripeSubscriptionID),
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return users.User{}, users.ErrEmailTaken
		}
		return users.User{}, err
	}
	return u, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE LOWER(email) = LOWER($1)`, email)
	return scanUser(row)
}

func (r *UsersRepo) GetBySubscriptionID(ctx context.Context, subscriptionID string) (users.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE stripe_subscription_id = $1 LIMIT 1`, subscriptionID)
	return scanUser(row)
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			name = $2,
			email = $3,
			password_hash = $4,
			role = $5,
			active = $6,
			stripe_customer_id = $7,
			stripe_subscription_id = $8
		WHERE id = $1
	`,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
		string(u.Role),
		u.Active,
		toNullString(u.StripeCustomerID),
		toNullString(u.StripeSubscriptionID),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrEmailTaken
		}
		return err
	}
	return checkAffected(res, users.ErrNotFound)
}

func scanUser(row *sql.Row) (users.User, error) {
	var (
		u        users.User
		role     string
		customer sql.NullString
		sub      sql.NullString
	)
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.Active,
		&u.TrialStartDate,
		&customer,
		&sub,
	); err != nil {
		return users.User{}, notFoundIfNoRows(err, users.ErrNotFound)
	}
	u.Role = users.Role(role)
	u.StripeCustomerID = fromNullString(customer)
	u.StripeSubscriptionID = fromNullString(sub)
	return u, nil
}
