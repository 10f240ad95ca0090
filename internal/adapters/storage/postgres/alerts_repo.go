package postgres

import (
	"context"
	"database/sql"

	"vetstock/internal/domain/alerts"
)

type AlertsRepo struct {
	db *sql.DB
}

func NewAlertsRepo(db *sql.DB) *AlertsRepo {
	return &AlertsRepo{db: db}
}

func (r *AlertsRepo) Create(ctx context.Context, a alerts.Alert) (alerts.Alert, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO alerts (type, message, created_at, user_id, item_id, resolved)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id
	`,
		string(a.Type),
		a.Message,
		a.CreatedAt,
		a.UserID,
		toNullInt64(a.ItemID),
		a.Resolved,
	).Scan(&a.ID)
	if err != nil {
		return alerts.Alert{}, err
	}
	return a, nil
}

func (r *AlertsRepo) GetByID(ctx context.Context, id int64) (alerts.Alert, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, type, message, created_at, user_id, item_id, resolved
		FROM alerts
		WHERE id = $1
	`, id)

	a, err := scanAlert(row)
	if err != nil {
		return alerts.Alert{}, notFoundIfNoRows(err, alerts.ErrNotFound)
	}
	return a, nil
}

func (r *AlertsRepo) ListByUser(ctx context.Context, userID int64) ([]alerts.Alert, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, message, created_at, user_id, item_id, resolved
		FROM alerts
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]alerts.Alert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AlertsRepo) Resolve(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE alerts SET resolved = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res, alerts.ErrNotFound)
}

func scanAlert(s rowScanner) (alerts.Alert, error) {
	var (
		a    alerts.Alert
		typ  string
		item sql.NullInt64
	)
	if err := s.Scan(&a.ID, &typ, &a.Message, &a.CreatedAt, &a.UserID, &item, &a.Resolved); err != nil {
		return alerts.Alert{}, err
	}
	a.Type = alerts.Type(typ)
	a.ItemID = fromNullInt64(item)
	return a, nil
}
