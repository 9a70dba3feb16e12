package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"estate-service/internal/model"
)

type RentalRequestRepository struct {
	DB *sqlx.DB
}

func NewRentalRequestRepository(db *sqlx.DB) *RentalRequestRepository {
	return &RentalRequestRepository{DB: db}
}

func (r *RentalRequestRepository) Create(ctx context.Context, req *model.RentalRequest) error {
	_, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO rental_requests
            (id, client_id, property_id, message, preferred_start_date, duration_months,
             status, admin_notes, created_at, updated_at)
        VALUES
            (:id, :client_id, :property_id, :message, :preferred_start_date, :duration_months,
             :status, :admin_notes, :created_at, :updated_at)
    `, req)
	return err
}

func (r *RentalRequestRepository) GetByID(ctx context.Context, id string) (*model.RentalRequest, error) {
	var req model.RentalRequest
	err := r.DB.GetContext(ctx, &req, `SELECT * FROM rental_requests WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RentalRequestRepository) GetByClient(ctx context.Context, clientID string) ([]model.RentalRequest, error) {
	var list []model.RentalRequest
	err := r.DB.SelectContext(ctx, &list, `
		SELECT * FROM rental_requests WHERE client_id = $1 ORDER BY created_at DESC
	`, clientID)
	return list, err
}

func (r *RentalRequestRepository) GetAll(ctx context.Context, limit, offset int) ([]model.RentalRequest, error) {
	var list []model.RentalRequest
	err := r.DB.SelectContext(ctx, &list, `
		SELECT * FROM rental_requests ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	return list, err
}

func (r *RentalRequestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.DB.GetContext(ctx, &total, `SELECT COUNT(1) FROM rental_requests WHERE status = $1`, status)
	return total, err
}

// SetStatusIfPending applies a moderation decision. The update is conditional
// on the row still being pending; a decided request stays as it is.
func (r *RentalRequestRepository) SetStatusIfPending(ctx context.Context, id, status, notes string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE rental_requests
		SET status = $2, admin_notes = $3, updated_at = now()
		WHERE id = $1 AND status = 'pending'
	`, id, status, notes)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var count int
		if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(1) FROM rental_requests WHERE id = $1`, id); err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrNotPending
	}
	return nil
}
