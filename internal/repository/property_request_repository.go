package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"estate-service/internal/model"
)

type PropertyRequestRepository struct {
	DB *sqlx.DB
}

func NewPropertyRequestRepository(db *sqlx.DB) *PropertyRequestRepository {
	return &PropertyRequestRepository{DB: db}
}

func (r *PropertyRequestRepository) Create(ctx context.Context, req *model.PropertyRequest) error {
	_, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO property_requests
            (id, owner_id, title, description, property_type, address, city, area,
             bedrooms, bathrooms, price, status, admin_notes, created_at, updated_at)
        VALUES
            (:id, :owner_id, :title, :description, :property_type, :address, :city, :area,
             :bedrooms, :bathrooms, :price, :status, :admin_notes, :created_at, :updated_at)
    `, req)
	return err
}

func (r *PropertyRequestRepository) GetByID(ctx context.Context, id string) (*model.PropertyRequest, error) {
	var req model.PropertyRequest
	err := r.DB.GetContext(ctx, &req, `SELECT * FROM property_requests WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *PropertyRequestRepository) GetByOwner(ctx context.Context, ownerID string) ([]model.PropertyRequest, error) {
	var list []model.PropertyRequest
	err := r.DB.SelectContext(ctx, &list, `
		SELECT * FROM property_requests WHERE owner_id = $1 ORDER BY created_at DESC
	`, ownerID)
	return list, err
}

// GetAll lists the whole moderation queue, newest first.
func (r *PropertyRequestRepository) GetAll(ctx context.Context, limit, offset int) ([]model.PropertyRequest, error) {
	var list []model.PropertyRequest
	err := r.DB.SelectContext(ctx, &list, `
		SELECT * FROM property_requests ORDER BY created_at DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	return list, err
}

func (r *PropertyRequestRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var total int64
	err := r.DB.GetContext(ctx, &total, `SELECT COUNT(1) FROM property_requests WHERE status = $1`, status)
	return total, err
}

// Promote transitions a pending request to approved and creates the derived
// catalog entry plus image rows in one transaction. The status update is
// conditional on the row still being pending, so a second approval of the
// same request, concurrent or not, affects zero rows and creates nothing.
func (r *PropertyRequestRepository) Promote(ctx context.Context, id, notes string) (*model.Property, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("Promote: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE property_requests
		SET status = 'approved', admin_notes = $2, updated_at = now()
		WHERE id = $1 AND status = 'pending'
	`, id, notes)
	if err != nil {
		return nil, fmt.Errorf("Promote: transition: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		var count int
		if err := tx.GetContext(ctx, &count, `SELECT COUNT(1) FROM property_requests WHERE id = $1`, id); err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, ErrNotFound
		}
		return nil, ErrNotPending
	}

	var req model.PropertyRequest
	if err := tx.GetContext(ctx, &req, `SELECT * FROM property_requests WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("Promote: reload request: %w", err)
	}

	property := model.NewPropertyFromRequest(&req)
	if _, err := tx.NamedExecContext(ctx, `
        INSERT INTO properties
            (id, owner_id, title, description, property_type, address, city, area,
             bedrooms, bathrooms, price, status, is_approved, created_at, updated_at)
        VALUES
            (:id, :owner_id, :title, :description, :property_type, :address, :city, :area,
             :bedrooms, :bathrooms, :price, :status, :is_approved, :created_at, :updated_at)
    `, property); err != nil {
		return nil, fmt.Errorf("Promote: insert property: %w", err)
	}

	var images []model.PropertyRequestImage
	if err := tx.SelectContext(ctx, &images, `
		SELECT * FROM property_request_images WHERE request_id = $1
	`, id); err != nil {
		return nil, fmt.Errorf("Promote: load images: %w", err)
	}
	for i := range images {
		img := model.NewImageFromRequestImage(&images[i], property.ID)
		if _, err := tx.NamedExecContext(ctx, `
            INSERT INTO property_images (id, property_id, file_id, is_main, created_at)
            VALUES (:id, :property_id, :file_id, :is_main, :created_at)
        `, img); err != nil {
			return nil, fmt.Errorf("Promote: copy image: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("Promote: commit: %w", err)
	}
	return property, nil
}

// Reject transitions a pending request to rejected. No catalog entry is
// created and there is no path back.
func (r *PropertyRequestRepository) Reject(ctx context.Context, id, notes string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE property_requests
		SET status = 'rejected', admin_notes = $2, updated_at = now()
		WHERE id = $1 AND status = 'pending'
	`, id, notes)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var count int
		if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(1) FROM property_requests WHERE id = $1`, id); err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrNotPending
	}
	return nil
}
