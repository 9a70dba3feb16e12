package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"estate-service/internal/model"
)

// ImageRepository manages the image rows of both entity kinds. The blobs
// themselves live in GridFS (PhotoRepository); these rows carry the
// reference and the main flag.
type ImageRepository struct {
	DB *sqlx.DB
}

func NewImageRepository(db *sqlx.DB) *ImageRepository {
	return &ImageRepository{DB: db}
}

func (r *ImageRepository) AddRequestImage(ctx context.Context, img *model.PropertyRequestImage) error {
	_, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO property_request_images (id, request_id, file_id, is_main, created_at)
        VALUES (:id, :request_id, :file_id, :is_main, :created_at)
    `, img)
	return err
}

func (r *ImageRepository) ListRequestImages(ctx context.Context, requestID string) ([]model.PropertyRequestImage, error) {
	var list []model.PropertyRequestImage
	err := r.DB.SelectContext(ctx, &list, `
		SELECT * FROM property_request_images WHERE request_id = $1 ORDER BY created_at
	`, requestID)
	return list, err
}

func (r *ImageRepository) GetRequestImage(ctx context.Context, requestID, imageID string) (*model.PropertyRequestImage, error) {
	var img model.PropertyRequestImage
	err := r.DB.GetContext(ctx, &img, `
		SELECT * FROM property_request_images WHERE id = $1 AND request_id = $2
	`, imageID, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepository) ListPropertyImages(ctx context.Context, propertyID string) ([]model.PropertyImage, error) {
	var list []model.PropertyImage
	err := r.DB.SelectContext(ctx, &list, `
		SELECT * FROM property_images WHERE property_id = $1 ORDER BY created_at
	`, propertyID)
	return list, err
}

func (r *ImageRepository) GetPropertyImage(ctx context.Context, propertyID, imageID string) (*model.PropertyImage, error) {
	var img model.PropertyImage
	err := r.DB.GetContext(ctx, &img, `
		SELECT * FROM property_images WHERE id = $1 AND property_id = $2
	`, imageID, propertyID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}
