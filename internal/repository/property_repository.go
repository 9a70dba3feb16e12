package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"estate-service/internal/model"
)

// PropertyFilter holds the optional catalog browse predicates. Nil fields
// are not applied; only approved, available entries are ever candidates.
type PropertyFilter struct {
	PropertyType string
	City         string
	MinPrice     *float64
	MaxPrice     *float64
}

type PropertyRepository struct {
	DB *sqlx.DB
}

func NewPropertyRepository(db *sqlx.DB) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

// buildBrowseQuery assembles the WHERE clause shared by GetFiltered and
// CountFiltered. City matches case-insensitively as a substring, prices are
// inclusive bounds.
func buildBrowseQuery(selectClause string, f PropertyFilter) (string, []interface{}) {
	query := selectClause + ` FROM properties WHERE is_approved = TRUE AND status = 'available'`
	args := []interface{}{}
	idx := 1

	if f.PropertyType != "" {
		query += fmt.Sprintf(" AND property_type = $%d", idx)
		args = append(args, f.PropertyType)
		idx++
	}
	if f.City != "" {
		query += fmt.Sprintf(" AND city ILIKE $%d", idx)
		args = append(args, "%"+f.City+"%")
		idx++
	}
	if f.MinPrice != nil {
		query += fmt.Sprintf(" AND price >= $%d", idx)
		args = append(args, *f.MinPrice)
		idx++
	}
	if f.MaxPrice != nil {
		query += fmt.Sprintf(" AND price <= $%d", idx)
		args = append(args, *f.MaxPrice)
		idx++
	}
	return query, args
}

// GetFiltered returns one page of approved, available catalog entries
// matching the filter, newest first.
func (r *PropertyRepository) GetFiltered(ctx context.Context, f PropertyFilter, limit, offset int) ([]model.Property, error) {
	query, args := buildBrowseQuery("SELECT *", f)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var list []model.Property
	err := r.DB.SelectContext(ctx, &list, query, args...)
	return list, err
}

// CountFiltered returns the total number of entries the filter matches,
// for pagination metadata.
func (r *PropertyRepository) CountFiltered(ctx context.Context, f PropertyFilter) (int64, error) {
	query, args := buildBrowseQuery("SELECT COUNT(1)", f)
	var total int64
	err := r.DB.GetContext(ctx, &total, query, args...)
	return total, err
}

// GetFeatured returns the newest approved, available entries for the home page.
func (r *PropertyRepository) GetFeatured(ctx context.Context, limit int) ([]model.Property, error) {
	var list []model.Property
	err := r.DB.SelectContext(ctx, &list, `
		SELECT * FROM properties
		WHERE is_approved = TRUE AND status = 'available'
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	return list, err
}

// GetApprovedByID returns the entry only if it is approved; drafts and
// unapproved rows are invisible to the public detail view.
func (r *PropertyRepository) GetApprovedByID(ctx context.Context, id string) (*model.Property, error) {
	var p model.Property
	err := r.DB.GetContext(ctx, &p, `
		SELECT * FROM properties WHERE id = $1 AND is_approved = TRUE
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByOwner lists an owner's own catalog entries regardless of status.
func (r *PropertyRepository) GetByOwner(ctx context.Context, ownerID string) ([]model.Property, error) {
	var list []model.Property
	err := r.DB.SelectContext(ctx, &list, `
		SELECT * FROM properties WHERE owner_id = $1 ORDER BY created_at DESC
	`, ownerID)
	return list, err
}

func (r *PropertyRepository) CountApproved(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.GetContext(ctx, &total, `SELECT COUNT(1) FROM properties WHERE is_approved = TRUE`)
	return total, err
}
