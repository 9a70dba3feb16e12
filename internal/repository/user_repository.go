package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"estate-service/internal/model"
)

type UserRepository struct {
	DB *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	_, err := r.DB.NamedExecContext(ctx, `
        INSERT INTO users
            (id, username, email, password, role, phone, address, is_verified, created_at, updated_at)
        VALUES
            (:id, :username, :email, :password, :role, :phone, :address, :is_verified, :created_at, :updated_at)
    `, u)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT * FROM users WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.DB.GetContext(ctx, &u, `SELECT * FROM users WHERE username = $1`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int
	if err := r.DB.GetContext(ctx, &count, `SELECT COUNT(1) FROM users WHERE username = $1`, username); err != nil {
		return false, fmt.Errorf("UserRepository.UsernameExists: %w", err)
	}
	return count > 0, nil
}

// UpdateProfile persists the mutable profile fields only. Role, password and
// the verification flag have their own paths.
func (r *UserRepository) UpdateProfile(ctx context.Context, u *model.User) error {
	_, err := r.DB.NamedExecContext(ctx, `
        UPDATE users SET
            email      = :email,
            phone      = :phone,
            address    = :address,
            updated_at = now()
        WHERE id = :id
    `, u)
	return err
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, hashed string) error {
	_, err := r.DB.ExecContext(ctx, `
        UPDATE users SET password = $1, updated_at = now() WHERE id = $2
    `, hashed, id)
	return err
}
