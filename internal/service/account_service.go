package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"estate-service/internal/model"
)

// UserStore is the slice of the user repository the account service needs.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdateProfile(ctx context.Context, u *model.User) error
	UpdatePassword(ctx context.Context, id, hashed string) error
}

// AccountService handles registration, login and profile maintenance.
type AccountService struct {
	users    UserStore
	secret   []byte
	tokenTTL time.Duration
}

func NewAccountService(users UserStore, secret string) *AccountService {
	return &AccountService{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: 24 * time.Hour,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
	Phone    string
}

// Register creates a new account. Only client and owner roles are
// self-assignable; admins are provisioned out of band.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if in.Role != model.RoleClient && in.Role != model.RoleOwner {
		return nil, ErrRoleNotAllowed
	}

	taken, err := s.users.UsernameExists(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("AccountService.Register: %w", err)
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &model.User{
		ID:        uuid.NewString(),
		Username:  in.Username,
		Email:     in.Email,
		Password:  string(hash),
		Role:      in.Role,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("AccountService.Register: %w", err)
	}
	return u, nil
}

// Login verifies the password and issues an HS512 session token carrying the
// user id and role.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":  u.ID,
		"role": u.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, u, nil
}

func (s *AccountService) Get(ctx context.Context, userID string) (*model.User, error) {
	return s.users.GetByID(ctx, userID)
}

type ProfileInput struct {
	Email   string
	Phone   string
	Address string
}

func (s *AccountService) UpdateProfile(ctx context.Context, userID string, in ProfileInput) (*model.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.Email = in.Email
	u.Phone = in.Phone
	u.Address = in.Address
	if err := s.users.UpdateProfile(ctx, u); err != nil {
		return nil, fmt.Errorf("AccountService.UpdateProfile: %w", err)
	}
	return u, nil
}

// ChangePassword re-checks the old password before rehashing the new one.
func (s *AccountService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, userID, string(hash))
}
