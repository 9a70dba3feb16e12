package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"estate-service/internal/model"
	"estate-service/internal/repository"
)

type fakeUserStore struct {
	byUsername map[string]*model.User
	byID       map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byUsername: map[string]*model.User{}, byID: map[string]*model.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	f.byUsername[u.Username] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) UsernameExists(_ context.Context, username string) (bool, error) {
	_, ok := f.byUsername[username]
	return ok, nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, u *model.User) error { return nil }

func (f *fakeUserStore) UpdatePassword(_ context.Context, id, hashed string) error {
	f.byID[id].Password = hashed
	return nil
}

func TestRegisterAndLogin(t *testing.T) {
	svc := NewAccountService(newFakeUserStore(), "testsecret")

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "owner1", Email: "o@example.com", Password: "password123", Role: model.RoleOwner,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Password == "password123" {
		t.Fatal("password stored in plaintext")
	}

	token, logged, err := svc.Login(context.Background(), "owner1", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != u.ID {
		t.Errorf("logged user mismatch")
	}

	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (interface{}, error) {
		return []byte("testsecret"), nil
	}, jwt.WithValidMethods([]string{"HS512"}))
	if err != nil || !parsed.Valid {
		t.Fatalf("token not a valid HS512 JWT: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["sub"] != u.ID || claims["role"] != model.RoleOwner {
		t.Errorf("unexpected claims: %v", claims)
	}
}

func TestRegisterGuards(t *testing.T) {
	svc := NewAccountService(newFakeUserStore(), "testsecret")

	if _, err := svc.Register(context.Background(), RegisterInput{Username: "x", Email: "x@e.com", Password: "password123", Role: model.RoleAdmin}); !errors.Is(err, ErrRoleNotAllowed) {
		t.Errorf("admin self-registration: got %v", err)
	}

	if _, err := svc.Register(context.Background(), RegisterInput{Username: "dup", Email: "a@e.com", Password: "password123", Role: model.RoleClient}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), RegisterInput{Username: "dup", Email: "b@e.com", Password: "password123", Role: model.RoleClient}); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("duplicate username: got %v", err)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc := NewAccountService(newFakeUserStore(), "testsecret")
	if _, err := svc.Register(context.Background(), RegisterInput{Username: "u", Email: "u@e.com", Password: "password123", Role: model.RoleClient}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "u", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user: got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewAccountService(store, "testsecret")
	u, err := svc.Register(context.Background(), RegisterInput{Username: "u", Email: "u@e.com", Password: "password123", Role: model.RoleClient})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ChangePassword(context.Background(), u.ID, "wrong", "newpassword1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong old password: got %v", err)
	}
	if err := svc.ChangePassword(context.Background(), u.ID, "password123", "newpassword1"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "u", "newpassword1"); err != nil {
		t.Errorf("login with new password: %v", err)
	}
}
