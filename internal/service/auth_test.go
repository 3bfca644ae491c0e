package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"testing"
	"time"

	"github.com/forgo/clubsphere/pkg/jwt"
)

func setupAuthService(t *testing.T) (*AuthService, *mockUserRepo) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	userRepo := newMockUserRepo()
	svc := NewAuthService(userRepo, jwt.NewTestService(key, "clubsphere-test", time.Hour))
	return svc, userRepo
}

func TestAuthService_Register(t *testing.T) {
	svc, _ := setupAuthService(t)

	result, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "  Alice@Example.COM ",
		Password: "s3cure-pass",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if result.User.Email != "alice@example.com" {
		t.Errorf("email not normalized: %q", result.User.Email)
	}
	if result.Token == "" {
		t.Error("expected a signed token")
	}

	claims, err := svc.ValidateAccessToken(result.Token)
	if err != nil {
		t.Fatalf("token does not validate: %v", err)
	}
	if claims.UserID != result.User.ID || claims.Email != "alice@example.com" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{"empty name", RegisterRequest{Email: "a@b.com", Password: "s3cure-pass"}, ErrNameRequired},
		{"bad email", RegisterRequest{Name: "A", Email: "not-an-email", Password: "s3cure-pass"}, ErrInvalidEmail},
		{"empty password", RegisterRequest{Name: "A", Email: "a@b.com"}, ErrPasswordRequired},
		{"short password", RegisterRequest{Name: "A", Email: "a@b.com", Password: "short"}, ErrPasswordTooShort},
		{"bad account type", RegisterRequest{Name: "A", Email: "a@b.com", Password: "s3cure-pass", AccountType: "wizard"}, ErrInvalidAccountType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	req := RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "s3cure-pass"}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(ctx, req)
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, _ := setupAuthService(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "s3cure-pass"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(ctx, LoginRequest{Email: "Alice@Example.com", Password: "s3cure-pass"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if result.Token == "" {
		t.Error("expected a signed token")
	}

	// Wrong password and unknown email both yield the same error
	if _, err := svc.Login(ctx, LoginRequest{Email: "alice@example.com", Password: "wrong-pass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "s3cure-pass"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_GetUserByID(t *testing.T) {
	svc, userRepo := setupAuthService(t)
	ctx := context.Background()
	userRepo.addUser("user:alice", "Alice", "alice@example.com")

	user, err := svc.GetUserByID(ctx, "user:alice")
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if user.Name != "Alice" {
		t.Errorf("unexpected user: %+v", user)
	}

	if _, err := svc.GetUserByID(ctx, "user:ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
