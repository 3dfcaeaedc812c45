package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tranquility404/study-planner/internal/crypto"
	"github.com/tranquility404/study-planner/internal/model"
	"github.com/tranquility404/study-planner/internal/repository"
)

const testSecret = "test-secret"

func newTestAuthService() *AuthService {
	return NewAuthService(repository.NewMemoryUserStore(), testSecret, 30*time.Minute)
}

func TestSignupReturnsResolvableToken(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	token, err := svc.Signup(ctx, model.SignupRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	claims, err := crypto.ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}

	user, err := svc.GetUser(ctx, claims.UserID)
	if err != nil {
		t.Fatalf("GetUser() unexpected error: %v", err)
	}
	if user.Username != "alice" || user.Email != "alice@example.com" {
		t.Errorf("token subject resolved to %+v", user)
	}
	if user.PasswordHash == "password123" || user.PasswordHash == "" {
		t.Error("password stored without hashing")
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, model.SignupRequest{Username: "alice", Email: "a@example.com", Password: "pw"}); err != nil {
		t.Fatalf("first Signup() unexpected error: %v", err)
	}

	_, err := svc.Signup(ctx, model.SignupRequest{Username: "alice", Email: "b@example.com", Password: "pw"})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("Signup() error = %v, want ErrUsernameTaken", err)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, model.SignupRequest{Username: "alice", Email: "a@example.com", Password: "pw"}); err != nil {
		t.Fatalf("first Signup() unexpected error: %v", err)
	}

	_, err := svc.Signup(ctx, model.SignupRequest{Username: "bob", Email: "a@example.com", Password: "pw"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Signup() error = %v, want ErrEmailTaken", err)
	}
}

func TestSignupMissingFields(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, model.SignupRequest{Email: "a@example.com", Password: "pw"}); !errors.Is(err, ErrUsernameRequired) {
		t.Errorf("Signup() error = %v, want ErrUsernameRequired", err)
	}
	if _, err := svc.Signup(ctx, model.SignupRequest{Username: "alice", Password: "pw"}); !errors.Is(err, ErrEmailRequired) {
		t.Errorf("Signup() error = %v, want ErrEmailRequired", err)
	}
	if _, err := svc.Signup(ctx, model.SignupRequest{Username: "alice", Email: "a@example.com"}); !errors.Is(err, ErrPasswordRequired) {
		t.Errorf("Signup() error = %v, want ErrPasswordRequired", err)
	}
}

func TestLoginByUsernameAndEmail(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, model.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "pw123"}); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	if _, err := svc.Login(ctx, model.LoginRequest{Identifier: "alice", Password: "pw123"}); err != nil {
		t.Errorf("Login(username) unexpected error: %v", err)
	}
	if _, err := svc.Login(ctx, model.LoginRequest{Identifier: "alice@example.com", Password: "pw123"}); err != nil {
		t.Errorf("Login(email) unexpected error: %v", err)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := newTestAuthService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, model.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "pw123"}); err != nil {
		t.Fatalf("Signup() unexpected error: %v", err)
	}

	// Wrong password and unknown user report the same error.
	if _, err := svc.Login(ctx, model.LoginRequest{Identifier: "alice", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(wrong password) error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, model.LoginRequest{Identifier: "nobody", Password: "pw123"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(unknown user) error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, model.LoginRequest{}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(empty) error = %v, want ErrInvalidCredentials", err)
	}
}
