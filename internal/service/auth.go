package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/tranquility404/study-planner/internal/crypto"
	"github.com/tranquility404/study-planner/internal/model"
	"github.com/tranquility404/study-planner/internal/repository"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")

	// Messages below are part of the client contract.
	ErrUsernameTaken      = errors.New("Username already exists")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrInvalidCredentials = errors.New("Invalid credentials")
)

// AuthService handles signup, login and identity lookups.
type AuthService struct {
	users     repository.UserStore
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAuthService(users repository.UserStore, secret string, expiry time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Signup creates a user with a fresh opaque identifier and returns a signed
// bearer token for it. Username and email must be unique (exact match).
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (string, error) {
	if req.Username == "" {
		return "", ErrUsernameRequired
	}
	if req.Email == "" {
		return "", ErrEmailRequired
	}
	if req.Password == "" {
		return "", ErrPasswordRequired
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return "", err
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}

	if err := s.users.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			return "", ErrUsernameTaken
		case errors.Is(err, repository.ErrDuplicateEmail):
			return "", ErrEmailTaken
		}
		return "", err
	}

	return crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
}

// Login authenticates a user by username or email plus password and returns
// a signed bearer token. Lookup failure and password mismatch both surface
// as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (string, error) {
	if req.Identifier == "" || req.Password == "" {
		return "", ErrInvalidCredentials
	}

	user, err := s.users.GetByIdentifier(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	match, err := crypto.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !match {
		return "", ErrInvalidCredentials
	}

	return crypto.GenerateToken(user.ID, s.jwtSecret, s.jwtExpiry)
}

// GetUser retrieves a user by their opaque identifier.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return s.users.GetByID(ctx, userID)
}
