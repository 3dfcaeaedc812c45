package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/tranquility404/study-planner/internal/model"
)

// MySQLUserStore is the UserStore backed by the users table.
type MySQLUserStore struct {
	db *sql.DB
}

func NewMySQLUserStore(db *sql.DB) *MySQLUserStore {
	return &MySQLUserStore{db: db}
}

// Create inserts a new user record. Username and email carry unique
// constraints; a violation is translated into the matching sentinel.
func (r *MySQLUserStore) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (id, username, email, password_hash) VALUES (?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.Email, user.PasswordHash)
	if err != nil {
		switch duplicateKey(err) {
		case "username":
			return ErrDuplicateUsername
		case "email":
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

// GetByIdentifier retrieves a user whose username or email equals the
// supplied identifier.
func (r *MySQLUserStore) GetByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	query := `SELECT id, username, email, password_hash, created_at
		FROM users WHERE username = ? OR email = ? LIMIT 1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, identifier, identifier))
}

// GetByID retrieves a user by their opaque identifier.
func (r *MySQLUserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT id, username, email, password_hash, created_at
		FROM users WHERE id = ?`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *MySQLUserStore) scanOne(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// duplicateKey inspects a MySQL error 1062 message
// ("Duplicate entry 'x' for key 'users.username'") and reports which
// unique key was violated, or "" when the error is something else.
func duplicateKey(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if !strings.Contains(msg, "Duplicate entry") {
		return ""
	}
	switch {
	case strings.Contains(msg, "username"):
		return "username"
	case strings.Contains(msg, "email"):
		return "email"
	}
	return ""
}
