package repository

import (
	"context"
	"errors"

	"github.com/tranquility404/study-planner/internal/model"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")

	ErrDocumentNotFound  = errors.New("document not found")
	ErrInvalidDocumentID = errors.New("invalid document identifier")
)

// UserStore persists credential records.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	// GetByIdentifier looks a user up by username or email (exact match).
	GetByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// ScheduleStore persists schedule documents keyed by a store-assigned
// opaque identifier, returned from Insert as a hex string.
type ScheduleStore interface {
	Insert(ctx context.Context, doc *model.ScheduleDocument) (string, error)
	Get(ctx context.Context, id string) (*model.ScheduleDocument, error)
	Replace(ctx context.Context, id string, doc *model.ScheduleDocument) error
	Delete(ctx context.Context, id string) error
}

// IndexStore maps document identifiers to their owning user, so a user can
// enumerate their own schedules without scanning the document store.
type IndexStore interface {
	Append(ctx context.Context, documentID, userID string) error
	ListByUser(ctx context.Context, userID string) ([]string, error)
	Remove(ctx context.Context, documentID string) error
}
