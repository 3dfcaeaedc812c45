package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/tranquility404/study-planner/internal/model"
)

func TestMemoryUserStoreDuplicates(t *testing.T) {
	s := NewMemoryUserStore()
	ctx := context.Background()

	first := &model.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
	if err := s.Create(ctx, first); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	err := s.Create(ctx, &model.User{ID: "u2", Username: "alice", Email: "other@example.com"})
	if !errors.Is(err, ErrDuplicateUsername) {
		t.Errorf("Create() error = %v, want ErrDuplicateUsername", err)
	}

	err = s.Create(ctx, &model.User{ID: "u3", Username: "bob", Email: "alice@example.com"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Create() error = %v, want ErrDuplicateEmail", err)
	}
}

func TestMemoryUserStoreGetByIdentifier(t *testing.T) {
	s := NewMemoryUserStore()
	ctx := context.Background()

	if err := s.Create(ctx, &model.User{ID: "u1", Username: "alice", Email: "alice@example.com"}); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	byName, err := s.GetByIdentifier(ctx, "alice")
	if err != nil || byName.ID != "u1" {
		t.Errorf("GetByIdentifier(username) = %v, %v", byName, err)
	}

	byEmail, err := s.GetByIdentifier(ctx, "alice@example.com")
	if err != nil || byEmail.ID != "u1" {
		t.Errorf("GetByIdentifier(email) = %v, %v", byEmail, err)
	}

	// Matching is case-sensitive.
	if _, err := s.GetByIdentifier(ctx, "Alice"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("GetByIdentifier(mixed case) error = %v, want ErrUserNotFound", err)
	}
}

func TestMemoryScheduleStoreRoundTrip(t *testing.T) {
	s := NewMemoryScheduleStore()
	ctx := context.Background()

	id, err := s.Insert(ctx, &model.ScheduleDocument{
		UserID:   "u1",
		Username: "alice",
		Schedule: map[string]any{"time table": []any{map[string]any{"day": "Monday"}}},
	})
	if err != nil {
		t.Fatalf("Insert() unexpected error: %v", err)
	}
	if len(id) != 24 {
		t.Fatalf("Insert() id = %q, want 24 hex characters", id)
	}

	doc, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if doc.ID != id || doc.UserID != "u1" || doc.Username != "alice" {
		t.Errorf("Get() = %+v", doc)
	}

	// Mutating a fetched document must not affect the stored copy.
	doc.Schedule["time table"] = []any{}
	again, err := s.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if tt, ok := again.Schedule["time table"].([]any); !ok || len(tt) != 1 {
		t.Error("stored document was mutated through a fetched copy")
	}

	if err := s.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if _, err := s.Get(ctx, id); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrDocumentNotFound", err)
	}
	if err := s.Delete(ctx, id); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("Delete() twice error = %v, want ErrDocumentNotFound", err)
	}
}

func TestMemoryScheduleStoreUnknownID(t *testing.T) {
	s := NewMemoryScheduleStore()

	if _, err := s.Get(context.Background(), "000000000000000000000099"); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("Get() error = %v, want ErrDocumentNotFound", err)
	}
	if _, err := s.Get(context.Background(), "short"); !errors.Is(err, ErrInvalidDocumentID) {
		t.Errorf("Get() error = %v, want ErrInvalidDocumentID", err)
	}
}

func TestMemoryIndexStore(t *testing.T) {
	s := NewMemoryIndexStore()
	ctx := context.Background()

	for _, e := range []struct{ doc, user string }{
		{"d1", "u1"}, {"d2", "u2"}, {"d3", "u1"},
	} {
		if err := s.Append(ctx, e.doc, e.user); err != nil {
			t.Fatalf("Append() unexpected error: %v", err)
		}
	}

	ids, err := s.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser() unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "d1" || ids[1] != "d3" {
		t.Errorf("ListByUser() = %v, want [d1 d3]", ids)
	}

	if err := s.Remove(ctx, "d1"); err != nil {
		t.Fatalf("Remove() unexpected error: %v", err)
	}
	ids, _ = s.ListByUser(ctx, "u1")
	if len(ids) != 1 || ids[0] != "d3" {
		t.Errorf("ListByUser() after remove = %v, want [d3]", ids)
	}

	// Removing an absent entry is not an error.
	if err := s.Remove(ctx, "d1"); err != nil {
		t.Errorf("Remove() absent entry error = %v", err)
	}
}
