package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/tranquility404/study-planner/internal/model"
)

// In-memory store implementations. They back the service tests and let the
// server run without external stores during local development.

// MemoryUserStore is a UserStore held in process memory.
type MemoryUserStore struct {
	mu    sync.Mutex
	users []model.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{}
}

func (s *MemoryUserStore) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return ErrDuplicateUsername
		}
		if u.Email == user.Email {
			return ErrDuplicateEmail
		}
	}

	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryUserStore) GetByIdentifier(_ context.Context, identifier string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == identifier || u.Email == identifier {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryUserStore) GetByID(_ context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// MemoryScheduleStore is a ScheduleStore held in process memory. Documents
// are deep-copied through JSON on the way in and out, which both prevents
// aliasing and mirrors the type normalization the Mongo store performs.
type MemoryScheduleStore struct {
	mu   sync.Mutex
	docs map[string]*model.ScheduleDocument
	seq  int
}

func NewMemoryScheduleStore() *MemoryScheduleStore {
	return &MemoryScheduleStore{docs: make(map[string]*model.ScheduleDocument)}
}

func (s *MemoryScheduleStore) Insert(_ context.Context, doc *model.ScheduleDocument) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	id := fmt.Sprintf("%024x", s.seq)

	stored, err := copyDocument(doc)
	if err != nil {
		return "", err
	}
	stored.ID = id
	s.docs[id] = stored

	return id, nil
}

func (s *MemoryScheduleStore) Get(_ context.Context, id string) (*model.ScheduleDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(id) != 24 {
		return nil, ErrInvalidDocumentID
	}
	doc, ok := s.docs[id]
	if !ok {
		return nil, ErrDocumentNotFound
	}

	return copyDocument(doc)
}

func (s *MemoryScheduleStore) Replace(_ context.Context, id string, doc *model.ScheduleDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return ErrDocumentNotFound
	}

	stored, err := copyDocument(doc)
	if err != nil {
		return err
	}
	stored.ID = id
	s.docs[id] = stored

	return nil
}

func (s *MemoryScheduleStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.docs[id]; !ok {
		return ErrDocumentNotFound
	}
	delete(s.docs, id)

	return nil
}

func copyDocument(doc *model.ScheduleDocument) (*model.ScheduleDocument, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out := &model.ScheduleDocument{}
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	out.ID = doc.ID
	return out, nil
}

// MemoryIndexStore is an IndexStore held in process memory.
type MemoryIndexStore struct {
	mu      sync.Mutex
	entries []indexEntry
}

type indexEntry struct {
	documentID string
	userID     string
}

func NewMemoryIndexStore() *MemoryIndexStore {
	return &MemoryIndexStore{}
}

func (s *MemoryIndexStore) Append(_ context.Context, documentID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, indexEntry{documentID: documentID, userID: userID})
	return nil
}

func (s *MemoryIndexStore) ListByUser(_ context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []string
	for _, e := range s.entries {
		if e.userID == userID {
			ids = append(ids, e.documentID)
		}
	}
	return ids, nil
}

func (s *MemoryIndexStore) Remove(_ context.Context, documentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.documentID == documentID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return nil
}
