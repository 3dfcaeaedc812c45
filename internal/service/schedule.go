package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/tranquility404/study-planner/internal/ai"
	"github.com/tranquility404/study-planner/internal/model"
	"github.com/tranquility404/study-planner/internal/repository"
)

var (
	ErrPlanningDataRequired = errors.New("planning parameters are required")
	ErrInvalidPlanningData  = errors.New("planning parameters must be a JSON string")
	ErrInvalidScorePayload  = errors.New("score payload must be a JSON string")

	// Messages below are part of the client contract.
	ErrInvalidModelOutput = errors.New("Invalid JSON returned from AI")
	ErrDocumentNotFound   = errors.New("Document not found or unauthorized access")
)

// TimeTableGenerator is the outbound chat-completion call the schedule
// service depends on.
type TimeTableGenerator interface {
	GenerateTimeTable(ctx context.Context, text string) (string, error)
}

// ScheduleService generates, stores and retrieves study schedules. Every
// operation is scoped to the verified caller; a document is only visible to
// the user that created it.
type ScheduleService struct {
	users repository.UserStore
	docs  repository.ScheduleStore
	index repository.IndexStore
	gen   TimeTableGenerator
}

func NewScheduleService(
	users repository.UserStore,
	docs repository.ScheduleStore,
	index repository.IndexStore,
	gen TimeTableGenerator,
) *ScheduleService {
	return &ScheduleService{
		users: users,
		docs:  docs,
		index: index,
		gen:   gen,
	}
}

// Generate forwards the planning parameters to the model, post-processes the
// response and persists the result. Returns the identifier the document
// store assigned. Nothing is stored when the model output does not parse.
func (s *ScheduleService) Generate(ctx context.Context, userID, text string) (string, error) {
	if text == "" {
		return "", ErrPlanningDataRequired
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	// The original payload is embedded in the stored document, so it must
	// be valid JSON before anything is sent to the model.
	var gathered any
	if err := json.Unmarshal([]byte(text), &gathered); err != nil {
		return "", ErrInvalidPlanningData
	}

	raw, err := s.gen.GenerateTimeTable(ctx, text)
	if err != nil {
		return "", err
	}

	parsed, err := ai.ExtractJSON(raw)
	if err != nil {
		return "", ErrInvalidModelOutput
	}
	timeTable, ok := parsed.([]any)
	if !ok {
		return "", ErrInvalidModelOutput
	}

	timeTable = append(timeTable, scoreDataPlaceholder())

	doc := &model.ScheduleDocument{
		UserID:   user.ID,
		Username: user.Username,
		Schedule: map[string]any{
			"time table":    timeTable,
			"gathered_data": gathered,
		},
	}

	id, err := s.docs.Insert(ctx, doc)
	if err != nil {
		return "", err
	}

	if err := s.index.Append(ctx, id, user.ID); err != nil {
		// The document exists but cannot be enumerated. Surface the error;
		// the identifier in the message keeps the document recoverable.
		return "", errors.Join(err, errors.New("schedule stored as "+id+" but index append failed"))
	}

	return id, nil
}

// Fetch returns the document with the given identifier if the caller owns
// it. Unknown identifiers, malformed identifiers and ownership mismatches
// are indistinguishable to the caller.
func (s *ScheduleService) Fetch(ctx context.Context, userID, id string) (*model.ScheduleDocument, error) {
	doc, err := s.docs.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) || errors.Is(err, repository.ErrInvalidDocumentID) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	if doc.UserID != userID {
		return nil, ErrDocumentNotFound
	}

	return doc, nil
}

// List returns every document the caller owns, in creation order. Index
// entries whose document has been deleted out of band are skipped.
func (s *ScheduleService) List(ctx context.Context, userID string) ([]*model.ScheduleDocument, error) {
	ids, err := s.index.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	docs := make([]*model.ScheduleDocument, 0, len(ids))
	for _, id := range ids {
		doc, err := s.docs.Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrDocumentNotFound) || errors.Is(err, repository.ErrInvalidDocumentID) {
				slog.Warn("skipping dangling index entry", "document_id", id)
				continue
			}
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// Delete removes the document with the given identifier if the caller owns
// it, along with its index entry.
func (s *ScheduleService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Fetch(ctx, userID, id); err != nil {
		return err
	}

	if err := s.docs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}

	if err := s.index.Remove(ctx, id); err != nil {
		slog.Warn("document deleted but index entry remains", "document_id", id, "error", err)
	}

	return nil
}

// UpdateScoreData replaces the score_data block embedded in the document's
// time table with the supplied payload, appending a fresh block when none
// exists, and persists the rewritten document.
func (s *ScheduleService) UpdateScoreData(ctx context.Context, userID, id, jsonData string) (*model.ScheduleDocument, error) {
	var payload any
	if err := json.Unmarshal([]byte(jsonData), &payload); err != nil {
		return nil, ErrInvalidScorePayload
	}

	doc, err := s.Fetch(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	timeTable, _ := doc.Schedule["time table"].([]any)

	replaced := false
	for i, item := range timeTable {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if _, exists := entry["score_data"]; exists {
			entry["score_data"] = []any{payload}
			timeTable[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		timeTable = append(timeTable, map[string]any{"score_data": []any{payload}})
	}
	doc.Schedule["time table"] = timeTable

	if err := s.docs.Replace(ctx, id, doc); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}

	return doc, nil
}

// scoreDataPlaceholder returns the zeroed score-tracking block appended to
// every freshly generated time table. The client rewrites it through
// UpdateScoreData as the user completes sessions.
func scoreDataPlaceholder() map[string]any {
	return map[string]any{
		"score_data": []any{
			map[string]any{
				"date":        "00:00:00",
				"todaysScore": 0,
				"studySessions": []any{
					map[string]any{
						"subject":         "A",
						"durationMinutes": 50,
						"points":          0,
						"status":          "pending",
					},
					map[string]any{
						"subject":         "B",
						"durationMinutes": 50,
						"points":          0,
						"status":          "pending",
					},
				},
				"challengeProgress": map[string]any{
					"completed":    0,
					"total":        2,
					"pointsEarned": 0,
					"pointsTotal":  100,
				},
				"studyNotes": "here is my data",
			},
		},
	}
}
