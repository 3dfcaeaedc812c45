package service

import (
	"context"
	"errors"
)

var ErrMessageRequired = errors.New("message text is required")

// Assistant is the outbound chat-completion call the chat service depends on.
type Assistant interface {
	StudyBuddy(ctx context.Context, message string) (string, error)
}

// ChatService forwards single-turn study-buddy messages. The service keeps
// no conversation state; continuity is the caller's problem.
type ChatService struct {
	schedules *ScheduleService
	assistant Assistant
}

func NewChatService(schedules *ScheduleService, assistant Assistant) *ChatService {
	return &ChatService{
		schedules: schedules,
		assistant: assistant,
	}
}

// StudyBuddy verifies the caller owns the referenced schedule, forwards the
// message under the study-buddy persona and returns the model's reply
// verbatim.
func (s *ChatService) StudyBuddy(ctx context.Context, userID, scheduleID, message string) (string, error) {
	if message == "" {
		return "", ErrMessageRequired
	}

	if _, err := s.schedules.Fetch(ctx, userID, scheduleID); err != nil {
		return "", err
	}

	return s.assistant.StudyBuddy(ctx, message)
}
