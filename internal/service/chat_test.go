package service

import (
	"context"
	"errors"
	"testing"
)

func newChatFixture(t *testing.T, reply string) (*ChatService, *scheduleFixture) {
	t.Helper()
	f := newScheduleFixture(t, "[]")
	assistant := &fakeModel{reply: reply}
	return NewChatService(f.svc, assistant), f
}

func TestStudyBuddyForwardsMessage(t *testing.T) {
	chat, f := newChatFixture(t, "Try spaced repetition for your physics revision.")
	ctx := context.Background()

	id, err := f.svc.Generate(ctx, "user-1", planningText)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	reply, err := chat.StudyBuddy(ctx, "user-1", id, "How should I revise physics?")
	if err != nil {
		t.Fatalf("StudyBuddy() unexpected error: %v", err)
	}
	if reply != "Try spaced repetition for your physics revision." {
		t.Errorf("StudyBuddy() = %q, want the model reply verbatim", reply)
	}
}

func TestStudyBuddyRequiresOwnedSchedule(t *testing.T) {
	chat, f := newChatFixture(t, "hello")
	ctx := context.Background()

	id, err := f.svc.Generate(ctx, "user-1", planningText)
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}

	if _, err := chat.StudyBuddy(ctx, "user-2", id, "hi"); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("StudyBuddy(other user) error = %v, want ErrDocumentNotFound", err)
	}
	if _, err := chat.StudyBuddy(ctx, "user-1", "unknown", "hi"); !errors.Is(err, ErrDocumentNotFound) {
		t.Errorf("StudyBuddy(unknown schedule) error = %v, want ErrDocumentNotFound", err)
	}
}

func TestStudyBuddyRequiresMessage(t *testing.T) {
	chat, _ := newChatFixture(t, "hello")

	if _, err := chat.StudyBuddy(context.Background(), "user-1", "whatever", ""); !errors.Is(err, ErrMessageRequired) {
		t.Errorf("StudyBuddy(empty message) error = %v, want ErrMessageRequired", err)
	}
}
