package handler

import (
	"errors"
	"net/http"

	"github.com/tranquility404/study-planner/internal/middleware"
	"github.com/tranquility404/study-planner/internal/model"
	"github.com/tranquility404/study-planner/internal/service"
)

// ChatHandler handles the study-buddy endpoint.
type ChatHandler struct {
	service *service.ChatService
}

func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// HandleStudyBuddy handles POST /study-buddy-chatbot/ requests. The reply
// is the model's text, JSON-encoded as a bare string.
func (h *ChatHandler) HandleStudyBuddy(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	var req model.ChatRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	reply, err := h.service.StudyBuddy(r.Context(), userID, req.MongodbID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMessageRequired):
			writeFailure(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrDocumentNotFound):
			writeJSON(w, http.StatusOK, model.StatusResponse{Status: 1, Message: err.Error()})
		default:
			writeFailure(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, reply)
}
