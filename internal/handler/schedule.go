package handler

import (
	"errors"
	"net/http"

	"github.com/tranquility404/study-planner/internal/middleware"
	"github.com/tranquility404/study-planner/internal/model"
	"github.com/tranquility404/study-planner/internal/service"
)

// ScheduleHandler handles the time-table endpoints.
type ScheduleHandler struct {
	service *service.ScheduleService
}

func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// HandleGenerate handles POST /generate-time-table/ requests.
func (h *ScheduleHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	var req model.GenerateRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	id, err := h.service.Generate(r.Context(), userID, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidModelOutput):
			writeJSON(w, http.StatusOK, model.StatusResponse{Status: 1, Message: err.Error()})
		case errors.Is(err, service.ErrPlanningDataRequired), errors.Is(err, service.ErrInvalidPlanningData):
			writeFailure(w, http.StatusBadRequest, err.Error())
		default:
			writeFailure(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, model.GenerateResponse{
		Status:    0,
		Message:   "Schedule saved",
		MongodbID: id,
		UserID:    userID,
	})
}

// HandleFetch handles POST /fetch-time-table/ requests.
func (h *ScheduleHandler) HandleFetch(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	var req model.DocumentRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}
	if req.Text == "" {
		writeFailure(w, http.StatusBadRequest, "Missing document ID")
		return
	}

	doc, err := h.service.Fetch(r.Context(), userID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			writeJSON(w, http.StatusOK, model.StatusResponse{Status: 1, Message: err.Error()})
			return
		}
		writeFailure(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, model.FetchResponse{Status: 0, Data: doc})
}

// HandleGetAll handles POST /get-all-time-table/ requests. The response is
// the bare JSON array of the caller's documents.
func (h *ScheduleHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	docs, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeFailure(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

// HandleDelete handles POST /delete-time-table/ requests.
func (h *ScheduleHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	var req model.DocumentRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}

	if err := h.service.Delete(r.Context(), userID, req.Text); err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			writeJSON(w, http.StatusOK, model.DeleteResponse{Output: "sorry data is not avai.."})
			return
		}
		writeFailure(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, model.DeleteResponse{Output: "done"})
}

// HandleScoreUpdate handles POST /score-data-update/ requests, returning
// the rewritten document.
func (h *ScheduleHandler) HandleScoreUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "Invalid or missing token")
		return
	}

	var req model.ScoreUpdateRequest
	if !decodeBody(w, r, 1<<20, &req) {
		return
	}
	if req.MongodbID == "" {
		writeFailure(w, http.StatusBadRequest, "Missing document ID")
		return
	}

	doc, err := h.service.UpdateScoreData(r.Context(), userID, req.MongodbID, req.JSONData)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDocumentNotFound):
			writeJSON(w, http.StatusOK, model.StatusResponse{Status: 1, Message: err.Error()})
		case errors.Is(err, service.ErrInvalidScorePayload):
			writeFailure(w, http.StatusBadRequest, err.Error())
		default:
			writeFailure(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, doc)
}
