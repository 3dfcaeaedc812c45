package handler

import (
	"encoding/json"
	"net/http"

	"github.com/tranquility404/study-planner/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeFailure emits the {status:1, message} envelope the client checks.
// Business failures ride on HTTP 200; httpStatus differs only for transport
// level problems (bad body, unauthenticated, internal errors).
func writeFailure(w http.ResponseWriter, httpStatus int, msg string) {
	writeJSON(w, httpStatus, model.StatusResponse{Status: 1, Message: msg})
}

// decodeBody decodes a JSON request body with a size cap, reporting the
// failure to the client itself. Returns false when the handler should stop.
func decodeBody(w http.ResponseWriter, r *http.Request, limit int64, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if err.Error() == "http: request body too large" {
			writeFailure(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeFailure(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	return true
}
