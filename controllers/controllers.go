package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/logtrail/logged"
	"github.com/blogem/logtrail/models"
	"github.com/blogem/logtrail/repositories"
	"github.com/blogem/logtrail/services"
)

// writeJSON encodes data as the JSON response body with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// writeError maps a service error to a status code and writes it as JSON
func writeError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation), errors.Is(err, repositories.ErrSubjectRequired):
		statusCode = http.StatusBadRequest
	case errors.Is(err, services.ErrDuplicateSlackHandle):
		statusCode = http.StatusConflict
	case errors.Is(err, repositories.ErrTeamMemberNotFound),
		errors.Is(err, repositories.ErrLogNotFound),
		errors.Is(err, logged.ErrUnknownHostType),
		errors.Is(err, logged.ErrHostNotFound):
		statusCode = http.StatusNotFound
	}

	resp := models.ErrorResponse{Error: err.Error()}
	if statusCode == http.StatusInternalServerError {
		log.Printf("Request failed: %v", err)
		resp.Error = http.StatusText(statusCode)
	}

	writeJSON(w, statusCode, resp)
}

// writeBadRequest writes a 400 response with a fixed message
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: message})
}

// urlParamInt64 parses a positive integer URL parameter
func urlParamInt64(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// formValueInt parses an optional integer form value; empty means nil
func formValueInt(r *http.Request, name string) (*int, error) {
	raw := strings.TrimSpace(r.FormValue(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Controllers holds all controller instances
type Controllers struct {
	Health  *HealthController
	Session *SessionController
	Team    *TeamController
	Logs    *LogController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services) *Controllers {
	return &Controllers{
		Health:  NewHealthController(services),
		Session: NewSessionController(),
		Team:    NewTeamController(services),
		Logs:    NewLogController(services),
	}
}
