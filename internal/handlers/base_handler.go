package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cybrige/platform/internal/models"
	"go.uber.org/zap"
)

// BaseHandler provides common handler functionality
type BaseHandler struct {
	Logger *zap.Logger
}

// RespondJSON sends a JSON response
func (h *BaseHandler) RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// RespondError sends an error JSON response
func (h *BaseHandler) RespondError(w http.ResponseWriter, status int, message string) {
	h.RespondJSON(w, status, map[string]string{"message": message})
}

// DecodeJSON reads a JSON request body into dest.
// An empty body leaves dest untouched so field validation reports what is missing.
func (h *BaseHandler) DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		h.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// RespondServiceError maps service errors onto status codes and client messages.
// Unknown errors are logged with fields and reported as a generic server error.
func (h *BaseHandler) RespondServiceError(w http.ResponseWriter, err error, fields ...zap.Field) {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		h.RespondError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, models.ErrCourseNotFound):
		h.RespondError(w, http.StatusNotFound, "Course not found")
	case errors.Is(err, models.ErrModuleNotFound):
		h.RespondError(w, http.StatusNotFound, "Module or video not found")
	case errors.Is(err, models.ErrMediaMissing):
		h.Logger.Warn("video file missing on server", fields...)
		h.RespondError(w, http.StatusNotFound, "Video file missing on server")
	case errors.Is(err, models.ErrEmailTaken):
		h.RespondError(w, http.StatusConflict, "Email already registered")
	case errors.Is(err, models.ErrInvalidCredentials):
		h.RespondError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, models.ErrUserNotFound):
		h.RespondError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, models.ErrCoursesAlreadySeeded):
		h.RespondError(w, http.StatusBadRequest, "Courses already seeded")
	default:
		h.Logger.Error("request failed", append(fields, zap.Error(err))...)
		h.RespondError(w, http.StatusInternalServerError, "Server error")
	}
}
