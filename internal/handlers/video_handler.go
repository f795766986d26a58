package handlers

import (
	"context"
	"errors"
	"net/http"
	"os"

	"github.com/cybrige/platform/internal/models"
	"github.com/cybrige/platform/internal/streaming"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// VideoService is the interface that wraps module media resolution.
type VideoService interface {
	// Method ResolveModule maps a course slug and positional module index onto the module's media file.
	//
	// "index" is the raw path segment.
	// Errors match models.ErrCourseNotFound, models.ErrModuleNotFound or models.ErrMediaMissing.
	ResolveModule(ctx context.Context, slug string, index string) (*models.MediaResource, error)
}

// MediaResponder is the interface that wraps writing a resolved media window to a response.
type MediaResponder interface {
	// Method Respond writes status, headers and body of "rng".
	//
	// A non-nil error means nothing has been written yet. For unsatisfiable ranges
	// streaming.ErrUnsatisfiableRange is returned with Content-Range already set.
	Respond(w http.ResponseWriter, r *http.Request, resource *models.MediaResource, rng streaming.Range) error
}

// VideoHandler handles HTTP requests for module videos
type VideoHandler struct {
	BaseHandler
	service   VideoService
	responder MediaResponder
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(svc VideoService, responder MediaResponder, logger *zap.Logger) *VideoHandler {
	return &VideoHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
		responder:   responder,
	}
}

// RegisterRoutes registers all video handler routes
// Note: This assumes the router is already scoped to /api
func (h *VideoHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/videos", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/{slug}/{index}", h.Stream)
		r.Head("/{slug}/{index}", h.Stream)
	})
}

// Stream handles GET /videos/{slug}/{index}
// @Summary Stream module video
// @Description Stream the video of a course module. Supports single byte ranges through the Range header. Requires authentication.
// @Tags videos
// @Produce video/mp4
// @Security BearerAuth
// @Param slug path string true "Course slug"
// @Param index path int true "Zero-based module index"
// @Param Range header string false "Byte range, e.g. bytes=0-1048575"
// @Success 200 {file} binary "Whole video"
// @Success 206 {file} binary "Requested byte range"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "Course, module or video file not found"
// @Failure 416 {object} map[string]string "Range not satisfiable"
// @Failure 500 {object} map[string]string "Server error"
// @Router /videos/{slug}/{index} [get]
func (h *VideoHandler) Stream(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	index := chi.URLParam(r, "index")
	fields := []zap.Field{zap.String("slug", slug), zap.String("index", index)}

	resource, err := h.service.ResolveModule(r.Context(), slug, index)
	if err != nil {
		h.RespondServiceError(w, err, fields...)
		return
	}

	rng := streaming.ResolveRange(r.Header.Get("Range"), resource.Size)

	if err := h.responder.Respond(w, r, resource, rng); err != nil {
		switch {
		case errors.Is(err, streaming.ErrUnsatisfiableRange):
			h.RespondError(w, http.StatusRequestedRangeNotSatisfiable, "Requested range not satisfiable")
		case errors.Is(err, os.ErrNotExist):
			// Removed between stat and open
			h.RespondServiceError(w, models.ErrMediaMissing, fields...)
		default:
			h.RespondServiceError(w, err, fields...)
		}
	}
}
