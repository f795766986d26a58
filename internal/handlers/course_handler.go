package handlers

import (
	"context"
	"net/http"

	"github.com/cybrige/platform/internal/middleware"
	"github.com/cybrige/platform/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CourseService is the interface that wraps methods for course business logic.
type CourseService interface {
	// Method ListActive returns all active courses without media references.
	ListActive(ctx context.Context) ([]models.CourseResponse, error)
	// Method GetDetail returns the public view of an active course.
	//
	// Unknown or inactive slugs return an error matching models.ErrCourseNotFound.
	GetDetail(ctx context.Context, slug string) (*models.CourseResponse, error)
	// Method GetModules returns the modules of an active course with their opaque video endpoints.
	//
	// Unknown or inactive slugs return an error matching models.ErrCourseNotFound.
	GetModules(ctx context.Context, slug string) (*models.CourseModulesResponse, error)
	// Method Seed installs the default catalogue and returns the number of created courses.
	//
	// If courses already exist, models.ErrCoursesAlreadySeeded is returned.
	Seed(ctx context.Context) (int, error)
}

// CourseHandler handles HTTP requests for courses
type CourseHandler struct {
	BaseHandler
	service CourseService
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(svc CourseService, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// SeedResponse is returned after seeding the catalogue
type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// RegisterRoutes registers all course handler routes
// Note: This assumes the router is already scoped to /api
func (h *CourseHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/courses", func(r chi.Router) {
		r.Get("/", h.List)
		r.With(authMiddleware, middleware.RequireRole(models.RoleAdmin)).Post("/seed", h.Seed)
		r.Get("/{slug}", h.GetBySlug)
		r.With(authMiddleware).Get("/{slug}/modules", h.GetModules)
	})
}

// List handles GET /courses
// @Summary List courses
// @Description List all active courses. Module media references are never included.
// @Tags courses
// @Produce json
// @Success 200 {array} models.CourseResponse
// @Failure 500 {object} map[string]string "Server error"
// @Router /courses [get]
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.ListActive(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, courses)
}

// GetBySlug handles GET /courses/{slug}
// @Summary Get course
// @Description Get an active course by slug with module titles and descriptions
// @Tags courses
// @Produce json
// @Param slug path string true "Course slug"
// @Success 200 {object} models.CourseResponse
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /courses/{slug} [get]
func (h *CourseHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	course, err := h.service.GetDetail(r.Context(), slug)
	if err != nil {
		h.RespondServiceError(w, err, zap.String("slug", slug))
		return
	}

	h.RespondJSON(w, http.StatusOK, course)
}

// GetModules handles GET /courses/{slug}/modules
// @Summary Get course modules
// @Description Get module metadata of an active course with the endpoint each module video is streamed from. Requires authentication.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Course slug"
// @Success 200 {object} models.CourseModulesResponse
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "Course not found"
// @Failure 500 {object} map[string]string "Server error"
// @Router /courses/{slug}/modules [get]
func (h *CourseHandler) GetModules(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	modules, err := h.service.GetModules(r.Context(), slug)
	if err != nil {
		h.RespondServiceError(w, err, zap.String("slug", slug))
		return
	}

	h.RespondJSON(w, http.StatusOK, modules)
}

// Seed handles POST /courses/seed
// @Summary Seed courses
// @Description Install the default course catalogue when no course exists. Requires the admin role.
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 201 {object} SeedResponse
// @Failure 400 {object} map[string]string "Courses already seeded"
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 403 {object} map[string]string "Insufficient permissions"
// @Failure 500 {object} map[string]string "Server error"
// @Router /courses/seed [post]
func (h *CourseHandler) Seed(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.Seed(r.Context())
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, SeedResponse{Message: "Courses seeded", Count: count})
}
