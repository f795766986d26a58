package handlers

import (
	"context"
	"net/http"

	"github.com/cybrige/platform/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ContactService is the interface that wraps contact form handling.
type ContactService interface {
	// Method Submit validates and stores a contact message.
	//
	// Missing fields return a *models.ValidationError.
	Submit(ctx context.Context, req *models.ContactRequest) error
}

// ContactHandler handles contact form submissions
type ContactHandler struct {
	BaseHandler
	service ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(svc ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers the contact route
func (h *ContactHandler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.Submit)
}

// Submit handles POST /contact
// @Summary Contact form
// @Description Send a message to the training team
// @Tags contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Contact message"
// @Success 200 {object} map[string]string "Thank you message"
// @Failure 400 {object} map[string]string "All fields are required"
// @Failure 500 {object} map[string]string "Server error"
// @Router /contact [post]
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Submit(r.Context(), &req); err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Thank you for reaching out. Our team will contact you shortly.",
	})
}
