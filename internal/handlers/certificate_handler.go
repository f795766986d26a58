package handlers

import (
	"context"
	"net/http"

	"github.com/cybrige/platform/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CertificateService is the interface that wraps methods for certificate business logic.
type CertificateService interface {
	// Method Verify looks up a certificate by its public identifier.
	//
	// An unknown identifier is not an error; the response then reports valid=false.
	// An empty identifier returns a *models.ValidationError.
	Verify(ctx context.Context, certificateID string) (*models.VerifyCertificateResponse, error)
	// Method Issue stores a new valid certificate and returns it.
	Issue(ctx context.Context, req *models.CreateCertificateRequest) (*models.Certificate, error)
}

// CertificateHandler handles HTTP requests for certificates
type CertificateHandler struct {
	BaseHandler
	service CertificateService
}

// NewCertificateHandler creates a new certificate handler
func NewCertificateHandler(svc CertificateService, logger *zap.Logger) *CertificateHandler {
	return &CertificateHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all certificate handler routes
// Note: This assumes the router is already scoped to /api
func (h *CertificateHandler) RegisterRoutes(r chi.Router, apiKeyMiddleware func(http.Handler) http.Handler) {
	r.Route("/certificates", func(r chi.Router) {
		r.Post("/verify", h.Verify)
		r.With(apiKeyMiddleware).Post("/", h.Issue)
	})
}

// Verify handles POST /certificates/verify
// @Summary Verify certificate
// @Description Check whether a certificate ID belongs to a valid issued certificate
// @Tags certificates
// @Accept json
// @Produce json
// @Param request body models.VerifyCertificateRequest true "Certificate ID"
// @Success 200 {object} models.VerifyCertificateResponse
// @Failure 400 {object} map[string]string "Certificate ID is required"
// @Failure 500 {object} map[string]string "Server error"
// @Router /certificates/verify [post]
func (h *CertificateHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyCertificateRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Verify(r.Context(), req.CertificateID)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, resp)
}

// Issue handles POST /certificates
// @Summary Issue certificate
// @Description Issue a certificate for a student. A certificate ID is generated when none is given.
// @Tags certificates
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body models.CreateCertificateRequest true "Certificate"
// @Success 201 {object} models.Certificate
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Invalid or missing API key"
// @Failure 500 {object} map[string]string "Server error"
// @Router /certificates [post]
func (h *CertificateHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCertificateRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	cert, err := h.service.Issue(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, cert)
}
