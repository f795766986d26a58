package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cybrige/platform/internal/middleware"
	"github.com/cybrige/platform/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockCertificateService is a mock implementation of CertificateService
type mockCertificateService struct {
	verifyResp *models.VerifyCertificateResponse
	cert       *models.Certificate
	err        error
	verifiedID string
	issueReq   *models.CreateCertificateRequest
}

func (m *mockCertificateService) Verify(ctx context.Context, certificateID string) (*models.VerifyCertificateResponse, error) {
	m.verifiedID = certificateID
	return m.verifyResp, m.err
}

func (m *mockCertificateService) Issue(ctx context.Context, req *models.CreateCertificateRequest) (*models.Certificate, error) {
	m.issueReq = req
	return m.cert, m.err
}

const testAPIKey = "issuer-key"

func newCertificateRouter(svc CertificateService) http.Handler {
	handler := NewCertificateHandler(svc, zap.NewNop())
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		handler.RegisterRoutes(r, middleware.APIKeyMiddleware(testAPIKey))
	})
	return r
}

func TestCertificateHandler_Verify(t *testing.T) {
	issued := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           string
		service        *mockCertificateService
		expectedStatus int
		check          func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "valid certificate",
			body: `{"certificateId":"CYB-2024-001"}`,
			service: &mockCertificateService{verifyResp: &models.VerifyCertificateResponse{
				Valid:         true,
				CertificateID: "CYB-2024-001",
				StudentName:   "Ada Lovelace",
				CourseName:    "Ethical Hacking",
				IssueDate:     &issued,
				Status:        "Valid",
			}},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var resp models.VerifyCertificateResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.Valid)
				assert.Equal(t, "Ada Lovelace", resp.StudentName)
				assert.Equal(t, "Valid", resp.Status)
			},
		},
		{
			name:           "unknown certificate",
			body:           `{"certificateId":"CYB-404"}`,
			service:        &mockCertificateService{verifyResp: &models.VerifyCertificateResponse{Valid: false, Message: "Certificate not found"}},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"valid":false,"message":"Certificate not found"}`, rec.Body.String())
			},
		},
		{
			name:           "missing id",
			body:           `{}`,
			service:        &mockCertificateService{err: models.NewValidationError("Certificate ID is required")},
			expectedStatus: http.StatusBadRequest,
			check: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "Certificate ID is required", responseMessage(t, rec))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCertificateRouter(tt.service)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/certificates/verify", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.check(t, rec)
		})
	}
}

func TestCertificateHandler_Issue(t *testing.T) {
	body := `{"studentName":"Ada Lovelace","studentEmail":"ada@example.com","courseName":"GRC"}`

	t.Run("with api key", func(t *testing.T) {
		svc := &mockCertificateService{cert: &models.Certificate{CertificateID: "CYB-ABC", StudentName: "Ada Lovelace", IsValid: true}}
		router := newCertificateRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/certificates", strings.NewReader(body))
		req.Header.Set(middleware.APIKeyHeader, testAPIKey)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var cert models.Certificate
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cert))
		assert.Equal(t, "CYB-ABC", cert.CertificateID)
		require.NotNil(t, svc.issueReq)
		assert.Equal(t, "GRC", svc.issueReq.CourseName)
	})

	t.Run("wrong api key", func(t *testing.T) {
		svc := &mockCertificateService{}
		router := newCertificateRouter(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/certificates", strings.NewReader(body))
		req.Header.Set(middleware.APIKeyHeader, "guess")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, svc.issueReq)
	})
}
