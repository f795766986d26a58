package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cybrige/platform/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// mockContactService is a mock implementation of ContactService
type mockContactService struct {
	err error
	req *models.ContactRequest
}

func (m *mockContactService) Submit(ctx context.Context, req *models.ContactRequest) error {
	m.req = req
	return m.err
}

func TestContactHandler_Submit(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		service         *mockContactService
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:            "success",
			body:            `{"name":"Ada","email":"ada@example.com","message":"Do you offer team plans?"}`,
			service:         &mockContactService{},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Thank you for reaching out. Our team will contact you shortly.",
		},
		{
			name:            "missing fields",
			body:            `{"name":"Ada"}`,
			service:         &mockContactService{err: models.NewValidationError("All fields are required")},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "All fields are required",
		},
		{
			name:            "storage failure",
			body:            `{"name":"Ada","email":"ada@example.com","message":"hi"}`,
			service:         &mockContactService{err: errors.New("database error")},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "Server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewContactHandler(tt.service, zap.NewNop())
			r := chi.NewRouter()
			handler.RegisterRoutes(r)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedMessage, responseMessage(t, rec))
			assert.NotNil(t, tt.service.req)
		})
	}
}
