package services

import (
	"context"
	"errors"
	"testing"

	"github.com/cybrige/platform/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockContactRepository is a mock implementation of ContactRepository
type mockContactRepository struct {
	err     error
	created *models.ContactMessage
}

func (m *mockContactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	if m.err != nil {
		return m.err
	}
	msg.ID = 1
	m.created = msg
	return nil
}

func TestContactService_Submit(t *testing.T) {
	tests := []struct {
		name          string
		req           models.ContactRequest
		repo          *mockContactRepository
		expectedErr   error
		expectedError bool
	}{
		{
			name: "success",
			req:  models.ContactRequest{Name: " Ada ", Email: "ada@example.com", Message: "When does the next cohort start?"},
			repo: &mockContactRepository{},
		},
		{
			name:          "missing message",
			req:           models.ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "  "},
			repo:          &mockContactRepository{},
			expectedErr:   models.ErrValidation,
			expectedError: true,
		},
		{
			name:          "missing name",
			req:           models.ContactRequest{Email: "ada@example.com", Message: "Hi"},
			repo:          &mockContactRepository{},
			expectedErr:   models.ErrValidation,
			expectedError: true,
		},
		{
			name:          "repository error",
			req:           models.ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "Hi"},
			repo:          &mockContactRepository{err: errors.New("database error")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewContactService(tt.repo, zap.NewNop())

			err := svc.Submit(context.Background(), &tt.req)

			if tt.expectedError {
				assert.Error(t, err)
				if tt.expectedErr != nil {
					assert.ErrorIs(t, err, tt.expectedErr)
					assert.EqualError(t, err, "All fields are required")
				}
				assert.Nil(t, tt.repo.created)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, tt.repo.created)
			assert.Equal(t, "Ada", tt.repo.created.Name)
		})
	}
}
