package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/cybrige/platform/internal/models"
	"go.uber.org/zap"
)

// ContactRepository is the interface that wraps methods for ContactMessages table data access
type ContactRepository interface {
	Create(ctx context.Context, msg *models.ContactMessage) error
}

type contactService struct {
	repo   ContactRepository
	logger *zap.Logger
}

// NewContactService creates a new contact service
func NewContactService(repo ContactRepository, logger *zap.Logger) *contactService {
	return &contactService{
		repo:   repo,
		logger: logger,
	}
}

// Submit validates and stores a contact form message
func (s *contactService) Submit(ctx context.Context, req *models.ContactRequest) error {
	msg := &models.ContactMessage{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		return models.NewValidationError("All fields are required")
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}

	s.logger.Info("new contact message",
		zap.Int64("id", msg.ID),
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
	)
	return nil
}
