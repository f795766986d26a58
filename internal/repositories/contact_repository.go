package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cybrige/platform/internal/models"
	"go.uber.org/zap"
)

type contactRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewContactRepository creates a new contact message repository
func NewContactRepository(db *sql.DB, logger *zap.Logger) *contactRepository {
	return &contactRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores a contact message
func (r *contactRepository) Create(ctx context.Context, msg *models.ContactMessage) error {
	query := `INSERT INTO contact_messages (name, email, message) VALUES (?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query, msg.Name, msg.Email, msg.Message)
	if err != nil {
		r.logger.Error("failed to create contact message", zap.Error(err))
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	msg.ID = id
	return nil
}
