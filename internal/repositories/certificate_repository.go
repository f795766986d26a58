package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cybrige/platform/internal/models"
	"go.uber.org/zap"
)

type certificateRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewCertificateRepository creates a new certificate repository
func NewCertificateRepository(db *sql.DB, logger *zap.Logger) *certificateRepository {
	return &certificateRepository{
		db:     db,
		logger: logger,
	}
}

// GetByCertificateID retrieves a certificate by its public identifier
func (r *certificateRepository) GetByCertificateID(ctx context.Context, certificateID string) (*models.Certificate, error) {
	query := `
		SELECT id, certificate_id, student_name, student_email, course_name, issue_date, is_valid
		FROM certificates
		WHERE certificate_id = ?
		LIMIT 1
	`

	cert := &models.Certificate{}
	err := r.db.QueryRowContext(ctx, query, certificateID).Scan(
		&cert.ID,
		&cert.CertificateID,
		&cert.StudentName,
		&cert.StudentEmail,
		&cert.CourseName,
		&cert.IssueDate,
		&cert.IsValid,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrCertificateNotFound
	}
	if err != nil {
		r.logger.Error("failed to get certificate", zap.Error(err), zap.String("certificateId", certificateID))
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}

	return cert, nil
}

// Create inserts a new certificate
func (r *certificateRepository) Create(ctx context.Context, cert *models.Certificate) error {
	query := `
		INSERT INTO certificates (certificate_id, student_name, student_email, course_name, issue_date, is_valid)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		cert.CertificateID,
		cert.StudentName,
		cert.StudentEmail,
		cert.CourseName,
		cert.IssueDate,
		cert.IsValid,
	)
	if err != nil {
		r.logger.Error("failed to create certificate", zap.Error(err))
		return fmt.Errorf("failed to create certificate: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	cert.ID = id
	return nil
}
