package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cybrige/platform/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CertificateRepository is the interface that wraps methods for Certificates table data access
type CertificateRepository interface {
	// Method GetByCertificateID retrieves a certificate by its public identifier.
	//
	// If the certificate does not exist, models.ErrCertificateNotFound will be returned together with "nil" value.
	GetByCertificateID(ctx context.Context, certificateID string) (*models.Certificate, error)
	// Method Create inserts a new certificate; its ID is set on success.
	Create(ctx context.Context, cert *models.Certificate) error
}

type certificateService struct {
	repo   CertificateRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewCertificateService creates a new certificate service
func NewCertificateService(repo CertificateRepository, logger *zap.Logger) *certificateService {
	return &certificateService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Verify looks up a certificate by its public identifier.
//
// Unknown identifiers are not an error: the response reports valid=false with a message.
func (s *certificateService) Verify(ctx context.Context, certificateID string) (*models.VerifyCertificateResponse, error) {
	certificateID = strings.TrimSpace(certificateID)
	if certificateID == "" {
		return nil, models.NewValidationError("Certificate ID is required")
	}

	cert, err := s.repo.GetByCertificateID(ctx, certificateID)
	if err != nil {
		if errors.Is(err, models.ErrCertificateNotFound) {
			return &models.VerifyCertificateResponse{
				Valid:   false,
				Message: "Certificate not found",
			}, nil
		}
		return nil, fmt.Errorf("failed to verify certificate: %w", err)
	}

	status := "Invalid"
	if cert.IsValid {
		status = "Valid"
	}
	issueDate := cert.IssueDate

	return &models.VerifyCertificateResponse{
		Valid:         cert.IsValid,
		CertificateID: cert.CertificateID,
		StudentName:   cert.StudentName,
		CourseName:    cert.CourseName,
		IssueDate:     &issueDate,
		Status:        status,
	}, nil
}

// Issue stores a new valid certificate.
//
// A missing certificate ID is generated as "CYB-" followed by an upper-cased UUID; a zero issue date means now.
func (s *certificateService) Issue(ctx context.Context, req *models.CreateCertificateRequest) (*models.Certificate, error) {
	studentName := strings.TrimSpace(req.StudentName)
	studentEmail := normalizeEmail(req.StudentEmail)
	courseName := strings.TrimSpace(req.CourseName)
	if studentName == "" || studentEmail == "" || courseName == "" {
		return nil, models.NewValidationError("Student name, email and course name are required")
	}

	certificateID := strings.TrimSpace(req.CertificateID)
	if certificateID == "" {
		certificateID = "CYB-" + strings.ToUpper(uuid.NewString())
	}

	issueDate := req.IssueDate
	if issueDate.IsZero() {
		issueDate = s.now().UTC()
	}

	cert := &models.Certificate{
		CertificateID: certificateID,
		StudentName:   studentName,
		StudentEmail:  studentEmail,
		CourseName:    courseName,
		IssueDate:     issueDate,
		IsValid:       true,
	}

	if err := s.repo.Create(ctx, cert); err != nil {
		return nil, fmt.Errorf("failed to issue certificate: %w", err)
	}

	s.logger.Info("certificate issued", zap.String("certificateId", cert.CertificateID))
	return cert, nil
}
