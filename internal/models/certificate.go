package models

import "time"

// Certificate represents an issued course certificate
type Certificate struct {
	ID            int64     `json:"-"`
	CertificateID string    `json:"certificateId"`
	StudentName   string    `json:"studentName"`
	StudentEmail  string    `json:"studentEmail"`
	CourseName    string    `json:"courseName"`
	IssueDate     time.Time `json:"issueDate"`
	IsValid       bool      `json:"isValid"`
}

// VerifyCertificateRequest represents a certificate verification request
type VerifyCertificateRequest struct {
	CertificateID string `json:"certificateId"`
}

// VerifyCertificateResponse is the verification result.
// Only Valid and Message are set when the certificate does not exist.
type VerifyCertificateResponse struct {
	Valid         bool       `json:"valid"`
	Message       string     `json:"message,omitempty"`
	CertificateID string     `json:"certificateId,omitempty"`
	StudentName   string     `json:"studentName,omitempty"`
	CourseName    string     `json:"courseName,omitempty"`
	IssueDate     *time.Time `json:"issueDate,omitempty"`
	Status        string     `json:"status,omitempty"`
}

// CreateCertificateRequest represents a request to issue a certificate
type CreateCertificateRequest struct {
	CertificateID string    `json:"certificateId"`
	StudentName   string    `json:"studentName"`
	StudentEmail  string    `json:"studentEmail"`
	CourseName    string    `json:"courseName"`
	IssueDate     time.Time `json:"issueDate"`
}
