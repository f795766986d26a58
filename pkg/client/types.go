package client

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrUnauthorized matches API errors with status 401
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound matches API errors with status 404
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response of the platform API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Is lets errors.Is match the status sentinels
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// User is the public view of an account
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type authResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
	Token   string `json:"token"`
}

// ModuleSummary is a module as listed in the public catalogue
type ModuleSummary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
}

// Course is a catalogue entry
type Course struct {
	ID          int64           `json:"id"`
	Slug        string          `json:"slug"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    string          `json:"duration"`
	Level       string          `json:"level"`
	Modules     []ModuleSummary `json:"modules"`
}

// Module is a playable module of a course
type Module struct {
	Index         int    `json:"index"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Order         int    `json:"order"`
	VideoEndpoint string `json:"videoEndpoint"`
}

// CourseModules is the module listing of one course
type CourseModules struct {
	Course struct {
		Title    string `json:"title"`
		Slug     string `json:"slug"`
		Duration string `json:"duration"`
	} `json:"course"`
	Modules []Module `json:"modules"`
}

// CertificateResult is the outcome of a certificate lookup
type CertificateResult struct {
	Valid         bool       `json:"valid"`
	Message       string     `json:"message,omitempty"`
	CertificateID string     `json:"certificateId,omitempty"`
	StudentName   string     `json:"studentName,omitempty"`
	CourseName    string     `json:"courseName,omitempty"`
	IssueDate     *time.Time `json:"issueDate,omitempty"`
	Status        string     `json:"status,omitempty"`
}
