// Package client is a Go client for the platform API.
//
// Credentials live in an explicit Session so several users can be driven
// from one process.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client calls the platform API on behalf of a session
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
}

// New creates a client for baseURL (scheme and host, without /api).
// A nil httpClient uses a client with a 30 second timeout; a nil session starts signed out.
func New(baseURL string, httpClient *http.Client, session *Session) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	if session == nil {
		session = NewSession()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		session:    session,
	}
}

// Session returns the session the client authenticates with
func (c *Client) Session() *Session {
	return c.session
}

// Signup creates a student account and signs the session in
func (c *Client) Signup(ctx context.Context, fullName, email, password string) (*User, error) {
	var resp authResponse
	body := map[string]string{"fullName": fullName, "email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", body, &resp); err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	c.session.Set(resp.Token, resp.User)
	return &resp.User, nil
}

// Login signs the session in
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	c.session.Set(resp.Token, resp.User)
	return &resp.User, nil
}

// Logout signs the session out. The session is cleared even when the request fails.
func (c *Client) Logout(ctx context.Context) error {
	defer c.session.Clear()
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

// Me returns the account behind the session token
func (c *Client) Me(ctx context.Context) (*User, error) {
	var resp struct {
		User User `json:"user"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/auth/me", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return &resp.User, nil
}

// Courses lists the active courses
func (c *Client) Courses(ctx context.Context) ([]Course, error) {
	var courses []Course
	if err := c.doJSON(ctx, http.MethodGet, "/api/courses", nil, &courses); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// Modules lists the playable modules of a course. Requires a signed-in session.
func (c *Client) Modules(ctx context.Context, slug string) (*CourseModules, error) {
	var resp CourseModules
	if err := c.doJSON(ctx, http.MethodGet, "/api/courses/"+slug+"/modules", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list modules of %s: %w", slug, err)
	}
	return &resp, nil
}

// VerifyCertificate looks up a certificate by its public identifier
func (c *Client) VerifyCertificate(ctx context.Context, certificateID string) (*CertificateResult, error) {
	var resp CertificateResult
	body := map[string]string{"certificateId": certificateID}
	if err := c.doJSON(ctx, http.MethodPost, "/api/certificates/verify", body, &resp); err != nil {
		return nil, fmt.Errorf("failed to verify certificate: %w", err)
	}
	return &resp, nil
}

// Contact sends a contact form message and returns the confirmation text
func (c *Client) Contact(ctx context.Context, name, email, message string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	body := map[string]string{"name": name, "email": email, "message": message}
	if err := c.doJSON(ctx, http.MethodPost, "/api/contact", body, &resp); err != nil {
		return "", fmt.Errorf("failed to send contact message: %w", err)
	}
	return resp.Message, nil
}

// newRequest builds an API request carrying the session token
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// doJSON sends an optional JSON body and decodes a JSON response into out when it is non-nil
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeAPIError reads the {"message"} body of a failed response
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64*1024)).Decode(&payload); err == nil {
		apiErr.Message = payload.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = "Request failed"
	}
	return apiErr
}
