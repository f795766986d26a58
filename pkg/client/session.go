package client

import "sync"

// Session holds the credential and user of one signed-in client.
// It is safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *User
}

// NewSession creates an empty session
func NewSession() *Session {
	return &Session{}
}

// Token returns the current bearer token, or "" when signed out
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the signed-in user, or nil when signed out
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Authenticated reports whether the session carries a token and a user
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// Set stores the credential returned by signup or login
func (s *Session) Set(token string, user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = &user
}

// Clear forgets the credential
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}
