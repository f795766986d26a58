package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/cybrige/platform/internal/auth"
	"github.com/cybrige/platform/internal/middleware"
	"github.com/cybrige/platform/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AuthService is the interface that wraps methods for authentication business logic.
type AuthService interface {
	// Method Signup validates the request, creates a student account and returns it together with a token.
	//
	// Missing fields return a *models.ValidationError; a registered email returns models.ErrEmailTaken.
	Signup(ctx context.Context, req *models.SignupRequest) (*models.User, string, error)
	// Method Login verifies credentials and returns the account together with a token.
	//
	// Unknown emails and wrong passwords return models.ErrInvalidCredentials.
	Login(ctx context.Context, req *models.LoginRequest) (*models.User, string, error)
	// Method Me returns the account behind an authenticated identity.
	Me(ctx context.Context, identity *models.Identity) (*models.User, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	BaseHandler
	authService  AuthService
	cookieMaxAge time.Duration
	cookieSecure bool
}

// NewAuthHandler creates a new auth handler.
// "cookieMaxAge" should match the token expiry.
func NewAuthHandler(authService AuthService, cookieMaxAge time.Duration, cookieSecure bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		BaseHandler:  BaseHandler{Logger: logger},
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

// MeResponse is returned by GET /auth/me
type MeResponse struct {
	User models.UserResponse `json:"user"`
}

// RegisterRoutes registers all auth handler routes
// Note: This assumes the router is already scoped to /api
func (h *AuthHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.With(authMiddleware).Get("/me", h.Me)
	})
}

// Signup handles POST /auth/signup
// @Summary Sign up
// @Description Create a student account. The token is returned in the body and set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.SignupRequest true "Signup request"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} map[string]string "All fields are required"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Server error"
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	user, token, err := h.authService.Signup(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.setTokenCookie(w, token)
	h.RespondJSON(w, http.StatusCreated, models.AuthResponse{
		Message: "Signup successful",
		User:    user.ToResponse(),
		Token:   token,
	})
}

// Login handles POST /auth/login
// @Summary Log in
// @Description Authenticate with email and password. The token is returned in the body and set as an HTTP-only cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login request"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} map[string]string "Email and password are required"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !h.DecodeJSON(w, r, &req) {
		return
	}

	user, token, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		h.RespondServiceError(w, err)
		return
	}

	h.setTokenCookie(w, token)
	h.RespondJSON(w, http.StatusOK, models.AuthResponse{
		Message: "Login successful",
		User:    user.ToResponse(),
		Token:   token,
	})
}

// Logout handles POST /auth/logout
// @Summary Log out
// @Description Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string "Logged out successfully"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	h.RespondJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// Me handles GET /auth/me
// @Summary Current user
// @Description Get the account of the authenticated user. Requires authentication.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MeResponse
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "User not found"
// @Router /auth/me [get]
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentity(r.Context())
	if !ok {
		h.RespondError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.authService.Me(r.Context(), identity)
	if err != nil {
		h.RespondServiceError(w, err, zap.Int64("userId", identity.UserID))
		return
	}

	h.RespondJSON(w, http.StatusOK, MeResponse{User: user.ToResponse()})
}

// setTokenCookie sets the HTTP-only session cookie
func (h *AuthHandler) setTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
