// Package auth issues and verifies the signed bearer tokens used by protected routes
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cybrige/platform/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the name of the cookie carrying the token
const CookieName = "token"

const tokenType = "access"

var (
	// ErrUnauthenticated is returned when a required credential is absent
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidCredential is returned when a credential fails verification
	ErrInvalidCredential = errors.New("invalid or expired token")
)

// TokenGenerator handles JWT token generation and validation
type TokenGenerator struct {
	secret      string
	tokenExpiry time.Duration
	now         func() time.Time
}

// NewTokenGenerator creates a new token generator
func NewTokenGenerator(secret string, tokenExpiry time.Duration) *TokenGenerator {
	return &TokenGenerator{
		secret:      secret,
		tokenExpiry: tokenExpiry,
		now:         time.Now,
	}
}

// Expiry returns the lifetime of issued tokens
func (tg *TokenGenerator) Expiry() time.Duration {
	return tg.tokenExpiry
}

// GenerateToken creates a token with userID and role in payload
func (tg *TokenGenerator) GenerateToken(userID int64, role models.Role) (string, error) {
	now := tg.now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    int(role),
		"exp":     now.Add(tg.tokenExpiry).Unix(),
		"iat":     now.Unix(),
		"type":    tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tg.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a token and returns the identity it carries
func (tg *TokenGenerator) ValidateToken(tokenString string) (*models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tg.secret), nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(tg.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	typ, ok := claims["type"].(string)
	if !ok || typ != tokenType {
		return nil, fmt.Errorf("token is not an access token")
	}

	// JWT claims decode numbers as float64
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("user_id not found in token")
	}

	role, ok := claims["role"].(float64)
	if !ok {
		return nil, fmt.Errorf("role not found in token")
	}

	return &models.Identity{
		UserID: int64(userID),
		Role:   models.Role(role),
	}, nil
}

// Verify checks a credential against the server secret.
//
// When required is false, a missing or invalid credential yields a nil identity and nil error.
// When required is true, ErrUnauthenticated or ErrInvalidCredential is returned instead.
func (tg *TokenGenerator) Verify(credential string, required bool) (*models.Identity, error) {
	if credential == "" {
		if required {
			return nil, ErrUnauthenticated
		}
		return nil, nil
	}

	identity, err := tg.ValidateToken(credential)
	if err != nil {
		if required {
			return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
		}
		return nil, nil
	}

	return identity, nil
}

// CredentialFromRequest extracts the bearer token from the Authorization header,
// falling back to the token cookie when the header carries none
func CredentialFromRequest(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") && strings.TrimSpace(parts[1]) != "" {
			return strings.TrimSpace(parts[1])
		}
	}

	cookie, err := r.Cookie(CookieName)
	if err == nil {
		return cookie.Value
	}

	return ""
}
