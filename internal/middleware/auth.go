package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/cybrige/platform/internal/auth"
	"github.com/cybrige/platform/internal/models"
)

// Verifier is the interface that wraps session credential verification
type Verifier interface {
	// Method Verify checks a raw credential and returns the identity it carries.
	//
	// With "required" set, a missing credential returns auth.ErrUnauthenticated and a bad one
	// auth.ErrInvalidCredential. Otherwise both return "nil, nil".
	Verify(credential string, required bool) (*models.Identity, error)
}

// Authenticate verifies the bearer token or session cookie and stores the identity in the request context.
//
// When "required" is false anonymous requests pass through without an identity.
func Authenticate(verifier Verifier, required bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := verifier.Verify(auth.CredentialFromRequest(r), required)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthenticated) {
					writeMessage(w, http.StatusUnauthorized, "Authentication required")
					return
				}
				writeMessage(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			if identity == nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireRole rejects identities whose role is below "role".
// It must run after Authenticate.
func RequireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				writeMessage(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			if identity.Role < role {
				writeMessage(w, http.StatusForbidden, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetIdentity retrieves the authenticated identity from context
func GetIdentity(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*models.Identity)
	return identity, ok && identity != nil
}

// WithIdentity returns a copy of ctx carrying identity
func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}
