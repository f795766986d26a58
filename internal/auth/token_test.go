package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cybrige/platform/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "b8a3c2267dc85f855dea9b46b452bf20"

func signClaims(t *testing.T, key any, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	if secret, ok := key.(string); ok {
		key = []byte(secret)
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestNewTokenGenerator(t *testing.T) {
	tg := NewTokenGenerator("test-secret-key", time.Hour)

	assert.NotNil(t, tg)
	assert.Equal(t, "test-secret-key", tg.secret)
	assert.Equal(t, time.Hour, tg.Expiry())
}

func TestTokenGenerator_GenerateAndValidate(t *testing.T) {
	tg := NewTokenGenerator(testSecret, time.Hour)

	tests := []struct {
		name   string
		userID int64
		role   models.Role
	}{
		{name: "student", userID: 42, role: models.RoleStudent},
		{name: "admin", userID: 7, role: models.RoleAdmin},
		{name: "zero user id", userID: 0, role: models.RoleStudent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tg.GenerateToken(tt.userID, tt.role)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			identity, err := tg.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, identity.UserID)
			assert.Equal(t, tt.role, identity.Role)
		})
	}
}

func TestTokenGenerator_ValidateToken_Errors(t *testing.T) {
	tg := NewTokenGenerator(testSecret, time.Hour)
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "malformed",
			token: "not.a.token",
		},
		{
			name:  "wrong secret",
			token: signClaims(t, "other-secret", jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 1, "role": 1, "type": "access", "exp": exp}),
		},
		{
			name:  "expired",
			token: signClaims(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 1, "role": 1, "type": "access", "exp": time.Now().Add(-time.Minute).Unix()}),
		},
		{
			name:  "missing expiry",
			token: signClaims(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 1, "role": 1, "type": "access"}),
		},
		{
			name:  "wrong type",
			token: signClaims(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 1, "role": 1, "type": "refresh", "exp": exp}),
		},
		{
			name:  "missing user id",
			token: signClaims(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{"role": 1, "type": "access", "exp": exp}),
		},
		{
			name:  "missing role",
			token: signClaims(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 1, "type": "access", "exp": exp}),
		},
		{
			name:  "unsigned",
			token: signClaims(t, jwt.UnsafeAllowNoneSignatureType, jwt.SigningMethodNone, jwt.MapClaims{"user_id": 1, "role": 1, "type": "access", "exp": exp}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := tg.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, identity)
		})
	}
}

func TestTokenGenerator_Verify(t *testing.T) {
	tg := NewTokenGenerator(testSecret, time.Hour)
	valid, err := tg.GenerateToken(5, models.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name             string
		credential       string
		required         bool
		expectedErr      error
		expectedIdentity *models.Identity
	}{
		{name: "missing required", credential: "", required: true, expectedErr: ErrUnauthenticated},
		{name: "missing optional", credential: "", required: false},
		{name: "invalid required", credential: "garbage", required: true, expectedErr: ErrInvalidCredential},
		{name: "invalid optional", credential: "garbage", required: false},
		{name: "valid required", credential: valid, required: true, expectedIdentity: &models.Identity{UserID: 5, Role: models.RoleAdmin}},
		{name: "valid optional", credential: valid, required: false, expectedIdentity: &models.Identity{UserID: 5, Role: models.RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := tg.Verify(tt.credential, tt.required)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, identity)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedIdentity, identity)
		})
	}
}

func TestCredentialFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		cookie   string
		expected string
	}{
		{name: "none", expected: ""},
		{name: "bearer header", header: "Bearer abc", expected: "abc"},
		{name: "lowercase scheme", header: "bearer abc", expected: "abc"},
		{name: "cookie fallback", cookie: "from-cookie", expected: "from-cookie"},
		{name: "header takes precedence", header: "Bearer from-header", cookie: "from-cookie", expected: "from-header"},
		{name: "non bearer header falls back to cookie", header: "Basic dXNlcjpwYXNz", cookie: "from-cookie", expected: "from-cookie"},
		{name: "empty bearer", header: "Bearer ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}

			assert.Equal(t, tt.expected, CredentialFromRequest(req))
		})
	}
}
