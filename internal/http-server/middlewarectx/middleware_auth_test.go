package middlewarectx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bikash/portfolio-backend/internal/lib/jwt"
	"github.com/bikash/portfolio-backend/internal/models"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func mustToken(t *testing.T, secret string, ttl time.Duration) string {
	t.Helper()
	maker := jwt.NewMaker(secret, ttl, 24*time.Hour)
	token, err := maker.GenerateAccessToken("bikash@example.com", models.RoleAdmin)
	require.NoError(t, err)
	return token
}

func TestJWTMiddleware(t *testing.T) {
	maker := jwt.NewMaker("test-secret", 15*time.Minute, 24*time.Hour)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedEmail  string
		expectedRole   string
	}{
		{
			name:           "success - valid token",
			authHeader:     "Bearer " + mustToken(t, "test-secret", 15*time.Minute),
			expectedStatus: http.StatusOK,
			expectedEmail:  "bikash@example.com",
			expectedRole:   models.RoleAdmin,
		},
		{
			name:           "missing authorization header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid authorization header format",
			authHeader:     "Basic abcdef",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "garbage token",
			authHeader:     "Bearer not-a-jwt",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired token",
			authHeader:     "Bearer " + mustToken(t, "test-secret", -time.Minute),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "token signed with different key",
			authHeader:     "Bearer " + mustToken(t, "other-secret", 15*time.Minute),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotEmail, gotRole string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotEmail, _ = r.Context().Value(User).(string)
				gotRole, _ = r.Context().Value(Role).(string)
				w.WriteHeader(http.StatusOK)
			})

			handler := JWTMiddleware(maker, newNoopLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/status/me", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedEmail, gotEmail)
				assert.Equal(t, tt.expectedRole, gotRole)
			} else {
				assert.Contains(t, rec.Body.String(), `"status":"Error"`)
			}
		})
	}
}

func TestAdminOnlyMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		role           string
		withRole       bool
		expectedStatus int
	}{
		{"admin passes", models.RoleAdmin, true, http.StatusOK},
		{"user rejected", models.RoleUser, true, http.StatusForbidden},
		{"missing role rejected", "", false, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := AdminOnlyMiddleware(newNoopLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/contact", nil)
			if tt.withRole {
				req = req.WithContext(context.WithValue(req.Context(), Role, tt.role))
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
