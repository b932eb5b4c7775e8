package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaker_GenerateAndParseAccessToken(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	accessTTL := 15 * time.Minute
	maker := NewMaker(secretKey, accessTTL, 24*time.Hour)

	tests := []struct {
		name  string
		email string
		role  string
	}{
		{
			name:  "admin user",
			email: "admin@example.com",
			role:  "ADMIN",
		},
		{
			name:  "regular user",
			email: "user@example.com",
			role:  "USER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := maker.GenerateAccessToken(tt.email, tt.role)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := maker.ParseToken(token)
			require.NoError(t, err)

			assert.Equal(t, tt.email, claims.Subject)
			assert.Equal(t, tt.role, claims.Role)
			assert.WithinDuration(t, time.Now(), claims.IssuedAt.Time, time.Second)
			assert.WithinDuration(t, time.Now().Add(accessTTL), claims.ExpiresAt.Time, time.Second)
		})
	}
}

func TestMaker_GenerateRefreshToken(t *testing.T) {
	refreshTTL := 7 * 24 * time.Hour
	maker := NewMaker("test_secret_key", 15*time.Minute, refreshTTL)

	token, err := maker.GenerateRefreshToken("user@example.com")
	require.NoError(t, err)

	claims, err := maker.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", claims.Subject)
	assert.Empty(t, claims.Role)
	assert.WithinDuration(t, time.Now().Add(refreshTTL), claims.ExpiresAt.Time, time.Second)
}

func TestMaker_ParseToken_InvalidTokens(t *testing.T) {
	secretKey := "test_secret_key_1234567890"
	maker := NewMaker(secretKey, 15*time.Minute, 24*time.Hour)

	validToken, err := maker.GenerateAccessToken("user@example.com", "USER")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "malformed token",
			token: "invalid.token.here",
		},
		{
			name:  "expired token",
			token: createExpiredToken(t, secretKey),
		},
		{
			name:  "wrong secret key",
			token: createTokenWithWrongSecret(t),
		},
		{
			name:  "tampered token",
			token: validToken + "tampered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := maker.ParseToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestMaker_IsValid_FailsClosed(t *testing.T) {
	maker := NewMaker("test_secret_key", 15*time.Minute, 24*time.Hour)

	token, err := maker.GenerateRefreshToken("user@example.com")
	require.NoError(t, err)

	assert.True(t, maker.IsValid(token, "user@example.com"))
	// чужой subject — невалидно
	assert.False(t, maker.IsValid(token, "other@example.com"))
	// мусор вместо токена — невалидно, без паники и ошибки
	assert.False(t, maker.IsValid("garbage", "user@example.com"))
	assert.False(t, maker.IsValid(createExpiredToken(t, "test_secret_key"), "user@example.com"))
}

func createExpiredToken(t *testing.T, secretKey string) string {
	maker := NewMaker(secretKey, -time.Hour, -time.Hour)
	token, err := maker.GenerateRefreshToken("user@example.com")
	require.NoError(t, err)
	return token
}

func createTokenWithWrongSecret(t *testing.T) string {
	wrongMaker := NewMaker("wrong_secret_key", 15*time.Minute, 24*time.Hour)
	token, err := wrongMaker.GenerateAccessToken("user@example.com", "USER")
	require.NoError(t, err)
	return token
}
