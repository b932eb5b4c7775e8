// Package jwt реализует выпуск и проверку пары токенов доступа/обновления.
//
// Access-токен короткоживущий и несёт subject (email) и роль пользователя.
// Refresh-токен живёт дольше, его значение дополнительно хранится на стороне
// сервера, что позволяет отзывать его при logout и ротации.
package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims описывает пользовательские данные, хранящиеся в JWT.
type CustomClaims struct {
	Role                 string `json:"role,omitempty"` // Роль пользователя (USER/ADMIN)
	jwt.RegisteredClaims        // Стандартные claims (Subject, ExpiresAt, IssuedAt и пр.)
}

// Maker описывает интерфейс для генерации и парсинга токенов.
type Maker interface {
	// GenerateAccessToken выпускает короткоживущий access-токен с email и ролью.
	GenerateAccessToken(email, role string) (string, error)
	// GenerateRefreshToken выпускает refresh-токен с email в subject.
	GenerateRefreshToken(email string) (string, error)
	// ParseToken разбирает токен и возвращает claims, если токен корректен.
	ParseToken(tokenStr string) (*CustomClaims, error)
	// IsValid проверяет токен против ожидаемого subject, не возвращая ошибку.
	IsValid(tokenStr, email string) bool
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и отдельных TTL для access и refresh токенов.
type MakerImpl struct {
	secretKey  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewMaker создаёт новый экземпляр MakerImpl.
func NewMaker(secretKey string, accessTTL, refreshTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey:  secretKey,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}
