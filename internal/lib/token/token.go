// Package token генерирует одноразовые токены для подтверждения email
// и сброса пароля. Токен — 32 случайных байта в URL-safe base64 без паддинга,
// пригодный для вставки в ссылку письма.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const tokenBytes = 32

// Generate возвращает новый случайный токен.
func Generate() (string, error) {
	const op = "token.Generate"
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
