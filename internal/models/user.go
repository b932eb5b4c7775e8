// Package models содержит доменные структуры портфолио-бэкенда:
// пользователя, статус, проекты, навыки и сообщения обратной связи.
package models

import "time"

// Роли пользователя.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// ProviderGoogle значение поля Provider для аккаунтов, привязанных к Google.
const ProviderGoogle = "google"

// SocialLink ссылка на профиль в социальной сети.
type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon,omitempty"`
}

// User учетная запись с локальными учетными данными и/или привязкой к Google.
// RefreshToken хранит единственный активный refresh-токен: новая выдача
// перезаписывает предыдущий, история не ведётся.
type User struct {
	ID                      string       `json:"id"`
	Email                   string       `json:"email"`
	Name                    string       `json:"name"`
	PasswordHash            string       `json:"-"`
	Role                    string       `json:"role"`
	RefreshToken            *string      `json:"-"`
	EmailVerified           bool         `json:"emailVerified"`
	EmailVerificationToken  *string      `json:"-"`
	EmailVerificationExpiry *time.Time   `json:"-"`
	PasswordResetToken      *string      `json:"-"`
	PasswordResetExpiry     *time.Time   `json:"-"`
	GoogleID                *string      `json:"-"`
	Provider                *string      `json:"provider,omitempty"`
	Title                   *string      `json:"title,omitempty"`
	Description             *string      `json:"description,omitempty"`
	Phone                   *string      `json:"phone,omitempty"`
	Location                *string      `json:"location,omitempty"`
	ProfileImage            *string      `json:"profileImage,omitempty"`
	HeroImage               *string      `json:"heroImage,omitempty"`
	SocialLinks             []SocialLink `json:"socialLinks,omitempty"`
	CreatedAt               time.Time    `json:"createdAt"`
	UpdatedAt               time.Time    `json:"updatedAt"`
}

// AuthResponse пара токенов и профиль, возвращаемые после аутентификации.
type AuthResponse struct {
	User         *User  `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// UpdatePersonalInfoRequest запрос на обновление профиля администратора.
// Поля-указатели применяются только при наличии в запросе.
type UpdatePersonalInfoRequest struct {
	Name         string       `json:"name" validate:"required,min=2,max=100"`
	Email        string       `json:"email" validate:"required,email"`
	Title        *string      `json:"title,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Phone        *string      `json:"phone,omitempty"`
	Location     *string      `json:"location,omitempty"`
	ProfileImage *string      `json:"profileImage,omitempty"`
	HeroImage    *string      `json:"heroImage,omitempty"`
	SocialLinks  []SocialLink `json:"socialLinks,omitempty"`
}
