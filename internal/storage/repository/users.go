package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bikash/portfolio-backend/internal/models"
)

const userColumns = `id, email, name, password_hash, role, refresh_token,
	email_verified, email_verification_token, email_verification_expiry,
	password_reset_token, password_reset_expiry, google_id, provider,
	title, description, phone, location, profile_image, hero_image,
	social_links, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	var refreshToken, verificationToken, resetToken sql.NullString
	var googleID, provider sql.NullString
	var title, description, phone, location sql.NullString
	var profileImage, heroImage sql.NullString
	var verificationExpiry, resetExpiry sql.NullTime
	var socialLinks []byte
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role,
		&refreshToken, &u.EmailVerified, &verificationToken, &verificationExpiry,
		&resetToken, &resetExpiry, &googleID, &provider,
		&title, &description, &phone, &location, &profileImage, &heroImage,
		&socialLinks, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}

	u.RefreshToken = nullStringPtr(refreshToken)
	u.EmailVerificationToken = nullStringPtr(verificationToken)
	u.EmailVerificationExpiry = nullTimePtr(verificationExpiry)
	u.PasswordResetToken = nullStringPtr(resetToken)
	u.PasswordResetExpiry = nullTimePtr(resetExpiry)
	u.GoogleID = nullStringPtr(googleID)
	u.Provider = nullStringPtr(provider)
	u.Title = nullStringPtr(title)
	u.Description = nullStringPtr(description)
	u.Phone = nullStringPtr(phone)
	u.Location = nullStringPtr(location)
	u.ProfileImage = nullStringPtr(profileImage)
	u.HeroImage = nullStringPtr(heroImage)

	if len(socialLinks) > 0 {
		if err := json.Unmarshal(socialLinks, &u.SocialLinks); err != nil {
			return nil, err
		}
	}
	return u, nil
}

func nullStringPtr(v sql.NullString) *string {
	if v.Valid {
		return &v.String
	}
	return nil
}

func nullTimePtr(v sql.NullTime) *time.Time {
	if v.Valid {
		return &v.Time
	}
	return nil
}

// CreateUser сохраняет нового пользователя и возвращает его ID.
func (s *Storage) CreateUser(ctx context.Context, user *models.User) (string, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	socialLinks, err := json.Marshal(user.SocialLinks)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO users (id, email, name, password_hash, role, refresh_token,
			      email_verified, email_verification_token, email_verification_expiry,
			      password_reset_token, password_reset_expiry, google_id, provider,
			      title, description, phone, location, profile_image, hero_image, social_links)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
			  RETURNING id;`
	var newID string
	if err := s.DB.QueryRowContext(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role, user.RefreshToken,
		user.EmailVerified, user.EmailVerificationToken, user.EmailVerificationExpiry,
		user.PasswordResetToken, user.PasswordResetExpiry, user.GoogleID, user.Provider,
		user.Title, user.Description, user.Phone, user.Location,
		user.ProfileImage, user.HeroImage, socialLinks).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateUser перезаписывает все изменяемые поля пользователя.
func (s *Storage) UpdateUser(ctx context.Context, user *models.User) error {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	socialLinks, err := json.Marshal(user.SocialLinks)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE users
			  SET email = $2, name = $3, password_hash = $4, role = $5, refresh_token = $6,
			      email_verified = $7, email_verification_token = $8, email_verification_expiry = $9,
			      password_reset_token = $10, password_reset_expiry = $11, google_id = $12, provider = $13,
			      title = $14, description = $15, phone = $16, location = $17,
			      profile_image = $18, hero_image = $19, social_links = $20,
			      updated_at = now()
			  WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Role, user.RefreshToken,
		user.EmailVerified, user.EmailVerificationToken, user.EmailVerificationExpiry,
		user.PasswordResetToken, user.PasswordResetExpiry, user.GoogleID, user.Provider,
		user.Title, user.Description, user.Phone, user.Location,
		user.ProfileImage, user.HeroImage, socialLinks)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// GetUserByEmail возвращает пользователя по email. Сравнение точное,
// без нормализации регистра.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	return s.getUserBy(ctx, op, "email = $1", email)
}

// GetUserByID возвращает пользователя по идентификатору.
func (s *Storage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage.GetUserByID"
	return s.getUserBy(ctx, op, "id = $1", id)
}

// GetUserByRefreshToken возвращает пользователя по хранимому refresh-токену.
func (s *Storage) GetUserByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	const op = "storage.GetUserByRefreshToken"
	return s.getUserBy(ctx, op, "refresh_token = $1", token)
}

// GetUserByPasswordResetToken возвращает пользователя с неистекшим
// токеном сброса пароля.
func (s *Storage) GetUserByPasswordResetToken(ctx context.Context, resetToken string, now time.Time) (*models.User, error) {
	const op = "storage.GetUserByPasswordResetToken"
	return s.getUserBy(ctx, op, "password_reset_token = $1 AND password_reset_expiry > $2", resetToken, now)
}

// GetUserByVerificationToken возвращает пользователя с неистекшим
// токеном подтверждения email.
func (s *Storage) GetUserByVerificationToken(ctx context.Context, verificationToken string, now time.Time) (*models.User, error) {
	const op = "storage.GetUserByVerificationToken"
	return s.getUserBy(ctx, op, "email_verification_token = $1 AND email_verification_expiry > $2", verificationToken, now)
}

// ExistsUserByEmail проверяет занятость email.
func (s *Storage) ExistsUserByEmail(ctx context.Context, email string) (bool, error) {
	const op = "storage.ExistsUserByEmail"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	if err := s.DB.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

func (s *Storage) getUserBy(ctx context.Context, op, where string, args ...any) (*models.User, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where
	row := s.DB.QueryRowContext(ctx, query, args...)
	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
