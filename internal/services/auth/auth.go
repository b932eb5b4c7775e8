// Package services содержит логику бизнес-уровня для аутентификации
// и управления учетной записью владельца портфолио.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bikash/portfolio-backend/internal/lib/jwt"
	"github.com/bikash/portfolio-backend/internal/lib/password"
	"github.com/bikash/portfolio-backend/internal/lib/token"
	"github.com/bikash/portfolio-backend/internal/models"
	"github.com/bikash/portfolio-backend/internal/storage/repository"
)

// Сроки жизни одноразовых токенов, отправляемых по почте.
const (
	verificationTokenTTL  = 24 * time.Hour
	passwordResetTokenTTL = time.Hour
)

// Ошибки бизнес-уровня. Обработчики сопоставляют их с HTTP-кодами.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	UpdateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByRefreshToken(ctx context.Context, token string) (*models.User, error)
	GetUserByPasswordResetToken(ctx context.Context, resetToken string, now time.Time) (*models.User, error)
	GetUserByVerificationToken(ctx context.Context, verificationToken string, now time.Time) (*models.User, error)
	ExistsUserByEmail(ctx context.Context, email string) (bool, error)
}

// EmailNotifier публикует задания на отправку писем. Отправка выполняется
// в фоне и не влияет на исход операции.
type EmailNotifier interface {
	SendVerificationEmail(email, verificationToken string)
	SendPasswordResetEmail(email, resetToken string)
}

// AuthService отвечает за регистрацию, вход, ротацию refresh-токенов
// и операции с учетной записью.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	notifier EmailNotifier
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, notifier EmailNotifier, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		notifier: notifier,
		log:      log,
	}
}

// Register создает нового пользователя с ролью USER и отправляет письмо
// для подтверждения email. Возвращает ErrEmailTaken, если email занят.
func (s *AuthService) Register(ctx context.Context, name, email, rawPassword string) (*models.AuthResponse, error) {
	taken, err := s.users.ExistsUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}

	verificationToken, err := token.Generate()
	if err != nil {
		return nil, err
	}
	verificationExpiry := time.Now().UTC().Add(verificationTokenTTL)

	user := &models.User{
		ID:                      uuid.NewString(),
		Email:                   email,
		Name:                    name,
		PasswordHash:            hashed,
		Role:                    models.RoleUser,
		EmailVerified:           false,
		EmailVerificationToken:  &verificationToken,
		EmailVerificationExpiry: &verificationExpiry,
	}
	if _, err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("registered new user", slog.String("id", user.ID))

	s.notifier.SendVerificationEmail(user.Email, verificationToken)

	return s.generateAuthResponse(ctx, user)
}

// Login проверяет учетные данные и выдает пару токенов. Несуществующий
// email и неверный пароль неразличимы для клиента.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.AuthResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.generateAuthResponse(ctx, user)
}

// RefreshToken обменивает refresh-токен на новую пару токенов. Прежний
// refresh-токен при этом перестает действовать.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	user, err := s.users.GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if !s.jwtMaker.IsValid(refreshToken, user.Email) {
		return nil, ErrInvalidToken
	}
	return s.generateAuthResponse(ctx, user)
}

// Logout сбрасывает сохраненный refresh-токен по его значению. Возвращает
// ErrInvalidToken, если токен никому не принадлежит.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	user, err := s.users.GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	user.RefreshToken = nil
	return s.users.UpdateUser(ctx, user)
}

// GetProfile возвращает профиль пользователя по email.
func (s *AuthService) GetProfile(ctx context.Context, email string) (*models.User, error) {
	return s.users.GetUserByEmail(ctx, email)
}

// ChangePassword меняет пароль после проверки текущего.
func (s *AuthService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if err := password.CompareHash(user.PasswordHash, currentPassword); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed
	return s.users.UpdateUser(ctx, user)
}

// ForgotPassword создает токен сброса пароля и отправляет письмо.
// Для неизвестного email операция завершается успешно без побочных
// эффектов, чтобы не раскрывать зарегистрированные адреса.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.log.Info("password reset requested for unknown email")
			return nil
		}
		return err
	}

	resetToken, err := token.Generate()
	if err != nil {
		return err
	}
	resetExpiry := time.Now().UTC().Add(passwordResetTokenTTL)
	user.PasswordResetToken = &resetToken
	user.PasswordResetExpiry = &resetExpiry
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return err
	}

	s.notifier.SendPasswordResetEmail(user.Email, resetToken)
	return nil
}

// ResetPassword устанавливает новый пароль по одноразовому токену сброса.
// Токен гасится, активный refresh-токен отзывается.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	user, err := s.users.GetUserByPasswordResetToken(ctx, resetToken, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	hashed, err := password.GetHash(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hashed
	user.PasswordResetToken = nil
	user.PasswordResetExpiry = nil
	user.RefreshToken = nil
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return err
	}
	s.log.Info("password reset completed", slog.String("id", user.ID))
	return nil
}

// VerifyEmail подтверждает email по одноразовому токену.
func (s *AuthService) VerifyEmail(ctx context.Context, verificationToken string) error {
	user, err := s.users.GetUserByVerificationToken(ctx, verificationToken, time.Now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}

	user.EmailVerified = true
	user.EmailVerificationToken = nil
	user.EmailVerificationExpiry = nil
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return err
	}
	s.log.Info("email verified", slog.String("id", user.ID))
	return nil
}

// UpdatePersonalInfo обновляет профиль. Смена email сбрасывает признак
// подтверждения и запускает повторную верификацию.
func (s *AuthService) UpdatePersonalInfo(ctx context.Context, email string, req models.UpdatePersonalInfoRequest) (*models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if req.Email != user.Email {
		taken, err := s.users.ExistsUserByEmail(ctx, req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}

		verificationToken, err := token.Generate()
		if err != nil {
			return nil, err
		}
		verificationExpiry := time.Now().UTC().Add(verificationTokenTTL)
		user.Email = req.Email
		user.EmailVerified = false
		user.EmailVerificationToken = &verificationToken
		user.EmailVerificationExpiry = &verificationExpiry

		s.notifier.SendVerificationEmail(req.Email, verificationToken)
	}

	user.Name = req.Name
	// Необязательные поля применяются только при наличии в запросе
	if req.Title != nil {
		user.Title = req.Title
	}
	if req.Description != nil {
		user.Description = req.Description
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Location != nil {
		user.Location = req.Location
	}
	if req.ProfileImage != nil {
		user.ProfileImage = req.ProfileImage
	}
	if req.HeroImage != nil {
		user.HeroImage = req.HeroImage
	}
	if req.SocialLinks != nil {
		user.SocialLinks = req.SocialLinks
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// generateAuthResponse выдает пару токенов и сохраняет refresh-токен
// в записи пользователя, отзывая предыдущий.
func (s *AuthService) generateAuthResponse(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	const op = "services.generateAuthResponse"

	accessToken, err := s.jwtMaker.GenerateAccessToken(user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	refreshToken, err := s.jwtMaker.GenerateRefreshToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user.RefreshToken = &refreshToken
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Debug("issued token pair", slog.String("id", user.ID))

	return &models.AuthResponse{
		User:         user,
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}
