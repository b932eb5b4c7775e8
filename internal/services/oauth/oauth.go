// Package services содержит логику входа через Google OAuth и привязки
// Google-аккаунта к локальной учетной записи.
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bikash/portfolio-backend/internal/lib/jwt"
	"github.com/bikash/portfolio-backend/internal/lib/password"
	"github.com/bikash/portfolio-backend/internal/models"
	"github.com/bikash/portfolio-backend/internal/oauthprovider"
	"github.com/bikash/portfolio-backend/internal/storage/repository"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	UpdateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// OAuthService обрабатывает результат аутентификации через Google.
type OAuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewOAuthService создает новый экземпляр OAuthService.
func NewOAuthService(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *OAuthService {
	return &OAuthService{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// ProcessGoogleAuth создает, синхронизирует или привязывает учетную запись
// по профилю Google и выдает пару токенов:
//   - email не зарегистрирован: создается подтвержденная запись ADMIN;
//   - запись уже привязана к этому Google-аккаунту: синхронизируется имя;
//   - локальная запись без привязки: привязывается GoogleID с повышением
//     роли до ADMIN, локальный пароль сохраняется.
func (s *OAuthService) ProcessGoogleAuth(ctx context.Context, info *oauthprovider.UserInfo) (*models.AuthResponse, error) {
	user, err := s.users.GetUserByEmail(ctx, info.Email)
	switch {
	case err == nil:
		if err := s.syncOrLink(ctx, user, info); err != nil {
			return nil, err
		}
	case errors.Is(err, repository.ErrNotFound):
		user, err = s.createGoogleUser(ctx, info)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.generateAuthResponse(ctx, user)
}

func (s *OAuthService) createGoogleUser(ctx context.Context, info *oauthprovider.UserInfo) (*models.User, error) {
	// Учетная запись без локального пароля. Хэш от непредсказуемой
	// строки делает вход по паролю невозможным.
	hashed, err := password.GetHash("GOOGLE_OAUTH_" + info.ID)
	if err != nil {
		return nil, err
	}

	provider := models.ProviderGoogle
	googleID := info.ID
	user := &models.User{
		ID:            uuid.NewString(),
		Email:         info.Email,
		Name:          info.Name,
		PasswordHash:  hashed,
		Role:          models.RoleAdmin,
		EmailVerified: true,
		GoogleID:      &googleID,
		Provider:      &provider,
	}
	if info.Picture != "" {
		user.ProfileImage = &info.Picture
	}

	if _, err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("created user from google profile", slog.String("id", user.ID))
	return user, nil
}

func (s *OAuthService) syncOrLink(ctx context.Context, user *models.User, info *oauthprovider.UserInfo) error {
	if user.GoogleID != nil && *user.GoogleID == info.ID {
		if user.Name == info.Name {
			return nil
		}
		user.Name = info.Name
		return s.users.UpdateUser(ctx, user)
	}

	// Привязка Google к локальной записи. Пароль не трогаем: вход
	// по локальным учетным данным остается возможным.
	googleID := info.ID
	provider := models.ProviderGoogle
	user.GoogleID = &googleID
	user.Provider = &provider
	user.Role = models.RoleAdmin
	user.EmailVerified = true
	user.EmailVerificationToken = nil
	user.EmailVerificationExpiry = nil
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return err
	}
	s.log.Info("linked google account", slog.String("id", user.ID))
	return nil
}

func (s *OAuthService) generateAuthResponse(ctx context.Context, user *models.User) (*models.AuthResponse, error) {
	accessToken, err := s.jwtMaker.GenerateAccessToken(user.Email, user.Role)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtMaker.GenerateRefreshToken(user.Email)
	if err != nil {
		return nil, err
	}

	user.RefreshToken = &refreshToken
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		User:         user,
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}
