package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	customjwt "github.com/bikash/portfolio-backend/internal/lib/jwt"
	"github.com/bikash/portfolio-backend/internal/lib/password"
	"github.com/bikash/portfolio-backend/internal/models"
	"github.com/bikash/portfolio-backend/internal/oauthprovider"
	services "github.com/bikash/portfolio-backend/internal/services/oauth"
	"github.com/bikash/portfolio-backend/internal/storage/repository"
)

// Мок для UserRepository
type UserRepoMock struct {
	mock.Mock
}

func (m *UserRepoMock) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepoMock) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// Мок для jwt.Maker
type JwtMakerMock struct {
	mock.Mock
}

func (m *JwtMakerMock) GenerateAccessToken(email, role string) (string, error) {
	args := m.Called(email, role)
	return args.String(0), args.Error(1)
}

func (m *JwtMakerMock) GenerateRefreshToken(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func (m *JwtMakerMock) ParseToken(token string) (*customjwt.CustomClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customjwt.CustomClaims), args.Error(1)
}

func (m *JwtMakerMock) IsValid(token, email string) bool {
	args := m.Called(token, email)
	return args.Bool(0)
}

func newTestService(repo *UserRepoMock, maker *JwtMakerMock) *services.OAuthService {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewOAuthService(repo, maker, log)
}

func expectTokenPair(repo *UserRepoMock, maker *JwtMakerMock, email, role string) {
	maker.On("GenerateAccessToken", email, role).Return("access", nil).Once()
	maker.On("GenerateRefreshToken", email).Return("refresh", nil).Once()
	repo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.RefreshToken != nil && *u.RefreshToken == "refresh"
	})).Return(nil).Once()
}

func TestOAuthService_NewUserBecomesVerifiedAdmin(t *testing.T) {
	repo := new(UserRepoMock)
	maker := new(JwtMakerMock)

	info := &oauthprovider.UserInfo{
		ID:    "google-123",
		Email: "bikash@example.com",
		Name:  "Bikash",
	}

	repo.On("GetUserByEmail", mock.Anything, "bikash@example.com").
		Return(nil, repository.ErrNotFound).Once()
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "bikash@example.com" &&
			u.Role == models.RoleAdmin &&
			u.EmailVerified &&
			u.GoogleID != nil && *u.GoogleID == "google-123" &&
			u.Provider != nil && *u.Provider == models.ProviderGoogle &&
			password.CompareHash(u.PasswordHash, "GOOGLE_OAUTH_google-123") == nil
	})).Return("new-id", nil).Once()
	expectTokenPair(repo, maker, "bikash@example.com", models.RoleAdmin)

	svc := newTestService(repo, maker)

	resp, err := svc.ProcessGoogleAuth(context.Background(), info)
	require.NoError(t, err)
	assert.Equal(t, "access", resp.Token)

	repo.AssertExpectations(t)
	maker.AssertExpectations(t)
}

func TestOAuthService_ExistingGoogleUserSyncsName(t *testing.T) {
	googleID := "google-123"
	user := &models.User{
		ID:       "user-1",
		Email:    "bikash@example.com",
		Name:     "Old Name",
		Role:     models.RoleAdmin,
		GoogleID: &googleID,
	}

	repo := new(UserRepoMock)
	maker := new(JwtMakerMock)

	repo.On("GetUserByEmail", mock.Anything, "bikash@example.com").Return(user, nil).Once()
	repo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Name == "New Name"
	})).Return(nil).Once()
	expectTokenPair(repo, maker, "bikash@example.com", models.RoleAdmin)

	svc := newTestService(repo, maker)

	_, err := svc.ProcessGoogleAuth(context.Background(), &oauthprovider.UserInfo{
		ID:    "google-123",
		Email: "bikash@example.com",
		Name:  "New Name",
	})
	require.NoError(t, err)

	repo.AssertExpectations(t)
	maker.AssertExpectations(t)
}

func TestOAuthService_LinksLocalAccountPreservingPassword(t *testing.T) {
	hashed, err := password.GetHash("local-password")
	require.NoError(t, err)

	user := &models.User{
		ID:           "user-1",
		Email:        "bikash@example.com",
		Name:         "Bikash",
		PasswordHash: hashed,
		Role:         models.RoleUser,
	}

	repo := new(UserRepoMock)
	maker := new(JwtMakerMock)

	repo.On("GetUserByEmail", mock.Anything, "bikash@example.com").Return(user, nil).Once()
	repo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.GoogleID != nil && *u.GoogleID == "google-123" &&
			u.Role == models.RoleAdmin &&
			u.EmailVerified &&
			u.PasswordHash == hashed
	})).Return(nil).Once()
	expectTokenPair(repo, maker, "bikash@example.com", models.RoleAdmin)

	svc := newTestService(repo, maker)

	resp, err := svc.ProcessGoogleAuth(context.Background(), &oauthprovider.UserInfo{
		ID:    "google-123",
		Email: "bikash@example.com",
		Name:  "Bikash",
	})
	require.NoError(t, err)

	// Локальный пароль продолжает действовать после привязки.
	assert.NoError(t, password.CompareHash(resp.User.PasswordHash, "local-password"))

	repo.AssertExpectations(t)
	maker.AssertExpectations(t)
}
