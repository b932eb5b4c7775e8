package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	customjwt "github.com/bikash/portfolio-backend/internal/lib/jwt"
	"github.com/bikash/portfolio-backend/internal/lib/password"
	"github.com/bikash/portfolio-backend/internal/models"
	services "github.com/bikash/portfolio-backend/internal/services/auth"
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

func (m *UserRepoMock) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByRefreshToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByPasswordResetToken(ctx context.Context, resetToken string, now time.Time) (*models.User, error) {
	args := m.Called(ctx, resetToken, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByVerificationToken(ctx context.Context, verificationToken string, now time.Time) (*models.User, error) {
	args := m.Called(ctx, verificationToken, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) ExistsUserByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
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

// Мок для EmailNotifier
type NotifierMock struct {
	mock.Mock
}

func (m *NotifierMock) SendVerificationEmail(email, verificationToken string) {
	m.Called(email, verificationToken)
}

func (m *NotifierMock) SendPasswordResetEmail(email, resetToken string) {
	m.Called(email, resetToken)
}

func newTestService(repo *UserRepoMock, maker *JwtMakerMock, notifier *NotifierMock) *services.AuthService {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewAuthService(repo, maker, notifier, log)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock, n *NotifierMock)
		wantErr    error
	}{
		{
			name: "successful registration",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock, n *NotifierMock) {
				r.On("ExistsUserByEmail", mock.Anything, "bikash@example.com").Return(false, nil).Once()
				r.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
					return user.Email == "bikash@example.com" &&
						user.Role == models.RoleUser &&
						!user.EmailVerified &&
						user.PasswordHash != "" &&
						user.EmailVerificationToken != nil &&
						user.EmailVerificationExpiry != nil
				})).Return("new-id", nil).Once()
				n.On("SendVerificationEmail", "bikash@example.com", mock.AnythingOfType("string")).Once()
				j.On("GenerateAccessToken", "bikash@example.com", models.RoleUser).Return("access", nil).Once()
				j.On("GenerateRefreshToken", "bikash@example.com").Return("refresh", nil).Once()
				r.On("UpdateUser", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name: "email already registered",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock, _ *NotifierMock) {
				r.On("ExistsUserByEmail", mock.Anything, "bikash@example.com").Return(true, nil).Once()
			},
			wantErr: services.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			maker := new(JwtMakerMock)
			notifier := new(NotifierMock)
			tt.setupMocks(repo, maker, notifier)

			svc := newTestService(repo, maker, notifier)

			resp, err := svc.Register(context.Background(), "Bikash", "bikash@example.com", "password123")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "access", resp.Token)
				assert.Equal(t, "refresh", resp.RefreshToken)
				require.NotNil(t, resp.User.RefreshToken)
				assert.Equal(t, "refresh", *resp.User.RefreshToken)
			}
			repo.AssertExpectations(t)
			maker.AssertExpectations(t)
			notifier.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := password.GetHash("correct-password")
	require.NoError(t, err)

	user := func() *models.User {
		return &models.User{
			ID:           "user-1",
			Email:        "bikash@example.com",
			PasswordHash: hashed,
			Role:         models.RoleAdmin,
		}
	}

	tests := []struct {
		name       string
		password   string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
		wantErr    error
	}{
		{
			name:     "successful login",
			password: "correct-password",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "bikash@example.com").Return(user(), nil).Once()
				j.On("GenerateAccessToken", "bikash@example.com", models.RoleAdmin).Return("access", nil).Once()
				j.On("GenerateRefreshToken", "bikash@example.com").Return("refresh", nil).Once()
				r.On("UpdateUser", mock.Anything, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:     "wrong password",
			password: "wrong-password",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "bikash@example.com").Return(user(), nil).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name:     "unknown email indistinguishable from wrong password",
			password: "correct-password",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByEmail", mock.Anything, "bikash@example.com").
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: services.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			maker := new(JwtMakerMock)
			notifier := new(NotifierMock)
			tt.setupMocks(repo, maker)

			svc := newTestService(repo, maker, notifier)

			_, err := svc.Login(context.Background(), "bikash@example.com", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			repo.AssertExpectations(t)
			maker.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken_Rotation(t *testing.T) {
	oldToken := "old-refresh"
	user := &models.User{
		ID:           "user-1",
		Email:        "bikash@example.com",
		Role:         models.RoleAdmin,
		RefreshToken: &oldToken,
	}

	repo := new(UserRepoMock)
	maker := new(JwtMakerMock)
	notifier := new(NotifierMock)

	repo.On("GetUserByRefreshToken", mock.Anything, "old-refresh").Return(user, nil).Once()
	maker.On("IsValid", "old-refresh", "bikash@example.com").Return(true).Once()
	maker.On("GenerateAccessToken", "bikash@example.com", models.RoleAdmin).Return("new-access", nil).Once()
	maker.On("GenerateRefreshToken", "bikash@example.com").Return("new-refresh", nil).Once()
	repo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.RefreshToken != nil && *u.RefreshToken == "new-refresh"
	})).Return(nil).Once()

	svc := newTestService(repo, maker, notifier)

	resp, err := svc.RefreshToken(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", resp.Token)
	assert.Equal(t, "new-refresh", resp.RefreshToken)

	repo.AssertExpectations(t)
	maker.AssertExpectations(t)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(r *UserRepoMock, j *JwtMakerMock)
	}{
		{
			name: "unknown refresh token",
			setupMocks: func(r *UserRepoMock, _ *JwtMakerMock) {
				r.On("GetUserByRefreshToken", mock.Anything, "stale").
					Return(nil, repository.ErrNotFound).Once()
			},
		},
		{
			name: "expired refresh token fails closed",
			setupMocks: func(r *UserRepoMock, j *JwtMakerMock) {
				token := "stale"
				r.On("GetUserByRefreshToken", mock.Anything, "stale").
					Return(&models.User{Email: "bikash@example.com", RefreshToken: &token}, nil).Once()
				j.On("IsValid", "stale", "bikash@example.com").Return(false).Once()
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(UserRepoMock)
			maker := new(JwtMakerMock)
			notifier := new(NotifierMock)
			tt.setupMocks(repo, maker)

			svc := newTestService(repo, maker, notifier)

			_, err := svc.RefreshToken(context.Background(), "stale")
			assert.ErrorIs(t, err, services.ErrInvalidToken)
			repo.AssertExpectations(t)
			maker.AssertExpectations(t)
		})
	}
}

func TestAuthService_Logout(t *testing.T) {
	token := "refresh"
	user := &models.User{ID: "user-1", Email: "bikash@example.com", RefreshToken: &token}

	repo := new(UserRepoMock)
	repo.On("GetUserByRefreshToken", mock.Anything, "refresh").Return(user, nil).Once()
	repo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.RefreshToken == nil
	})).Return(nil).Once()

	svc := newTestService(repo, new(JwtMakerMock), new(NotifierMock))

	err := svc.Logout(context.Background(), "refresh")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAuthService_Logout_UnknownToken(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("GetUserByRefreshToken", mock.Anything, "unknown").
		Return(nil, repository.ErrNotFound).Once()

	svc := newTestService(repo, new(JwtMakerMock), new(NotifierMock))

	err := svc.Logout(context.Background(), "unknown")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
	repo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything)
}

func TestAuthService_ForgotPassword_UnknownEmail(t *testing.T) {
	repo := new(UserRepoMock)
	notifier := new(NotifierMock)

	repo.On("GetUserByEmail", mock.Anything, "nobody@example.com").
		Return(nil, repository.ErrNotFound).Once()

	svc := newTestService(repo, new(JwtMakerMock), notifier)

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "SendPasswordResetEmail", mock.Anything, mock.Anything)
}

func TestAuthService_ResetPassword(t *testing.T) {
	hashed, err := password.GetHash("old-password")
	require.NoError(t, err)

	resetToken := "reset-token"
	refreshToken := "refresh"
	expiry := time.Now().Add(30 * time.Minute)
	user := &models.User{
		ID:                  "user-1",
		Email:               "bikash@example.com",
		PasswordHash:        hashed,
		PasswordResetToken:  &resetToken,
		PasswordResetExpiry: &expiry,
		RefreshToken:        &refreshToken,
	}

	repo := new(UserRepoMock)
	repo.On("GetUserByPasswordResetToken", mock.Anything, "reset-token", mock.AnythingOfType("time.Time")).
		Return(user, nil).Once()
	repo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.PasswordResetToken == nil &&
			u.PasswordResetExpiry == nil &&
			u.RefreshToken == nil &&
			password.CompareHash(u.PasswordHash, "new-password") == nil
	})).Return(nil).Once()

	svc := newTestService(repo, new(JwtMakerMock), new(NotifierMock))

	err = svc.ResetPassword(context.Background(), "reset-token", "new-password")
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestAuthService_VerifyEmail_InvalidToken(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("GetUserByVerificationToken", mock.Anything, "bad", mock.AnythingOfType("time.Time")).
		Return(nil, repository.ErrNotFound).Once()

	svc := newTestService(repo, new(JwtMakerMock), new(NotifierMock))

	err := svc.VerifyEmail(context.Background(), "bad")
	assert.ErrorIs(t, err, services.ErrInvalidToken)
}

func TestAuthService_UpdatePersonalInfo_EmailChangeTriggersVerification(t *testing.T) {
	user := &models.User{
		ID:            "user-1",
		Email:         "old@example.com",
		Name:          "Bikash",
		EmailVerified: true,
	}

	repo := new(UserRepoMock)
	notifier := new(NotifierMock)

	repo.On("GetUserByEmail", mock.Anything, "old@example.com").Return(user, nil).Once()
	repo.On("ExistsUserByEmail", mock.Anything, "new@example.com").Return(false, nil).Once()
	notifier.On("SendVerificationEmail", "new@example.com", mock.AnythingOfType("string")).Once()
	repo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "new@example.com" &&
			!u.EmailVerified &&
			u.EmailVerificationToken != nil
	})).Return(nil).Once()

	svc := newTestService(repo, new(JwtMakerMock), notifier)

	updated, err := svc.UpdatePersonalInfo(context.Background(), "old@example.com", models.UpdatePersonalInfoRequest{
		Name:  "Bikash",
		Email: "new@example.com",
	})
	require.NoError(t, err)
	assert.False(t, updated.EmailVerified)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestAuthService_UpdatePersonalInfo_PartialKeepsOptionalFields(t *testing.T) {
	title := "Backend Engineer"
	phone := "+7 900 000-00-00"
	user := &models.User{
		ID:    "user-1",
		Email: "bikash@example.com",
		Name:  "Bikash",
		Title: &title,
		Phone: &phone,
	}

	location := "Казань"
	repo := new(UserRepoMock)
	repo.On("GetUserByEmail", mock.Anything, "bikash@example.com").Return(user, nil).Once()
	repo.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Title != nil && *u.Title == "Backend Engineer" &&
			u.Phone != nil && *u.Phone == "+7 900 000-00-00" &&
			u.Location != nil && *u.Location == "Казань"
	})).Return(nil).Once()

	svc := newTestService(repo, new(JwtMakerMock), new(NotifierMock))

	updated, err := svc.UpdatePersonalInfo(context.Background(), "bikash@example.com", models.UpdatePersonalInfoRequest{
		Name:     "Bikash",
		Email:    "bikash@example.com",
		Location: &location,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Title)
	assert.Equal(t, "Backend Engineer", *updated.Title)

	repo.AssertExpectations(t)
}
