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

	"github.com/bikash/portfolio-backend/internal/models"
	services "github.com/bikash/portfolio-backend/internal/services/status"
	"github.com/bikash/portfolio-backend/internal/storage/repository"
)

// Мок для StatusRepository
type StatusRepoMock struct {
	mock.Mock
}

func (m *StatusRepoMock) SaveNewActiveStatus(ctx context.Context, st *models.Status) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *StatusRepoMock) GetActiveStatus(ctx context.Context) (*models.Status, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Status), args.Error(1)
}

func (m *StatusRepoMock) GetActiveStatusByUserID(ctx context.Context, userID string) (*models.Status, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Status), args.Error(1)
}

func (m *StatusRepoMock) GetStatusByIDAndUserID(ctx context.Context, id, userID string) (*models.Status, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Status), args.Error(1)
}

func (m *StatusRepoMock) UpdateStatus(ctx context.Context, st *models.Status) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *StatusRepoMock) ListStatusesByUserID(ctx context.Context, userID string, limit int) ([]*models.Status, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Status), args.Error(1)
}

func (m *StatusRepoMock) DeactivateUserActiveStatuses(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StatusRepoMock) DeactivateExpiredStatuses(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *StatusRepoMock) DeleteAllStatuses(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// Мок для Cache
type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newTestService(repo *StatusRepoMock, cache *CacheMock) *services.StatusService {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return services.NewStatusService(repo, cache, log)
}

func TestStatusService_Set_ClearAfter(t *testing.T) {
	tests := []struct {
		name        string
		clearAfter  *string
		checkExpiry func(t *testing.T, expiresAt *time.Time, started time.Time)
	}{
		{
			name:       "without clearAfter status never expires",
			clearAfter: nil,
			checkExpiry: func(t *testing.T, expiresAt *time.Time, _ time.Time) {
				assert.Nil(t, expiresAt)
			},
		},
		{
			name:       "never keeps status forever",
			clearAfter: ptr("never"),
			checkExpiry: func(t *testing.T, expiresAt *time.Time, _ time.Time) {
				assert.Nil(t, expiresAt)
			},
		},
		{
			name:       "today expires at end of day",
			clearAfter: ptr("today"),
			checkExpiry: func(t *testing.T, expiresAt *time.Time, started time.Time) {
				require.NotNil(t, expiresAt)
				assert.Equal(t, started.Day(), expiresAt.Day())
				assert.Equal(t, 23, expiresAt.Hour())
				assert.Equal(t, 59, expiresAt.Minute())
			},
		},
		{
			name:       "week expires on upcoming sunday",
			clearAfter: ptr("week"),
			checkExpiry: func(t *testing.T, expiresAt *time.Time, started time.Time) {
				require.NotNil(t, expiresAt)
				assert.Equal(t, time.Sunday, expiresAt.Weekday())
				assert.True(t, expiresAt.After(started))
				assert.True(t, expiresAt.Sub(started) <= 8*24*time.Hour)
			},
		},
		{
			name:       "minutes expire after given duration",
			clearAfter: ptr("30"),
			checkExpiry: func(t *testing.T, expiresAt *time.Time, started time.Time) {
				require.NotNil(t, expiresAt)
				diff := expiresAt.Sub(started)
				assert.InDelta(t, (30 * time.Minute).Seconds(), diff.Seconds(), 5)
			},
		},
		{
			name:       "unparseable value falls back to never",
			clearAfter: ptr("sometime"),
			checkExpiry: func(t *testing.T, expiresAt *time.Time, _ time.Time) {
				assert.Nil(t, expiresAt)
			},
		},
		{
			name:       "negative minutes yield already passed expiry",
			clearAfter: ptr("-5"),
			checkExpiry: func(t *testing.T, expiresAt *time.Time, started time.Time) {
				require.NotNil(t, expiresAt)
				assert.True(t, expiresAt.Before(started))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(StatusRepoMock)
			cache := new(CacheMock)

			var saved *models.Status
			repo.On("SaveNewActiveStatus", mock.Anything, mock.AnythingOfType("*models.Status")).
				Run(func(args mock.Arguments) {
					saved = args.Get(1).(*models.Status)
				}).Return(nil).Once()
			cache.On("Invalidate", "status:current").Return(nil).Once()

			svc := newTestService(repo, cache)
			started := time.Now()

			st, err := svc.Set(context.Background(), "user-1", models.SetStatusRequest{
				Emoji:      "🚀",
				Message:    "Работаю над новым проектом",
				ClearAfter: tt.clearAfter,
			})
			require.NoError(t, err)
			require.NotNil(t, saved)
			assert.True(t, st.IsActive)
			assert.Equal(t, "user-1", st.UserID)
			tt.checkExpiry(t, saved.ExpiresAt, started)

			repo.AssertExpectations(t)
			cache.AssertExpectations(t)
		})
	}
}

func TestStatusService_Set_TrimsFields(t *testing.T) {
	repo := new(StatusRepoMock)
	cache := new(CacheMock)

	var saved *models.Status
	repo.On("SaveNewActiveStatus", mock.Anything, mock.AnythingOfType("*models.Status")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*models.Status)
		}).Return(nil).Once()
	cache.On("Invalidate", "status:current").Return(nil).Once()

	svc := newTestService(repo, cache)

	_, err := svc.Set(context.Background(), "user-1", models.SetStatusRequest{
		Emoji:   "  🚀 ",
		Message: "  Работаю над новым проектом\n",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "🚀", saved.Emoji)
	assert.Equal(t, "Работаю над новым проектом", saved.Message)
}

func TestStatusService_Update_TrimsFields(t *testing.T) {
	repo := new(StatusRepoMock)
	cache := new(CacheMock)

	existing := &models.Status{ID: "status-1", UserID: "user-1", Emoji: "💻", Message: "Пишу код", IsActive: true}
	repo.On("GetStatusByIDAndUserID", mock.Anything, "status-1", "user-1").
		Return(existing, nil).Once()
	repo.On("UpdateStatus", mock.Anything, mock.AnythingOfType("*models.Status")).
		Return(nil).Once()
	cache.On("Invalidate", "status:current").Return(nil).Once()

	svc := newTestService(repo, cache)

	got, err := svc.Update(context.Background(), "user-1", "status-1", models.UpdateStatusRequest{
		Message: ptr("  Перерыв на кофе  "),
	})
	require.NoError(t, err)
	assert.Equal(t, "Перерыв на кофе", got.Message)
}

func TestStatusService_GetCurrent_CacheHit(t *testing.T) {
	repo := new(StatusRepoMock)
	cache := new(CacheMock)

	cached := models.PublicStatus{Emoji: "💻", Message: "Пишу код", IsActive: true}
	cache.On("Get", "status:current", mock.Anything).
		Run(func(args mock.Arguments) {
			out := args.Get(1).(*models.PublicStatus)
			*out = cached
		}).Return(true, nil).Once()

	svc := newTestService(repo, cache)

	got, err := svc.GetCurrent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cached, *got)

	repo.AssertNotCalled(t, "GetActiveStatus", mock.Anything)
}

func TestStatusService_GetCurrent_SweepsAndStrips(t *testing.T) {
	repo := new(StatusRepoMock)
	cache := new(CacheMock)

	updated := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	active := &models.Status{
		ID:        "status-1",
		UserID:    "user-1",
		Emoji:     "☕",
		Message:   "Перерыв на кофе",
		IsActive:  true,
		UpdatedAt: updated,
	}

	cache.On("Get", "status:current", mock.Anything).Return(false, nil).Once()
	repo.On("DeactivateExpiredStatuses", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(int64(1), nil).Once()
	cache.On("Invalidate", "status:current").Return(nil).Once()
	repo.On("GetActiveStatus", mock.Anything).Return(active, nil).Once()
	cache.On("Set", "status:current", mock.Anything, mock.Anything).Return(nil).Once()

	svc := newTestService(repo, cache)

	got, err := svc.GetCurrent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "☕", got.Emoji)
	assert.Equal(t, "Перерыв на кофе", got.Message)
	assert.True(t, got.IsActive)
	assert.Equal(t, updated, got.LastUpdated)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestStatusService_GetCurrent_CacheTTLCappedByExpiry(t *testing.T) {
	repo := new(StatusRepoMock)
	cache := new(CacheMock)

	expiresAt := time.Now().Add(10 * time.Second)
	active := &models.Status{
		ID:        "status-1",
		UserID:    "user-1",
		Emoji:     "☕",
		Message:   "Перерыв на кофе",
		IsActive:  true,
		ExpiresAt: &expiresAt,
		UpdatedAt: time.Now(),
	}

	cache.On("Get", "status:current", mock.Anything).Return(false, nil).Once()
	repo.On("DeactivateExpiredStatuses", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(int64(0), nil).Once()
	repo.On("GetActiveStatus", mock.Anything).Return(active, nil).Once()

	var cachedTTL time.Duration
	cache.On("Set", "status:current", mock.Anything, mock.AnythingOfType("time.Duration")).
		Run(func(args mock.Arguments) {
			cachedTTL = args.Get(2).(time.Duration)
		}).Return(nil).Once()

	svc := newTestService(repo, cache)

	_, err := svc.GetCurrent(context.Background())
	require.NoError(t, err)
	assert.Greater(t, cachedTTL, time.Duration(0))
	assert.LessOrEqual(t, cachedTTL, 10*time.Second)

	cache.AssertExpectations(t)
}

func TestStatusService_GetCurrent_NoActive(t *testing.T) {
	repo := new(StatusRepoMock)
	cache := new(CacheMock)

	cache.On("Get", "status:current", mock.Anything).Return(false, nil).Once()
	repo.On("DeactivateExpiredStatuses", mock.Anything, mock.AnythingOfType("time.Time")).
		Return(int64(0), nil).Once()
	repo.On("GetActiveStatus", mock.Anything).
		Return(nil, repository.ErrNotFound).Once()

	svc := newTestService(repo, cache)

	_, err := svc.GetCurrent(context.Background())
	assert.ErrorIs(t, err, services.ErrNoActiveStatus)
}

func TestStatusService_History_LimitClamped(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"zero replaced with max", 0, 50},
		{"above max clamped", 500, 50},
		{"within range kept", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(StatusRepoMock)
			cache := new(CacheMock)

			repo.On("ListStatusesByUserID", mock.Anything, "user-1", tt.want).
				Return([]*models.Status{}, nil).Once()

			svc := newTestService(repo, cache)

			_, err := svc.History(context.Background(), "user-1", tt.requested)
			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestStatusService_Clear(t *testing.T) {
	repo := new(StatusRepoMock)
	cache := new(CacheMock)

	repo.On("DeactivateUserActiveStatuses", mock.Anything, "user-1").
		Return(int64(2), nil).Once()
	cache.On("Invalidate", "status:current").Return(nil).Once()

	svc := newTestService(repo, cache)

	count, err := svc.Clear(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestStatusService_PurgeHistory(t *testing.T) {
	repo := new(StatusRepoMock)
	cache := new(CacheMock)

	repo.On("DeleteAllStatuses", mock.Anything).Return(int64(7), nil).Once()
	cache.On("Invalidate", "status:current").Return(nil).Once()

	svc := newTestService(repo, cache)

	count, err := svc.PurgeHistory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestStatusService_Update_NotOwned(t *testing.T) {
	repo := new(StatusRepoMock)
	cache := new(CacheMock)

	repo.On("GetStatusByIDAndUserID", mock.Anything, "status-1", "user-2").
		Return(nil, repository.ErrNotFound).Once()

	svc := newTestService(repo, cache)

	_, err := svc.Update(context.Background(), "user-2", "status-1", models.UpdateStatusRequest{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func ptr(s string) *string {
	return &s
}
