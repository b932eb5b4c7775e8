package set

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bikash/portfolio-backend/internal/http-server/middlewarectx"
	"github.com/bikash/portfolio-backend/internal/models"
)

// MockService реализует интерфейс set.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Set(ctx context.Context, userID string, req models.SetStatusRequest) (*models.Status, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Status), args.Error(1)
}

// MockUserService реализует интерфейс set.UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetProfile(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func TestSetHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		requestBody    interface{}
		email          string
		setupMock      func(*MockService, *MockUserService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная установка статуса",
			requestBody: models.SetStatusRequest{
				Emoji:   "🚀",
				Message: "working on something new",
			},
			email: "bikash@example.com",
			setupMock: func(s *MockService, u *MockUserService) {
				u.On("GetProfile", mock.Anything, "bikash@example.com").
					Return(&models.User{ID: "user-1"}, nil)
				s.On("Set", mock.Anything, "user-1", mock.AnythingOfType("models.SetStatusRequest")).
					Return(&models.Status{
						ID:       "status-1",
						UserID:   "user-1",
						Emoji:    "🚀",
						Message:  "working on something new",
						IsActive: true,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","data":{"id":"status-1","userId":"user-1","emoji":"🚀",` +
				`"message":"working on something new","isActive":true,` +
				`"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}}`,
		},
		{
			name:           "отсутствует авторизация",
			requestBody:    models.SetStatusRequest{Emoji: "🚀", Message: "hi"},
			email:          "",
			setupMock:      func(_ *MockService, _ *MockUserService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:           "пустое сообщение",
			requestBody:    models.SetStatusRequest{Emoji: "🚀"},
			email:          "bikash@example.com",
			setupMock:      func(_ *MockService, _ *MockUserService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Message is a required field"}`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			email:          "bikash@example.com",
			setupMock:      func(_ *MockService, _ *MockUserService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name:        "ошибка сервиса",
			requestBody: models.SetStatusRequest{Emoji: "🚀", Message: "hi"},
			email:       "bikash@example.com",
			setupMock: func(s *MockService, u *MockUserService) {
				u.On("GetProfile", mock.Anything, "bikash@example.com").
					Return(&models.User{ID: "user-1"}, nil)
				s.On("Set", mock.Anything, "user-1", mock.AnythingOfType("models.SetStatusRequest")).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to set status"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			mockUsers := new(MockUserService)
			tt.setupMock(mockService, mockUsers)

			handler := New(logger, mockService, mockUsers)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/status", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			ctx := context.WithValue(req.Context(), middlewarectx.User, tt.email)
			ctx = context.WithValue(ctx, middleware.RequestIDKey, "req-id")
			req = req.WithContext(ctx)

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
		})
	}
}
