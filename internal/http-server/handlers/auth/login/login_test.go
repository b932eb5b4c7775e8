package login

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

	"github.com/bikash/portfolio-backend/internal/models"
	services "github.com/bikash/portfolio-backend/internal/services/auth"
)

// MockService реализует интерфейс login.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResponse), args.Error(1)
}

func TestLoginHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный вход",
			requestBody: Request{
				Email:    "bikash@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "bikash@example.com", "password123").
					Return(&models.AuthResponse{
						User: &models.User{
							ID:    "user-1",
							Email: "bikash@example.com",
							Name:  "Bikash",
							Role:  models.RoleAdmin,
						},
						Token:        "access-token",
						RefreshToken: "refresh-token",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","data":{"user":{"id":"user-1","email":"bikash@example.com",` +
				`"name":"Bikash","role":"ADMIN","emailVerified":false,` +
				`"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"},` +
				`"token":"access-token","refreshToken":"refresh-token"}}`,
		},
		{
			name: "неверный пароль",
			requestBody: Request{
				Email:    "bikash@example.com",
				Password: "wrongpassword",
			},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "bikash@example.com", "wrongpassword").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid credentials"}`,
		},
		{
			name: "несуществующий email дает тот же ответ",
			requestBody: Request{
				Email:    "ghost@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "ghost@example.com", "password123").
					Return(nil, services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid credentials"}`,
		},
		{
			name: "невалидный email",
			requestBody: Request{
				Email:    "not-an-email",
				Password: "password123",
			},
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field Email must be a valid email address"}`,
		},
		{
			name:           "некорректный JSON",
			requestBody:    "not a json",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid request body"}`,
		},
		{
			name: "ошибка сервиса",
			requestBody: Request{
				Email:    "bikash@example.com",
				Password: "password123",
			},
			setupMock: func(m *MockService) {
				m.On("Login", mock.Anything, "bikash@example.com", "password123").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"login failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			var body []byte
			var err error
			if str, ok := tt.requestBody.(string); ok {
				body = []byte(str)
			} else {
				body, err = json.Marshal(tt.requestBody)
				require.NoError(t, err)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
