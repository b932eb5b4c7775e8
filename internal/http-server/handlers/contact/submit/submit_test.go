package submit

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
)

// MockService реализует интерфейс submit.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Submit(ctx context.Context, req models.ContactFormRequest, ipAddress, userAgent string) (*models.ContactMessage, error) {
	args := m.Called(ctx, req, ipAddress, userAgent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func TestSubmitHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	validRequest := models.ContactFormRequest{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Job offer",
		Message: "Would love to talk about a role.",
	}

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "успешная отправка",
			requestBody: validRequest,
			setupMock: func(m *MockService) {
				m.On("Submit", mock.Anything, validRequest, "192.0.2.1", "test-agent").
					Return(&models.ContactMessage{
						ID:      "msg-1",
						Name:    "Alice",
						Email:   "alice@example.com",
						Subject: "Job offer",
						Message: "Would love to talk about a role.",
						Status:  models.ContactStatusUnread,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{"status":"OK","data":{"id":"msg-1","name":"Alice","email":"alice@example.com",` +
				`"subject":"Job offer","message":"Would love to talk about a role.","status":"UNREAD",` +
				`"createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}}`,
		},
		{
			name: "невалидный email",
			requestBody: models.ContactFormRequest{
				Name:    "Alice",
				Email:   "not-an-email",
				Subject: "Hi",
				Message: "Hello",
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
			name:        "ошибка сервиса",
			requestBody: validRequest,
			setupMock: func(m *MockService) {
				m.On("Submit", mock.Anything, validRequest, "192.0.2.1", "test-agent").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to submit message"}`,
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

			req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("User-Agent", "test-agent")
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-id"))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockService.AssertExpectations(t)
		})
	}
}
