// Package history реализует HTTP-обработчик истории статусов текущего
// пользователя.
package history

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bikash/portfolio-backend/internal/http-server/middlewarectx"
	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
)

// Handler обрабатывает HTTP-запросы истории статусов.
type Handler struct {
	log     *slog.Logger
	service Service
	users   UserService
}

// Service описывает интерфейс получения истории статусов.
type Service interface {
	History(ctx context.Context, userID string, limit int) ([]*models.Status, error)
}

// UserService отображает email из контекста в идентификатор пользователя.
type UserService interface {
	GetProfile(ctx context.Context, email string) (*models.User, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, users UserService) *Handler {
	return &Handler{
		log:     log,
		service: service,
		users:   users,
	}
}

// ServeHTTP godoc
// @Summary История статусов
// @Description Возвращает статусы текущего пользователя от новых к старым. Лимит ограничен 50.
// @Tags Status
// @Produce  json
// @Security BearerAuth
// @Param limit query int false "Максимум записей" default(10)
// @Success 200 {object} response.OKResponse "История статусов"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /status/history [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.status.history"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || email == "" {
		log.Error("email not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0
	}

	user, err := h.users.GetProfile(r.Context(), email)
	if err != nil {
		log.Error("failed to resolve user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get status history"))
		return
	}

	statuses, err := h.service.History(r.Context(), user.ID, limit)
	if err != nil {
		log.Error("failed to get status history", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get status history"))
		return
	}

	render.JSON(w, r, response.OKWithData(statuses))
}
