// Package clear реализует HTTP-обработчик деактивации активных статусов
// текущего пользователя.
package clear

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bikash/portfolio-backend/internal/http-server/middlewarectx"
	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
)

// Handler обрабатывает HTTP-запросы очистки статуса.
type Handler struct {
	log     *slog.Logger
	service Service
	users   UserService
}

// Service описывает интерфейс очистки статуса.
type Service interface {
	Clear(ctx context.Context, userID string) (int64, error)
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
// @Summary Очистка статуса
// @Description Деактивирует все активные статусы текущего пользователя. Идемпотентна.
// @Tags Status
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.OKResponse "Статус очищен"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /status [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.status.clear"

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

	user, err := h.users.GetProfile(r.Context(), email)
	if err != nil {
		log.Error("failed to resolve user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to clear status"))
		return
	}

	cleared, err := h.service.Clear(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to clear status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to clear status"))
		return
	}

	log.Info("status cleared",
		slog.String("user_id", user.ID),
		slog.Int64("count", cleared))
	render.JSON(w, r, response.OK())
}
