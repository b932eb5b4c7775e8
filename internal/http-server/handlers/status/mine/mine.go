// Package mine реализует HTTP-обработчик активного статуса текущего
// пользователя с полным представлением.
package mine

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bikash/portfolio-backend/internal/http-server/middlewarectx"
	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
	services "github.com/bikash/portfolio-backend/internal/services/status"
)

// Handler обрабатывает HTTP-запросы своего статуса.
type Handler struct {
	log     *slog.Logger
	service Service
	users   UserService
}

// Service описывает интерфейс получения статуса пользователя.
type Service interface {
	GetMine(ctx context.Context, userID string) (*models.Status, error)
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
// @Summary Мой активный статус
// @Description Возвращает полное представление активного статуса текущего пользователя.
// @Tags Status
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.OKResponse "Активный статус"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Активный статус отсутствует"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /status/me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.status.mine"

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
		render.JSON(w, r, response.Error("failed to get status"))
		return
	}

	status, err := h.service.GetMine(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, services.ErrNoActiveStatus) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("no active status"))
			return
		}
		log.Error("failed to get status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get status"))
		return
	}

	render.JSON(w, r, response.OKWithData(status))
}
