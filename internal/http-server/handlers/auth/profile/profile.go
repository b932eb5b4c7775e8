// Package profile реализует HTTP-обработчик выдачи профиля текущего
// пользователя.
package profile

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

// Handler обрабатывает HTTP-запросы профиля.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс получения профиля.
type Service interface {
	GetProfile(ctx context.Context, email string) (*models.User, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Профиль текущего пользователя
// @Description Возвращает профиль пользователя из JWT-контекста.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.OKResponse "Профиль пользователя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.profile"

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

	user, err := h.service.GetProfile(r.Context(), email)
	if err != nil {
		log.Error("failed to get profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get profile"))
		return
	}

	render.JSON(w, r, response.OKWithData(user))
}
