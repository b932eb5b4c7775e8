// Package update реализует HTTP-обработчик частичного обновления статуса
// по ID. Чужой статус неотличим от несуществующего.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/bikash/portfolio-backend/internal/http-server/middlewarectx"
	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
	"github.com/bikash/portfolio-backend/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы обновления статуса.
type Handler struct {
	log      *slog.Logger
	service  Service
	users    UserService
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления статуса.
type Service interface {
	Update(ctx context.Context, userID, statusID string, req models.UpdateStatusRequest) (*models.Status, error)
}

// UserService отображает email из контекста в идентификатор пользователя.
type UserService interface {
	GetProfile(ctx context.Context, email string) (*models.User, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, users UserService) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		users:    users,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Обновление статуса по ID
// @Description Применяет только присутствующие в запросе поля статуса.
// @Tags Status
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID статуса"
// @Param request body models.UpdateStatusRequest true "Изменяемые поля"
// @Success 200 {object} response.OKResponse "Обновленный статус"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Статус не найден"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /status/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.status.update"

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

	statusID := chi.URLParam(r, "id")

	var req models.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	user, err := h.users.GetProfile(r.Context(), email)
	if err != nil {
		log.Error("failed to resolve user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update status"))
		return
	}

	status, err := h.service.Update(r.Context(), user.ID, statusID, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("status not found"))
			return
		}
		log.Error("failed to update status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update status"))
		return
	}

	log.Info("status updated", slog.String("id", status.ID))
	render.JSON(w, r, response.OKWithData(status))
}
