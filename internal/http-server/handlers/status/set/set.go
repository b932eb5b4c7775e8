// Package set реализует HTTP-обработчик установки нового статуса.
// Предыдущие активные статусы пользователя при этом деактивируются.
package set

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/bikash/portfolio-backend/internal/http-server/middlewarectx"
	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
)

// Handler обрабатывает HTTP-запросы установки статуса.
type Handler struct {
	log      *slog.Logger
	service  Service
	users    UserService
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики установки статуса.
type Service interface {
	Set(ctx context.Context, userID string, req models.SetStatusRequest) (*models.Status, error)
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
// @Summary Установка статуса
// @Description Устанавливает новый активный статус, деактивируя предыдущие. ClearAfter задает авто-истечение.
// @Tags Status
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.SetStatusRequest true "Новый статус"
// @Success 200 {object} response.OKResponse "Установленный статус"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /status [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.status.set"

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

	var req models.SetStatusRequest
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
		render.JSON(w, r, response.Error("failed to set status"))
		return
	}

	status, err := h.service.Set(r.Context(), user.ID, req)
	if err != nil {
		log.Error("failed to set status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to set status"))
		return
	}

	log.Info("status set", slog.String("id", status.ID))
	render.JSON(w, r, response.OKWithData(status))
}
