// Package resetpassword реализует HTTP-обработчик установки нового пароля
// по одноразовому токену сброса.
package resetpassword

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	services "github.com/bikash/portfolio-backend/internal/services/auth"
)

// Request — структура входных данных для установки нового пароля.
type Request struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

// Handler обрабатывает HTTP-запросы установки нового пароля.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики установки нового пароля.
type Service interface {
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Установка нового пароля
// @Description Устанавливает пароль по одноразовому токену из письма. Токен гасится.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Токен сброса и новый пароль"
// @Success 200 {object} response.OKResponse "Пароль установлен"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или недействительный токен"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/reset-password [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.resetpassword"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
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

	if err := h.service.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			log.Error("invalid reset token")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid or expired token"))
			return
		}
		log.Error("failed to reset password", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to reset password"))
		return
	}

	log.Info("password reset completed")
	render.JSON(w, r, response.OK())
}
