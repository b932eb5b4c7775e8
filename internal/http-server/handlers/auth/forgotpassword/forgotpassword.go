// Package forgotpassword реализует HTTP-обработчик запроса сброса пароля.
//
// Ответ одинаков для известного и неизвестного email, чтобы не раскрывать
// зарегистрированные адреса.
package forgotpassword

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
)

// Request — структура входных данных для запроса сброса пароля.
type Request struct {
	Email string `json:"email" validate:"required,email"`
}

// Handler обрабатывает HTTP-запросы сброса пароля.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики запроса сброса пароля.
type Service interface {
	ForgotPassword(ctx context.Context, email string) error
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
// @Summary Запрос сброса пароля
// @Description Отправляет письмо со ссылкой сброса, если email зарегистрирован.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Email учетной записи"
// @Success 200 {object} response.OKResponse "Запрос принят"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/forgot-password [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.forgotpassword"

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

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil {
		log.Error("failed to process password reset request", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to process request"))
		return
	}

	log.Info("password reset requested")
	render.JSON(w, r, response.OK())
}
