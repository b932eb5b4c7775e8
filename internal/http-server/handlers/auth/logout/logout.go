// Package logout реализует HTTP-обработчик выхода: отзывает refresh-токен,
// переданный в теле запроса.
package logout

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

// Request — структура входных данных для выхода.
type Request struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики выхода.
type Service interface {
	Logout(ctx context.Context, refreshToken string) error
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
// @Summary Выход пользователя
// @Description Отзывает переданный refresh-токен.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Отзываемый refresh-токен"
// @Success 200 {object} response.OKResponse "Успешный выход"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Недействительный refresh-токен"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

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

	if err := h.service.Logout(r.Context(), req.RefreshToken); err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			log.Error("unknown refresh token")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid or expired token"))
			return
		}
		log.Error("logout failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("logout failed"))
		return
	}

	log.Info("logout success")
	render.JSON(w, r, response.OK())
}
