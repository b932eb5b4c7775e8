// Package refresh реализует HTTP-обработчик обмена refresh-токена на новую
// пару токенов. Прежний refresh-токен после обмена перестает действовать.
package refresh

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
	"github.com/bikash/portfolio-backend/internal/models"
	services "github.com/bikash/portfolio-backend/internal/services/auth"
)

// Request — структура входных данных для обновления токенов.
type Request struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Handler обрабатывает HTTP-запросы обновления токенов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики обновления токенов.
type Service interface {
	RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error)
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
// @Summary Обновление пары токенов
// @Description Обменивает refresh-токен на новую пару токенов с ротацией.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body Request true "Действующий refresh-токен"
// @Success 200 {object} response.OKResponse "Новая пара токенов"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Недействительный refresh-токен"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/refresh-token [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.refresh"

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

	resp, err := h.service.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			log.Error("invalid refresh token")
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid or expired token"))
			return
		}
		log.Error("token refresh failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("token refresh failed"))
		return
	}

	log.Info("tokens rotated", slog.String("id", resp.User.ID))
	render.JSON(w, r, response.OKWithData(resp))
}
