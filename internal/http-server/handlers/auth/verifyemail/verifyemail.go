// Package verifyemail реализует HTTP-обработчик подтверждения email
// по одноразовому токену из письма.
package verifyemail

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	services "github.com/bikash/portfolio-backend/internal/services/auth"
)

// Handler обрабатывает HTTP-запросы подтверждения email.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики подтверждения email.
type Service interface {
	VerifyEmail(ctx context.Context, verificationToken string) error
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Подтверждение email
// @Description Подтверждает адрес по одноразовому токену из query-параметра. Токен гасится.
// @Tags Auth
// @Produce  json
// @Param token query string true "Токен подтверждения"
// @Success 200 {object} response.OKResponse "Email подтвержден"
// @Failure 400 {object} response.ErrorResponse "Отсутствующий или недействительный токен"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/verify-email [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.verifyemail"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	token := r.URL.Query().Get("token")
	if token == "" {
		log.Error("missing verification token")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing verification token"))
		return
	}

	if err := h.service.VerifyEmail(r.Context(), token); err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			log.Error("invalid verification token")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid or expired token"))
			return
		}
		log.Error("failed to verify email", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to verify email"))
		return
	}

	log.Info("email verified")
	render.JSON(w, r, response.OK())
}
