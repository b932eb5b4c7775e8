// Package read реализует админский HTTP-обработчик чтения сообщения.
// Непрочитанное сообщение при чтении помечается как READ.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
	"github.com/bikash/portfolio-backend/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы чтения сообщения.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс чтения сообщения.
type Service interface {
	Read(ctx context.Context, id string) (*models.ContactMessage, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Сообщение по ID
// @Description Возвращает сообщение и помечает непрочитанное как READ.
// @Tags Contact
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID сообщения"
// @Success 200 {object} response.OKResponse "Сообщение"
// @Failure 404 {object} response.ErrorResponse "Сообщение не найдено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /contact/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	msg, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("message not found"))
			return
		}
		log.Error("failed to get contact message", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get message"))
		return
	}

	render.JSON(w, r, response.OKWithData(msg))
}
