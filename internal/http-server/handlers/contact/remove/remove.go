// Package remove реализует админский HTTP-обработчик удаления сообщения
// обратной связи.
package remove

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
	"github.com/bikash/portfolio-backend/internal/storage/repository"
)

// Handler обрабатывает HTTP-запросы удаления сообщения.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс удаления сообщения.
type Service interface {
	Delete(ctx context.Context, id string) error
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удаление сообщения
// @Tags Contact
// @Produce  json
// @Security BearerAuth
// @Param id path string true "ID сообщения"
// @Success 200 {object} response.OKResponse "Сообщение удалено"
// @Failure 404 {object} response.ErrorResponse "Сообщение не найдено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /contact/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("message not found"))
			return
		}
		log.Error("failed to delete contact message", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to delete message"))
		return
	}

	log.Info("contact message deleted", slog.String("id", id))
	render.JSON(w, r, response.OK())
}
