// Package stats реализует админский HTTP-обработчик счетчиков сообщений
// по статусам обработки.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
)

// Handler обрабатывает HTTP-запросы статистики сообщений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс получения статистики.
type Service interface {
	Statistics(ctx context.Context) (*models.ContactStatistics, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Статистика сообщений
// @Description Возвращает количество сообщений по каждому статусу обработки.
// @Tags Contact
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.OKResponse "Счетчики по статусам"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /contact/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.stats"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	statistics, err := h.service.Statistics(r.Context())
	if err != nil {
		log.Error("failed to get contact statistics", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get statistics"))
		return
	}

	render.JSON(w, r, response.OKWithData(statistics))
}
