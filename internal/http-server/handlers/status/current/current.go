// Package current реализует публичный HTTP-обработчик текущего статуса.
//
// Возвращает урезанное представление без идентификаторов; при отсутствии
// активного статуса отдает 200 с isActive=false, чтобы фронтенд всегда
// получал отображаемое значение.
package current

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
	services "github.com/bikash/portfolio-backend/internal/services/status"
)

// Handler обрабатывает HTTP-запросы текущего статуса.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс получения текущего статуса.
type Service interface {
	GetCurrent(ctx context.Context) (*models.PublicStatus, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Текущий статус
// @Description Возвращает публичное представление активного статуса владельца портфолио.
// @Tags Status
// @Produce  json
// @Success 200 {object} response.OKResponse "Текущий статус"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /status/current [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.status.current"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	status, err := h.service.GetCurrent(r.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoActiveStatus) {
			render.JSON(w, r, response.OKWithData(models.PublicStatus{IsActive: false}))
			return
		}
		log.Error("failed to get current status", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get current status"))
		return
	}

	render.JSON(w, r, response.OKWithData(status))
}
