// Package featured реализует публичный HTTP-обработчик избранных проектов.
package featured

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

// Handler обрабатывает HTTP-запросы избранных проектов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс получения избранных проектов.
type Service interface {
	Featured(ctx context.Context) ([]*models.Project, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Избранные проекты
// @Tags Projects
// @Produce  json
// @Success 200 {object} response.OKResponse "Избранные проекты"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /projects/featured [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.featured"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	projects, err := h.service.Featured(r.Context())
	if err != nil {
		log.Error("failed to get featured projects", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get featured projects"))
		return
	}

	render.JSON(w, r, response.OKWithData(projects))
}
