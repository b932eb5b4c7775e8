// Package readbyslug реализует публичный HTTP-обработчик получения
// проекта по slug.
package readbyslug

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

// Handler обрабатывает HTTP-запросы чтения проекта по slug.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс получения проекта по slug.
type Service interface {
	GetBySlug(ctx context.Context, slug string) (*models.Project, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Проект по slug
// @Tags Projects
// @Produce  json
// @Param slug path string true "Slug проекта"
// @Success 200 {object} response.OKResponse "Проект"
// @Failure 404 {object} response.ErrorResponse "Проект не найден"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /projects/slug/{slug} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.readbyslug"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	slug := chi.URLParam(r, "slug")

	project, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("project not found"))
			return
		}
		log.Error("failed to get project", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to get project"))
		return
	}

	render.JSON(w, r, response.OKWithData(project))
}
