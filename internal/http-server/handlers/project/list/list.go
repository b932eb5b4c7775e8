// Package list реализует публичный HTTP-обработчик списка проектов
// с фильтрацией и пагинацией.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
)

// Handler обрабатывает HTTP-запросы списка проектов.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс выборки проектов.
type Service interface {
	List(ctx context.Context, filter models.ProjectFilter) (*models.ProjectList, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список проектов
// @Description Возвращает страницу проектов с фильтрами по категории, флагу featured и поиску.
// @Tags Projects
// @Produce  json
// @Param category query string false "Категория"
// @Param featured query bool false "Только избранные"
// @Param search query string false "Поиск по названию и описанию"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(10)
// @Success 200 {object} response.OKResponse "Страница проектов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /projects [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter := parseFilter(r)

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list projects", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list projects"))
		return
	}

	render.JSON(w, r, response.OKWithData(result))
}

func parseFilter(r *http.Request) models.ProjectFilter {
	q := r.URL.Query()

	var filter models.ProjectFilter

	if category := q.Get("category"); category != "" {
		filter.Category = &category
	}
	if raw := q.Get("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}
	if search := q.Get("search"); search != "" {
		filter.Search = &search
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	return filter
}
