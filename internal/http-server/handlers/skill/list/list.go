// Package list реализует публичный HTTP-обработчик списка навыков.
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

// Handler обрабатывает HTTP-запросы списка навыков.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс выборки навыков.
type Service interface {
	List(ctx context.Context, filter models.SkillFilter) ([]*models.Skill, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список навыков
// @Description Возвращает навыки с фильтрами по категории и флагу featured, отсортированные по категории и имени.
// @Tags Skills
// @Produce  json
// @Param category query string false "Категория"
// @Param featured query bool false "Только избранные"
// @Success 200 {object} response.OKResponse "Навыки"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /skills [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.skill.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter := parseFilter(r)

	skills, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list skills", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list skills"))
		return
	}

	render.JSON(w, r, response.OKWithData(skills))
}

func parseFilter(r *http.Request) models.SkillFilter {
	q := r.URL.Query()

	var filter models.SkillFilter

	if category := q.Get("category"); category != "" {
		filter.Category = &category
	}
	if raw := q.Get("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}

	return filter
}
