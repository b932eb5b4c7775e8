// Package list реализует админский HTTP-обработчик списка сообщений
// обратной связи.
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

// Handler обрабатывает HTTP-запросы списка сообщений.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс выборки сообщений.
type Service interface {
	List(ctx context.Context, filter models.ContactFilter) (*models.ContactList, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список сообщений обратной связи
// @Description Возвращает страницу сообщений с фильтром по статусу и поиском.
// @Tags Contact
// @Produce  json
// @Security BearerAuth
// @Param status query string false "Статус" Enums(UNREAD, READ, REPLIED, ARCHIVED)
// @Param search query string false "Поиск по имени, email и теме"
// @Param page query int false "Номер страницы" default(1)
// @Param limit query int false "Размер страницы" default(10)
// @Success 200 {object} response.OKResponse "Страница сообщений"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /contact [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()

	var filter models.ContactFilter
	if status := q.Get("status"); status != "" {
		filter.Status = &status
	}
	if search := q.Get("search"); search != "" {
		filter.Search = &search
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.Limit, _ = strconv.Atoi(q.Get("limit"))

	result, err := h.service.List(r.Context(), filter)
	if err != nil {
		log.Error("failed to list contact messages", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list messages"))
		return
	}

	render.JSON(w, r, response.OKWithData(result))
}
