// Package create реализует админский HTTP-обработчик создания проекта.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
	services "github.com/bikash/portfolio-backend/internal/services/project"
)

// Handler обрабатывает HTTP-запросы создания проекта.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс создания проекта.
type Service interface {
	Create(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создание проекта
// @Tags Projects
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.CreateProjectRequest true "Новый проект"
// @Success 201 {object} response.OKResponse "Созданный проект"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Slug уже занят"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /projects [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.project.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	project, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("slug is already taken"))
			return
		}
		log.Error("failed to create project", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create project"))
		return
	}

	log.Info("project created", slog.String("id", project.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(project))
}
