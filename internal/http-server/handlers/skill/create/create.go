// Package create реализует админский HTTP-обработчик создания навыка.
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
	services "github.com/bikash/portfolio-backend/internal/services/skill"
)

// Handler обрабатывает HTTP-запросы создания навыка.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс создания навыка.
type Service interface {
	Create(ctx context.Context, req models.CreateSkillRequest) (*models.Skill, error)
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
// @Summary Создание навыка
// @Tags Skills
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.CreateSkillRequest true "Новый навык"
// @Success 201 {object} response.OKResponse "Созданный навык"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 409 {object} response.ErrorResponse "Имя уже занято"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /skills [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.skill.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.CreateSkillRequest
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

	skill, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrNameTaken) {
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("skill name is already taken"))
			return
		}
		log.Error("failed to create skill", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create skill"))
		return
	}

	log.Info("skill created", slog.String("id", skill.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(skill))
}
