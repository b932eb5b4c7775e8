// Package submit реализует публичный HTTP-обработчик формы обратной связи.
// Запоминает IP и User-Agent отправителя для модерации.
package submit

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
)

// Handler обрабатывает HTTP-запросы отправки сообщения.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс приема сообщения обратной связи.
type Service interface {
	Submit(ctx context.Context, req models.ContactFormRequest, ipAddress, userAgent string) (*models.ContactMessage, error)
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
// @Summary Отправка сообщения обратной связи
// @Description Принимает сообщение с публичной формы. Ограничено по частоте запросов.
// @Tags Contact
// @Accept  json
// @Produce  json
// @Param request body models.ContactFormRequest true "Сообщение"
// @Success 201 {object} response.OKResponse "Принятое сообщение"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 429 {object} response.ErrorResponse "Слишком много запросов"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /contact [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.contact.submit"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.ContactFormRequest
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

	msg, err := h.service.Submit(r.Context(), req, clientIP(r), r.UserAgent())
	if err != nil {
		log.Error("failed to submit contact message", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to submit message"))
		return
	}

	log.Info("contact message submitted", slog.String("id", msg.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(msg))
}

func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
