// Package googlelogin реализует HTTP-обработчик начала входа через Google:
// генерирует анти-CSRF state, сохраняет его в cookie и перенаправляет
// на страницу согласия Google.
package googlelogin

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/lib/token"
)

// StateCookieName имя cookie с анти-CSRF значением state.
const StateCookieName = "oauth_state"

// Provider строит URL страницы согласия Google.
type Provider interface {
	AuthCodeURL(state string) string
}

// Handler обрабатывает HTTP-запросы начала входа через Google.
type Handler struct {
	log      *slog.Logger
	provider Provider
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, provider Provider) *Handler {
	return &Handler{
		log:      log,
		provider: provider,
	}
}

// ServeHTTP godoc
// @Summary Вход через Google
// @Description Перенаправляет на страницу согласия Google с анти-CSRF state.
// @Tags OAuth
// @Success 302 "Перенаправление на Google"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/google [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.oauth.googlelogin"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	state, err := token.Generate()
	if err != nil {
		log.Error("failed to generate state", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to start google login"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     StateCookieName,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("redirecting to google consent page")
	http.Redirect(w, r, h.provider.AuthCodeURL(state), http.StatusFound)
}
