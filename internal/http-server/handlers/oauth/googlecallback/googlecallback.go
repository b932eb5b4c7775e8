// Package googlecallback реализует HTTP-обработчик обратного вызова Google
// OAuth: сверяет state, обменивает код на токен, проверяет email по
// списку допущенных и завершает вход через сервис.
package googlecallback

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"golang.org/x/oauth2"

	"github.com/bikash/portfolio-backend/internal/config"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/oauth/googlelogin"
	"github.com/bikash/portfolio-backend/internal/http-server/response"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
	"github.com/bikash/portfolio-backend/internal/oauthprovider"
)

// Provider описывает обмен кода авторизации и получение профиля Google.
type Provider interface {
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	FetchUserInfo(ctx context.Context, token *oauth2.Token) (*oauthprovider.UserInfo, error)
}

// Service завершает вход по профилю Google.
type Service interface {
	ProcessGoogleAuth(ctx context.Context, info *oauthprovider.UserInfo) (*models.AuthResponse, error)
}

// Handler обрабатывает обратный вызов Google OAuth.
type Handler struct {
	log      *slog.Logger
	provider Provider
	service  Service
	cfg      *config.Config
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, provider Provider, service Service, cfg *config.Config) *Handler {
	return &Handler{
		log:      log,
		provider: provider,
		service:  service,
		cfg:      cfg,
	}
}

// ServeHTTP godoc
// @Summary Обратный вызов Google OAuth
// @Description Завершает вход через Google и перенаправляет на фронтенд с парой токенов.
// @Tags OAuth
// @Param state query string true "Анти-CSRF state"
// @Param code query string true "Код авторизации Google"
// @Success 302 "Перенаправление на фронтенд"
// @Failure 400 {object} response.ErrorResponse "Некорректный state или код"
// @Failure 403 {object} response.ErrorResponse "Email не входит в список допущенных"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/google/callback [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.oauth.googlecallback"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	cookie, err := r.Cookie(googlelogin.StateCookieName)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		log.Error("oauth state mismatch")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid oauth state"))
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		log.Error("missing authorization code")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing authorization code"))
		return
	}

	oauthToken, err := h.provider.Exchange(r.Context(), code)
	if err != nil {
		log.Error("failed to exchange authorization code", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to exchange authorization code"))
		return
	}

	info, err := h.provider.FetchUserInfo(r.Context(), oauthToken)
	if err != nil {
		log.Error("failed to fetch google profile", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to fetch google profile"))
		return
	}

	if !h.cfg.GoogleOAuth.IsEmailAllowed(info.Email) {
		log.Error("email is not allowed for google login")
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("email is not allowed"))
		return
	}

	resp, err := h.service.ProcessGoogleAuth(r.Context(), info)
	if err != nil {
		log.Error("failed to process google auth", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to process google auth"))
		return
	}

	log.Info("google login success", slog.String("id", resp.User.ID))

	redirect := h.cfg.FrontendURL + "/auth/callback?" + url.Values{
		"token":        {resp.Token},
		"refreshToken": {resp.RefreshToken},
	}.Encode()
	http.Redirect(w, r, redirect, http.StatusFound)
}
