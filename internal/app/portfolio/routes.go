// Package portfolio предоставляет маршруты для основного приложения.
package portfolio

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/bikash/portfolio-backend/internal/config"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/auth/changepassword"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/auth/forgotpassword"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/auth/login"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/auth/logout"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/auth/profile"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/auth/refresh"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/auth/register"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/auth/resetpassword"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/auth/updateinfo"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/auth/verifyemail"
	contactlist "github.com/bikash/portfolio-backend/internal/http-server/handlers/contact/list"
	contactread "github.com/bikash/portfolio-backend/internal/http-server/handlers/contact/read"
	contactremove "github.com/bikash/portfolio-backend/internal/http-server/handlers/contact/remove"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/contact/stats"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/contact/submit"
	contactupdate "github.com/bikash/portfolio-backend/internal/http-server/handlers/contact/update"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/oauth/googlecallback"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/oauth/googlelogin"
	projectcreate "github.com/bikash/portfolio-backend/internal/http-server/handlers/project/create"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/project/featured"
	projectlist "github.com/bikash/portfolio-backend/internal/http-server/handlers/project/list"
	projectread "github.com/bikash/portfolio-backend/internal/http-server/handlers/project/read"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/project/readbyslug"
	projectremove "github.com/bikash/portfolio-backend/internal/http-server/handlers/project/remove"
	projectupdate "github.com/bikash/portfolio-backend/internal/http-server/handlers/project/update"
	skillcreate "github.com/bikash/portfolio-backend/internal/http-server/handlers/skill/create"
	skilllist "github.com/bikash/portfolio-backend/internal/http-server/handlers/skill/list"
	skillremove "github.com/bikash/portfolio-backend/internal/http-server/handlers/skill/remove"
	skillupdate "github.com/bikash/portfolio-backend/internal/http-server/handlers/skill/update"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/status/clear"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/status/current"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/status/history"
	"github.com/bikash/portfolio-backend/internal/http-server/handlers/status/mine"
	statusset "github.com/bikash/portfolio-backend/internal/http-server/handlers/status/set"
	statusupdate "github.com/bikash/portfolio-backend/internal/http-server/handlers/status/update"
	"github.com/bikash/portfolio-backend/internal/http-server/middlewarectx"
	"github.com/bikash/portfolio-backend/internal/lib/jwt"
	"github.com/bikash/portfolio-backend/internal/oauthprovider"
	authservice "github.com/bikash/portfolio-backend/internal/services/auth"
	contactservice "github.com/bikash/portfolio-backend/internal/services/contact"
	oauthservice "github.com/bikash/portfolio-backend/internal/services/oauth"
	projectservice "github.com/bikash/portfolio-backend/internal/services/project"
	skillservice "github.com/bikash/portfolio-backend/internal/services/skill"
	statusservice "github.com/bikash/portfolio-backend/internal/services/status"
)

// Services группирует сервисы, необходимые маршрутам.
type Services struct {
	Auth     *authservice.AuthService
	OAuth    *oauthservice.OAuthService
	Provider *oauthprovider.Client
	Status   *statusservice.StatusService
	Project  *projectservice.ProjectService
	Skill    *skillservice.SkillService
	Contact  *contactservice.ContactService
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config, jwtMaker jwt.Maker, svc *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, svc.Auth).ServeHTTP)
		r.Post("/auth/login", login.New(logger, svc.Auth).ServeHTTP)
		r.Post("/auth/refresh-token", refresh.New(logger, svc.Auth).ServeHTTP)
		r.Post("/auth/forgot-password", forgotpassword.New(logger, svc.Auth).ServeHTTP)
		r.Post("/auth/reset-password", resetpassword.New(logger, svc.Auth).ServeHTTP)
		r.Get("/auth/verify-email", verifyemail.New(logger, svc.Auth).ServeHTTP)
		r.Get("/auth/google", googlelogin.New(logger, svc.Provider).ServeHTTP)
		r.Get("/auth/google/callback", googlecallback.New(logger, svc.Provider, svc.OAuth, cfg).ServeHTTP)

		r.Get("/status/current", current.New(logger, svc.Status).ServeHTTP)

		r.Get("/projects", projectlist.New(logger, svc.Project).ServeHTTP)
		r.Get("/projects/featured", featured.New(logger, svc.Project).ServeHTTP)
		r.Get("/projects/slug/{slug}", readbyslug.New(logger, svc.Project).ServeHTTP)
		r.Get("/projects/{id}", projectread.New(logger, svc.Project).ServeHTTP)

		r.Get("/skills", skilllist.New(logger, svc.Skill).ServeHTTP)

		// Форма обратной связи с ограничением частоты
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/contact", submit.New(logger, svc.Contact).ServeHTTP)
		})

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))

			r.Post("/auth/logout", logout.New(logger, svc.Auth).ServeHTTP)
			r.Get("/auth/me", profile.New(logger, svc.Auth).ServeHTTP)
			r.Put("/auth/me", updateinfo.New(logger, svc.Auth).ServeHTTP)
			r.Post("/auth/change-password", changepassword.New(logger, svc.Auth).ServeHTTP)

			r.Get("/status/me", mine.New(logger, svc.Status, svc.Auth).ServeHTTP)
			r.Get("/status/history", history.New(logger, svc.Status, svc.Auth).ServeHTTP)
			r.Post("/status", statusset.New(logger, svc.Status, svc.Auth).ServeHTTP)
			r.Put("/status/{id}", statusupdate.New(logger, svc.Status, svc.Auth).ServeHTTP)
			r.Delete("/status", clear.New(logger, svc.Status, svc.Auth).ServeHTTP)

			// Админские конечные точки
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminOnlyMiddleware(logger))

				r.Post("/projects", projectcreate.New(logger, svc.Project).ServeHTTP)
				r.Put("/projects/{id}", projectupdate.New(logger, svc.Project).ServeHTTP)
				r.Delete("/projects/{id}", projectremove.New(logger, svc.Project).ServeHTTP)

				r.Post("/skills", skillcreate.New(logger, svc.Skill).ServeHTTP)
				r.Put("/skills/{id}", skillupdate.New(logger, svc.Skill).ServeHTTP)
				r.Delete("/skills/{id}", skillremove.New(logger, svc.Skill).ServeHTTP)

				r.Get("/contact", contactlist.New(logger, svc.Contact).ServeHTTP)
				r.Get("/contact/stats", stats.New(logger, svc.Contact).ServeHTTP)
				r.Get("/contact/{id}", contactread.New(logger, svc.Contact).ServeHTTP)
				r.Put("/contact/{id}", contactupdate.New(logger, svc.Contact).ServeHTTP)
				r.Delete("/contact/{id}", contactremove.New(logger, svc.Contact).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
