// Package portfolio собирает основное HTTP-приложение: хранилище, кэш,
// RabbitMQ, сервисы и маршруты.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/bikash/portfolio-backend/internal/cache"
	"github.com/bikash/portfolio-backend/internal/config"
	"github.com/bikash/portfolio-backend/internal/lib/jwt"
	"github.com/bikash/portfolio-backend/internal/lib/rabbitmq"
	"github.com/bikash/portfolio-backend/internal/migrations"
	"github.com/bikash/portfolio-backend/internal/oauthprovider"
	authservice "github.com/bikash/portfolio-backend/internal/services/auth"
	contactservice "github.com/bikash/portfolio-backend/internal/services/contact"
	notifierservice "github.com/bikash/portfolio-backend/internal/services/notifier"
	oauthservice "github.com/bikash/portfolio-backend/internal/services/oauth"
	projectservice "github.com/bikash/portfolio-backend/internal/services/project"
	skillservice "github.com/bikash/portfolio-backend/internal/services/skill"
	statusservice "github.com/bikash/portfolio-backend/internal/services/status"
	"github.com/bikash/portfolio-backend/internal/storage/repository"
)

// App представляет основное HTTP-приложение.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	conn   *amqp.Connection
	ch     *amqp.Channel
}

// New создает приложение: подключает зависимости и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect storage: %w", err)
	}
	if err = migrations.Run(db.DB, "./migrations"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, fmt.Errorf("cache not initialized: %w", err)
	}

	conn, err := rabbitmq.Connect(cfg.RabbitConnectionString, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("failed to connect RabbitMQ: %w", err)
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetEmailQueues())
	if err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Error("failed to close connection", slog.Any("err", closeErr))
		}
		return nil, fmt.Errorf("failed to setup RabbitMQ channel: %w", err)
	}

	jwtMaker := jwt.NewMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.AccessTTL, cfg.JWTToken.RefreshTTL)
	notifier := notifierservice.NewNotifierService(ch, cfg.AdminEmail, logger)
	oauthProvider := oauthprovider.NewClient(cfg.GoogleOAuth)

	authService := authservice.NewAuthService(db, jwtMaker, notifier, logger)
	oauthService := oauthservice.NewOAuthService(db, jwtMaker, logger)
	statusService := statusservice.NewStatusService(db, cacheRedis, logger)
	projectService := projectservice.NewProjectService(db, cacheRedis, logger)
	skillService := skillservice.NewSkillService(db, logger)
	contactService := contactservice.NewContactService(db, notifier, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg, jwtMaker, &Services{
		Auth:     authService,
		OAuth:    oauthService,
		Provider: oauthProvider,
		Status:   statusService,
		Project:  projectService,
		Skill:    skillService,
		Contact:  contactService,
	})

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		conn:   conn,
		ch:     ch,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.ch.Close(); closeErr != nil {
			a.logger.Error("failed to close channel", slog.Any("err", closeErr))
		}
		if closeErr := a.conn.Close(); closeErr != nil {
			a.logger.Error("failed to close connection", slog.Any("err", closeErr))
		}
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close database", slog.Any("err", closeErr))
		}
		return err
	}
}
