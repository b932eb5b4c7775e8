// Package sender собирает приложение отправки писем: потребляет задания
// из очередей RabbitMQ и отправляет их через SMTP.
package sender

import (
	"context"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/bikash/portfolio-backend/internal/config"
	"github.com/bikash/portfolio-backend/internal/lib/rabbitmq"
	"github.com/bikash/portfolio-backend/internal/lib/smtp"
	senderservice "github.com/bikash/portfolio-backend/internal/services/sender"
)

// App представляет приложение отправки писем.
type App struct {
	conn          *amqp.Connection
	ch            *amqp.Channel
	senderService *senderservice.SenderService
	logger        *slog.Logger
}

// New создает новый экземпляр приложения отправки писем.
func New(_ context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	conn, err := rabbitmq.Connect(cfg.RabbitConnectionString, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}

	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.GetEmailQueues())
	if err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Error("failed to close connection", slog.Any("err", closeErr))
		}
		return nil, err
	}

	transport := smtp.NewTransport(cfg.SMTP, logger)
	senderService := senderservice.NewSenderService(cfg, logger, transport)

	return &App{
		conn:          conn,
		ch:            ch,
		senderService: senderService,
		logger:        logger,
	}, nil
}

// Run запускает потребителей очередей писем.
func (a *App) Run(ctx context.Context) error {
	consumers := []struct {
		queue   string
		handler func([]byte) error
	}{
		{"email.verification", a.senderService.SendVerificationEmail},
		{"email.password_reset", a.senderService.SendPasswordResetEmail},
		{"email.contact", a.senderService.SendContactNotification},
	}

	for _, c := range consumers {
		if err := rabbitmq.ConsumeMessages(ctx, a.ch, c.queue, c.handler); err != nil {
			a.logger.Error("failed to start consumer",
				slog.String("queue", c.queue), slog.Any("err", err))
			return err
		}
	}

	<-ctx.Done()
	a.logger.Info("sender service shutting down gracefully")

	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", slog.Any("err", err))
	}

	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", slog.Any("err", err))
	}

	return nil
}
