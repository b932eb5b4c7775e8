// Package services публикует задания на отправку писем в очередь.
// Отправка асинхронная: сбой публикации логируется и не влияет на
// операцию, породившую письмо.
package services

import (
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/bikash/portfolio-backend/internal/lib/rabbitmq"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
)

// NotifierService публикует почтовые события в обменник писем.
type NotifierService struct {
	channel    *amqp.Channel
	adminEmail string
	log        *slog.Logger
}

// NewNotifierService создает новый экземпляр NotifierService.
func NewNotifierService(channel *amqp.Channel, adminEmail string, log *slog.Logger) *NotifierService {
	return &NotifierService{
		channel:    channel,
		adminEmail: adminEmail,
		log:        log,
	}
}

// SendVerificationEmail ставит в очередь письмо с подтверждением email.
func (s *NotifierService) SendVerificationEmail(email, verificationToken string) {
	event := models.VerificationEmailEvent{
		Email: email,
		Token: verificationToken,
	}
	s.publish(rabbitmq.RoutingKeyVerification, event)
}

// SendPasswordResetEmail ставит в очередь письмо для сброса пароля.
func (s *NotifierService) SendPasswordResetEmail(email, resetToken string) {
	event := models.PasswordResetEmailEvent{
		Email: email,
		Token: resetToken,
	}
	s.publish(rabbitmq.RoutingKeyPasswordReset, event)
}

// NotifyNewContactMessage ставит в очередь уведомление администратора
// о новом сообщении обратной связи.
func (s *NotifierService) NotifyNewContactMessage(name, email, subject string) {
	event := models.ContactEmailEvent{
		AdminEmail: s.adminEmail,
		Name:       name,
		Email:      email,
		Subject:    subject,
	}
	s.publish(rabbitmq.RoutingKeyContact, event)
}

func (s *NotifierService) publish(routingKey string, event any) {
	if err := rabbitmq.PublishMessage(s.channel, rabbitmq.EmailExchange, routingKey, event); err != nil {
		s.log.Error("failed to publish email event",
			slog.String("routing_key", routingKey), sl.Err(err))
		return
	}
	s.log.Info("queued email event", slog.String("routing_key", routingKey))
}
