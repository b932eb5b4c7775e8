// Package services отправляет письма по заданиям из очереди: подтверждение
// email, сброс пароля и уведомления о сообщениях обратной связи.
package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bikash/portfolio-backend/internal/config"
	"github.com/bikash/portfolio-backend/internal/lib/smtp"
	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
)

// Transport устанавливает соединение с SMTP-сервером.
type Transport interface {
	Connect() (smtp.Client, error)
	GetSMTPUser() string
}

// SenderService формирует и отправляет письма.
type SenderService struct {
	transport   Transport
	frontendURL string
	log         *slog.Logger
}

// NewSenderService создает новый экземпляр SenderService.
func NewSenderService(cfg *config.Config, log *slog.Logger, transport Transport) *SenderService {
	return &SenderService{
		transport:   transport,
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
		log:         log,
	}
}

// SendVerificationEmail отправляет письмо со ссылкой подтверждения email.
func (s *SenderService) SendVerificationEmail(body []byte) error {
	var message models.VerificationEmailEvent
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{message.Email}
	subject := "Подтверждение адреса электронной почты"
	bodyText := fmt.Sprintf("Здравствуйте!\n\nДля подтверждения адреса перейдите по ссылке:\n%s/verify-email?token=%s\n\nСсылка действительна 24 часа. Если вы не регистрировались, проигнорируйте это письмо.",
		s.frontendURL, message.Token)

	return s.sendEmail(to, subject, bodyText)
}

// SendPasswordResetEmail отправляет письмо со ссылкой сброса пароля.
func (s *SenderService) SendPasswordResetEmail(body []byte) error {
	var message models.PasswordResetEmailEvent
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{message.Email}
	subject := "Сброс пароля"
	bodyText := fmt.Sprintf("Здравствуйте!\n\nДля сброса пароля перейдите по ссылке:\n%s/reset-password?token=%s\n\nСсылка действительна 1 час. Если вы не запрашивали сброс, проигнорируйте это письмо.",
		s.frontendURL, message.Token)

	return s.sendEmail(to, subject, bodyText)
}

// SendContactNotification уведомляет администратора о новом сообщении
// обратной связи.
func (s *SenderService) SendContactNotification(body []byte) error {
	var message models.ContactEmailEvent
	if err := json.Unmarshal(body, &message); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("error unmarshalling message: %w", err)
	}

	to := []string{message.AdminEmail}
	subject := "Новое сообщение с формы обратной связи: " + message.Subject
	bodyText := fmt.Sprintf("Получено новое сообщение.\n\nОт: %s <%s>\nТема: %s\n\nПолный текст доступен в панели администратора: %s/admin/messages",
		message.Name, message.Email, message.Subject, s.frontendURL)

	return s.sendEmail(to, subject, bodyText)
}

func (s *SenderService) sendEmail(to []string, subject, bodyText string) error {
	msg := strings.Join([]string{
		"From: " + s.transport.GetSMTPUser(),
		"To: " + strings.Join(to, ";"),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect()
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer client.Close()

	if err := client.Mail(s.transport.GetSMTPUser()); err != nil {
		s.log.Error("failed to set MAIL FROM", slog.String("from", s.transport.GetSMTPUser()), sl.Err(err))
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			s.log.Error("failed to set RCPT TO", slog.String("recipient", addr), sl.Err(err))
			return err
		}
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get data writer", sl.Err(err))
		return err
	}

	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}

	if err = wc.Close(); err != nil {
		s.log.Error("failed to close data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}

	s.log.Info("email sent successfully", slog.Any("to", to))
	return nil
}
