// Package services содержит логику бизнес-уровня для сообщений обратной
// связи: прием с публичной формы и обработка администратором.
package services

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bikash/portfolio-backend/internal/models"
)

// Границы пагинации списка сообщений.
const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// ContactRepository описывает контракт для работы с сообщениями в базе данных.
type ContactRepository interface {
	CreateContactMessage(ctx context.Context, m *models.ContactMessage) (string, error)
	UpdateContactMessage(ctx context.Context, m *models.ContactMessage) error
	DeleteContactMessage(ctx context.Context, id string) error
	GetContactMessageByID(ctx context.Context, id string) (*models.ContactMessage, error)
	ListContactMessages(ctx context.Context, filter models.ContactFilter) ([]*models.ContactMessage, int64, error)
	CountContactsByStatus(ctx context.Context) (*models.ContactStatistics, error)
}

// AdminNotifier уведомляет администратора о новых сообщениях.
type AdminNotifier interface {
	NotifyNewContactMessage(name, email, subject string)
}

// ContactService реализует операции над сообщениями обратной связи.
type ContactService struct {
	repo     ContactRepository
	notifier AdminNotifier
	log      *slog.Logger
}

// NewContactService создает новый экземпляр ContactService.
func NewContactService(repo ContactRepository, notifier AdminNotifier, log *slog.Logger) *ContactService {
	return &ContactService{
		repo:     repo,
		notifier: notifier,
		log:      log,
	}
}

// Submit сохраняет сообщение с публичной формы со статусом UNREAD
// и ставит в очередь уведомление администратора.
func (s *ContactService) Submit(ctx context.Context, req models.ContactFormRequest, ipAddress, userAgent string) (*models.ContactMessage, error) {
	m := &models.ContactMessage{
		ID:      uuid.NewString(),
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactStatusUnread,
	}
	if ipAddress != "" {
		m.IPAddress = &ipAddress
	}
	if userAgent != "" {
		m.UserAgent = &userAgent
	}

	if _, err := s.repo.CreateContactMessage(ctx, m); err != nil {
		return nil, err
	}
	s.log.Info("received contact message", slog.String("id", m.ID))

	s.notifier.NotifyNewContactMessage(m.Name, m.Email, m.Subject)
	return m, nil
}

// List возвращает страницу сообщений по фильтру.
func (s *ContactService) List(ctx context.Context, filter models.ContactFilter) (*models.ContactList, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	messages, total, err := s.repo.ListContactMessages(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &models.ContactList{
		Messages:   messages,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// Read возвращает сообщение по ID и помечает его прочитанным,
// если оно еще не было прочитано.
func (s *ContactService) Read(ctx context.Context, id string) (*models.ContactMessage, error) {
	m, err := s.repo.GetContactMessageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if m.Status == models.ContactStatusUnread {
		m.Status = models.ContactStatusRead
		if err := s.repo.UpdateContactMessage(ctx, m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Update применяет частичное обновление статуса и заметок сообщения.
func (s *ContactService) Update(ctx context.Context, id string, req models.UpdateContactRequest) (*models.ContactMessage, error) {
	m, err := s.repo.GetContactMessageByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		m.Status = *req.Status
	}
	if req.Notes != nil {
		m.Notes = req.Notes
	}

	if err := s.repo.UpdateContactMessage(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete удаляет сообщение по ID.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteContactMessage(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted contact message", slog.String("id", id))
	return nil
}

// Statistics возвращает счетчики сообщений по статусам.
func (s *ContactService) Statistics(ctx context.Context) (*models.ContactStatistics, error) {
	return s.repo.CountContactsByStatus(ctx)
}
