// Package services содержит логику работы с эфемерным статусом владельца
// портфолио: установка, авто-истечение и публичная выдача.
package services

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
	"github.com/bikash/portfolio-backend/internal/storage/repository"
)

// Ключ и срок жизни кэша текущего статуса.
const (
	currentStatusCacheKey = "status:current"
	currentStatusCacheTTL = 30 * time.Second
)

// Значения поля clearAfter, задающего срок действия статуса.
const (
	clearAfterNever = "never"
	clearAfterToday = "today"
	clearAfterWeek  = "week"
)

// historyLimit верхняя граница размера выдаваемой истории статусов.
const historyLimit = 50

// ErrNoActiveStatus активный статус отсутствует.
var ErrNoActiveStatus = errors.New("no active status")

// StatusRepository описывает контракт для работы со статусами в базе данных.
type StatusRepository interface {
	SaveNewActiveStatus(ctx context.Context, st *models.Status) error
	GetActiveStatus(ctx context.Context) (*models.Status, error)
	GetActiveStatusByUserID(ctx context.Context, userID string) (*models.Status, error)
	GetStatusByIDAndUserID(ctx context.Context, id, userID string) (*models.Status, error)
	UpdateStatus(ctx context.Context, st *models.Status) error
	ListStatusesByUserID(ctx context.Context, userID string, limit int) ([]*models.Status, error)
	DeactivateUserActiveStatuses(ctx context.Context, userID string) (int64, error)
	DeactivateExpiredStatuses(ctx context.Context, now time.Time) (int64, error)
	DeleteAllStatuses(ctx context.Context) (int64, error)
}

// Cache кэш публичного статуса.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// StatusService реализует операции над статусами.
type StatusService struct {
	repo  StatusRepository
	cache Cache
	log   *slog.Logger
}

// NewStatusService создает новый экземпляр StatusService.
func NewStatusService(repo StatusRepository, cache Cache, log *slog.Logger) *StatusService {
	return &StatusService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// GetCurrent возвращает публичное представление текущего активного статуса.
// Перед выборкой деактивируются истекшие статусы. Возвращает
// ErrNoActiveStatus при отсутствии активного статуса.
func (s *StatusService) GetCurrent(ctx context.Context) (*models.PublicStatus, error) {
	var cached models.PublicStatus
	found, err := s.cache.Get(currentStatusCacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read status cache", sl.Err(err))
	}
	if found {
		return &cached, nil
	}

	s.sweepExpired(ctx)

	st, err := s.repo.GetActiveStatus(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActiveStatus
		}
		return nil, err
	}

	public := &models.PublicStatus{
		Emoji:       st.Emoji,
		Message:     st.Message,
		IsActive:    st.IsActive,
		LastUpdated: st.UpdatedAt,
	}
	// TTL записи не переживает момент истечения статуса
	ttl := currentStatusCacheTTL
	if st.ExpiresAt != nil {
		if until := time.Until(*st.ExpiresAt); until < ttl {
			ttl = until
		}
	}
	if ttl > 0 {
		if err := s.cache.Set(currentStatusCacheKey, public, ttl); err != nil {
			s.log.Warn("failed to cache status", sl.Err(err))
		}
	}
	return public, nil
}

// GetMine возвращает активный статус пользователя целиком.
func (s *StatusService) GetMine(ctx context.Context, userID string) (*models.Status, error) {
	s.sweepExpired(ctx)

	st, err := s.repo.GetActiveStatusByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoActiveStatus
		}
		return nil, err
	}
	return st, nil
}

// Set устанавливает новый активный статус, деактивируя предыдущие.
func (s *StatusService) Set(ctx context.Context, userID string, req models.SetStatusRequest) (*models.Status, error) {
	now := time.Now()
	st := &models.Status{
		ID:                 uuid.NewString(),
		UserID:             userID,
		Emoji:              strings.TrimSpace(req.Emoji),
		Message:            strings.TrimSpace(req.Message),
		IsActive:           true,
		PredefinedStatusID: req.PredefinedStatusID,
		ExpiresAt:          s.computeExpiry(req.ClearAfter, now),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.SaveNewActiveStatus(ctx, st); err != nil {
		return nil, err
	}
	s.log.Info("set new status", slog.String("id", st.ID))
	s.invalidateCurrent()
	return st, nil
}

// Update частично обновляет статус пользователя по ID.
func (s *StatusService) Update(ctx context.Context, userID, statusID string, req models.UpdateStatusRequest) (*models.Status, error) {
	st, err := s.repo.GetStatusByIDAndUserID(ctx, statusID, userID)
	if err != nil {
		return nil, err
	}

	if req.Emoji != nil {
		st.Emoji = strings.TrimSpace(*req.Emoji)
	}
	if req.Message != nil {
		st.Message = strings.TrimSpace(*req.Message)
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}
	if req.ClearAfter != nil {
		st.ExpiresAt = s.computeExpiry(req.ClearAfter, time.Now())
	}

	if err := s.repo.UpdateStatus(ctx, st); err != nil {
		return nil, err
	}
	s.invalidateCurrent()
	return st, nil
}

// Clear деактивирует активные статусы пользователя. Возвращает количество
// деактивированных записей.
func (s *StatusService) Clear(ctx context.Context, userID string) (int64, error) {
	count, err := s.repo.DeactivateUserActiveStatuses(ctx, userID)
	if err != nil {
		return 0, err
	}
	s.invalidateCurrent()
	return count, nil
}

// History возвращает последние статусы пользователя. Запрошенный limit
// ограничивается сверху, неположительные значения заменяются максимумом.
func (s *StatusService) History(ctx context.Context, userID string, limit int) ([]*models.Status, error) {
	if limit <= 0 || limit > historyLimit {
		limit = historyLimit
	}
	return s.repo.ListStatusesByUserID(ctx, userID, limit)
}

// DeactivateExpired деактивирует истекшие статусы. Вызывается планировщиком.
func (s *StatusService) DeactivateExpired(ctx context.Context) (int64, error) {
	count, err := s.repo.DeactivateExpiredStatuses(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.invalidateCurrent()
	}
	return count, nil
}

// PurgeHistory удаляет всю историю статусов. Вызывается ежемесячной очисткой.
func (s *StatusService) PurgeHistory(ctx context.Context) (int64, error) {
	count, err := s.repo.DeleteAllStatuses(ctx)
	if err != nil {
		return 0, err
	}
	s.invalidateCurrent()
	return count, nil
}

// computeExpiry вычисляет момент истечения статуса по clearAfter:
// "never" и пустое значение — без истечения, "today" — конец текущего дня,
// "week" — конец ближайшего воскресенья, число — столько минут от now.
// Нераспознанное значение трактуется как "never" с предупреждением в логе.
func (s *StatusService) computeExpiry(clearAfter *string, now time.Time) *time.Time {
	if clearAfter == nil || *clearAfter == "" || *clearAfter == clearAfterNever {
		return nil
	}

	switch *clearAfter {
	case clearAfterToday:
		expiry := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
		return &expiry
	case clearAfterWeek:
		// Воскресенье считается концом той же недели
		daysUntilSunday := (7 - int(now.Weekday())) % 7
		sunday := now.AddDate(0, 0, daysUntilSunday)
		expiry := time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, 0, now.Location())
		return &expiry
	}

	minutes, err := strconv.Atoi(*clearAfter)
	if err != nil {
		s.log.Warn("unparseable clearAfter value, status will not expire",
			slog.String("clearAfter", *clearAfter))
		return nil
	}
	expiry := now.Add(time.Duration(minutes) * time.Minute)
	return &expiry
}

// sweepExpired деактивирует истекшие статусы попутно с чтением. Ошибка
// не прерывает основную операцию.
func (s *StatusService) sweepExpired(ctx context.Context) {
	count, err := s.repo.DeactivateExpiredStatuses(ctx, time.Now())
	if err != nil {
		s.log.Warn("failed to deactivate expired statuses", sl.Err(err))
		return
	}
	if count > 0 {
		s.log.Info("deactivated expired statuses", slog.Int64("count", count))
		s.invalidateCurrent()
	}
}

func (s *StatusService) invalidateCurrent() {
	if err := s.cache.Invalidate(currentStatusCacheKey); err != nil {
		s.log.Warn("failed to invalidate status cache", sl.Err(err))
	}
}
