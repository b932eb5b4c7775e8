// Package services содержит фоновые задачи обслуживания статусов:
// периодическую деактивацию истекших и ежемесячную очистку истории.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/bikash/portfolio-backend/internal/lib/sl"
)

// Расписание фоновых задач.
const (
	expirySweepInterval = time.Minute
	purgeHour           = 17
)

// StatusMaintainer описывает операции обслуживания статусов.
type StatusMaintainer interface {
	DeactivateExpired(ctx context.Context) (int64, error)
	PurgeHistory(ctx context.Context) (int64, error)
}

// SchedulerService запускает фоновые задачи по расписанию.
type SchedulerService struct {
	statuses StatusMaintainer
	log      *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(statuses StatusMaintainer, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		statuses: statuses,
		log:      log,
	}
}

// RunExpirySweep раз в минуту деактивирует истекшие статусы.
// Блокирует до отмены контекста.
func (s *SchedulerService) RunExpirySweep(ctx context.Context) {
	s.runExpirySweep(ctx)

	ticker := time.NewTicker(expirySweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runExpirySweep(ctx)
		}
	}
}

func (s *SchedulerService) runExpirySweep(ctx context.Context) {
	count, err := s.statuses.DeactivateExpired(ctx)
	if err != nil {
		s.log.Error("failed to deactivate expired statuses", sl.Err(err))
		return
	}
	if count > 0 {
		s.log.Info("deactivated expired statuses", slog.Int64("count", count))
	}
}

// RunMonthlyPurge удаляет историю статусов в 17:00 последнего дня каждого
// месяца. Блокирует до отмены контекста.
func (s *SchedulerService) RunMonthlyPurge(ctx context.Context) {
	for {
		next := nextPurgeTime(time.Now())
		s.log.Info("scheduled next status history purge", slog.Time("at", next))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.runMonthlyPurge(ctx)
		}
	}
}

func (s *SchedulerService) runMonthlyPurge(ctx context.Context) {
	count, err := s.statuses.PurgeHistory(ctx)
	if err != nil {
		s.log.Error("failed to purge status history", sl.Err(err))
		return
	}
	s.log.Info("purged status history", slog.Int64("count", count))
}

// nextPurgeTime возвращает ближайший момент 17:00 последнего дня месяца
// строго после now.
func nextPurgeTime(now time.Time) time.Time {
	at := lastDayOfMonthAt(now.Year(), now.Month(), now.Location())
	if at.After(now) {
		return at
	}
	next := now.AddDate(0, 1, -now.Day()+1)
	return lastDayOfMonthAt(next.Year(), next.Month(), next.Location())
}

func lastDayOfMonthAt(year int, month time.Month, loc *time.Location) time.Time {
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, loc)
	lastDay := firstOfNext.AddDate(0, 0, -1)
	return time.Date(lastDay.Year(), lastDay.Month(), lastDay.Day(), purgeHour, 0, 0, 0, loc)
}
