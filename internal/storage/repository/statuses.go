package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bikash/portfolio-backend/internal/models"
)

const statusColumns = `id, user_id, emoji, message, is_active,
	predefined_status_id, expires_at, created_at, updated_at`

func scanStatus(row rowScanner) (*models.Status, error) {
	st := &models.Status{}
	var predefinedID sql.NullString
	var expiresAt sql.NullTime
	if err := row.Scan(&st.ID, &st.UserID, &st.Emoji, &st.Message, &st.IsActive,
		&predefinedID, &expiresAt, &st.CreatedAt, &st.UpdatedAt); err != nil {
		return nil, err
	}
	st.PredefinedStatusID = nullStringPtr(predefinedID)
	st.ExpiresAt = nullTimePtr(expiresAt)
	return st, nil
}

// SaveNewActiveStatus деактивирует активные статусы пользователя и вставляет
// новый активный статус одной транзакцией.
func (s *Storage) SaveNewActiveStatus(ctx context.Context, st *models.Status) error {
	const op = "storage.SaveNewActiveStatus"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback()

	deactivate := `UPDATE user_status
				   SET is_active = false, updated_at = now()
				   WHERE user_id = $1 AND is_active = true`
	if _, err := tx.ExecContext(ctx, deactivate, st.UserID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	insert := `INSERT INTO user_status (id, user_id, emoji, message, is_active,
				   predefined_status_id, expires_at)
			   VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := tx.ExecContext(ctx, insert,
		st.ID, st.UserID, st.Emoji, st.Message, st.IsActive,
		st.PredefinedStatusID, st.ExpiresAt); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// GetActiveStatus возвращает текущий активный статус. Портфолио
// принадлежит одному владельцу, поэтому выборка глобальная.
func (s *Storage) GetActiveStatus(ctx context.Context) (*models.Status, error) {
	const op = "storage.GetActiveStatus"
	return s.getStatusBy(ctx, op, "is_active = true ORDER BY updated_at DESC LIMIT 1")
}

// GetActiveStatusByUserID возвращает активный статус пользователя.
func (s *Storage) GetActiveStatusByUserID(ctx context.Context, userID string) (*models.Status, error) {
	const op = "storage.GetActiveStatusByUserID"
	return s.getStatusBy(ctx, op, "user_id = $1 AND is_active = true ORDER BY updated_at DESC LIMIT 1", userID)
}

// GetStatusByIDAndUserID возвращает статус по ID в пределах записей
// пользователя. Чужой статус неотличим от несуществующего.
func (s *Storage) GetStatusByIDAndUserID(ctx context.Context, id, userID string) (*models.Status, error) {
	const op = "storage.GetStatusByIDAndUserID"
	return s.getStatusBy(ctx, op, "id = $1 AND user_id = $2", id, userID)
}

// UpdateStatus перезаписывает изменяемые поля статуса.
func (s *Storage) UpdateStatus(ctx context.Context, st *models.Status) error {
	const op = "storage.UpdateStatus"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE user_status
			  SET emoji = $2, message = $3, is_active = $4, expires_at = $5,
			      updated_at = now()
			  WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query,
		st.ID, st.Emoji, st.Message, st.IsActive, st.ExpiresAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

// ListStatusesByUserID возвращает историю статусов пользователя, новые первыми.
func (s *Storage) ListStatusesByUserID(ctx context.Context, userID string, limit int) ([]*models.Status, error) {
	const op = "storage.ListStatusesByUserID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + statusColumns + `
			  FROM user_status
			  WHERE user_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2`
	rows, err := s.DB.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var statuses []*models.Status
	for rows.Next() {
		st, err := scanStatus(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		statuses = append(statuses, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return statuses, nil
}

// DeactivateUserActiveStatuses деактивирует все активные статусы пользователя
// и возвращает количество затронутых строк.
func (s *Storage) DeactivateUserActiveStatuses(ctx context.Context, userID string) (int64, error) {
	const op = "storage.DeactivateUserActiveStatuses"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE user_status
			  SET is_active = false, updated_at = now()
			  WHERE user_id = $1 AND is_active = true`
	res, err := s.DB.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// DeactivateExpiredStatuses деактивирует активные статусы с наступившим
// сроком истечения и возвращает количество затронутых строк.
func (s *Storage) DeactivateExpiredStatuses(ctx context.Context, now time.Time) (int64, error) {
	const op = "storage.DeactivateExpiredStatuses"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE user_status
			  SET is_active = false, updated_at = now()
			  WHERE is_active = true AND expires_at IS NOT NULL AND expires_at <= $1`
	res, err := s.DB.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

// DeleteAllStatuses удаляет всю историю статусов и возвращает количество
// удаленных строк. Используется ежемесячной очисткой.
func (s *Storage) DeleteAllStatuses(ctx context.Context) (int64, error) {
	const op = "storage.DeleteAllStatuses"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM user_status`)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return count, nil
}

func (s *Storage) getStatusBy(ctx context.Context, op, where string, args ...any) (*models.Status, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + statusColumns + ` FROM user_status WHERE ` + where
	row := s.DB.QueryRowContext(ctx, query, args...)
	st, err := scanStatus(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return st, nil
}
