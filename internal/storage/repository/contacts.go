package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bikash/portfolio-backend/internal/models"
)

const contactColumns = `id, name, email, subject, message, status,
	ip_address, user_agent, notes, created_at, updated_at`

func scanContact(row rowScanner) (*models.ContactMessage, error) {
	m := &models.ContactMessage{}
	var ipAddress, userAgent, notes sql.NullString
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message,
		&m.Status, &ipAddress, &userAgent, &notes, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	m.IPAddress = nullStringPtr(ipAddress)
	m.UserAgent = nullStringPtr(userAgent)
	m.Notes = nullStringPtr(notes)
	return m, nil
}

// CreateContactMessage сохраняет сообщение обратной связи и возвращает его ID.
func (s *Storage) CreateContactMessage(ctx context.Context, m *models.ContactMessage) (string, error) {
	const op = "storage.CreateContactMessage"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO contact_messages (id, name, email, subject, message, status,
				  ip_address, user_agent)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id;`
	var newID string
	if err := s.DB.QueryRowContext(ctx, query,
		m.ID, m.Name, m.Email, m.Subject, m.Message, m.Status,
		m.IPAddress, m.UserAgent).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateContactMessage перезаписывает статус и заметки сообщения.
func (s *Storage) UpdateContactMessage(ctx context.Context, m *models.ContactMessage) error {
	const op = "storage.UpdateContactMessage"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE contact_messages
			  SET status = $2, notes = $3, updated_at = now()
			  WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query, m.ID, m.Status, m.Notes)
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

// DeleteContactMessage удаляет сообщение по ID.
func (s *Storage) DeleteContactMessage(ctx context.Context, id string) error {
	const op = "storage.DeleteContactMessage"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
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

// GetContactMessageByID возвращает сообщение по идентификатору.
func (s *Storage) GetContactMessageByID(ctx context.Context, id string) (*models.ContactMessage, error) {
	const op = "storage.GetContactMessageByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE id = $1`
	m, err := scanContact(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return m, nil
}

// ListContactMessages возвращает страницу сообщений по фильтру и общее
// количество подходящих строк.
func (s *Storage) ListContactMessages(ctx context.Context, filter models.ContactFilter) ([]*models.ContactMessage, int64, error) {
	const op = "storage.ListContactMessages"
	select {
	case <-ctx.Done():
		return nil, 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var conditions []string
	var args []any
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		n := strconv.Itoa(len(args))
		conditions = append(conditions, "(name ILIKE $"+n+" OR email ILIKE $"+n+" OR subject ILIKE $"+n+")")
	}
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT count(*) FROM contact_messages` + where
	if err := s.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := `SELECT ` + contactColumns + ` FROM contact_messages` + where +
		` ORDER BY created_at DESC` +
		` LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var messages []*models.ContactMessage
	for rows.Next() {
		m, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return messages, total, nil
}

// CountContactsByStatus возвращает счетчики сообщений по статусам.
func (s *Storage) CountContactsByStatus(ctx context.Context) (*models.ContactStatistics, error) {
	const op = "storage.CountContactsByStatus"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT count(*),
			         count(*) FILTER (WHERE status = 'UNREAD'),
			         count(*) FILTER (WHERE status = 'READ'),
			         count(*) FILTER (WHERE status = 'REPLIED'),
			         count(*) FILTER (WHERE status = 'ARCHIVED')
			  FROM contact_messages`
	stats := &models.ContactStatistics{}
	if err := s.DB.QueryRowContext(ctx, query).Scan(&stats.Total, &stats.Unread,
		&stats.Read, &stats.Replied, &stats.Archived); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return stats, nil
}
