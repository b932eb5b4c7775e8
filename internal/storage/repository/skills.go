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

const skillColumns = `id, name, category, level, icon, description,
	years_of_experience, featured, created_at, updated_at`

func scanSkill(row rowScanner) (*models.Skill, error) {
	sk := &models.Skill{}
	var icon, description sql.NullString
	var years sql.NullInt64
	if err := row.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Level, &icon,
		&description, &years, &sk.Featured, &sk.CreatedAt, &sk.UpdatedAt); err != nil {
		return nil, err
	}
	sk.Icon = nullStringPtr(icon)
	sk.Description = nullStringPtr(description)
	if years.Valid {
		v := int(years.Int64)
		sk.YearsOfExperience = &v
	}
	return sk, nil
}

// CreateSkill сохраняет новый навык и возвращает его ID.
func (s *Storage) CreateSkill(ctx context.Context, sk *models.Skill) (string, error) {
	const op = "storage.CreateSkill"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO skills (id, name, category, level, icon, description,
				  years_of_experience, featured)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id;`
	var newID string
	if err := s.DB.QueryRowContext(ctx, query,
		sk.ID, sk.Name, sk.Category, sk.Level, sk.Icon, sk.Description,
		sk.YearsOfExperience, sk.Featured).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateSkill перезаписывает все изменяемые поля навыка.
func (s *Storage) UpdateSkill(ctx context.Context, sk *models.Skill) error {
	const op = "storage.UpdateSkill"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE skills
			  SET name = $2, category = $3, level = $4, icon = $5, description = $6,
			      years_of_experience = $7, featured = $8, updated_at = now()
			  WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query,
		sk.ID, sk.Name, sk.Category, sk.Level, sk.Icon, sk.Description,
		sk.YearsOfExperience, sk.Featured)
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

// DeleteSkill удаляет навык по ID.
func (s *Storage) DeleteSkill(ctx context.Context, id string) error {
	const op = "storage.DeleteSkill"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM skills WHERE id = $1`, id)
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

// GetSkillByID возвращает навык по идентификатору.
func (s *Storage) GetSkillByID(ctx context.Context, id string) (*models.Skill, error) {
	const op = "storage.GetSkillByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	sk, err := scanSkill(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return sk, nil
}

// ExistsSkillByName проверяет занятость имени без учета регистра.
// excludeID исключает из проверки сам обновляемый навык.
func (s *Storage) ExistsSkillByName(ctx context.Context, name, excludeID string) (bool, error) {
	const op = "storage.ExistsSkillByName"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM skills WHERE LOWER(name) = LOWER($1) AND id <> $2)`
	if err := s.DB.QueryRowContext(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// ListSkills возвращает навыки по фильтру, сгруппированные сортировкой по
// категории и имени.
func (s *Storage) ListSkills(ctx context.Context, filter models.SkillFilter) ([]*models.Skill, error) {
	const op = "storage.ListSkills"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var conditions []string
	var args []any
	if filter.Category != nil {
		args = append(args, *filter.Category)
		conditions = append(conditions, "category = $"+strconv.Itoa(len(args)))
	}
	if filter.Featured != nil {
		args = append(args, *filter.Featured)
		conditions = append(conditions, "featured = $"+strconv.Itoa(len(args)))
	}
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT ` + skillColumns + ` FROM skills` + where +
		` ORDER BY category, name`
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var skills []*models.Skill
	for rows.Next() {
		sk, err := scanSkill(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		skills = append(skills, sk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return skills, nil
}
