package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bikash/portfolio-backend/internal/models"
)

const projectColumns = `id, title, description, long_description, image,
	technologies, github_url, live_url, features, slug, category, featured,
	start_date, end_date, created_at, updated_at`

func scanProject(row rowScanner) (*models.Project, error) {
	p := &models.Project{}
	var longDescription, image, githubURL, liveURL sql.NullString
	var startDate, endDate sql.NullTime
	var technologies, features []byte
	if err := row.Scan(&p.ID, &p.Title, &p.Description, &longDescription, &image,
		&technologies, &githubURL, &liveURL, &features, &p.Slug, &p.Category,
		&p.Featured, &startDate, &endDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}

	p.LongDescription = nullStringPtr(longDescription)
	p.Image = nullStringPtr(image)
	p.GithubURL = nullStringPtr(githubURL)
	p.LiveURL = nullStringPtr(liveURL)
	p.StartDate = nullTimePtr(startDate)
	p.EndDate = nullTimePtr(endDate)

	if len(technologies) > 0 {
		if err := json.Unmarshal(technologies, &p.Technologies); err != nil {
			return nil, err
		}
	}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &p.Features); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// CreateProject сохраняет новый проект и возвращает его ID.
func (s *Storage) CreateProject(ctx context.Context, p *models.Project) (string, error) {
	const op = "storage.CreateProject"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	technologies, err := json.Marshal(p.Technologies)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	features, err := json.Marshal(p.Features)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	query := `INSERT INTO projects (id, title, description, long_description, image,
				  technologies, github_url, live_url, features, slug, category, featured,
				  start_date, end_date)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			  RETURNING id;`
	var newID string
	if err := s.DB.QueryRowContext(ctx, query,
		p.ID, p.Title, p.Description, p.LongDescription, p.Image,
		technologies, p.GithubURL, p.LiveURL, features, p.Slug, p.Category,
		p.Featured, p.StartDate, p.EndDate).Scan(&newID); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// UpdateProject перезаписывает все изменяемые поля проекта.
func (s *Storage) UpdateProject(ctx context.Context, p *models.Project) error {
	const op = "storage.UpdateProject"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	technologies, err := json.Marshal(p.Technologies)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	features, err := json.Marshal(p.Features)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE projects
			  SET title = $2, description = $3, long_description = $4, image = $5,
			      technologies = $6, github_url = $7, live_url = $8, features = $9,
			      slug = $10, category = $11, featured = $12, start_date = $13,
			      end_date = $14, updated_at = now()
			  WHERE id = $1`
	res, err := s.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.LongDescription, p.Image,
		technologies, p.GithubURL, p.LiveURL, features, p.Slug, p.Category,
		p.Featured, p.StartDate, p.EndDate)
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

// DeleteProject удаляет проект по ID.
func (s *Storage) DeleteProject(ctx context.Context, id string) error {
	const op = "storage.DeleteProject"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
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

// GetProjectByID возвращает проект по идентификатору.
func (s *Storage) GetProjectByID(ctx context.Context, id string) (*models.Project, error) {
	const op = "storage.GetProjectByID"
	return s.getProjectBy(ctx, op, "id = $1", id)
}

// GetProjectBySlug возвращает проект по slug.
func (s *Storage) GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error) {
	const op = "storage.GetProjectBySlug"
	return s.getProjectBy(ctx, op, "slug = $1", slug)
}

// ExistsProjectBySlug проверяет занятость slug.
func (s *Storage) ExistsProjectBySlug(ctx context.Context, slug string) (bool, error) {
	const op = "storage.ExistsProjectBySlug"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM projects WHERE slug = $1)`
	if err := s.DB.QueryRowContext(ctx, query, slug).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// ListProjects возвращает страницу проектов по фильтру и общее количество
// подходящих строк.
func (s *Storage) ListProjects(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, int64, error) {
	const op = "storage.ListProjects"
	select {
	case <-ctx.Done():
		return nil, 0, fmt.Errorf("%s: %w", op, ctx.Err())
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
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		n := strconv.Itoa(len(args))
		conditions = append(conditions, "(title ILIKE $"+n+" OR description ILIKE $"+n+")")
	}
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT count(*) FROM projects` + where
	if err := s.DB.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := `SELECT ` + projectColumns + ` FROM projects` + where +
		` ORDER BY featured DESC, created_at DESC` +
		` LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	return projects, total, nil
}

// ListFeaturedProjects возвращает избранные проекты, новые первыми.
func (s *Storage) ListFeaturedProjects(ctx context.Context) ([]*models.Project, error) {
	const op = "storage.ListFeaturedProjects"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + projectColumns + `
			  FROM projects
			  WHERE featured = true
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return projects, nil
}

func (s *Storage) getProjectBy(ctx context.Context, op, where string, args ...any) (*models.Project, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + projectColumns + ` FROM projects WHERE ` + where
	row := s.DB.QueryRowContext(ctx, query, args...)
	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}
