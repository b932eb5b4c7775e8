// Package services содержит логику бизнес-уровня для работы с проектами
// портфолио.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bikash/portfolio-backend/internal/lib/sl"
	"github.com/bikash/portfolio-backend/internal/models"
)

// Границы пагинации списка проектов.
const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

const featuredCacheKey = "projects:featured"

// ErrSlugTaken slug уже занят другим проектом.
var ErrSlugTaken = errors.New("slug already in use")

// ProjectRepository описывает контракт для работы с проектами в базе данных.
type ProjectRepository interface {
	CreateProject(ctx context.Context, p *models.Project) (string, error)
	UpdateProject(ctx context.Context, p *models.Project) error
	DeleteProject(ctx context.Context, id string) error
	GetProjectByID(ctx context.Context, id string) (*models.Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*models.Project, error)
	ExistsProjectBySlug(ctx context.Context, slug string) (bool, error)
	ListProjects(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, int64, error)
	ListFeaturedProjects(ctx context.Context) ([]*models.Project, error)
}

// Cache кэш списков проектов.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// ProjectService реализует операции над проектами.
type ProjectService struct {
	repo  ProjectRepository
	cache Cache
	log   *slog.Logger
}

// NewProjectService создает новый экземпляр ProjectService.
func NewProjectService(repo ProjectRepository, cache Cache, log *slog.Logger) *ProjectService {
	return &ProjectService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает проект. Возвращает ErrSlugTaken при занятом slug.
func (s *ProjectService) Create(ctx context.Context, req models.CreateProjectRequest) (*models.Project, error) {
	taken, err := s.repo.ExistsProjectBySlug(ctx, req.Slug)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlugTaken
	}

	p, err := buildProject(uuid.NewString(), req)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.CreateProject(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("created new project", slog.String("id", p.ID), slog.String("slug", p.Slug))
	s.invalidateFeatured()
	return p, nil
}

// Update полностью обновляет проект по ID.
func (s *ProjectService) Update(ctx context.Context, id string, req models.CreateProjectRequest) (*models.Project, error) {
	existing, err := s.repo.GetProjectByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Slug != existing.Slug {
		taken, err := s.repo.ExistsProjectBySlug(ctx, req.Slug)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSlugTaken
		}
	}

	p, err := buildProject(id, req)
	if err != nil {
		return nil, err
	}
	p.CreatedAt = existing.CreatedAt

	if err := s.repo.UpdateProject(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("updated project", slog.String("id", id))
	s.invalidateFeatured()
	return p, nil
}

// Delete удаляет проект по ID.
func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted project", slog.String("id", id))
	s.invalidateFeatured()
	return nil
}

// GetByID возвращает проект по идентификатору.
func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	return s.repo.GetProjectByID(ctx, id)
}

// GetBySlug возвращает проект по slug.
func (s *ProjectService) GetBySlug(ctx context.Context, slug string) (*models.Project, error) {
	return s.repo.GetProjectBySlug(ctx, slug)
}

// List возвращает страницу проектов по фильтру. Номер страницы и размер
// приводятся к допустимым границам.
func (s *ProjectService) List(ctx context.Context, filter models.ProjectFilter) (*models.ProjectList, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	projects, total, err := s.repo.ListProjects(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filter.Limit) - 1) / int64(filter.Limit))
	return &models.ProjectList{
		Projects:   projects,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// Featured возвращает избранные проекты, кэшируя результат.
func (s *ProjectService) Featured(ctx context.Context) ([]*models.Project, error) {
	var cached []*models.Project
	found, err := s.cache.Get(featuredCacheKey, &cached)
	if err != nil {
		s.log.Warn("failed to read featured projects cache", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	projects, err := s.repo.ListFeaturedProjects(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(featuredCacheKey, projects, time.Hour); err != nil {
		s.log.Warn("failed to cache featured projects", sl.Err(err))
	}
	return projects, nil
}

func (s *ProjectService) invalidateFeatured() {
	if err := s.cache.Invalidate(featuredCacheKey); err != nil {
		s.log.Warn("failed to invalidate featured projects cache", sl.Err(err))
	}
}

func buildProject(id string, req models.CreateProjectRequest) (*models.Project, error) {
	p := &models.Project{
		ID:              id,
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Image:           req.Image,
		Technologies:    req.Technologies,
		GithubURL:       req.GithubURL,
		LiveURL:         req.LiveURL,
		Features:        req.Features,
		Slug:            req.Slug,
		Category:        req.Category,
		Featured:        req.Featured,
	}

	if req.StartDate != nil && *req.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date: %w", err)
		}
		p.StartDate = &startDate
	}
	if req.EndDate != nil && *req.EndDate != "" {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date: %w", err)
		}
		p.EndDate = &endDate
	}
	return p, nil
}
