// Package services содержит логику бизнес-уровня для работы с навыками.
package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bikash/portfolio-backend/internal/models"
)

// ErrNameTaken навык с таким именем уже существует (без учета регистра).
var ErrNameTaken = errors.New("skill name already in use")

// SkillRepository описывает контракт для работы с навыками в базе данных.
type SkillRepository interface {
	CreateSkill(ctx context.Context, sk *models.Skill) (string, error)
	UpdateSkill(ctx context.Context, sk *models.Skill) error
	DeleteSkill(ctx context.Context, id string) error
	GetSkillByID(ctx context.Context, id string) (*models.Skill, error)
	ExistsSkillByName(ctx context.Context, name, excludeID string) (bool, error)
	ListSkills(ctx context.Context, filter models.SkillFilter) ([]*models.Skill, error)
}

// SkillService реализует операции над навыками.
type SkillService struct {
	repo SkillRepository
	log  *slog.Logger
}

// NewSkillService создает новый экземпляр SkillService.
func NewSkillService(repo SkillRepository, log *slog.Logger) *SkillService {
	return &SkillService{
		repo: repo,
		log:  log,
	}
}

// List возвращает навыки по фильтру, отсортированные по категории и имени.
func (s *SkillService) List(ctx context.Context, filter models.SkillFilter) ([]*models.Skill, error) {
	return s.repo.ListSkills(ctx, filter)
}

// Create создает навык. Возвращает ErrNameTaken при занятом имени.
func (s *SkillService) Create(ctx context.Context, req models.CreateSkillRequest) (*models.Skill, error) {
	taken, err := s.repo.ExistsSkillByName(ctx, req.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	sk := buildSkill(uuid.NewString(), req)
	if _, err := s.repo.CreateSkill(ctx, sk); err != nil {
		return nil, err
	}
	s.log.Info("created new skill", slog.String("id", sk.ID), slog.String("name", sk.Name))
	return sk, nil
}

// Update полностью обновляет навык по ID.
func (s *SkillService) Update(ctx context.Context, id string, req models.CreateSkillRequest) (*models.Skill, error) {
	existing, err := s.repo.GetSkillByID(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsSkillByName(ctx, req.Name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	sk := buildSkill(id, req)
	sk.CreatedAt = existing.CreatedAt
	if err := s.repo.UpdateSkill(ctx, sk); err != nil {
		return nil, err
	}
	s.log.Info("updated skill", slog.String("id", id))
	return sk, nil
}

// Delete удаляет навык по ID.
func (s *SkillService) Delete(ctx context.Context, id string) error {
	if err := s.repo.DeleteSkill(ctx, id); err != nil {
		return err
	}
	s.log.Info("deleted skill", slog.String("id", id))
	return nil
}

func buildSkill(id string, req models.CreateSkillRequest) *models.Skill {
	sk := &models.Skill{
		ID:                id,
		Name:              req.Name,
		Category:          req.Category,
		Level:             req.Level,
		Icon:              req.Icon,
		Description:       req.Description,
		YearsOfExperience: req.YearsOfExperience,
	}
	if req.Featured != nil {
		sk.Featured = *req.Featured
	}
	return sk
}
