package models

import "time"

// Уровни владения навыком.
const (
	SkillLevelBeginner     = "BEGINNER"
	SkillLevelIntermediate = "INTERMEDIATE"
	SkillLevelAdvanced     = "ADVANCED"
	SkillLevelExpert       = "EXPERT"
)

// Skill навык с категорией и уровнем. Имя уникально без учета регистра.
type Skill struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Level             string    `json:"level"`
	Icon              *string   `json:"icon,omitempty"`
	Description       *string   `json:"description,omitempty"`
	YearsOfExperience *int      `json:"yearsOfExperience,omitempty"`
	Featured          bool      `json:"featured"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// SkillFilter параметры выборки списка навыков.
type SkillFilter struct {
	Category *string
	Featured *bool
}

// CreateSkillRequest запрос на создание или обновление навыка.
type CreateSkillRequest struct {
	Name              string  `json:"name" validate:"required,max=100"`
	Category          string  `json:"category" validate:"required,max=100"`
	Level             string  `json:"level" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	Icon              *string `json:"icon,omitempty"`
	Description       *string `json:"description,omitempty"`
	YearsOfExperience *int    `json:"yearsOfExperience,omitempty"`
	Featured          *bool   `json:"featured,omitempty"`
}
