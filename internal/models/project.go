package models

import "time"

// Project запись о проекте портфолио. Slug уникален и используется
// в публичных URL.
type Project struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	LongDescription *string    `json:"longDescription,omitempty"`
	Image           *string    `json:"image,omitempty"`
	Technologies    []string   `json:"technologies"`
	GithubURL       *string    `json:"githubUrl,omitempty"`
	LiveURL         *string    `json:"liveUrl,omitempty"`
	Features        []string   `json:"features,omitempty"`
	Slug            string     `json:"slug"`
	Category        string     `json:"category"`
	Featured        bool       `json:"featured"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// CreateProjectRequest запрос на создание или полное обновление проекта.
type CreateProjectRequest struct {
	Title           string   `json:"title" validate:"required,max=200"`
	Description     string   `json:"description" validate:"required"`
	LongDescription *string  `json:"longDescription,omitempty"`
	Image           *string  `json:"image,omitempty"`
	Technologies    []string `json:"technologies" validate:"required,min=1"`
	GithubURL       *string  `json:"githubUrl,omitempty"`
	LiveURL         *string  `json:"liveUrl,omitempty"`
	Features        []string `json:"features,omitempty"`
	Slug            string   `json:"slug" validate:"required,max=200"`
	Category        string   `json:"category" validate:"required"`
	Featured        bool     `json:"featured"`
	StartDate       *string  `json:"startDate,omitempty"`
	EndDate         *string  `json:"endDate,omitempty"`
}

// ProjectFilter параметры выборки списка проектов.
type ProjectFilter struct {
	Category *string
	Featured *bool
	Search   *string
	Page     int
	Limit    int
}

// ProjectList страница проектов с метаданными пагинации.
type ProjectList struct {
	Projects   []*Project `json:"projects"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}
