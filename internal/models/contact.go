package models

import "time"

// Статусы обработки сообщения обратной связи.
const (
	ContactStatusUnread   = "UNREAD"
	ContactStatusRead     = "READ"
	ContactStatusReplied  = "REPLIED"
	ContactStatusArchived = "ARCHIVED"
)

// ContactMessage сообщение, отправленное через форму обратной связи.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	IPAddress *string   `json:"ipAddress,omitempty"`
	UserAgent *string   `json:"userAgent,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactFormRequest входные данные публичной формы обратной связи.
type ContactFormRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// UpdateContactRequest частичное обновление сообщения админом.
type UpdateContactRequest struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=UNREAD READ REPLIED ARCHIVED"`
	Notes  *string `json:"notes,omitempty"`
}

// ContactFilter параметры выборки списка сообщений.
type ContactFilter struct {
	Status *string
	Search *string
	Page   int
	Limit  int
}

// ContactList страница сообщений с метаданными пагинации.
type ContactList struct {
	Messages   []*ContactMessage `json:"messages"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"totalPages"`
}

// ContactStatistics счетчики сообщений по статусам.
type ContactStatistics struct {
	Total    int64 `json:"total"`
	Unread   int64 `json:"unread"`
	Read     int64 `json:"read"`
	Replied  int64 `json:"replied"`
	Archived int64 `json:"archived"`
}
