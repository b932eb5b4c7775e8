package models

import "time"

// Status эфемерный статус владельца портфолио. Одновременно активным может
// быть не больше одного статуса на пользователя: установка нового статуса
// деактивирует предыдущие.
type Status struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"userId"`
	Emoji              string     `json:"emoji"`
	Message            string     `json:"message"`
	IsActive           bool       `json:"isActive"`
	PredefinedStatusID *string    `json:"predefinedStatusId,omitempty"`
	ExpiresAt          *time.Time `json:"expiresAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// PublicStatus урезанное представление статуса для неаутентифицированных
// клиентов: без идентификаторов и владельца.
type PublicStatus struct {
	Emoji       string    `json:"emoji"`
	Message     string    `json:"message"`
	IsActive    bool      `json:"isActive"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// SetStatusRequest запрос на установку статуса. ClearAfter задаёт
// авто-истечение: "never"/пусто, "today", "week" или число минут строкой.
type SetStatusRequest struct {
	Emoji              string  `json:"emoji" validate:"required"`
	Message            string  `json:"message" validate:"required,max=80"`
	PredefinedStatusID *string `json:"predefinedStatusId,omitempty"`
	ClearAfter         *string `json:"clearAfter,omitempty"`
}

// UpdateStatusRequest частичное обновление статуса: применяются только
// присутствующие поля.
type UpdateStatusRequest struct {
	Emoji      *string `json:"emoji,omitempty"`
	Message    *string `json:"message,omitempty" validate:"omitempty,max=80"`
	IsActive   *bool   `json:"isActive,omitempty"`
	ClearAfter *string `json:"clearAfter,omitempty"`
}
