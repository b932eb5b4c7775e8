package models

// События очереди писем. Публикуются API-процессом и потребляются sender'ом.

// VerificationEmailEvent задание на письмо с подтверждением email.
type VerificationEmailEvent struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// PasswordResetEmailEvent задание на письмо для сброса пароля.
type PasswordResetEmailEvent struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// ContactEmailEvent задание на уведомление админа о новом сообщении.
type ContactEmailEvent struct {
	AdminEmail string `json:"adminEmail"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Subject    string `json:"subject"`
}
