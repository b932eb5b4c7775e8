package rabbitmq

// QueueConfig связывает очередь с её ключом маршрутизации.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// Ключи маршрутизации для видов писем.
const (
	RoutingKeyVerification  = "verification"
	RoutingKeyPasswordReset = "password_reset"
	RoutingKeyContact       = "contact"
)

// GetEmailQueues возвращает очереди писем, которые потребляет sender.
func GetEmailQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: "email.verification", RoutingKey: RoutingKeyVerification},
		{QueueName: "email.password_reset", RoutingKey: RoutingKeyPasswordReset},
		{QueueName: "email.contact", RoutingKey: RoutingKeyContact},
	}
}
