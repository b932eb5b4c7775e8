// Package config предоставляет структуры и функцию для парсинга и загрузки конфига.
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек.
type Config struct {
	Env                     string        `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string        `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	RabbitConnectionString  string        `yaml:"rabbit_connection_string" env:"RABBIT_CONNECTION_STRING"`
	RabbitMQMaxRetries      int           `yaml:"rabbitmq_max_retries" env-default:"10"`
	RabbitMQRetryDelay      time.Duration `yaml:"rabbitmq_retry_delay" env-default:"3s"`
	FrontendURL             string        `yaml:"frontend_url" env:"FRONTEND_URL"`
	AdminEmail              string        `yaml:"admin_email" env:"ADMIN_EMAIL"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	SMTP                    `yaml:"smtp"`
	GoogleOAuth             `yaml:"google_oauth"`
}

// HTTPServer структура для настройки сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:"localhost:8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// JWTToken структура для работы с jwt-токенами.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	AccessTTL    time.Duration `yaml:"access_ttl" env-default:"15m"`
	RefreshTTL   time.Duration `yaml:"refresh_ttl" env-default:"168h"`
}

// SMTP структура для настройки SMTP-транспорта.
type SMTP struct {
	SMTPHost string `yaml:"smtp_host" env:"SMTP_HOST"`
	SMTPPort string `yaml:"smtp_port" env:"SMTP_PORT"`
	SMTPUser string `yaml:"smtp_user" env:"SMTP_USER"`
	SMTPPass string `yaml:"smtp_pass" env:"SMTP_PASS"`
}

// GoogleOAuth структура для настройки входа через Google.
type GoogleOAuth struct {
	ClientID          string   `yaml:"client_id" env:"GOOGLE_CLIENT_ID"`
	ClientSecret      string   `yaml:"client_secret" env:"GOOGLE_CLIENT_SECRET"`
	RedirectURL       string   `yaml:"redirect_url" env:"GOOGLE_REDIRECT_URL"`
	AllowedAdminEmail []string `yaml:"allowed_admin_emails"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH, при ошибке завершает процесс.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

// IsEmailAllowed проверяет, входит ли email в список разрешённых админов.
func (g GoogleOAuth) IsEmailAllowed(email string) bool {
	if len(g.AllowedAdminEmail) == 0 {
		return false
	}
	normalized := strings.ToLower(strings.TrimSpace(email))
	for _, allowed := range g.AllowedAdminEmail {
		if strings.ToLower(strings.TrimSpace(allowed)) == normalized {
			return true
		}
	}
	return false
}
