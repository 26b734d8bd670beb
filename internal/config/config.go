package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Auth      AuthConfig      `toml:"auth"`
	OpenAI    OpenAIConfig    `toml:"openai"`
	Queue     QueueConfig     `toml:"queue"`
	SMTP      SMTPConfig      `toml:"smtp"`
	Business  BusinessConfig  `toml:"business"`
	Retention RetentionConfig `toml:"retention"`
}

// ServerConfig конфигурация HTTP сервера
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`     // секунды
	WriteTimeout    int      `toml:"write_timeout"`    // секунды
	IdleTimeout     int      `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int      `toml:"shutdown_timeout"` // секунды
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// DatabaseConfig конфигурация подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"` // перекрывается DB_PASSWORD
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN собирает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig конфигурация логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig конфигурация Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AuthConfig конфигурация аутентификации администратора
type AuthConfig struct {
	Username        string `toml:"username"`
	PasswordHash    string `toml:"password_hash"` // bcrypt, перекрывается ADMIN_PASSWORD_HASH
	JWTSecret       string `toml:"jwt_secret"`    // перекрывается JWT_SECRET
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// OpenAIConfig конфигурация клиента OpenAI
type OpenAIConfig struct {
	URL     string `toml:"url"`
	Model   string `toml:"model"`
	Timeout int    `toml:"timeout"` // секунды
	APIKey  string `toml:"api_key"` // перекрывается OPENAI_API_KEY
}

// QueueConfig конфигурация брокера сообщений
type QueueConfig struct {
	URL string `toml:"url"` // перекрывается RABBITMQ_URL
}

// SMTPConfig конфигурация отправки почты
type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	From     string `toml:"from"`
	Password string `toml:"password"` // перекрывается SMTP_PASSWORD
}

// BusinessConfig публичная информация о барбершопе
type BusinessConfig struct {
	Name    string `toml:"name"`
	Phone   string `toml:"phone"`
	Address string `toml:"address"`
	Hours   string `toml:"hours"`
}

// RetentionConfig конфигурация фоновой очистки старых записей
type RetentionConfig struct {
	Enabled bool `toml:"enabled"`
	Hour    int  `toml:"hour"` // час локального времени, когда запускается очистка
}

// Load читает конфигурацию из TOML файла.
// Секреты перекрываются переменными окружения (в том числе из .env):
// конфиг-файл попадает в репозиторий, секреты - нет.
func Load(path string) (*Config, error) {
	// .env опционален: в проде переменные задаёт окружение
	_ = godotenv.Load()

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("ADMIN_PASSWORD_HASH"); v != "" {
		cfg.Auth.PasswordHash = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAI.APIKey = v
	}
	if v := os.Getenv("RABBITMQ_URL"); v != "" {
		cfg.Queue.URL = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.SMTP.Password = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("config: auth.jwt_secret is required (set JWT_SECRET)")
	}
	if c.Auth.PasswordHash == "" {
		return fmt.Errorf("config: auth.password_hash is required (set ADMIN_PASSWORD_HASH)")
	}
	return nil
}
