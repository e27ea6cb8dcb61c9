package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/corypride/pictureMePerfect360/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Booking   BookingConfig   `toml:"booking"`
	Stripe    StripeConfig    `toml:"stripe"`
	SMTP      SMTPConfig      `toml:"smtp"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	MigrationsPath  string `toml:"migrations_path"`
}

// DSN возвращает строку подключения к PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrateURL возвращает URL подключения для golang-migrate
func (c *DatabaseConfig) MigrateURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BookingConfig настройки процесса бронирования
type BookingConfig struct {
	// ConfirmTimeoutSeconds сколько ждать подтверждения оплаты до
	// перехода в Failed(timeout)
	ConfirmTimeoutSeconds int `toml:"confirm_timeout_seconds"`

	// DraftTTLMinutes время жизни неактивного черновика до удаления
	DraftTTLMinutes int `toml:"draft_ttl_minutes"`
}

// StripeConfig настройки интеграции со Stripe
type StripeConfig struct {
	SecretKey     string `toml:"secret_key"`
	WebhookSecret string `toml:"webhook_secret"`
	SuccessURL    string `toml:"success_url"`
	CancelURL     string `toml:"cancel_url"`
}

// SMTPConfig настройки отправки почты
// Если Host пустой, отправка уведомлений отключена
type SMTPConfig struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Username   string `toml:"username"`
	Password   string `toml:"password"`
	From       string `toml:"from"`
	AdminEmail string `toml:"admin_email"`
	SiteName   string `toml:"site_name"`
}

// Load читает конфигурацию из TOML файла
// Секреты (ключи Stripe, пароль SMTP) могут быть переопределены переменными
// окружения, чтобы не хранить их в файле
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Booking.ConfirmTimeoutSeconds == 0 {
		cfg.Booking.ConfirmTimeoutSeconds = domain.DefaultConfirmTimeoutSeconds
	}
	if cfg.Booking.DraftTTLMinutes == 0 {
		cfg.Booking.DraftTTLMinutes = domain.DefaultDraftTTLMinutes
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("STRIPE_SECRET_KEY"); v != "" {
		cfg.Stripe.SecretKey = v
	}
	if v := os.Getenv("STRIPE_WEBHOOK_SECRET"); v != "" {
		cfg.Stripe.WebhookSecret = v
	}
	if v := os.Getenv("SMTP_PASS"); v != "" {
		cfg.SMTP.Password = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Stripe.SecretKey == "" {
		return fmt.Errorf("config: stripe.secret_key is required")
	}
	if c.Booking.ConfirmTimeoutSeconds <= 0 {
		return fmt.Errorf("config: booking.confirm_timeout_seconds must be positive")
	}
	return nil
}
