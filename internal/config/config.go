package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// EnvPrefix префикс переменных окружения с секретами (FIELDS_DB_PASSWORD, ...)
const EnvPrefix = "FIELDS"

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Auth          AuthConfig          `toml:"auth"`
	Booking       BookingConfig       `toml:"booking"`
	Catalog       CatalogConfig       `toml:"catalog"`
	Notifications NotificationsConfig `toml:"notifications"`
	SMTP          SMTPConfig          `toml:"smtp"`
	AMQP          AMQPConfig          `toml:"amqp"`
	RateLimit     RateLimitConfig     `toml:"ratelimit"`
}

// ServerConfig таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
	RequestTimeout  int `toml:"request_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type AuthConfig struct {
	JWTSecret  string   `toml:"jwt_secret"`
	StaffRoles []string `toml:"staff_roles"`
}

// BookingConfig параметры бронирования
type BookingConfig struct {
	// Timezone часовой пояс по умолчанию для расчёта суток в расписании
	Timezone       string `toml:"timezone"`
	MaxNotesLength int    `toml:"max_notes_length"`
}

// Location загружает часовой пояс бронирования
func (b BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(b.Timezone)
}

type CatalogConfig struct {
	CacheTTL int `toml:"cache_ttl"`
}

// NotificationsConfig параметры отправки уведомлений
type NotificationsConfig struct {
	// Driver smtp | amqp | log
	Driver       string `toml:"driver"`
	Workers      int    `toml:"workers"`
	QueueSize    int    `toml:"queue_size"`
	Timeout      int    `toml:"timeout"`
	MaxAttempts  int    `toml:"max_attempts"`
	RetryBackoff int    `toml:"retry_backoff_ms"`
	// LookupTimeout предел поиска поля при составлении письма, мс
	LookupTimeout int `toml:"lookup_timeout_ms"`
}

type SMTPConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

type AMQPConfig struct {
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
	// TrustForwardedFor включать только за собственным reverse proxy
	TrustForwardedFor bool `toml:"trust_forwarded_for"`
}

// secrets значения, которые не хранятся в config.toml
type secrets struct {
	DBPassword   string `envconfig:"DB_PASSWORD"`
	JWTSecret    string `envconfig:"JWT_SECRET"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
	AMQPURL      string `envconfig:"AMQP_URL"`
}

// Load читает TOML файл, применяет значения по умолчанию и переопределения из окружения
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	cfg, err := Parse(string(data))
	if err != nil {
		return nil, err
	}

	// .env необязателен
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse декодирует TOML и заполняет пропущенные значения
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}
	cfg.setDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() error {
	var env secrets
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if env.DBPassword != "" {
		c.Database.Password = env.DBPassword
	}
	if env.JWTSecret != "" {
		c.Auth.JWTSecret = env.JWTSecret
	}
	if env.SMTPPassword != "" {
		c.SMTP.Password = env.SMTPPassword
	}
	if env.AMQPURL != "" {
		c.AMQP.URL = env.AMQPURL
	}
	return nil
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Server.RequestTimeout == 0 {
		c.Server.RequestTimeout = 10
	}

	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "field_reservation_service"
	}

	if len(c.Auth.StaffRoles) == 0 {
		c.Auth.StaffRoles = []string{"admin", "staff"}
	}

	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "UTC"
	}
	if c.Booking.MaxNotesLength == 0 {
		c.Booking.MaxNotesLength = 1000
	}

	if c.Catalog.CacheTTL == 0 {
		c.Catalog.CacheTTL = 60
	}

	if c.Notifications.Driver == "" {
		c.Notifications.Driver = "log"
	}
	if c.Notifications.Workers == 0 {
		c.Notifications.Workers = 2
	}
	if c.Notifications.QueueSize == 0 {
		c.Notifications.QueueSize = 100
	}
	if c.Notifications.Timeout == 0 {
		c.Notifications.Timeout = 10
	}
	if c.Notifications.MaxAttempts == 0 {
		c.Notifications.MaxAttempts = 3
	}
	if c.Notifications.RetryBackoff == 0 {
		c.Notifications.RetryBackoff = 500
	}
	if c.Notifications.LookupTimeout == 0 {
		c.Notifications.LookupTimeout = 2000
	}

	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}

	if c.AMQP.Exchange == "" {
		c.AMQP.Exchange = "reservations"
	}

	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 1
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 5
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port out of range: %d", c.Server.HTTPPort))
	}
	if c.Database.Host == "" {
		problems = append(problems, "database.host is required")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}
	if c.Auth.JWTSecret == "" {
		problems = append(problems, "auth.jwt_secret is required (or FIELDS_JWT_SECRET)")
	}
	if _, err := c.Booking.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("booking.timezone is invalid: %v", err))
	}
	if c.Booking.MaxNotesLength < 0 {
		problems = append(problems, "booking.max_notes_length must not be negative")
	}
	if c.Notifications.Workers < 1 {
		problems = append(problems, "notifications.workers must be positive")
	}
	if c.Notifications.QueueSize < 1 {
		problems = append(problems, "notifications.queue_size must be positive")
	}
	if c.Notifications.MaxAttempts < 1 {
		problems = append(problems, "notifications.max_attempts must be positive")
	}

	switch c.Notifications.Driver {
	case "log":
	case "smtp":
		if c.SMTP.Host == "" || c.SMTP.From == "" {
			problems = append(problems, "smtp.host and smtp.from are required for smtp driver")
		}
	case "amqp":
		if c.AMQP.URL == "" {
			problems = append(problems, "amqp.url is required for amqp driver (or FIELDS_AMQP_URL)")
		}
	default:
		problems = append(problems, fmt.Sprintf("notifications.driver is unknown: %q", c.Notifications.Driver))
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst < 1) {
		problems = append(problems, "ratelimit.requests_per_second and ratelimit.burst must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
