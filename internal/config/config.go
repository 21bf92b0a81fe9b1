package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// ErrMissingJWTSecret is returned when no signing secret is configured.
var ErrMissingJWTSecret = errors.New("JWT_SECRET_KEY is required")

// Config is the root application configuration.
// It is built once at startup and passed to every component that needs it.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	JWT      JWTConfig
	OAuth    OAuthConfig
	Upload   UploadConfig
	Admin    AdminConfig
}

// AppConfig holds HTTP server and logging settings.
type AppConfig struct {
	Host     string `env:"APP_HOST" env-default:"localhost"`
	Port     string `env:"APP_PORT" env-default:"8080"`
	LogLevel string `env:"APP_LOG_LEVEL" env-default:"info"`
	Env      string `env:"APP_ENV" env-default:"development"`
}

// PostgresConfig holds the relational store connection settings.
type PostgresConfig struct {
	Host         string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port         int    `env:"POSTGRES_PORT" env-default:"5432"`
	User         string `env:"POSTGRES_USER" env-default:"user"`
	Password     string `env:"POSTGRES_PASSWORD" env-default:"password"`
	DB           string `env:"POSTGRES_DB" env-default:"gearted"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" env-default:"16"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" env-default:"8"`
}

// RedisConfig holds the cache store connection settings.
type RedisConfig struct {
	Host         string `env:"REDIS_HOST" env-default:"localhost"`
	Port         int    `env:"REDIS_PORT" env-default:"6379"`
	DB           int    `env:"REDIS_DB" env-default:"0"`
	Password     string `env:"REDIS_PASSWORD"`
	PoolSize     int    `env:"REDIS_POOL_SIZE" env-default:"10"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
}

// KafkaConfig holds analytics publishing settings. Publishing is disabled
// when Brokers is empty.
type KafkaConfig struct {
	Brokers        string `env:"KAFKA_BROKERS"`
	AnalyticsTopic string `env:"KAFKA_ANALYTICS_TOPIC" env-default:"gearted.compatibility.analytics"`
}

// JWTConfig holds token signing settings.
type JWTConfig struct {
	SecretKey string        `env:"JWT_SECRET_KEY"`
	Exp       time.Duration `env:"JWT_EXPIRATION" env-default:"24h"`
	Issuer    string        `env:"JWT_ISSUER" env-default:"gearted-api"`
	Audience  string        `env:"JWT_AUDIENCE" env-default:"gearted-app"`
}

// OAuthConfig holds outbound provider settings.
type OAuthConfig struct {
	GoogleClientID string        `env:"GOOGLE_CLIENT_ID"`
	FacebookAppID  string        `env:"FACEBOOK_APP_ID"`
	Timeout        time.Duration `env:"OAUTH_TIMEOUT" env-default:"10s"`
}

// UploadConfig holds object storage settings. Uploads are disabled when
// Bucket is empty.
type UploadConfig struct {
	Bucket        string        `env:"GCS_BUCKET"`
	PublicBaseURL string        `env:"GCS_PUBLIC_BASE_URL"`
	MaxDimension  int           `env:"UPLOAD_MAX_DIMENSION" env-default:"1200"`
	MaxPixels     int           `env:"UPLOAD_MAX_PIXELS" env-default:"40000000"`
	JPEGQuality   int           `env:"UPLOAD_JPEG_QUALITY" env-default:"80"`
	MaxFiles      int           `env:"UPLOAD_MAX_FILES" env-default:"10"`
	MaxFileBytes  int64         `env:"UPLOAD_MAX_FILE_BYTES" env-default:"10485760"`
	Timeout       time.Duration `env:"UPLOAD_TIMEOUT" env-default:"30s"`
}

// AdminConfig holds the optional email override for the admin gate.
type AdminConfig struct {
	EmailOverrides string `env:"ADMIN_EMAIL_OVERRIDES"`
}

// Load reads the env file at path (if present) and then the process
// environment into a Config. Priority: ENV > file > env-default tags.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks values that have no safe default.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWT.SecretKey) == "" {
		return ErrMissingJWTSecret
	}
	if c.JWT.Exp <= 0 {
		return fmt.Errorf("JWT_EXPIRATION must be positive, got %s", c.JWT.Exp)
	}
	if c.Upload.JPEGQuality < 1 || c.Upload.JPEGQuality > 100 {
		return fmt.Errorf("UPLOAD_JPEG_QUALITY must be within 1..100, got %d", c.Upload.JPEGQuality)
	}
	return nil
}

// IsProduction reports whether internal error details must be hidden.
func (c AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// DSN builds the pgx connection string.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.DB)
}

// Addr returns host:port of the Redis server.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BrokerList splits the comma separated broker list.
func (c KafkaConfig) BrokerList() []string {
	return splitList(c.Brokers)
}

// EmailList returns the lower-cased override emails.
func (c AdminConfig) EmailList() []string {
	out := splitList(c.EmailOverrides)
	for i := range out {
		out[i] = strings.ToLower(out[i])
	}
	return out
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
