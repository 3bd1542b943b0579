package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "development"
	AppEnvProd = "production"
)

// Environment variable names, kept in one place for tests and docs.
const (
	EnvAppEnv            = "ELECTROMART_APP_ENV"
	EnvAppPort           = "ELECTROMART_APP_PORT"
	EnvFirebaseProjectID = "ELECTROMART_FIREBASE_PROJECT_ID"
	EnvRedisURL          = "ELECTROMART_REDIS_URL"
	EnvRoleCacheTTL      = "ELECTROMART_ROLE_CACHE_TTL"
	EnvSMTPHost          = "ELECTROMART_SMTP_HOST"
)

type Config struct {
	App      AppConfig
	Firebase FirebaseConfig
	SMTP     SMTPConfig
	Redis    RedisConfig
	Roles    RoleCacheConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ELECTROMART_APP_ENV" required:"true"`
	Port         string `envconfig:"ELECTROMART_APP_PORT" default:"5000"`
	LogLevel     string `envconfig:"ELECTROMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ELECTROMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type FirebaseConfig struct {
	ProjectID       string `envconfig:"ELECTROMART_FIREBASE_PROJECT_ID" required:"true"`
	CredentialsFile string `envconfig:"ELECTROMART_FIREBASE_CREDENTIALS_FILE"`
	CredentialsJSON string `envconfig:"ELECTROMART_FIREBASE_CREDENTIALS_JSON"`
}

type SMTPConfig struct {
	Host     string `envconfig:"ELECTROMART_SMTP_HOST"`
	Port     int    `envconfig:"ELECTROMART_SMTP_PORT" default:"587"`
	Username string `envconfig:"ELECTROMART_SMTP_USERNAME"`
	Password string `envconfig:"ELECTROMART_SMTP_PASSWORD"`
	From     string `envconfig:"ELECTROMART_SMTP_FROM"`
	FromName string `envconfig:"ELECTROMART_SMTP_FROM_NAME" default:"E-Electro"`
}

// Enabled reports whether outbound mail is configured at all.
func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

type RedisConfig struct {
	URL          string        `envconfig:"ELECTROMART_REDIS_URL"`
	Address      string        `envconfig:"ELECTROMART_REDIS_ADDR"`
	Password     string        `envconfig:"ELECTROMART_REDIS_PASSWORD"`
	DB           int           `envconfig:"ELECTROMART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ELECTROMART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ELECTROMART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ELECTROMART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ELECTROMART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ELECTROMART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Configured reports whether a Redis endpoint was provided.
func (r RedisConfig) Configured() bool {
	return r.URL != "" || r.Address != ""
}

// RoleCacheConfig controls the optional role-lookup cache. A zero TTL keeps the
// authorize stage reading the user document on every request, so a role change
// takes effect on the very next call. A positive TTL bounds staleness by that
// duration.
type RoleCacheConfig struct {
	TTL time.Duration `envconfig:"ELECTROMART_ROLE_CACHE_TTL" default:"0s"`
}

func (r RoleCacheConfig) Enabled() bool {
	return r.TTL > 0
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"ELECTROMART_CORS_ORIGINS" default:"http://localhost:3000"`
}
