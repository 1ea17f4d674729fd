package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvProduction marks production-like deployments.
const EnvProduction = "production"

const defaultProductionTokenTTLSeconds = 60 * 60

// Config aggregates runtime configuration for the service.
type Config struct {
	App      AppConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Logger   LoggerConfig
	Auth     AuthConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string `env:"APP_NAME" envDefault:"formula-api"`
	Env                   string `env:"APP_ENV" envDefault:"development"`
	Host                  string `env:"APP_HOST" envDefault:"0.0.0.0"`
	Port                  string `env:"APP_PORT" envDefault:"9000"`
	Version               string `env:"APP_VERSION" envDefault:"dev"`
	RequestTimeoutSeconds int    `env:"HTTP_REQUEST_TIMEOUT_SECONDS" envDefault:"30"`
}

// PostgresConfig holds DB connection values.
type PostgresConfig struct {
	DSN            string `env:"POSTGRES_DSN"`
	MaxConns       int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	MinConns       int32  `env:"POSTGRES_MIN_CONNS" envDefault:"2"`
	RunMigrations  bool   `env:"POSTGRES_RUN_MIGRATIONS" envDefault:"true"`
	ConnMaxIdleSec int32  `env:"POSTGRES_CONN_MAX_IDLE_SECONDS" envDefault:"30"`
	ConnMaxLifeSec int32  `env:"POSTGRES_CONN_MAX_LIFE_SECONDS" envDefault:"300"`
	ConnectRetries uint64 `env:"POSTGRES_CONNECT_RETRIES" envDefault:"5"`
}

// RedisConfig holds Redis connection values.
type RedisConfig struct {
	Addr            string `env:"REDIS_ADDR" envDefault:"127.0.0.1:6379"`
	Password        string `env:"REDIS_PASSWORD"`
	DB              int    `env:"REDIS_DB" envDefault:"0"`
	CacheTTLSeconds int    `env:"CACHE_TTL_SECONDS" envDefault:"60"`
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

// AuthConfig defines authentication parameters.
type AuthConfig struct {
	JWT            JWTConfig
	Argon          ArgonConfig
	MinScore       int `env:"AUTH_ZXCVBN_MIN_SCORE" envDefault:"3"`
	MaxDelayMillis int `env:"AUTH_MAX_DELAY" envDefault:"5000"`
	BootstrapAdmin BootstrapAdminConfig
}

// JWTConfig configures token signing.
type JWTConfig struct {
	Secret   string `env:"AUTH_JWT_SECRET"`
	Issuer   string `env:"AUTH_JWT_ISSUER" envDefault:"formulapi.hogent.be"`
	Audience string `env:"AUTH_JWT_AUDIENCE" envDefault:"formulapi.hogent.be"`
	// Zero means tokens carry no exp claim.
	ExpirationIntervalSeconds int `env:"AUTH_JWT_EXPIRATION_INTERVAL"`
}

// ArgonConfig holds argon2id cost parameters. MemoryCost is in KiB.
type ArgonConfig struct {
	HashLength uint32 `env:"AUTH_ARGON_HASH_LENGTH" envDefault:"32"`
	TimeCost   uint32 `env:"AUTH_ARGON_TIME_COST" envDefault:"6"`
	MemoryCost uint32 `env:"AUTH_ARGON_MEMORY_COST" envDefault:"131072"`
}

// BootstrapAdminConfig seeds an administrator credential at startup when set.
type BootstrapAdminConfig struct {
	Email     string `env:"AUTH_BOOTSTRAP_ADMIN_EMAIL"`
	Password  string `env:"AUTH_BOOTSTRAP_ADMIN_PASSWORD"`
	FirstName string `env:"AUTH_BOOTSTRAP_ADMIN_FIRST_NAME" envDefault:"Race"`
	LastName  string `env:"AUTH_BOOTSTRAP_ADMIN_LAST_NAME" envDefault:"Control"`
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Auth.JWT.ExpirationIntervalSeconds == 0 && cfg.App.IsProduction() {
		cfg.Auth.JWT.ExpirationIntervalSeconds = defaultProductionTokenTTLSeconds
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the auth core cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Auth.JWT.Secret == "" {
		errs = append(errs, errors.New("AUTH_JWT_SECRET is required"))
	}
	if c.Auth.JWT.ExpirationIntervalSeconds < 0 {
		errs = append(errs, errors.New("AUTH_JWT_EXPIRATION_INTERVAL must not be negative"))
	}
	if c.Auth.MinScore < 0 || c.Auth.MinScore > 4 {
		errs = append(errs, fmt.Errorf("AUTH_ZXCVBN_MIN_SCORE must be between 0 and 4, got %d", c.Auth.MinScore))
	}
	if c.Auth.MaxDelayMillis < 0 {
		errs = append(errs, errors.New("AUTH_MAX_DELAY must not be negative"))
	}
	if c.Redis.CacheTTLSeconds < 0 {
		errs = append(errs, errors.New("CACHE_TTL_SECONDS must not be negative; use 0 to disable the list cache"))
	}
	argon := c.Auth.Argon
	if argon.HashLength == 0 || argon.TimeCost == 0 || argon.MemoryCost == 0 {
		errs = append(errs, errors.New("argon hash length, time cost and memory cost must be positive"))
	}
	return errors.Join(errs...)
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// IsProduction reports whether the service runs in a production-like environment.
func (a AppConfig) IsProduction() bool {
	return a.Env == EnvProduction
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// CacheTTL returns how long cached lists stay valid. Zero disables the list cache.
func (r RedisConfig) CacheTTL() time.Duration {
	if r.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(r.CacheTTLSeconds) * time.Second
}

// ExpirationInterval returns the token lifetime; zero disables expiry.
func (j JWTConfig) ExpirationInterval() time.Duration {
	return time.Duration(j.ExpirationIntervalSeconds) * time.Second
}

// MaxDelay returns the upper bound of the login/registration delay.
func (a AuthConfig) MaxDelay() time.Duration {
	return time.Duration(a.MaxDelayMillis) * time.Millisecond
}
