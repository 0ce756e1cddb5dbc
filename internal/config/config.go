// Package config reads the bot configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"namebot/internal/logger"
	"namebot/internal/pg"
)

const (
	ModePolling = "polling"
	ModeLambda  = "lambda"

	StorePostgres = "postgres"
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
	StoreRedis    = "redis"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

type Telegram struct {
	Token         string        `env:"TELEGRAM_BOT_TOKEN"`
	TokenParam    string        `env:"TELEGRAM_TOKEN_PARAM"`
	WebhookSecret string        `env:"TELEGRAM_WEBHOOK_SECRET"`
	PollTimeout   time.Duration `env:"TELEGRAM_POLL_TIMEOUT" envDefault:"30s"`
	UpdateTimeout time.Duration `env:"TELEGRAM_UPDATE_TIMEOUT" envDefault:"20s"`
	Debug         bool          `env:"TELEGRAM_DEBUG" envDefault:"false"`
}

type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"production"`
	// LogLevel and LogFormat override the APP_ENV defaults when set.
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`
	BotMode   string `env:"BOT_MODE" envDefault:"polling"`

	Telegram Telegram

	NameStore        string `env:"NAME_STORE" envDefault:"postgres"`
	IssueMaxAttempts int    `env:"ISSUE_MAX_ATTEMPTS" envDefault:"1000"`
	Postgres         pg.Config
	NamesTable       string `env:"NAMES_TABLE"`

	SessionStore  string        `env:"SESSION_STORE" envDefault:"memory"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	RedisURL      string        `env:"REDIS_URL"`
	SessionsTable string        `env:"SESSIONS_TABLE"`
}

// Load reads .env when present, then the process environment, and validates
// the result.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	return parse(env.Options{})
}

// LoadFrom reads only the given variables. It does not touch .env or the
// process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects combinations the bot cannot start with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			errs = append(errs, err)
		}
	}
	check(c.LogFormat == "" || c.LogFormat == string(logger.FormatJSON) || c.LogFormat == string(logger.FormatText),
		"LOG_FORMAT must be json or text, got %q", c.LogFormat)

	check(c.BotMode == ModePolling || c.BotMode == ModeLambda, "BOT_MODE must be polling or lambda, got %q", c.BotMode)
	check(strings.TrimSpace(c.Telegram.Token) != "" || strings.TrimSpace(c.Telegram.TokenParam) != "",
		"one of TELEGRAM_BOT_TOKEN or TELEGRAM_TOKEN_PARAM is required")
	check(c.Telegram.PollTimeout >= time.Second, "TELEGRAM_POLL_TIMEOUT must be at least 1s")
	check(c.Telegram.UpdateTimeout > 0, "TELEGRAM_UPDATE_TIMEOUT must be positive")

	switch c.NameStore {
	case StorePostgres:
		check(c.Postgres.ConnectionString != "", "PG_CONN_URL is required for the postgres name store")
	case StoreDynamoDB:
		check(c.NamesTable != "", "NAMES_TABLE is required for the dynamodb name store")
	default:
		errs = append(errs, fmt.Errorf("NAME_STORE must be postgres or dynamodb, got %q", c.NameStore))
	}
	check(c.IssueMaxAttempts >= 0, "ISSUE_MAX_ATTEMPTS must not be negative")

	switch c.SessionStore {
	case StoreMemory:
		check(c.BotMode != ModeLambda, "SESSION_STORE=memory does not survive between lambda invocations")
	case StoreRedis:
		check(c.RedisURL != "", "REDIS_URL is required for the redis session store")
	case StoreDynamoDB:
		check(c.SessionsTable != "", "SESSIONS_TABLE is required for the dynamodb session store")
	default:
		errs = append(errs, fmt.Errorf("SESSION_STORE must be memory, redis or dynamodb, got %q", c.SessionStore))
	}
	check(c.SessionTTL >= 0, "SESSION_TTL must not be negative")

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// LoggerOptions starts from the APP_ENV defaults and applies LOG_LEVEL and
// LOG_FORMAT only when they are set.
func (c Config) LoggerOptions(service string) []logger.Option {
	opts := []logger.Option{logger.WithEnvironment(c.AppEnv, service)}
	if c.LogLevel != "" {
		if level, err := logger.ParseLevel(c.LogLevel); err == nil {
			opts = append(opts, logger.WithLevel(level))
		}
	}
	if c.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(c.LogFormat)))
	}
	return opts
}
