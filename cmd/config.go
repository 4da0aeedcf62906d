package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config is read from the environment, after an optional .env file.
type Config struct {
	HTTPPort      string        `env:"HTTP_PORT"      envDefault:"3000"`
	DBHost        string        `env:"DB_HOST"        envDefault:"localhost"`
	DBPort        string        `env:"DB_PORT"        envDefault:"5432"`
	DBUser        string        `env:"DB_USER"        envDefault:"postgres"`
	DBPassword    string        `env:"DB_PASSWORD"`
	DBName        string        `env:"DB_NAME"        envDefault:"laborders"`
	DBSslMode     string        `env:"DB_SSLMODE"     envDefault:"disable"`
	JWTSecret     string        `env:"JWT_SECRET"`
	JWTExpiresIn  time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`
	BcryptCost    int           `env:"BCRYPT_COST"    envDefault:"10"`
	LogLevel      string        `env:"LOG_LEVEL"      envDefault:"info"`
	AppEnv        string        `env:"APP_ENV"        envDefault:"development"`
	StatsSchedule string        `env:"STATS_SCHEDULE" envDefault:"0 * * * * *"`
}

// LoadConfig loads envFile when it exists, then parses and validates the environment.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var problems []error
	if c.JWTSecret == "" {
		problems = append(problems, errors.New("JWT_SECRET is required"))
	}
	if c.JWTExpiresIn <= 0 {
		problems = append(problems, errors.New("JWT_EXPIRES_IN must be positive"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		problems = append(problems, fmt.Errorf("BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.HTTPPort == "" {
		problems = append(problems, errors.New("HTTP_PORT is required"))
	}
	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, err)
	}
	return errors.Join(problems...)
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: url.Values{"sslmode": []string{c.DBSslMode}}.Encode(),
	}
	return dsn.String()
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
