package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DevSessionSecret is used when SESSION_SECRET is not set. Never rely on it outside development.
const DevSessionSecret = "development-insecure-secret-change-me"

// Sort orders supported by the leaderboard.
const (
	SortLexical = "lexical"
	SortNumeric = "numeric"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port         int
	DatabaseType string
	DatabaseURL  string

	SessionSecret  string
	SessionBackend string
	SessionTTL     time.Duration
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	PasswordHasher string

	LeaderboardSort string
	LeaderboardSize int
	LegacyRatingKey bool

	LogLevel string
	GinMode  string
}

// Load reads an optional .env file, parses flags and falls back to
// environment variables and defaults.
func Load(args []string) (Config, error) {
	// A missing .env file is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	fs := flag.NewFlagSet("teacher-rating", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "port", 0, "Server port")
	fs.StringVar(&cfg.DatabaseType, "db-type", "", "Database type (sqlite, postgres or mysql)")
	fs.StringVar(&cfg.DatabaseURL, "db", "", "Database URL or SQLite file")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		port, err := getEnvInt("PORT", 8008)
		if err != nil {
			return Config{}, err
		}
		cfg.Port = port
	}
	if cfg.DatabaseType == "" {
		cfg.DatabaseType = getEnv("DATABASE_TYPE", "sqlite")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = getEnv("DATABASE_URL", "app.sqlite")
	}

	cfg.SessionSecret = getEnv("SESSION_SECRET", DevSessionSecret)
	cfg.SessionBackend = getEnv("SESSION_BACKEND", "memory")
	cfg.RedisAddr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.PasswordHasher = getEnv("PASSWORD_HASHER", "sha256")
	cfg.LeaderboardSort = getEnv("LEADERBOARD_SORT", SortLexical)
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.GinMode = os.Getenv("GIN_MODE")

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.LeaderboardSize, err = getEnvInt("LEADERBOARD_SIZE", 10); err != nil {
		return Config{}, err
	}
	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		if cfg.SessionTTL, err = time.ParseDuration(ttl); err != nil {
			return Config{}, fmt.Errorf("invalid SESSION_TTL: %w", err)
		}
	}
	if legacy := os.Getenv("LEGACY_RATING_KEY"); legacy != "" {
		if cfg.LegacyRatingKey, err = strconv.ParseBool(legacy); err != nil {
			return Config{}, fmt.Errorf("invalid LEGACY_RATING_KEY: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DatabaseType {
	case "sqlite", "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database type %q", c.DatabaseType)
	}
	switch c.SessionBackend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported session backend %q", c.SessionBackend)
	}
	switch c.PasswordHasher {
	case "sha256", "bcrypt":
	default:
		return fmt.Errorf("unsupported password hasher %q", c.PasswordHasher)
	}
	switch c.LeaderboardSort {
	case SortLexical, SortNumeric:
	default:
		return fmt.Errorf("unsupported leaderboard sort %q", c.LeaderboardSort)
	}
	if c.LeaderboardSize < 1 {
		return errors.New("LEADERBOARD_SIZE must be positive")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s env variable", key)
	}
	return n, nil
}
