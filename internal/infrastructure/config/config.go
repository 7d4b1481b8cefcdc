package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Upstream      UpstreamConfig
	Session       SessionConfig
	Notifications NotificationConfig
}

// UpstreamConfig points at the HRMS backend every request is relayed to.
type UpstreamConfig struct {
	BaseURL  string        `env:"HRMS_API_URL,       default=http://localhost:5000/api"`
	Timeout  time.Duration `env:"HRMS_API_TIMEOUT,   default=10s"`
	RetryMax int           `env:"HRMS_API_RETRY_MAX, default=2"`
}

// SessionConfig selects and configures the session store backend.
// Store is "file" (single JSON document on disk) or "redis".
type SessionConfig struct {
	Store    string `env:"SESSION_STORE, default=file"`
	FilePath string `env:"SESSION_FILE,  default=.hrms-session.json"`

	Redis RedisConfig
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type NotificationConfig struct {
	PollInterval time.Duration `env:"NOTIFICATION_POLL_INTERVAL, default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(err)
	}
	return &cfg
}
