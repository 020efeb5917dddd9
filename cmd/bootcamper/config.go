package main

import (
	"time"

	"github.com/bootcamper/authkit/pkg/redis"
)

type appConfig struct {
	Env        string        `env:"APP_ENV" envDefault:"development"`
	LogLevel   string        `env:"LOG_LEVEL"`
	Lang       string        `env:"APP_LANG" envDefault:"en"`
	APIBaseURL string        `env:"API_BASE_URL" envDefault:"https://bootcamper.xyz/api/bootcamper/admin"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	Redis      redis.Config
}
