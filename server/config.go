package server

import (
	"time"

	"github.com/joeshaw/envdecode"
)

type Config struct {
	Addr            string        `env:"EIGHTS_ADDR,default=:8080"`
	ThinkingDelay   time.Duration `env:"EIGHTS_THINKING_DELAY,default=800ms"`
	SessionTTL      time.Duration `env:"EIGHTS_SESSION_TTL,default=30m"`
	ShutdownTimeout time.Duration `env:"EIGHTS_SHUTDOWN_TIMEOUT,default=5s"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
