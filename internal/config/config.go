package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server      ServerConfig
	Jaguar      JaguarConfig
	Log         LogConfig
	RedisConfig RedisConfig
	CacheEnable bool `env:"CACHE_ENABLE"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"5m"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"50"`
}

// JaguarConfig locates the remote generation service. Every endpoint URL is the
// base URL with the matching suffix appended verbatim.
type JaguarConfig struct {
	BaseURL        string `env:"JAGUAR_BASE_URL"`
	GenerateSuffix string `env:"JAGUAR_GENERATE_SUFFIX" envDefault:"-shuttlejaguarmodel-generate-api.modal.run"`
	InfoSuffix     string `env:"JAGUAR_INFO_SUFFIX" envDefault:"-shuttlejaguarmodel-info.modal.run"`
	ReloadSuffix   string `env:"JAGUAR_RELOAD_SUFFIX" envDefault:"-shuttlejaguarmodel-reload-model.modal.run"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
