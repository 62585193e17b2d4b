package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type Config struct {
	LogLevel   string        `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string        `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage    string        `yaml:"storage" env:"STORAGE" env-default:"memory"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"SESSION_TTL" env-default:"24h"`
	Redis      Redis         `yaml:"redis"`
	Search     Search        `yaml:"search"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Search struct {
	Pruning bool `yaml:"pruning" env:"SEARCH_PRUNING"`
}

// MustLoad - load all configurations in config.yml file, environment variables take precedence.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

// MustLoadEnv - load configuration from environment variables only.
func MustLoadEnv() *Config {
	config := &Config{}

	if err := cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to load config from environment: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
