package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel       string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	SessionID      string `yaml:"session-id" env:"TICTACTOE_SESSION_ID" env-default:"local"`
	ComputerStarts bool   `yaml:"computer-starts" env:"TICTACTOE_COMPUTER_STARTS" env-default:"false"`
	NoColor        bool   `yaml:"no-color" env:"TICTACTOE_NO_COLOR" env-default:"false"`
	Redis          Redis  `yaml:"redis"`
}

type Redis struct {
	Enabled    bool          `yaml:"enabled" env:"TICTACTOE_REDIS_ENABLED" env-default:"false"`
	Host       string        `yaml:"host" env:"TICTACTOE_REDIS_HOST" env-default:"localhost"`
	Port       string        `yaml:"port" env:"TICTACTOE_REDIS_PORT" env-default:"6379"`
	SessionTTL time.Duration `yaml:"session-ttl" env:"TICTACTOE_REDIS_SESSION_TTL" env-default:"24h"`
}

// MustLoad - loads config.yml, or only the environment when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
