package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Players  Players `yaml:"players"`
}

type Players struct {
	NameX string `yaml:"name-x" env:"PLAYER_X_NAME" env-default:"Player X"`
	NameO string `yaml:"name-o" env:"PLAYER_O_NAME" env-default:"Player O"`
}

// MustLoad - load all configurations in config.yml file.
// A missing file is fine for a local binary, the env defaults apply.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
