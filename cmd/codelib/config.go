package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings read from the environment. Flags override them.
type Config struct {
	Seed      uint64 `env:"CODELIB_SEED"`
	NamesFile string `env:"CODELIB_NAMES_FILE"`
	LogLevel  string `env:"CODELIB_LOG_LEVEL" envDefault:"info"`
	Codec     string `env:"CODELIB_CODEC" envDefault:"json"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
