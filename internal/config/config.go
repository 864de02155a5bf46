package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Port            string `toml:"port"`
	DatabaseURL     string `toml:"database_url"`
	LogLevel        string `toml:"log_level"`
	MaxPayloadBytes int64  `toml:"max_payload_bytes"`
}

func defaults() *Config {
	return &Config{
		Port:            "8080",
		LogLevel:        "info",
		MaxPayloadBytes: 64 << 20,
	}
}

// Load는 기본값 → HUFF_CONFIG(toml) → 환경변수 순으로 덮어씀
func Load() (*Config, error) {
	cfg := defaults()
	if path := os.Getenv("HUFF_CONFIG"); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	if err := cfg.fromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) fromEnv() error {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("MAX_PAYLOAD_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return fmt.Errorf("MAX_PAYLOAD_BYTES: invalid value %q", v)
		}
		c.MaxPayloadBytes = n
	}
	return nil
}
