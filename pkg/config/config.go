package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverFS       = "fs"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"dev"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`
	GRPCPort int `envconfig:"GRPC_PORT" default:"8081"`

	StoreDriver string `envconfig:"STORE_DRIVER" default:"fs"`
	StoreDir    string `envconfig:"STORE_DIR" default:"./.kikuchan"`
	StoreKey    string `envconfig:"STORE_KEY" default:"kikuchan_cart"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
}

// Load reads the environment, after applying a .env file from the working
// directory when one exists.
func Load() (Config, error) {
	return LoadFrom(".env")
}

func LoadFrom(dotenv string) (Config, error) {
	if dotenv != "" {
		if _, err := os.Stat(dotenv); err == nil {
			if err := godotenv.Load(dotenv); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
			}
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StoreDriver {
	case DriverFS, DriverMemory:
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when STORE_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}
