package config

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
)

type (
	APP struct {
		Name string `env:"SERVICE_NAME" envDefault:"users-api"`
		Host string `env:"SERVICE_HOST" envDefault:""`
		Port string `env:"SERVICE_PORT" envDefault:"3000"`
		Env  string `env:"SERVICE_ENV" envDefault:"debug"`
	}
	DB struct {
		User     string `env:"POSTGRES_USER"`
		Password string `env:"POSTGRES_PASSWORD"`
		Name     string `env:"POSTGRES_DB"`
		Host     string `env:"POSTGRES_HOST"`
		Port     string `env:"POSTGRES_PORT" envDefault:"5432"`
		SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
		MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
		Migrate  bool   `env:"DB_MIGRATE" envDefault:"true"`
	}

	Config struct {
		App APP
		DB  DB
	}
)

// Load reads the configuration from the process environment.
// A .env file, if any, must be loaded by the caller beforehand.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}

	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DB.User, c.DB.Password),
		Host:   c.DB.Host + ":" + c.DB.Port,
		Path:   "/" + c.DB.Name,
	}
	if c.DB.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": []string{c.DB.SSLMode}}.Encode()
	}

	return dsn.String(), nil
}
