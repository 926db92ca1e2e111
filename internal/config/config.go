package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"gopkg.in/yaml.v3"
)

// Environment selects which configuration overlay is applied on top of
// base.yaml. Only "local" and "production" are supported.
type Environment string

const (
	EnvLocal      Environment = "local"
	EnvProduction Environment = "production"
)

func ParseEnvironment(s string) (Environment, error) {
	switch s {
	case "", string(EnvLocal):
		return EnvLocal, nil
	case string(EnvProduction):
		return EnvProduction, nil
	default:
		return "", fmt.Errorf("%q is not a supported environment, use either `local` or `production`", s)
	}
}

type Settings struct {
	Application ApplicationSettings `yaml:"application"`
	Database    DatabaseSettings    `yaml:"database"`
	Logger      LoggerSettings      `yaml:"logger"`
}

type ApplicationSettings struct {
	Host string `yaml:"host" env:"APP_HOST"`
	Port string `yaml:"port" env:"APP_PORT"`
}

func (a ApplicationSettings) Addr() string {
	return a.Host + ":" + a.Port
}

type DatabaseSettings struct {
	User         string `yaml:"username" env:"DB_USER"`
	Password     string `yaml:"password" env:"DB_PASSWORD"`
	Host         string `yaml:"host" env:"DB_HOST"`
	Port         string `yaml:"port" env:"DB_PORT"`
	Name         string `yaml:"database_name" env:"DB_NAME"`
	SSLMode      string `yaml:"ssl_mode" env:"DB_SSL_MODE"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	MaxIdleConns int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
}

type LoggerSettings struct {
	Mode       string `yaml:"mode" env:"LOG_MODE"` // "production" or "development"
	FileEnable bool   `yaml:"file_enable" env:"LOG_FILE_ENABLE"`
	Filename   string `yaml:"filename" env:"LOG_FILENAME"`
}

// Load reads base.yaml from dir, overlays the file selected by
// APP_ENVIRONMENT, then applies environment variable overrides. A missing or
// malformed file is an error; the caller treats it as fatal. Configuration is
// read once at startup and never re-read.
func Load(dir string) (*Settings, error) {
	environment, err := ParseEnvironment(os.Getenv("APP_ENVIRONMENT"))
	if err != nil {
		return nil, err
	}

	var s Settings
	if err := mergeFile(&s, filepath.Join(dir, "base.yaml")); err != nil {
		return nil, err
	}
	if err := mergeFile(&s, filepath.Join(dir, string(environment)+".yaml")); err != nil {
		return nil, err
	}
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse environment overrides: %w", err)
	}
	return &s, nil
}

// mergeFile decodes path into s, overriding only the keys the file sets.
func mergeFile(s *Settings, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read configuration file: %w", err)
	}
	if err := yaml.Unmarshal(raw, s); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
