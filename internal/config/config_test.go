package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

const baseYAML = `
application:
  host: 127.0.0.1
  port: "8000"
database:
  username: postgres
  host: 127.0.0.1
  port: "5432"
  database_name: diaspora
logger:
  mode: development
`

func TestLoadLayersEnvironmentFileOverBase(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"base.yaml": baseYAML,
		"production.yaml": `
application:
  host: 0.0.0.0
logger:
  mode: production
`,
		"local.yaml": `{}`,
	})

	t.Setenv("APP_ENVIRONMENT", "production")
	s, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Application.Host != "0.0.0.0" {
		t.Fatalf("overlay should win, host=%q", s.Application.Host)
	}
	if s.Application.Port != "8000" {
		t.Fatalf("base keys must survive the overlay, port=%q", s.Application.Port)
	}
	if s.Logger.Mode != "production" {
		t.Fatalf("logger mode=%q want production", s.Logger.Mode)
	}
	if s.Application.Addr() != "0.0.0.0:8000" {
		t.Fatalf("addr=%q", s.Application.Addr())
	}
}

func TestLoadDefaultsToLocal(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"base.yaml": baseYAML,
		"local.yaml": `
application:
  port: "8001"
`,
	})

	t.Setenv("APP_ENVIRONMENT", "")
	s, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Application.Port != "8001" {
		t.Fatalf("local overlay not applied, port=%q", s.Application.Port)
	}
}

func TestLoadEnvVarOverridesFiles(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"base.yaml":  baseYAML,
		"local.yaml": `{}`,
	})

	t.Setenv("APP_ENVIRONMENT", "local")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("APP_PORT", "9000")
	s, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Database.Password != "s3cret" {
		t.Fatalf("env override lost, password=%q", s.Database.Password)
	}
	if s.Application.Port != "9000" {
		t.Fatalf("env override lost, port=%q", s.Application.Port)
	}
}

func TestLoadRejectsUnsupportedEnvironment(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"base.yaml": baseYAML})

	t.Setenv("APP_ENVIRONMENT", "staging")
	if _, err := Load(dir); err == nil {
		t.Fatalf("want error for unsupported environment")
	}
}

func TestLoadFailsOnMissingFile(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"base.yaml": baseYAML})

	t.Setenv("APP_ENVIRONMENT", "production")
	if _, err := Load(dir); err == nil {
		t.Fatalf("want error when the environment file is missing")
	}
}
