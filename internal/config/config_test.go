package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testConfig = `
app:
  name: "zapysnyk"
  environment: "test"

telegram:
  bot_token: "${TEST_BOT_TOKEN}"

database:
  driver: "memory"

redis:
  address: "localhost:6379"

monitoring:
  prometheus_enabled: true
  prometheus_port: 9191

admins:
  - 111
  - 222

exports:
  path: "exports"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("TEST_BOT_TOKEN", "123456:ABC")

	cfg, err := Load(writeConfig(t, testConfig))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Telegram.BotToken != "123456:ABC" {
		t.Errorf("Expected env-expanded token, got %q", cfg.Telegram.BotToken)
	}
	if cfg.Database.Driver != "memory" {
		t.Errorf("Expected memory driver, got %q", cfg.Database.Driver)
	}
	if len(cfg.Admins) != 2 || cfg.Admins[0] != 111 {
		t.Errorf("Unexpected admins: %v", cfg.Admins)
	}
	if cfg.Monitoring.PrometheusPort != 9191 {
		t.Errorf("Unexpected prometheus port: %d", cfg.Monitoring.PrometheusPort)
	}
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("TEST_BOT_TOKEN", "")

	_, err := Load(writeConfig(t, testConfig))
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("Expected ErrNoToken, got %v", err)
	}
}

func TestLoadDefaultDriver(t *testing.T) {
	t.Setenv("TEST_BOT_TOKEN", "123456:ABC")

	cfg, err := Load(writeConfig(t, `
telegram:
  bot_token: "${TEST_BOT_TOKEN}"
`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Expected postgres default driver, got %q", cfg.Database.Driver)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
