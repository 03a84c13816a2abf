package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMinimal(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
  admin_ids: [100, 200]
api:
  base_url: "http://localhost:3000/api/"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode default = %q, want longpoll", cfg.Telegram.RunMode)
	}
	if cfg.API.BaseURL != "http://localhost:3000/api" {
		t.Fatalf("base_url = %q, trailing slash must be trimmed", cfg.API.BaseURL)
	}
	if cfg.API.TimeoutSeconds != 10 {
		t.Fatalf("timeout default = %d, want 10", cfg.API.TimeoutSeconds)
	}
	if len(cfg.Telegram.AdminIDs) != 2 {
		t.Fatalf("admin_ids = %v", cfg.Telegram.AdminIDs)
	}
}

func TestLoadMissingToken(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: "http://localhost:3000/api"
`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "token") {
		t.Fatalf("err = %v, want token error", err)
	}
}

func TestLoadMissingBaseURL(t *testing.T) {
	path := writeConfig(t, `
telegram:
  token: "123:abc"
`)
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "base_url") {
		t.Fatalf("err = %v, want base_url error", err)
	}
}

func TestNormalizeRunModes(t *testing.T) {
	base := Config{
		Telegram: TelegramConfig{Token: "123:abc"},
		API:      APIConfig{BaseURL: "http://x"},
	}

	cfg := base
	cfg.Telegram.RunMode = "polling"
	if err := Normalize(&cfg); err != nil {
		t.Fatalf("polling alias rejected: %v", err)
	}
	if cfg.Telegram.RunMode != RunModeLongpoll {
		t.Fatalf("run_mode = %q, want longpoll", cfg.Telegram.RunMode)
	}

	cfg = base
	cfg.Telegram.RunMode = "carrier-pigeon"
	if err := Normalize(&cfg); err == nil {
		t.Fatalf("invalid run_mode accepted")
	}

	cfg = base
	cfg.Telegram.RunMode = RunModeWebhook
	if err := Normalize(&cfg); err == nil {
		t.Fatalf("webhook mode without url/listen/port accepted")
	}

	cfg = base
	cfg.Telegram.RunMode = RunModeWebhook
	cfg.Webhook = WebhookConfig{URL: "https://example.com/hook", Listen: "0.0.0.0", Port: 8443}
	if err := Normalize(&cfg); err != nil {
		t.Fatalf("valid webhook config rejected: %v", err)
	}
}

func TestNormalizeRateLimitExcludes(t *testing.T) {
	cfg := Config{
		Telegram:  TelegramConfig{Token: "123:abc"},
		API:       APIConfig{BaseURL: "http://x"},
		RateLimit: RateLimitConfig{ExcludeUpdates: []string{" Callback ", "message"}},
	}
	if err := Normalize(&cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.RateLimit.ExcludeUpdates[0] != UpdateCallback {
		t.Fatalf("exclude not normalized: %v", cfg.RateLimit.ExcludeUpdates)
	}

	cfg.RateLimit.ExcludeUpdates = []string{"bogus"}
	if err := Normalize(&cfg); err == nil {
		t.Fatalf("invalid exclude accepted")
	}
}

func TestNormalizeServer(t *testing.T) {
	cfg := ServerConfig{Database: DatabaseConfig{Host: "db", User: "postgres", Name: "shop"}}
	if err := NormalizeServer(&cfg); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if cfg.Listen != ":3000" {
		t.Fatalf("listen default = %q, want :3000", cfg.Listen)
	}

	cfg = ServerConfig{Database: DatabaseConfig{User: "postgres", Name: "shop"}}
	if err := NormalizeServer(&cfg); err == nil {
		t.Fatalf("missing database.host accepted")
	}
}
