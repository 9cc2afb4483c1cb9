package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.Dir != "data" || cfg.Analysis.SummaryWindow != 10 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Analysis.ShortPeriod != 5 || cfg.Analysis.LongPeriod != 10 {
		t.Errorf("periods: %d/%d", cfg.Analysis.ShortPeriod, cfg.Analysis.LongPeriod)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if cfg.TelegramEnabled() {
		t.Error("telegram should be disabled without a token")
	}
}

func TestLoad_YAMLAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
data:
  dir: /srv/prices
analysis:
  summary_window: 20
  short_period: 3
  long_period: 8
telegram:
  bot_token: from-file
  chat_id: "42"
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TELEGRAM_BOT_TOKEN", "from-env")
	t.Setenv("HTTP_ADDR", ":9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.Dir != "/srv/prices" || cfg.Analysis.SummaryWindow != 20 || cfg.Analysis.ShortPeriod != 3 {
		t.Errorf("yaml values not loaded: %+v", cfg)
	}
	if cfg.Telegram.BotToken != "from-env" || cfg.HTTP.Addr != ":9999" {
		t.Errorf("env overrides not applied: token=%s addr=%s", cfg.Telegram.BotToken, cfg.HTTP.Addr)
	}
}

func TestLoad_RateLimit(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		env     string
		want    float64
		enabled bool
	}{
		{"unset uses default", "http:\n  addr: \":8080\"\n", "", 20, true},
		{"zero uses default", "http:\n  rate_limit: 0\n", "", 20, true},
		{"negative disables", "http:\n  rate_limit: -1\n", "", -1, false},
		{"env disables", "http:\n  rate_limit: 5\n", "-1", -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			t.Setenv("HTTP_RATE_LIMIT", tt.env)
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.HTTP.RateLimit != tt.want || cfg.RateLimitEnabled() != tt.enabled {
				t.Errorf("rate limit %v enabled=%v, want %v enabled=%v",
					cfg.HTTP.RateLimit, cfg.RateLimitEnabled(), tt.want, tt.enabled)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("validate: %v", err)
			}
		})
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("data: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"short not below long", func(c *Config) { c.Analysis.ShortPeriod = 10 }},
		{"negative window", func(c *Config) { c.Analysis.SummaryWindow = -1 }},
		{"token without chat", func(c *Config) { c.Telegram.BotToken = "x" }},
		{"bad cron", func(c *Config) { c.Schedule.SweepCron = "every day" }},
		{"negative burst", func(c *Config) { c.HTTP.RateBurst = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := Load(filepath.Join(t.TempDir(), "none.yaml"))
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	if got := Path(""); got != DefaultPath {
		t.Errorf("default: %s", got)
	}
	t.Setenv("CONFIG_PATH", "/etc/stockdesk.yaml")
	if got := Path(""); got != "/etc/stockdesk.yaml" {
		t.Errorf("env: %s", got)
	}
	if got := Path("cli.yaml"); got != "cli.yaml" {
		t.Errorf("flag: %s", got)
	}
}
