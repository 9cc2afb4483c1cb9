package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when neither --config nor CONFIG_PATH is given.
const DefaultPath = "configs/config.yaml"

// Config holds all application configuration.
type Config struct {
	Data struct {
		Dir       string `yaml:"dir"`
		Watchlist string `yaml:"watchlist"`
		ExportDir string `yaml:"export_dir"`
	} `yaml:"data"`
	Analysis struct {
		SummaryWindow int `yaml:"summary_window"`
		ShortPeriod   int `yaml:"short_period"`
		LongPeriod    int `yaml:"long_period"`
		PreviewRows   int `yaml:"preview_rows"`
	} `yaml:"analysis"`
	Market struct {
		MIC        string `yaml:"mic"`
		DateLayout string `yaml:"date_layout"`
	} `yaml:"market"`
	Collector struct {
		Days int `yaml:"days"`
	} `yaml:"collector"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		ReloadCron string `yaml:"reload_cron"`
		SweepCron  string `yaml:"sweep_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath  string `yaml:"sqlite_path"`
		PostgresDSN string `yaml:"postgres_dsn"`
	} `yaml:"database"`
	HTTP struct {
		Addr        string   `yaml:"addr"`
		RateLimit   float64  `yaml:"rate_limit"` // requests per second per client IP; negative disables
		RateBurst   int      `yaml:"rate_burst"`
		CORSOrigins []string `yaml:"cors_origins"`
	} `yaml:"http"`
	Proxy string `yaml:"proxy"`
}

// Path resolves the config file location: flag value, then CONFIG_PATH, then DefaultPath.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return DefaultPath
}

// Load reads a .env file if present, then the YAML config, then applies
// environment variable overrides and defaults. A missing config file is not an error.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"STOCKDESK_DATA_DIR":  &c.Data.Dir,
		"STOCKDESK_WATCHLIST": &c.Data.Watchlist,
		"SQLITE_PATH":         &c.Database.SQLitePath,
		"POSTGRES_DSN":        &c.Database.PostgresDSN,
		"HTTP_ADDR":           &c.HTTP.Addr,
		"TELEGRAM_BOT_TOKEN":  &c.Telegram.BotToken,
		"TELEGRAM_CHAT_ID":    &c.Telegram.ChatID,
		"CRON_RELOAD":         &c.Schedule.ReloadCron,
		"CRON_SWEEP":          &c.Schedule.SweepCron,
		"HTTPS_PROXY":         &c.Proxy,
	}
	for key, field := range overrides {
		if v := os.Getenv(key); v != "" {
			*field = v
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.HTTP.RateLimit = f
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Data.Dir == "" {
		c.Data.Dir = "data"
	}
	if c.Data.Watchlist == "" {
		c.Data.Watchlist = "data/watchlist.csv"
	}
	if c.Data.ExportDir == "" {
		c.Data.ExportDir = "exports"
	}
	if c.Analysis.SummaryWindow == 0 {
		c.Analysis.SummaryWindow = 10
	}
	if c.Analysis.ShortPeriod == 0 {
		c.Analysis.ShortPeriod = 5
	}
	if c.Analysis.LongPeriod == 0 {
		c.Analysis.LongPeriod = 10
	}
	if c.Analysis.PreviewRows == 0 {
		c.Analysis.PreviewRows = 5
	}
	if c.Market.MIC == "" {
		c.Market.MIC = "xnys"
	}
	if c.Market.DateLayout == "" {
		c.Market.DateLayout = "01/02/2006"
	}
	if c.Collector.Days == 0 {
		c.Collector.Days = 365
	}
	if c.Schedule.ReloadCron == "" {
		c.Schedule.ReloadCron = "0 0 */1 * * *"
	}
	if c.Schedule.SweepCron == "" {
		c.Schedule.SweepCron = "0 30 16 * * 1-5"
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = ":8080"
	}
	if c.HTTP.RateLimit == 0 {
		c.HTTP.RateLimit = 20
	}
	if c.HTTP.RateBurst == 0 {
		c.HTTP.RateBurst = 50
	}
	if len(c.HTTP.CORSOrigins) == 0 {
		c.HTTP.CORSOrigins = []string{"*"}
	}
}

// TelegramEnabled reports whether a bot token is configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != ""
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	if c.Analysis.SummaryWindow <= 0 {
		return fmt.Errorf("analysis.summary_window must be positive")
	}
	if c.Analysis.ShortPeriod <= 0 || c.Analysis.ShortPeriod >= c.Analysis.LongPeriod {
		return fmt.Errorf("analysis.short_period must be positive and below analysis.long_period")
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	for name, spec := range map[string]string{
		"schedule.reload_cron": c.Schedule.ReloadCron,
		"schedule.sweep_cron":  c.Schedule.SweepCron,
	} {
		if _, err := parser.Parse(spec); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	if c.HTTP.RateBurst < 0 {
		return fmt.Errorf("http.rate_burst must not be negative")
	}
	return nil
}

// RateLimitEnabled reports whether the API throttles clients.
func (c *Config) RateLimitEnabled() bool {
	return c.HTTP.RateLimit > 0
}
