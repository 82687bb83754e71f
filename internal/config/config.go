package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Kraken accepts only these OHLC intervals, in minutes.
var validIntervals = map[int]bool{1: true, 5: true, 15: true, 30: true, 60: true, 240: true, 1440: true, 10080: true, 21600: true}

// Config holds all application configuration.
type Config struct {
	Exchange struct {
		BaseURL  string        `yaml:"base_url"`
		Interval int           `yaml:"interval"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"exchange"`
	Output struct {
		CSVDir        string `yaml:"csv_dir"`
		CSVEnabled    bool   `yaml:"csv_enabled"`
		ChartDir      string `yaml:"chart_dir"`
		ChartsEnabled bool   `yaml:"charts_enabled"`
	} `yaml:"output"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	// Output toggles default on; the file may switch them off.
	cfg.Output.CSVEnabled = true
	cfg.Output.ChartsEnabled = true

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("KRAKEN_BASE_URL"); v != "" {
		cfg.Exchange.BaseURL = v
	}
	if v := os.Getenv("KRAKEN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("KRAKEN_TIMEOUT: %w", err)
		}
		cfg.Exchange.Timeout = d
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CSV_DIR"); v != "" {
		cfg.Output.CSVDir = v
	}
	if v := os.Getenv("CHART_DIR"); v != "" {
		cfg.Output.ChartDir = v
	}
	if v := os.Getenv("CSV_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("CSV_ENABLED: %w", err)
		}
		cfg.Output.CSVEnabled = b
	}
	if v := os.Getenv("CHARTS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("CHARTS_ENABLED: %w", err)
		}
		cfg.Output.ChartsEnabled = b
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}

	// Defaults
	if cfg.Exchange.BaseURL == "" {
		cfg.Exchange.BaseURL = "https://api.kraken.com"
	}
	if cfg.Exchange.Interval == 0 {
		cfg.Exchange.Interval = 1440
	}
	if cfg.Exchange.Timeout == 0 {
		cfg.Exchange.Timeout = 30 * time.Second
	}
	if cfg.Output.CSVDir == "" {
		cfg.Output.CSVDir = "data"
	}
	if cfg.Output.ChartDir == "" {
		cfg.Output.ChartDir = "charts"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 5 0 * * *"
	}

	return cfg, nil
}

// TelegramEnabled reports whether scheduled reports should be pushed to Telegram.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// Validate checks that all settings are usable.
func (c *Config) Validate() error {
	if c.Exchange.BaseURL == "" {
		return fmt.Errorf("exchange.base_url is required")
	}
	if !validIntervals[c.Exchange.Interval] {
		return fmt.Errorf("exchange.interval %d is not a supported Kraken interval", c.Exchange.Interval)
	}
	if c.Exchange.Timeout < 0 {
		return fmt.Errorf("exchange.timeout must not be negative")
	}
	if c.Schedule.RefreshCron == "" {
		return fmt.Errorf("schedule.refresh_cron is required")
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}
