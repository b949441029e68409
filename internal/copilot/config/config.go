package config

import (
	"time"

	"golang-stock-copilot/pkg/config"
)

// MarketData holds configuration for the market data provider.
type MarketData struct {
	// Provider selects the backend: "yahoo_chart" or "finance_go".
	Provider            string        `mapstructure:"provider"`
	BaseURL             string        `mapstructure:"base_url"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	RequestTimeout      time.Duration `mapstructure:"request_timeout"`
	HistoryCacheTTL     time.Duration `mapstructure:"history_cache_ttl"`
	QuoteCacheTTL       time.Duration `mapstructure:"quote_cache_ttl"`
}

// Analysis holds configuration for the analysis cycle.
type Analysis struct {
	SampleSize int    `mapstructure:"sample_size"`
	Range      string `mapstructure:"range"`
	Interval   string `mapstructure:"interval"`
}

// Refresh holds configuration for the background refresh loop.
type Refresh struct {
	Enabled         bool          `mapstructure:"enabled"`
	Cron            string        `mapstructure:"cron"`
	PollingInterval time.Duration `mapstructure:"polling_interval"`
	RunOnStart      bool          `mapstructure:"run_on_start"`
}

// Snapshot holds configuration for the JSON snapshot file.
type Snapshot struct {
	Path string `mapstructure:"path"`
}

// Alerts holds configuration for alert evaluation and notification.
type Alerts struct {
	UrgentThreshold float64       `mapstructure:"urgent_threshold"`
	DedupeWindow    time.Duration `mapstructure:"dedupe_window"`
	NotifyUrgent    bool          `mapstructure:"notify_urgent"`
}

// News holds configuration for the news feed.
type News struct {
	Feeds        []string      `mapstructure:"feeds"`
	MaxItems     int           `mapstructure:"max_items"`
	FetchContent bool          `mapstructure:"fetch_content"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
}

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// AI holds configuration for the chatbot's language model fallback.
type AI struct {
	Enabled bool   `mapstructure:"enabled"`
	Gemini  Gemini `mapstructure:"gemini"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the copilot service.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	Redis      config.Redis    `mapstructure:"redis"`
	API        config.API      `mapstructure:"api"`
	Location   string          `mapstructure:"location"`
	MarketData MarketData      `mapstructure:"market_data"`
	Analysis   Analysis        `mapstructure:"analysis"`
	Refresh    Refresh         `mapstructure:"refresh"`
	Snapshot   Snapshot        `mapstructure:"snapshot"`
	Alerts     Alerts          `mapstructure:"alerts"`
	News       News            `mapstructure:"news"`
	AI         AI              `mapstructure:"ai"`
	Telegram   Telegram        `mapstructure:"telegram"`
}

// Load loads the copilot configuration from the given path and fills defaults.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	return &cfg, nil
}

// ApplyDefaults fills zero values with the service defaults.
func (c *Config) ApplyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "stock-copilot"
	}
	if c.API.Port == 0 {
		c.API.Port = 8080
	}
	if c.MarketData.Provider == "" {
		c.MarketData.Provider = "yahoo_chart"
	}
	if c.MarketData.BaseURL == "" {
		c.MarketData.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.MarketData.MaxRequestPerMinute <= 0 {
		c.MarketData.MaxRequestPerMinute = 120
	}
	if c.MarketData.RequestTimeout <= 0 {
		c.MarketData.RequestTimeout = 10 * time.Second
	}
	if c.MarketData.HistoryCacheTTL <= 0 {
		c.MarketData.HistoryCacheTTL = 5 * time.Minute
	}
	if c.MarketData.QuoteCacheTTL <= 0 {
		c.MarketData.QuoteCacheTTL = 30 * time.Second
	}
	if c.Analysis.SampleSize <= 0 {
		c.Analysis.SampleSize = 100
	}
	if c.Analysis.Range == "" {
		c.Analysis.Range = "3mo"
	}
	if c.Analysis.Interval == "" {
		c.Analysis.Interval = "1d"
	}
	if c.Refresh.Cron == "" {
		c.Refresh.Cron = "*/5 * * * *"
	}
	if c.Refresh.PollingInterval <= 0 {
		c.Refresh.PollingInterval = 30 * time.Second
	}
	if c.Snapshot.Path == "" {
		c.Snapshot.Path = "live_trading_signals.json"
	}
	if c.Alerts.UrgentThreshold <= 0 {
		c.Alerts.UrgentThreshold = 85
	}
	if c.Alerts.DedupeWindow <= 0 {
		c.Alerts.DedupeWindow = 6 * time.Hour
	}
	if c.News.MaxItems <= 0 {
		c.News.MaxItems = 20
	}
	if c.News.CacheTTL <= 0 {
		c.News.CacheTTL = 15 * time.Minute
	}
	if c.AI.Gemini.Model == "" {
		c.AI.Gemini.Model = "gemini-2.0-flash"
	}
	if c.AI.Gemini.MaxRequestPerMinute <= 0 {
		c.AI.Gemini.MaxRequestPerMinute = 10
	}
}
