package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"SwingScreener/internal/calculator"
)

// Config holds all application configuration. The SMA windows (20/50/200) and
// the volume-average window (20) are fixed rule constants and intentionally
// not configurable.
type Config struct {
	Tickers    []string `yaml:"tickers"`
	Indicators struct {
		RSIPeriod  int `yaml:"rsi_period"`
		MACDFast   int `yaml:"macd_fast"`
		MACDSlow   int `yaml:"macd_slow"`
		MACDSignal int `yaml:"macd_signal"`
	} `yaml:"indicators"`
	Scan struct {
		LookbackDays   int    `yaml:"lookback_days"`
		RequestDelayMS int    `yaml:"request_delay_ms"`
		StrongScore    int    `yaml:"strong_score"`
		Cron           string `yaml:"cron"`
	} `yaml:"scan"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Database struct {
		CachePath string `yaml:"cache_path"`
	} `yaml:"database"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Proxy string `yaml:"proxy"`
}

// defaultTickers is the shipped watchlist of liquid Jakarta-listed stocks.
var defaultTickers = []string{
	"BBCA.JK", // Bank Central Asia
	"BBRI.JK", // Bank Rakyat Indonesia
	"BMRI.JK", // Bank Mandiri
	"INDF.JK", // Indofood
	"TLKM.JK", // Telekomunikasi Indonesia
	"UNVR.JK", // Unilever Indonesia
	"GGRM.JK", // Gudang Garam
	"ASII.JK", // Astra International
	"PGAS.JK", // Perusahaan Gas Negara
	"ADRO.JK", // Adaro Energy
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
func Load(path string) (*Config, error) {
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

	// Environment variable overrides
	if v := os.Getenv("SCREENER_TICKERS"); v != "" {
		cfg.Tickers = nil
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				cfg.Tickers = append(cfg.Tickers, t)
			}
		}
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CACHE_PATH"); v != "" {
		cfg.Database.CachePath = v
	}
	if v := os.Getenv("SCAN_CRON"); v != "" {
		cfg.Scan.Cron = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("LOOKBACK_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scan.LookbackDays = n
		}
	}

	// Defaults
	if len(cfg.Tickers) == 0 {
		cfg.Tickers = append([]string(nil), defaultTickers...)
	}
	if cfg.Indicators.RSIPeriod == 0 {
		cfg.Indicators.RSIPeriod = 14
	}
	if cfg.Indicators.MACDFast == 0 {
		cfg.Indicators.MACDFast = 12
	}
	if cfg.Indicators.MACDSlow == 0 {
		cfg.Indicators.MACDSlow = 26
	}
	if cfg.Indicators.MACDSignal == 0 {
		cfg.Indicators.MACDSignal = 9
	}
	if cfg.Scan.LookbackDays == 0 {
		cfg.Scan.LookbackDays = 100
	}
	if cfg.Scan.RequestDelayMS == 0 {
		cfg.Scan.RequestDelayMS = 500
	}
	if cfg.Scan.StrongScore == 0 {
		cfg.Scan.StrongScore = 4
	}
	if cfg.Scan.Cron == "" {
		cfg.Scan.Cron = "0 0 18 * * 1-5"
	}

	return cfg, nil
}

// Validate rejects malformed configuration before a run starts.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return fmt.Errorf("tickers must not be empty")
	}
	if c.Indicators.RSIPeriod <= 0 {
		return fmt.Errorf("indicators.rsi_period must be positive")
	}
	if c.Indicators.MACDFast <= 0 || c.Indicators.MACDSlow <= 0 || c.Indicators.MACDSignal <= 0 {
		return fmt.Errorf("MACD spans must be positive")
	}
	if c.Indicators.MACDFast >= c.Indicators.MACDSlow {
		return fmt.Errorf("indicators.macd_fast must be shorter than indicators.macd_slow")
	}
	if c.Scan.LookbackDays <= 0 {
		return fmt.Errorf("scan.lookback_days must be positive")
	}
	if c.Scan.RequestDelayMS < 0 {
		return fmt.Errorf("scan.request_delay_ms must not be negative")
	}
	if c.Scan.StrongScore < 0 || c.Scan.StrongScore > 5 {
		return fmt.Errorf("scan.strong_score must be within 0..5")
	}
	return nil
}

// Periods returns the indicator spans as calculator configuration.
func (c *Config) Periods() calculator.Periods {
	return calculator.Periods{
		RSI:        c.Indicators.RSIPeriod,
		MACDFast:   c.Indicators.MACDFast,
		MACDSlow:   c.Indicators.MACDSlow,
		MACDSignal: c.Indicators.MACDSignal,
	}
}

// RequestDelay returns the inter-request courtesy delay.
func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.Scan.RequestDelayMS) * time.Millisecond
}
