package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"candleChart/internal/adapters/logger" // Import the logger package for LogLevel
	"candleChart/internal/chart"
)

// Config holds all application configuration.
type Config struct {
	// Market Data
	Symbol       string
	Interval     string
	UseTestnet   bool
	HistoryLimit int // Number of historical candles to warm the chart up with

	// Database
	DBPath string

	// Chart Appearance
	CandleWidthPx    float64 // Initial candle body width in pixels
	CandleSpacingPx  float64
	PriceAxisWidthPx float64
	TimeAxisHeightPx float64
	ChartHeightPx    float64
	VolumeHeightPx   float64
	CanvasWidthPx    float64
	BullColor        string
	BearColor        string
	MAColor          string
	PriceTickCount   int
	VolumeTickCount  int
	PricePrecision   int
	ShowVolume       bool
	ShowMA           bool
	MAPeriod         int

	// Demo Data
	SyntheticCount int // Candles generated when no data source is available

	// Output
	OutputPath string
	LiveMode   bool // Keep rendering frames as new candles stream in

	// Logging
	LogLevel logger.LogLevel // Use the LogLevel type from the logger adapter

	// Connection Settings
	ReconnectDelay       time.Duration
	MaxReconnectAttempts int
}

// ChartOptions maps the configured appearance onto chart options.
func (c *Config) ChartOptions() chart.Options {
	opts := chart.DefaultOptions()
	opts.InitialCandleWidthPx = c.CandleWidthPx
	opts.CandleSpacingPx = c.CandleSpacingPx
	opts.PriceAxisWidthPx = c.PriceAxisWidthPx
	opts.TimeAxisHeightPx = c.TimeAxisHeightPx
	opts.ChartHeightPx = c.ChartHeightPx
	opts.VolumeHeightPx = c.VolumeHeightPx
	opts.BullColor = c.BullColor
	opts.BearColor = c.BearColor
	opts.VolumeUpColor = c.BullColor
	opts.VolumeDownColor = c.BearColor
	opts.MAColor = c.MAColor
	opts.PriceTickCount = c.PriceTickCount
	opts.VolumeTickCount = c.VolumeTickCount
	opts.PricePrecision = c.PricePrecision
	opts.ShowVolume = c.ShowVolume
	opts.ShowMovingAverage = c.ShowMA
	return opts
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	// Market Data
	cfg.Symbol = getEnv("SYMBOL", "ETHUSDT")
	if cfg.Symbol == "" {
		errs = append(errs, "SYMBOL must be set")
	}
	cfg.Interval = getEnv("INTERVAL", "5m")
	cfg.UseTestnet = getEnvAsBool("IS_TESTNET", false)

	cfg.HistoryLimit, err = getEnvAsIntRequired("HISTORY_LIMIT", 500)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid HISTORY_LIMIT: %v", err))
	} else if cfg.HistoryLimit <= 0 {
		errs = append(errs, "HISTORY_LIMIT must be positive")
	}

	// Database
	cfg.DBPath = getEnv("DB_PATH", "./data/candle_chart.db")
	if cfg.DBPath == "" {
		errs = append(errs, "DB_PATH must be set")
	}

	// Chart Appearance
	cfg.CandleWidthPx, err = getEnvAsFloatRequired("CANDLE_WIDTH_PX", chart.DefaultCandleWidthPx)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid CANDLE_WIDTH_PX: %v", err))
	} else if cfg.CandleWidthPx < chart.MinCandleWidthPx || cfg.CandleWidthPx > chart.MaxCandleWidthPx {
		errs = append(errs, fmt.Sprintf("CANDLE_WIDTH_PX must be within [%v, %v]", chart.MinCandleWidthPx, chart.MaxCandleWidthPx))
	}

	cfg.CandleSpacingPx, err = getEnvAsFloatRequired("CANDLE_SPACING_PX", chart.DefaultCandleSpacingPx)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid CANDLE_SPACING_PX: %v", err))
	} else if cfg.CandleSpacingPx < 0 {
		errs = append(errs, "CANDLE_SPACING_PX cannot be negative")
	}

	cfg.PriceAxisWidthPx = getEnvAsFloat("PRICE_AXIS_WIDTH_PX", 60)
	cfg.TimeAxisHeightPx = getEnvAsFloat("TIME_AXIS_HEIGHT_PX", 30)
	cfg.ChartHeightPx = getEnvAsFloat("CHART_HEIGHT_PX", 300)
	cfg.VolumeHeightPx = getEnvAsFloat("VOLUME_HEIGHT_PX", 100)

	cfg.CanvasWidthPx, err = getEnvAsFloatRequired("CANVAS_WIDTH_PX", 1200)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid CANVAS_WIDTH_PX: %v", err))
	} else if cfg.CanvasWidthPx <= cfg.PriceAxisWidthPx {
		errs = append(errs, "CANVAS_WIDTH_PX must exceed PRICE_AXIS_WIDTH_PX")
	}

	cfg.BullColor = getEnv("BULL_COLOR", "#26a69a")
	cfg.BearColor = getEnv("BEAR_COLOR", "#ef5350")
	cfg.MAColor = getEnv("MA_COLOR", "#ff9800")

	cfg.PriceTickCount = getEnvAsInt("PRICE_TICK_COUNT", 9)
	if cfg.PriceTickCount < 2 {
		errs = append(errs, "PRICE_TICK_COUNT must be at least 2")
	}
	cfg.VolumeTickCount = getEnvAsInt("VOLUME_TICK_COUNT", 3)
	if cfg.VolumeTickCount < 2 {
		errs = append(errs, "VOLUME_TICK_COUNT must be at least 2")
	}
	cfg.PricePrecision = getEnvAsInt("PRICE_PRECISION", 2)
	if cfg.PricePrecision < 0 {
		errs = append(errs, "PRICE_PRECISION cannot be negative")
	}

	cfg.ShowVolume = getEnvAsBool("SHOW_VOLUME", true)
	cfg.ShowMA = getEnvAsBool("SHOW_MA", true)

	cfg.MAPeriod, err = getEnvAsIntRequired("MA_PERIOD", 20)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid MA_PERIOD: %v", err))
	} else if cfg.MAPeriod < 1 {
		errs = append(errs, "MA_PERIOD must be positive")
	}

	// Demo Data
	cfg.SyntheticCount = getEnvAsInt("SYNTHETIC_COUNT", 200)
	if cfg.SyntheticCount < 1 {
		errs = append(errs, "SYNTHETIC_COUNT must be positive")
	}

	// Output
	cfg.OutputPath = getEnv("OUTPUT_PATH", "./data/chart.svg")
	cfg.LiveMode = getEnvAsBool("LIVE_MODE", false)

	// Logging
	logLevelStr := getEnv("LOG_LEVEL", "INFO")
	cfg.LogLevel = logger.ParseLevel(logLevelStr) // Use the parser from the logger package

	// Connection Settings
	reconnectDelaySeconds := getEnvAsInt("RECONNECT_DELAY_SECONDS", 5)
	if reconnectDelaySeconds <= 0 {
		errs = append(errs, "RECONNECT_DELAY_SECONDS must be positive")
	}
	cfg.ReconnectDelay = time.Duration(reconnectDelaySeconds) * time.Second

	cfg.MaxReconnectAttempts = getEnvAsInt("MAX_RECONNECT_ATTEMPTS", 10)
	if cfg.MaxReconnectAttempts < 0 {
		errs = append(errs, "MAX_RECONNECT_ATTEMPTS cannot be negative")
	}

	// Combine validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		// Log warning? For non-required fields, default is often acceptable.
		return defaultValue
	}
	return value
}

func getEnvAsIntRequired(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		// Use default if env var is not set at all
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		// Return error if env var is set but invalid
		return 0, fmt.Errorf("invalid integer value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloatRequired(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
