package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"candleChart/config"
	"candleChart/internal/adapters/binanceclient"
	"candleChart/internal/adapters/logger"
	"candleChart/internal/adapters/sqlite"
	"candleChart/internal/utils"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err) // Use standard log before logger is ready
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	appLogger.Info(context.Background(), "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Initialize Market Data Client (Binance Adapter)
	binanceClient, err := binanceclient.New(binanceclient.Config{
		UseTestnet:           cfg.UseTestnet,
		Logger:               appLogger,
		ReconnectDelay:       cfg.ReconnectDelay,
		MaxReconnectAttempts: cfg.MaxReconnectAttempts,
	})
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize Binance client")
		log.Fatalf("FATAL: Failed to initialize Binance client: %v", err)
	}
	appLogger.Info(context.Background(), "Binance client initialized")

	// 4. Initialize Repository (Database Adapter)
	repo, err := sqlite.NewRepository(sqlite.Config{
		DBPath: cfg.DBPath,
		Logger: appLogger,
	})
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize database repository")
		log.Fatalf("FATAL: Failed to initialize database repository: %v", err)
	}
	defer repo.Close()

	end := time.Now()
	start := end.AddDate(0, -1, 0) // 1 month ago

	fmt.Printf("Fetching candles for %s %s from %s to %s...\n", cfg.Symbol, cfg.Interval, start, end)
	candles, err := binanceClient.GetCandlesRange(context.Background(), cfg.Symbol, cfg.Interval, start, end)
	if err != nil {
		appLogger.Error(context.Background(), err, "Error fetching candles")
		log.Fatalf("Error fetching candles: %v", err)
	}
	appLogger.Info(context.Background(), "Fetched candles", map[string]interface{}{"count": len(candles)})

	inserted, err := repo.SaveCandles(context.Background(), candles)
	if err != nil {
		appLogger.Error(context.Background(), err, "Error saving candles")
		log.Fatalf("Error saving candles: %v", err)
	}
	appLogger.Info(context.Background(), "Saved candles", map[string]interface{}{"inserted": inserted})

	filename := fmt.Sprintf("data/%s_%s_%s_to_%s.csv", cfg.Symbol, cfg.Interval, start.Format("20060102"), end.Format("20060102"))
	if err := utils.WriteCandlesToCSV(candles, filename); err != nil {
		appLogger.Error(context.Background(), err, "Error writing CSV")
		log.Fatalf("Error writing CSV: %v", err)
	}
	appLogger.Info(context.Background(), "Saved to", map[string]interface{}{"filename": filename})
}
