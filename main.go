package main

import (
	"context"
	"log" // Use standard log only for initial fatal errors before logger is set up

	"candleChart/config"
	"candleChart/internal/adapters/binanceclient"
	"candleChart/internal/adapters/logger"
	"candleChart/internal/adapters/sqlite"
	"candleChart/internal/adapters/svg"
	"candleChart/internal/app"
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

	// 3. Initialize Repository (Database Adapter)
	repo, err := sqlite.NewRepository(sqlite.Config{
		DBPath: cfg.DBPath,
		Logger: appLogger,
	})
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize database repository")
		log.Fatalf("FATAL: Failed to initialize database repository: %v", err) // Also log to stderr
	}
	defer func() {
		if err := repo.Close(); err != nil {
			appLogger.Error(context.Background(), err, "Error closing database repository")
		}
	}()
	appLogger.Info(context.Background(), "Database repository initialized")

	// 4. Initialize Market Data Client (Binance Adapter)
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

	// 5. Initialize Frame Sink (SVG Adapter)
	sink := svg.NewFileSink(cfg.OutputPath)
	appLogger.Info(context.Background(), "Frame sink initialized", map[string]interface{}{"output": cfg.OutputPath})

	// 6. Initialize Application Service
	chartService, err := app.NewChartService(cfg, appLogger, binanceClient, repo, sink)
	if err != nil {
		appLogger.Error(context.Background(), err, "FATAL: Failed to initialize chart service")
		log.Fatalf("FATAL: Failed to initialize chart service: %v", err)
	}
	appLogger.Info(context.Background(), "Chart service initialized")

	// 7. Start the Service
	if err := chartService.Start(context.Background()); err != nil {
		appLogger.Error(context.Background(), err, "Chart service exited with error")
		log.Fatalf("FATAL: Chart service exited with error: %v", err)
	}

	appLogger.Info(context.Background(), "Application finished gracefully.")
}
