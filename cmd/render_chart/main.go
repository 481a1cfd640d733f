package main

import (
	"context"
	"log"

	"candleChart/config"
	"candleChart/internal/adapters/logger"
	"candleChart/internal/adapters/sqlite"
	"candleChart/internal/adapters/svg"
	"candleChart/internal/chart"
	"candleChart/internal/indicators"
)

// Renders a single chart frame to an SVG file from stored candles, falling
// back to a synthetic demo series when the database has no data.
func main() {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	// 2. Initialize Logger
	appLogger := logger.NewStdLogger(cfg.LogLevel)
	ctx := context.Background()
	appLogger.Info(ctx, "Logger initialized", map[string]interface{}{"level": cfg.LogLevel.String()})

	// 3. Load candles from the repository, if it has any
	repo, err := sqlite.NewRepository(sqlite.Config{
		DBPath: cfg.DBPath,
		Logger: appLogger,
	})
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to initialize database repository")
		log.Fatalf("FATAL: Failed to initialize database repository: %v", err)
	}
	defer repo.Close()

	series, err := repo.FindRecent(ctx, cfg.Symbol, cfg.Interval, cfg.HistoryLimit)
	if err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to load candles")
		log.Fatalf("FATAL: Failed to load candles: %v", err)
	}

	if len(series) > 0 {
		ma, err := indicators.NewMovingAverage(indicators.MovingAverageConfig{Period: cfg.MAPeriod})
		if err != nil {
			appLogger.Error(ctx, err, "FATAL: Invalid moving average configuration")
			log.Fatalf("FATAL: Invalid moving average configuration: %v", err)
		}
		series = ma.Annotate(series)
		appLogger.Info(ctx, "Loaded candle series from repository", map[string]interface{}{"count": len(series)})
	} else {
		series = chart.GenerateSeries(chart.SyntheticConfig{
			Count:    cfg.SyntheticCount,
			MAPeriod: cfg.MAPeriod,
			Symbol:   cfg.Symbol,
			Interval: cfg.Interval,
		})
		appLogger.Info(ctx, "No stored candles, generated synthetic series", map[string]interface{}{"count": len(series)})
	}

	// 4. Build the chart and render one frame. The demo uses narrower candles
	// than the default so more of the series fits on screen.
	opts := cfg.ChartOptions()
	opts.InitialCandleWidthPx = 20
	c := chart.New(opts)
	c.SetSeries(series)
	c.ScrollToLatest(cfg.CanvasWidthPx)

	sink := svg.NewFileSink(cfg.OutputPath)
	if err := sink.WriteFrame(c.Render(cfg.CanvasWidthPx)); err != nil {
		appLogger.Error(ctx, err, "FATAL: Failed to write frame")
		log.Fatalf("FATAL: Failed to write frame: %v", err)
	}
	appLogger.Info(ctx, "Chart rendered", map[string]interface{}{"output": cfg.OutputPath})
}
