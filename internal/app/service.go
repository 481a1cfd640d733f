package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"candleChart/config"
	"candleChart/internal/chart"
	"candleChart/internal/domain"
	"candleChart/internal/indicators"
	"candleChart/internal/ports"
)

// FrameSink persists one rendered frame, e.g. as an SVG file.
type FrameSink interface {
	WriteFrame(frame *chart.Frame) error
}

// ChartService orchestrates the chart: it loads a candle series from the
// repository (falling back to the exchange), keeps the chart instance fed
// with fresh data, and renders frames to a sink.
type ChartService struct {
	cfg    *config.Config
	logger ports.Logger
	market ports.MarketDataClient
	repo   ports.SeriesRepository
	sink   FrameSink
	ma     *indicators.MovingAverage

	// mu protects the chart instance: the WebSocket handler mutates it from
	// the stream goroutine while Start waits for shutdown. Within one lock
	// acquisition a frame is always built from a single consistent snapshot
	// of (series, viewport state).
	mu    sync.Mutex
	chart *chart.Chart
}

// NewChartService creates a new application service instance.
func NewChartService(
	cfg *config.Config,
	logger ports.Logger,
	market ports.MarketDataClient,
	repo ports.SeriesRepository,
	sink FrameSink,
) (*ChartService, error) {
	if cfg == nil || logger == nil || market == nil || repo == nil || sink == nil {
		return nil, fmt.Errorf("missing required dependencies for ChartService")
	}
	if cfg.HistoryLimit <= 0 {
		return nil, fmt.Errorf("configuration HistoryLimit must be positive")
	}
	if cfg.CanvasWidthPx <= cfg.PriceAxisWidthPx {
		return nil, fmt.Errorf("configuration CanvasWidthPx must exceed PriceAxisWidthPx")
	}

	ma, err := indicators.NewMovingAverage(indicators.MovingAverageConfig{Period: cfg.MAPeriod})
	if err != nil {
		return nil, fmt.Errorf("invalid moving average configuration: %w", err)
	}

	return &ChartService{
		cfg:    cfg,
		logger: logger,
		market: market,
		repo:   repo,
		sink:   sink,
		ma:     ma,
		chart:  chart.New(cfg.ChartOptions()),
	}, nil
}

// LoadSeries returns the series the chart should display: stored candles when
// enough are available, otherwise a fresh fetch from the exchange that is also
// persisted for the next run. The returned series carries the moving-average
// annotation.
func (s *ChartService) LoadSeries(ctx context.Context) (domain.Series, error) {
	stored, err := s.repo.FindRecent(ctx, s.cfg.Symbol, s.cfg.Interval, s.cfg.HistoryLimit)
	if err != nil {
		s.logger.Warn(ctx, "Failed to load stored candles, falling back to exchange", map[string]interface{}{"error": err.Error()})
	}
	if len(stored) >= s.cfg.HistoryLimit {
		s.logger.Info(ctx, "Loaded candle series from repository", map[string]interface{}{"count": len(stored)})
		return s.ma.Annotate(stored), nil
	}

	fetched, err := s.market.GetCandles(ctx, s.cfg.Symbol, s.cfg.Interval, s.cfg.HistoryLimit)
	if err != nil {
		if len(stored) > 0 {
			s.logger.Warn(ctx, "Exchange fetch failed, using partial stored series", map[string]interface{}{"count": len(stored), "error": err.Error()})
			return s.ma.Annotate(stored), nil
		}
		return nil, fmt.Errorf("failed to load candles from exchange: %w", err)
	}

	inserted, err := s.repo.SaveCandles(ctx, fetched)
	if err != nil {
		// Persistence is best-effort here; the chart can still render.
		s.logger.Warn(ctx, "Failed to persist fetched candles", map[string]interface{}{"error": err.Error()})
	} else {
		s.logger.Info(ctx, "Fetched candle series from exchange", map[string]interface{}{"count": len(fetched), "inserted": inserted})
	}
	return s.ma.Annotate(fetched), nil
}

// RenderOnce loads the series, positions the viewport at the newest candles
// and writes a single frame to the sink.
func (s *ChartService) RenderOnce(ctx context.Context) error {
	series, err := s.LoadSeries(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chart.SetSeries(series)
	s.chart.ScrollToLatest(s.cfg.CanvasWidthPx)
	return s.writeFrameLocked(ctx)
}

// writeFrameLocked renders the current chart state to the sink.
// Callers must hold s.mu.
func (s *ChartService) writeFrameLocked(ctx context.Context) error {
	frame := s.chart.Render(s.cfg.CanvasWidthPx)
	if err := s.sink.WriteFrame(frame); err != nil {
		return fmt.Errorf("failed to write frame: %w", err)
	}
	s.logger.Debug(ctx, "Frame rendered", map[string]interface{}{"ops": len(frame.Ops)})
	return nil
}

// Start renders an initial frame and, in live mode, keeps re-rendering as new
// candles stream in. It blocks until the context is cancelled, a shutdown
// signal arrives, or the stream fails permanently.
func (s *ChartService) Start(ctx context.Context) error {
	s.logger.Info(ctx, "Starting Chart Service...")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		s.logger.Info(ctx, "Received shutdown signal", map[string]interface{}{"signal": sig.String()})
		cancel()
	}()

	if err := s.RenderOnce(ctx); err != nil {
		return err
	}
	s.logger.Info(ctx, "Initial frame written", map[string]interface{}{"output": s.cfg.OutputPath})

	if !s.cfg.LiveMode {
		return nil
	}

	wsDoneCh, wsStopCh, err := s.market.StreamCandles(ctx, s.cfg.Symbol, s.cfg.Interval, s.handleCandleEvent, s.handleWsError)
	if err != nil {
		s.logger.Error(ctx, err, "Failed to start WebSocket stream")
		return fmt.Errorf("failed to start WebSocket stream: %w", err)
	}
	s.logger.Info(ctx, "WebSocket stream started", map[string]interface{}{"symbol": s.cfg.Symbol, "interval": s.cfg.Interval})

	select {
	case <-ctx.Done():
		s.logger.Info(ctx, "Main context cancelled, initiating shutdown...")
		select {
		case wsStopCh <- struct{}{}:
			s.logger.Info(ctx, "Stop signal sent to WebSocket stream")
		default:
			s.logger.Warn(ctx, "Failed to send stop signal to WebSocket (already closed?)")
		}
		select {
		case <-wsDoneCh:
			s.logger.Info(ctx, "WebSocket stream shut down gracefully")
		case <-time.After(5 * time.Second):
			s.logger.Warn(ctx, "Timeout waiting for WebSocket stream to shut down")
		}
	case <-wsDoneCh:
		s.logger.Error(ctx, fmt.Errorf("websocket stream closed unexpectedly"), "WebSocket stream stopped")
		return fmt.Errorf("websocket stream stopped unexpectedly")
	}

	s.logger.Info(ctx, "Chart Service stopped.")
	return nil
}

// handleCandleEvent processes incoming candle data from the WebSocket.
// Only final candles extend the series; intermediate updates of the forming
// candle are ignored to keep the series append-only.
func (s *ChartService) handleCandleEvent(candle *domain.Candle) {
	ctx := context.Background()
	if !candle.IsFinal {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Appending creates a new series value; the chart treats it as a series
	// replacement, so the viewport is re-positioned at the newest candles
	// afterwards.
	old := s.chart.Series()
	series := make(domain.Series, 0, len(old)+1)
	series = append(series, old...)
	series = append(series, candle)
	if len(series) > s.cfg.HistoryLimit {
		series = series[len(series)-s.cfg.HistoryLimit:]
	}

	s.chart.SetSeries(s.ma.Annotate(series))
	s.chart.ScrollToLatest(s.cfg.CanvasWidthPx)
	if err := s.writeFrameLocked(ctx); err != nil {
		s.logger.Error(ctx, err, "Failed to render frame for live candle")
		return
	}

	if _, err := s.repo.SaveCandles(ctx, []*domain.Candle{candle}); err != nil {
		s.logger.Warn(ctx, "Failed to persist live candle", map[string]interface{}{"error": err.Error()})
	}

	s.logger.Info(ctx, "Live candle rendered", map[string]interface{}{
		"symbol":   candle.Symbol,
		"openTime": candle.OpenTime,
		"close":    candle.Close,
	})
}

// handleWsError logs WebSocket errors; reconnection is the adapter's job.
func (s *ChartService) handleWsError(err error) {
	s.logger.Warn(context.Background(), "WebSocket stream error", map[string]interface{}{"error": err.Error()})
}
