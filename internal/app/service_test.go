package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"candleChart/config"
	"candleChart/internal/chart"
	"candleChart/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...map[string]interface{}) {}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...map[string]interface{})  {}
func (m *mockLogger) Error(ctx context.Context, err error, msg string, fields ...map[string]interface{}) {
}

type mockMarket struct {
	getCandlesFn func(ctx context.Context, symbol, interval string, limit int) (domain.Series, error)
	getCalls     int
}

func (m *mockMarket) GetCandles(ctx context.Context, symbol, interval string, limit int) (domain.Series, error) {
	m.getCalls++
	if m.getCandlesFn != nil {
		return m.getCandlesFn(ctx, symbol, interval, limit)
	}
	return nil, nil
}

func (m *mockMarket) GetCandlesRange(ctx context.Context, symbol, interval string, start, end time.Time) (domain.Series, error) {
	return nil, nil
}

func (m *mockMarket) StreamCandles(ctx context.Context, symbol, interval string, handler func(candle *domain.Candle), errHandler func(err error)) (chan struct{}, chan struct{}, error) {
	return make(chan struct{}), make(chan struct{}, 1), nil
}

func (m *mockMarket) Ping(ctx context.Context) error { return nil }

func (m *mockMarket) GetServerTime(ctx context.Context) (time.Time, error) {
	return time.Now(), nil
}

type mockRepo struct {
	stored    domain.Series
	findErr   error
	saveErr   error
	saveCalls int
	saved     []*domain.Candle
}

func (m *mockRepo) SaveCandles(ctx context.Context, candles []*domain.Candle) (int, error) {
	m.saveCalls++
	if m.saveErr != nil {
		return 0, m.saveErr
	}
	m.saved = append(m.saved, candles...)
	return len(candles), nil
}

func (m *mockRepo) FindRecent(ctx context.Context, symbol, interval string, limit int) (domain.Series, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	if len(m.stored) > limit {
		return m.stored[len(m.stored)-limit:], nil
	}
	return m.stored, nil
}

func (m *mockRepo) CountBySymbol(ctx context.Context, symbol, interval string) (int, error) {
	return len(m.stored), nil
}

type mockSink struct {
	frames   []*chart.Frame
	writeErr error
}

func (m *mockSink) WriteFrame(frame *chart.Frame) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.frames = append(m.frames, frame)
	return nil
}

// --- Helpers ---

func testConfig() *config.Config {
	return &config.Config{
		Symbol:           "ETHUSDT",
		Interval:         "5m",
		HistoryLimit:     5,
		CandleWidthPx:    40,
		CandleSpacingPx:  4,
		PriceAxisWidthPx: 60,
		TimeAxisHeightPx: 30,
		ChartHeightPx:    300,
		VolumeHeightPx:   100,
		CanvasWidthPx:    800,
		BullColor:        "#26a69a",
		BearColor:        "#ef5350",
		MAColor:          "#ff9800",
		PriceTickCount:   9,
		VolumeTickCount:  3,
		PricePrecision:   2,
		ShowVolume:       true,
		ShowMA:           true,
		MAPeriod:         3,
		OutputPath:       "ignored.svg",
	}
}

func makeCandles(n int) domain.Series {
	start := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	series := make(domain.Series, n)
	for i := 0; i < n; i++ {
		series[i] = &domain.Candle{
			Symbol:    "ETHUSDT",
			Interval:  "5m",
			OpenTime:  start.Add(time.Duration(i) * 5 * time.Minute),
			CloseTime: start.Add(time.Duration(i+1) * 5 * time.Minute),
			Open:      2000 + float64(i),
			High:      2010 + float64(i),
			Low:       1990 + float64(i),
			Close:     2001 + float64(i),
			Volume:    1000,
			IsFinal:   true,
		}
	}
	return series
}

func newTestService(t *testing.T, cfg *config.Config, market *mockMarket, repo *mockRepo, sink *mockSink) *ChartService {
	t.Helper()
	svc, err := NewChartService(cfg, &mockLogger{}, market, repo, sink)
	require.NoError(t, err)
	return svc
}

// --- Tests ---

func TestNewChartService_Validation(t *testing.T) {
	cfg := testConfig()
	logger := &mockLogger{}
	market := &mockMarket{}
	repo := &mockRepo{}
	sink := &mockSink{}

	t.Run("valid dependencies", func(t *testing.T) {
		svc, err := NewChartService(cfg, logger, market, repo, sink)
		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("missing dependency", func(t *testing.T) {
		_, err := NewChartService(cfg, logger, nil, repo, sink)
		assert.Error(t, err)
	})

	t.Run("non-positive history limit", func(t *testing.T) {
		bad := testConfig()
		bad.HistoryLimit = 0
		_, err := NewChartService(bad, logger, market, repo, sink)
		assert.Error(t, err)
	})

	t.Run("canvas narrower than the price axis", func(t *testing.T) {
		bad := testConfig()
		bad.CanvasWidthPx = 50
		_, err := NewChartService(bad, logger, market, repo, sink)
		assert.Error(t, err)
	})

	t.Run("invalid moving average period", func(t *testing.T) {
		bad := testConfig()
		bad.MAPeriod = 0
		_, err := NewChartService(bad, logger, market, repo, sink)
		assert.Error(t, err)
	})
}

func TestChartService_LoadSeries(t *testing.T) {
	ctx := context.Background()

	t.Run("full repository skips the exchange", func(t *testing.T) {
		market := &mockMarket{}
		repo := &mockRepo{stored: makeCandles(5)}
		svc := newTestService(t, testConfig(), market, repo, &mockSink{})

		series, err := svc.LoadSeries(ctx)
		require.NoError(t, err)
		assert.Len(t, series, 5)
		assert.Equal(t, 0, market.getCalls)
		assert.NotNil(t, series[4].MovingAverage, "series must carry the moving-average annotation")
	})

	t.Run("short repository falls back to the exchange and persists", func(t *testing.T) {
		fetched := makeCandles(5)
		market := &mockMarket{
			getCandlesFn: func(ctx context.Context, symbol, interval string, limit int) (domain.Series, error) {
				assert.Equal(t, "ETHUSDT", symbol)
				assert.Equal(t, 5, limit)
				return fetched, nil
			},
		}
		repo := &mockRepo{stored: makeCandles(2)}
		svc := newTestService(t, testConfig(), market, repo, &mockSink{})

		series, err := svc.LoadSeries(ctx)
		require.NoError(t, err)
		assert.Len(t, series, 5)
		assert.Equal(t, 1, market.getCalls)
		assert.Len(t, repo.saved, 5)
	})

	t.Run("exchange failure falls back to partial stored data", func(t *testing.T) {
		market := &mockMarket{
			getCandlesFn: func(ctx context.Context, symbol, interval string, limit int) (domain.Series, error) {
				return nil, errors.New("exchange down")
			},
		}
		repo := &mockRepo{stored: makeCandles(3)}
		svc := newTestService(t, testConfig(), market, repo, &mockSink{})

		series, err := svc.LoadSeries(ctx)
		require.NoError(t, err)
		assert.Len(t, series, 3)
	})

	t.Run("no data anywhere is an error", func(t *testing.T) {
		market := &mockMarket{
			getCandlesFn: func(ctx context.Context, symbol, interval string, limit int) (domain.Series, error) {
				return nil, errors.New("exchange down")
			},
		}
		svc := newTestService(t, testConfig(), market, &mockRepo{}, &mockSink{})

		_, err := svc.LoadSeries(ctx)
		assert.Error(t, err)
	})

	t.Run("save failure is tolerated", func(t *testing.T) {
		market := &mockMarket{
			getCandlesFn: func(ctx context.Context, symbol, interval string, limit int) (domain.Series, error) {
				return makeCandles(5), nil
			},
		}
		repo := &mockRepo{saveErr: errors.New("disk full")}
		svc := newTestService(t, testConfig(), market, repo, &mockSink{})

		series, err := svc.LoadSeries(ctx)
		require.NoError(t, err)
		assert.Len(t, series, 5)
	})
}

func TestChartService_RenderOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("writes one frame from the stored series", func(t *testing.T) {
		sink := &mockSink{}
		repo := &mockRepo{stored: makeCandles(5)}
		svc := newTestService(t, testConfig(), &mockMarket{}, repo, sink)

		require.NoError(t, svc.RenderOnce(ctx))
		require.Len(t, sink.frames, 1)
		assert.Greater(t, len(sink.frames[0].Ops), 1, "frame must contain more than the background")
	})

	t.Run("propagates sink failures", func(t *testing.T) {
		sink := &mockSink{writeErr: errors.New("read-only filesystem")}
		repo := &mockRepo{stored: makeCandles(5)}
		svc := newTestService(t, testConfig(), &mockMarket{}, repo, sink)

		assert.Error(t, svc.RenderOnce(ctx))
	})
}

func TestChartService_HandleCandleEvent(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*ChartService, *mockRepo, *mockSink) {
		sink := &mockSink{}
		repo := &mockRepo{stored: makeCandles(5)}
		svc := newTestService(t, testConfig(), &mockMarket{}, repo, sink)
		require.NoError(t, svc.RenderOnce(ctx))
		return svc, repo, sink
	}

	t.Run("final candle extends the series and renders", func(t *testing.T) {
		svc, repo, sink := setup(t)
		next := makeCandles(6)[5]

		svc.handleCandleEvent(next)

		require.Len(t, sink.frames, 2)
		assert.Contains(t, repo.saved, next)
	})

	t.Run("series is trimmed to the history limit", func(t *testing.T) {
		svc, _, sink := setup(t)
		extra := makeCandles(8)

		svc.handleCandleEvent(extra[5])
		svc.handleCandleEvent(extra[6])
		svc.handleCandleEvent(extra[7])

		require.Len(t, sink.frames, 4)
		// HistoryLimit is 5; the time-axis emits one label per visible candle,
		// so no frame can reference more candles than the limit.
		assert.LessOrEqual(t, len(sink.frames[3].Ops), len(sink.frames[0].Ops))
	})

	t.Run("forming candle is ignored", func(t *testing.T) {
		svc, repo, sink := setup(t)
		forming := makeCandles(6)[5]
		forming.IsFinal = false

		svc.handleCandleEvent(forming)

		assert.Len(t, sink.frames, 1)
		assert.NotContains(t, repo.saved, forming)
	})
}
