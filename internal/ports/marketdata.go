package ports

import (
	"context"
	"time"

	"candleChart/internal/domain"
)

// MarketDataClient defines the interface for fetching candle data from an
// exchange. This abstraction decouples the chart from a specific exchange
// implementation.
type MarketDataClient interface {
	// GetCandles retrieves the most recent historical candles for the given symbol.
	GetCandles(ctx context.Context, symbol string, interval string, limit int) (domain.Series, error)

	// GetCandlesRange retrieves all historical candles between start and end,
	// paginating as needed.
	GetCandlesRange(ctx context.Context, symbol, interval string, start, end time.Time) (domain.Series, error)

	// StreamCandles starts a WebSocket stream for candle data.
	// It takes handlers for processing domain.Candle events and errors.
	// Returns channels to control the stream (doneCh, stopCh) or an error if connection fails.
	StreamCandles(ctx context.Context, symbol, interval string, handler func(candle *domain.Candle), errHandler func(err error)) (doneCh chan struct{}, stopCh chan struct{}, err error)

	// Ping checks the connectivity to the exchange API.
	Ping(ctx context.Context) error

	// GetServerTime retrieves the current server time from the exchange.
	GetServerTime(ctx context.Context) (time.Time, error)
}
