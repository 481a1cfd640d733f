package ports

import (
	"context"

	"candleChart/internal/domain"
)

// SeriesRepository defines the interface for storing and retrieving candle series.
type SeriesRepository interface {
	// SaveCandles persists a batch of candles, skipping duplicates
	// (same symbol, interval and open time). Returns the number of rows inserted.
	SaveCandles(ctx context.Context, candles []*domain.Candle) (int, error)
	// FindRecent retrieves the most recent candles for a symbol and interval,
	// up to a limit, in chronological order.
	FindRecent(ctx context.Context, symbol, interval string, limit int) (domain.Series, error)
	// CountBySymbol counts the stored candles for a symbol and interval.
	CountBySymbol(ctx context.Context, symbol, interval string) (int, error)
}
