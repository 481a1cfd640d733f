package indicators

import (
	"fmt"

	"candleChart/internal/domain"
)

// MovingAverageConfig holds configuration for the moving average indicator.
type MovingAverageConfig struct {
	Period int
}

// MovingAverage computes a trailing simple moving average over the close
// prices of a candle series.
type MovingAverage struct {
	config MovingAverageConfig
}

// NewMovingAverage creates a new moving average indicator instance.
func NewMovingAverage(config MovingAverageConfig) (*MovingAverage, error) {
	if config.Period < 1 {
		return nil, fmt.Errorf("moving average period must be positive, got %d", config.Period)
	}
	return &MovingAverage{config: config}, nil
}

// Period returns the configured window size.
func (m *MovingAverage) Period() int {
	return m.config.Period
}

// At computes the trailing mean of the close prices for the window ending at
// index i. The window [i-Period+1, i] must be fully inside the series.
func (m *MovingAverage) At(candles domain.Series, i int) (float64, error) {
	period := m.config.Period
	if i < period-1 || i >= len(candles) {
		return 0, fmt.Errorf("index %d has no full window of %d candles (series length %d)", i, period, len(candles))
	}
	total := 0.0
	for j := i - period + 1; j <= i; j++ {
		total += candles[j].Close
	}
	return total / float64(period), nil
}

// Annotate returns a copy of the series with MovingAverage set on every
// candle whose trailing window is full; earlier candles keep a nil moving
// average. Each window is recomputed independently rather than kept as a
// running sum. The input series is not modified.
func (m *MovingAverage) Annotate(candles domain.Series) domain.Series {
	annotated := make(domain.Series, len(candles))
	for i, c := range candles {
		copied := *c
		copied.MovingAverage = nil
		if value, err := m.At(candles, i); err == nil {
			copied.MovingAverage = &value
		}
		annotated[i] = &copied
	}
	return annotated
}
