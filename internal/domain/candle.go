package domain

import "time"

// Candle represents a single OHLCV data point for one time bucket.
// Candles are immutable once created; a Series is replaced wholesale,
// never mutated in place.
type Candle struct {
	OpenTime      time.Time // Start time of the interval
	CloseTime     time.Time // End time of the interval
	Symbol        string    // Trading symbol
	Interval      string    // Candle interval (e.g., "5m", "1h")
	Open          float64   // Opening price
	High          float64   // Highest price
	Low           float64   // Lowest price
	Close         float64   // Closing price
	Volume        float64   // Trading volume
	MovingAverage *float64  // Trailing moving average, nil until the window is full
	IsFinal       bool      // Whether this candle is the final one for the interval
}

// Direction reports whether the candle closed at or above its open.
func (c *Candle) Direction() Direction {
	if c.Close >= c.Open {
		return Bullish
	}
	return Bearish
}

// BodyHigh returns the upper edge of the candle body.
func (c *Candle) BodyHigh() float64 {
	if c.Open > c.Close {
		return c.Open
	}
	return c.Close
}

// BodyLow returns the lower edge of the candle body.
func (c *Candle) BodyLow() float64 {
	if c.Open < c.Close {
		return c.Open
	}
	return c.Close
}

// Series is an ordered sequence of candles, index 0..N-1, insertion order
// equal to chronological order. Callers are responsible for supplying
// chronologically sorted candles without duplicate timestamps; the chart
// core does not validate this (documented precondition, not enforced).
type Series []*Candle

// Closes returns the close price of every candle in order.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, c := range s {
		closes[i] = c.Close
	}
	return closes
}
