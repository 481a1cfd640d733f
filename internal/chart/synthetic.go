package chart

import (
	"math/rand"
	"time"

	"candleChart/internal/domain"
	"candleChart/internal/indicators"
)

// SyntheticConfig configures the demo series generator.
type SyntheticConfig struct {
	Count    int           // Number of candles to generate
	Step     time.Duration // Time between candles; defaults to 5 minutes
	MAPeriod int           // Trailing moving-average window; defaults to 20
	Seed     int64         // Random seed; 0 seeds from the current time
	Symbol   string
	Interval string
}

// GenerateSeries produces a plausible random OHLCV series for exercising the
// chart, ending at "now". Prices follow a rising base trend of 100 + 2*i with
// uniform random perturbations: open and close within ±5 of the base, high in
// [+5, +15], low in [-15, -5]. High and low perturb the base price, not the
// open/close envelope, so low <= min(open, close) is not guaranteed. Volume is
// uniform in [5000, 15000]. The trailing moving average over closes is
// annotated through the indicators package.
func GenerateSeries(cfg SyntheticConfig) domain.Series {
	if cfg.Count <= 0 {
		return nil
	}
	step := cfg.Step
	if step <= 0 {
		step = 5 * time.Minute
	}
	maPeriod := cfg.MAPeriod
	if maPeriod <= 0 {
		maPeriod = 20
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	start := time.Now().Add(-time.Duration(cfg.Count) * step)
	series := make(domain.Series, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		base := 100.0 + 2.0*float64(i)
		openTime := start.Add(time.Duration(i) * step)
		series = append(series, &domain.Candle{
			OpenTime:  openTime,
			CloseTime: openTime.Add(step),
			Symbol:    cfg.Symbol,
			Interval:  cfg.Interval,
			Open:      base + rnd.Float64()*10 - 5,
			Close:     base + rnd.Float64()*10 - 5,
			High:      base + 5 + rnd.Float64()*10,
			Low:       base - 15 + rnd.Float64()*10,
			Volume:    5000 + rnd.Float64()*10000,
			IsFinal:   true,
		})
	}

	ma, err := indicators.NewMovingAverage(indicators.MovingAverageConfig{Period: maPeriod})
	if err != nil {
		return series
	}
	return ma.Annotate(series)
}
