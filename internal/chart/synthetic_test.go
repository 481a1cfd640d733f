package chart

import (
	"testing"
	"time"
)

func TestGenerateSeries(t *testing.T) {
	cfg := SyntheticConfig{Count: 60, Seed: 1, Symbol: "ETHUSDT", Interval: "5m"}
	series := GenerateSeries(cfg)

	if len(series) != 60 {
		t.Fatalf("expected 60 candles, got %d", len(series))
	}

	for i, c := range series {
		base := 100.0 + 2.0*float64(i)
		if c.Open < base-5 || c.Open > base+5 {
			t.Errorf("candle %d: open %f outside [%f, %f]", i, c.Open, base-5, base+5)
		}
		if c.Close < base-5 || c.Close > base+5 {
			t.Errorf("candle %d: close %f outside [%f, %f]", i, c.Close, base-5, base+5)
		}
		if c.High < base+5 || c.High > base+15 {
			t.Errorf("candle %d: high %f outside [%f, %f]", i, c.High, base+5, base+15)
		}
		if c.Low < base-15 || c.Low > base-5 {
			t.Errorf("candle %d: low %f outside [%f, %f]", i, c.Low, base-15, base-5)
		}
		if c.Volume < 5000 || c.Volume > 15000 {
			t.Errorf("candle %d: volume %f outside [5000, 15000]", i, c.Volume)
		}
		if c.Symbol != "ETHUSDT" || c.Interval != "5m" {
			t.Errorf("candle %d: unexpected identity %s/%s", i, c.Symbol, c.Interval)
		}
		if !c.IsFinal {
			t.Errorf("candle %d: synthetic candles must be final", i)
		}
		if i > 0 {
			if got := c.OpenTime.Sub(series[i-1].OpenTime); got != 5*time.Minute {
				t.Errorf("candle %d: expected a 5m step, got %v", i, got)
			}
		}
	}
}

func TestGenerateSeries_MovingAverageAnnotation(t *testing.T) {
	series := GenerateSeries(SyntheticConfig{Count: 40, Seed: 1, MAPeriod: 20})

	for i := 0; i < 19; i++ {
		if series[i].MovingAverage != nil {
			t.Errorf("candle %d: expected nil moving average before the window fills", i)
		}
	}
	for i := 19; i < len(series); i++ {
		if series[i].MovingAverage == nil {
			t.Fatalf("candle %d: expected a moving average", i)
		}
	}

	// Spot-check the window ending at index 19 against the closes.
	total := 0.0
	for i := 0; i < 20; i++ {
		total += series[i].Close
	}
	want := total / 20
	if got := *series[19].MovingAverage; got != want {
		t.Errorf("expected moving average %f at index 19, got %f", want, got)
	}
}

func TestGenerateSeries_SeedDeterminism(t *testing.T) {
	a := GenerateSeries(SyntheticConfig{Count: 30, Seed: 7})
	b := GenerateSeries(SyntheticConfig{Count: 30, Seed: 7})

	for i := range a {
		if a[i].Open != b[i].Open || a[i].Close != b[i].Close || a[i].High != b[i].High || a[i].Low != b[i].Low || a[i].Volume != b[i].Volume {
			t.Fatalf("candle %d differs between runs with the same seed", i)
		}
	}
}

func TestGenerateSeries_EmptyCount(t *testing.T) {
	if got := GenerateSeries(SyntheticConfig{Count: 0}); got != nil {
		t.Errorf("expected nil series for a zero count, got %d candles", len(got))
	}
}
