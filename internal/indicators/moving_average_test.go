package indicators

import (
	"math"
	"testing"
	"time"

	"candleChart/internal/domain"
)

func candlesWithCloses(closes ...float64) domain.Series {
	now := time.Now()
	series := make(domain.Series, len(closes))
	for i, c := range closes {
		series[i] = &domain.Candle{
			OpenTime: now.Add(time.Duration(i-len(closes)) * time.Hour),
			Close:    c,
		}
	}
	return series
}

func TestNewMovingAverage(t *testing.T) {
	if _, err := NewMovingAverage(MovingAverageConfig{Period: 0}); err == nil {
		t.Error("expected an error for a zero period")
	}
	if _, err := NewMovingAverage(MovingAverageConfig{Period: -3}); err == nil {
		t.Error("expected an error for a negative period")
	}
	ma, err := NewMovingAverage(MovingAverageConfig{Period: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ma.Period() != 20 {
		t.Errorf("expected period 20, got %d", ma.Period())
	}
}

func TestMovingAverage_At(t *testing.T) {
	candles := candlesWithCloses(100, 102, 101, 103, 104)

	tests := []struct {
		name          string
		period        int
		index         int
		expectedValue float64
		expectError   bool
	}{
		{
			name:          "full window at the last candle",
			period:        3,
			index:         4,
			expectedValue: 102.666667, // (101 + 103 + 104) / 3
		},
		{
			name:          "window ending mid-series",
			period:        3,
			index:         2,
			expectedValue: 101.0,
		},
		{
			name:          "period of one returns the close",
			period:        1,
			index:         0,
			expectedValue: 100.0,
		},
		{
			name:        "insufficient data",
			period:      7,
			index:       4,
			expectError: true,
		},
		{
			name:        "window not yet full",
			period:      3,
			index:       1,
			expectError: true,
		},
		{
			name:        "index out of range",
			period:      3,
			index:       5,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ma, err := NewMovingAverage(MovingAverageConfig{Period: tt.period})
			if err != nil {
				t.Fatalf("unexpected constructor error: %v", err)
			}
			got, err := ma.At(candles, tt.index)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.expectedValue) > 1e-6 {
				t.Errorf("expected %f, got %f", tt.expectedValue, got)
			}
		})
	}
}

func TestMovingAverage_Annotate(t *testing.T) {
	ma, err := NewMovingAverage(MovingAverageConfig{Period: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	candles := candlesWithCloses(100, 102, 101, 103, 104)

	annotated := ma.Annotate(candles)

	if len(annotated) != len(candles) {
		t.Fatalf("expected %d candles, got %d", len(candles), len(annotated))
	}
	for i := 0; i < 2; i++ {
		if annotated[i].MovingAverage != nil {
			t.Errorf("candle %d: expected nil moving average before the window fills", i)
		}
	}
	want := []float64{101.0, 102.0, 102.666667}
	for i := 2; i < len(annotated); i++ {
		if annotated[i].MovingAverage == nil {
			t.Fatalf("candle %d: expected a moving average", i)
		}
		if got := *annotated[i].MovingAverage; math.Abs(got-want[i-2]) > 1e-6 {
			t.Errorf("candle %d: expected %f, got %f", i, want[i-2], got)
		}
	}

	// The input series must not be touched.
	for i, c := range candles {
		if c.MovingAverage != nil {
			t.Errorf("candle %d: input series was modified", i)
		}
	}
}

func TestMovingAverage_AnnotateConstantSeries(t *testing.T) {
	ma, err := NewMovingAverage(MovingAverageConfig{Period: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	annotated := ma.Annotate(candlesWithCloses(50, 50, 50, 50))
	for i := 1; i < len(annotated); i++ {
		if annotated[i].MovingAverage == nil || *annotated[i].MovingAverage != 50 {
			t.Errorf("candle %d: expected a constant moving average of 50", i)
		}
	}
}
