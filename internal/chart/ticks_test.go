package chart

import (
	"math"
	"testing"
	"time"
)

func TestAxisTicks(t *testing.T) {
	tests := []struct {
		name  string
		max   float64
		min   float64
		count int
		want  []float64
	}{
		{
			name:  "nine price ticks",
			max:   100,
			min:   0,
			count: 9,
			want:  []float64{100, 87.5, 75, 62.5, 50, 37.5, 25, 12.5, 0},
		},
		{
			name:  "three volume ticks",
			max:   15000,
			min:   0,
			count: 3,
			want:  []float64{15000, 7500, 0},
		},
		{
			name:  "degenerate range repeats the value",
			max:   42,
			min:   42,
			count: 3,
			want:  []float64{42, 42, 42},
		},
		{
			name:  "single tick",
			max:   10,
			min:   0,
			count: 1,
			want:  []float64{10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AxisTicks(tt.max, tt.min, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d ticks, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Errorf("tick %d: expected %f, got %f", i, tt.want[i], got[i])
				}
			}
			for i := 1; i < len(got); i++ {
				if got[i] > got[i-1] {
					t.Errorf("ticks not descending at %d: %f > %f", i, got[i], got[i-1])
				}
			}
		})
	}
}

func TestFormatTruncated(t *testing.T) {
	tests := []struct {
		value  float64
		digits int
		want   string
	}{
		{2.449, 2, "2.44"},   // truncation, not rounding
		{-2.449, 2, "-2.44"}, // toward zero for negative values
		{2.0, 2, "2.00"},
		{0, 2, "0.00"},
		{99.999, 2, "99.99"},
		{1234.9, 0, "1234"},
		{-2.9, 0, "-2"},
		{123.456, 1, "123.4"},
	}
	for _, tt := range tests {
		if got := FormatTruncated(tt.value, tt.digits); got != tt.want {
			t.Errorf("FormatTruncated(%v, %d) = %q, want %q", tt.value, tt.digits, got, tt.want)
		}
	}
}

func TestTimeLabel(t *testing.T) {
	ts := time.Date(2024, 3, 5, 9, 7, 0, 0, time.Local)
	label := TimeLabelFor(ts)

	if label.Month != 3 || label.Day != 5 || label.Hour != 9 || label.Minute != 7 {
		t.Fatalf("unexpected label fields: %+v", label)
	}
	if got := label.String(); got != "3/5 9:07" {
		t.Errorf("expected label \"3/5 9:07\", got %q", got)
	}
}
