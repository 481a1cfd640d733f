package chart

import (
	"math"

	"candleChart/internal/domain"
)

// Candle width bounds enforced on every zoom update.
const (
	MinCandleWidthPx = 10.0
	MaxCandleWidthPx = 100.0

	DefaultCandleWidthPx   = 40.0
	DefaultCandleSpacingPx = 4.0
)

// ViewportState holds the zoom/scroll state controlling which slice of the
// series is shown and at what pixel density. It is mutated only through the
// gesture reducers (ApplyZoom, ApplyScroll); everything else reads it.
type ViewportState struct {
	ScrollOffsetPx  float64 // Horizontal scroll position, >= 0
	CandleWidthPx   float64 // Width of one candle body, clamped to [MinCandleWidthPx, MaxCandleWidthPx]
	CandleSpacingPx float64 // Gap between adjacent candles, constant per chart
}

// NewViewportState returns a viewport at scroll origin with the given candle
// width (clamped) and spacing.
func NewViewportState(candleWidthPx, candleSpacingPx float64) ViewportState {
	return ViewportState{
		ScrollOffsetPx:  0,
		CandleWidthPx:   clampCandleWidth(candleWidthPx),
		CandleSpacingPx: candleSpacingPx,
	}
}

// StridePx returns the horizontal distance between two adjacent candles.
func (s ViewportState) StridePx() float64 {
	return s.CandleWidthPx + s.CandleSpacingPx
}

func clampCandleWidth(w float64) float64 {
	if w < MinCandleWidthPx {
		return MinCandleWidthPx
	}
	if w > MaxCandleWidthPx {
		return MaxCandleWidthPx
	}
	return w
}

// VisibleRange is the contiguous slice of the series currently within the
// viewport, together with the price/volume extrema over that slice only.
// It is derived state, recomputed from a single consistent snapshot of
// (series, ViewportState, viewport width) whenever any of them changes.
type VisibleRange struct {
	StartIndex int     // First visible candle index, inclusive
	EndIndex   int     // Last visible candle index, inclusive
	MaxPrice   float64 // max(high) over [StartIndex, EndIndex]
	MinPrice   float64 // min(low) over [StartIndex, EndIndex]
	MaxVolume  float64 // max(volume) over [StartIndex, EndIndex]
}

// ComputeVisibleRange derives the visible index range and its extrema.
// The extrema are computed strictly over the visible candles, never the full
// series, so the price axis always reflects only what is on screen.
// The second return value is false when nothing is visible (empty series, or
// the scroll offset points past the end of the series); downstream components
// must render nothing in that case.
func ComputeVisibleRange(series domain.Series, state ViewportState, viewportWidthPx, priceAxisWidthPx float64) (VisibleRange, bool) {
	n := len(series)
	stride := state.StridePx()
	if n == 0 || stride <= 0 {
		return VisibleRange{}, false
	}

	visibleCount := int(math.Floor((viewportWidthPx - priceAxisWidthPx) / stride))
	startIndex := int(math.Floor(state.ScrollOffsetPx / stride))
	if startIndex < 0 {
		startIndex = 0
	}
	endIndex := startIndex + visibleCount
	if endIndex > n-1 {
		endIndex = n - 1
	}
	if startIndex > endIndex {
		return VisibleRange{}, false
	}

	r := VisibleRange{
		StartIndex: startIndex,
		EndIndex:   endIndex,
		MaxPrice:   series[startIndex].High,
		MinPrice:   series[startIndex].Low,
		MaxVolume:  series[startIndex].Volume,
	}
	for i := startIndex + 1; i <= endIndex; i++ {
		c := series[i]
		if c.High > r.MaxPrice {
			r.MaxPrice = c.High
		}
		if c.Low < r.MinPrice {
			r.MinPrice = c.Low
		}
		if c.Volume > r.MaxVolume {
			r.MaxVolume = c.Volume
		}
	}
	return r, true
}
