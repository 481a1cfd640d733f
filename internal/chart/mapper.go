package chart

import "math"

// Mapper converts between data space (candle index, price, volume) and pixel
// space for one pane. It is pure and stateless given its context and is
// rebuilt from the current ViewportState/VisibleRange on every render; no
// cached transform survives across frames, since width and zoom can change on
// every gesture tick.
type Mapper struct {
	State          ViewportState
	Range          VisibleRange
	CanvasHeightPx float64
}

// NewMapper builds a mapper for a pane of the given height.
func NewMapper(state ViewportState, rng VisibleRange, canvasHeightPx float64) Mapper {
	return Mapper{State: state, Range: rng, CanvasHeightPx: canvasHeightPx}
}

// PriceToY maps a price to a vertical pixel position. Higher prices map to
// smaller Y. When the visible window has zero price range every price maps to
// the vertical center of the pane.
func (m Mapper) PriceToY(price float64) float64 {
	priceRange := m.Range.MaxPrice - m.Range.MinPrice
	if priceRange == 0 {
		return m.CanvasHeightPx / 2
	}
	return (m.Range.MaxPrice - price) * (m.CanvasHeightPx / priceRange)
}

// IndexToX maps a candle index to the pixel X of the left edge of its body.
func (m Mapper) IndexToX(i int) float64 {
	return float64(i-m.Range.StartIndex)*m.State.StridePx() + m.State.CandleSpacingPx
}

// CandleCenterX maps a candle index to the pixel X of the center of its body.
func (m Mapper) CandleCenterX(i int) float64 {
	return m.IndexToX(i) + m.State.CandleWidthPx/2
}

// XToIndex maps a pixel X back to a candle index for hit-testing taps.
// A result outside [0, N-1] means no candle was hit; the caller checks the
// bound against the series length.
func (m Mapper) XToIndex(xPx float64) int {
	return m.Range.StartIndex + int(math.Floor((xPx-m.State.CandleSpacingPx)/m.State.StridePx()))
}

// VolumeToBarHeight maps a volume to a bar height in pixels, scaled so the
// largest visible volume fills the pane. Zero-height bars are produced when
// the visible window has no volume.
func (m Mapper) VolumeToBarHeight(volume float64) float64 {
	if m.Range.MaxVolume == 0 {
		return 0
	}
	return (volume / m.Range.MaxVolume) * m.CanvasHeightPx
}
