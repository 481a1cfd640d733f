package chart

// Selection is the at-most-one selected candle, set by tap hit-testing.
// The tap position is recorded so an external detail popover can anchor to it.
type Selection struct {
	Index int // Selected candle index, -1 when nothing is selected
	TapX  float64
	TapY  float64
}

// NoSelection returns the empty selection.
func NoSelection() Selection {
	return Selection{Index: -1}
}

// Active reports whether a candle is currently selected.
func (s Selection) Active() bool {
	return s.Index >= 0
}

// ApplyZoom applies one incremental zoom-gesture update to the viewport.
// The scale factor is applied multiplicatively so repeated small updates
// compound, and the resulting width is clamped to
// [MinCandleWidthPx, MaxCandleWidthPx]. This is the only writer of the candle
// width.
func ApplyZoom(state ViewportState, scaleFactor float64) ViewportState {
	state.CandleWidthPx = clampCandleWidth(state.CandleWidthPx * scaleFactor)
	return state
}

// ApplyScroll sets the horizontal scroll offset, clamped to be non-negative.
func ApplyScroll(state ViewportState, scrollOffsetPx float64) ViewportState {
	if scrollOffsetPx < 0 {
		scrollOffsetPx = 0
	}
	state.ScrollOffsetPx = scrollOffsetPx
	return state
}

// ApplyTap resolves a tap at the given pixel position to a candle selection.
// A tap that resolves to an index outside [0, seriesLen-1] leaves the prior
// selection unchanged; tapping empty space does not clear a selection.
func ApplyTap(sel Selection, m Mapper, seriesLen int, xPx, yPx float64) Selection {
	index := m.XToIndex(xPx)
	if index < 0 || index >= seriesLen {
		return sel
	}
	return Selection{Index: index, TapX: xPx, TapY: yPx}
}
