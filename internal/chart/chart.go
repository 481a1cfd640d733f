package chart

import (
	"candleChart/internal/domain"
)

// Options is the construction-time configuration surface of a chart.
// The zero value is not usable; start from DefaultOptions.
type Options struct {
	BullColor       string
	BearColor       string
	MAColor         string
	VolumeUpColor   string
	VolumeDownColor string
	GridColor       string
	BackgroundColor string
	TextColor       string

	InitialCandleWidthPx float64
	CandleSpacingPx      float64
	PriceAxisWidthPx     float64
	TimeAxisHeightPx     float64
	ChartHeightPx        float64
	VolumeHeightPx       float64

	PriceTickCount  int
	VolumeTickCount int
	PricePrecision  int
	LabelFontSize   float64
	MAStrokeWidth   float64

	ShowVolume        bool
	ShowMovingAverage bool
}

// DefaultOptions returns the default chart configuration.
func DefaultOptions() Options {
	return Options{
		BullColor:       "#26a69a",
		BearColor:       "#ef5350",
		MAColor:         "#ff9800",
		VolumeUpColor:   "#26a69a",
		VolumeDownColor: "#ef5350",
		GridColor:       "#2a2e39",
		BackgroundColor: "#131722",
		TextColor:       "#b2b5be",

		InitialCandleWidthPx: DefaultCandleWidthPx,
		CandleSpacingPx:      DefaultCandleSpacingPx,
		PriceAxisWidthPx:     60,
		TimeAxisHeightPx:     30,
		ChartHeightPx:        300,
		VolumeHeightPx:       100,

		PriceTickCount:  9,
		VolumeTickCount: 3,
		PricePrecision:  2,
		LabelFontSize:   11,
		MAStrokeWidth:   1.5,

		ShowVolume:        true,
		ShowMovingAverage: true,
	}
}

// Chart owns one series plus the viewport and selection state that persist
// across re-renders of that series. All methods are meant to be called from
// a single event-processing goroutine: gesture handling is a synchronous
// reducer over the viewport state, and each render reads one consistent
// snapshot of (series, state).
type Chart struct {
	opts   Options
	series domain.Series
	state  ViewportState
	sel    Selection
}

// New creates a chart with an empty series.
func New(opts Options) *Chart {
	return &Chart{
		opts:  opts,
		state: NewViewportState(opts.InitialCandleWidthPx, opts.CandleSpacingPx),
		sel:   NoSelection(),
	}
}

// SetSeries replaces the series wholesale. Viewport and selection are reset
// to defaults because they are not meaningful across a series identity change.
func (c *Chart) SetSeries(series domain.Series) {
	c.series = series
	c.state = NewViewportState(c.opts.InitialCandleWidthPx, c.opts.CandleSpacingPx)
	c.sel = NoSelection()
}

// Series returns the current series.
func (c *Chart) Series() domain.Series {
	return c.series
}

// State returns the current viewport state.
func (c *Chart) State() ViewportState {
	return c.state
}

// Selection returns the current selection.
func (c *Chart) Selection() Selection {
	return c.sel
}

// HandleZoom applies one incremental pinch-zoom scale factor.
func (c *Chart) HandleZoom(scaleFactor float64) {
	c.state = ApplyZoom(c.state, scaleFactor)
}

// HandleScroll sets the horizontal scroll offset reported by the scroll
// collaborator.
func (c *Chart) HandleScroll(scrollOffsetPx float64) {
	c.state = ApplyScroll(c.state, scrollOffsetPx)
}

// HandleTap hit-tests a tap against the candles visible at the given canvas
// width. Taps that miss every candle leave the selection unchanged.
func (c *Chart) HandleTap(xPx, yPx, canvasWidthPx float64) {
	rng, ok := ComputeVisibleRange(c.series, c.state, canvasWidthPx, c.opts.PriceAxisWidthPx)
	if !ok {
		return
	}
	m := NewMapper(c.state, rng, c.opts.ChartHeightPx)
	c.sel = ApplyTap(c.sel, m, len(c.series), xPx, yPx)
}

// SelectedCandle returns the currently selected candle, or nil when nothing
// is selected. Intended for an external detail display anchored at the
// recorded tap position.
func (c *Chart) SelectedCandle() *domain.Candle {
	if !c.sel.Active() || c.sel.Index >= len(c.series) {
		return nil
	}
	return c.series[c.sel.Index]
}

// ScrollToLatest positions the viewport so the newest candles sit at the
// right edge of the plot area.
func (c *Chart) ScrollToLatest(canvasWidthPx float64) {
	stride := c.state.StridePx()
	contentWidth := float64(len(c.series)) * stride
	plotWidth := canvasWidthPx - c.opts.PriceAxisWidthPx
	c.state = ApplyScroll(c.state, contentWidth-plotWidth)
}

// Render produces the draw-primitive list for one frame at the given canvas
// width, from the current snapshot of series and viewport state.
func (c *Chart) Render(canvasWidthPx float64) *Frame {
	return BuildFrame(c.series, c.state, c.opts, canvasWidthPx)
}
