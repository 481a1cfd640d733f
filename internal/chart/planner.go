package chart

import (
	"candleChart/internal/domain"
	"candleChart/internal/ports"
)

// Op is one draw primitive. A frame is an ordered list of ops; the order is
// itself a contract, because later ops visually occlude earlier ones.
type Op interface {
	op()
}

// RectOp fills a rectangle with its top-left corner at (X, Y).
type RectOp struct {
	X, Y, W, H float64
	Color      string
}

// LineOp draws a line segment from (X1, Y1) to (X2, Y2).
type LineOp struct {
	X1, Y1, X2, Y2 float64
	Color          string
	StrokeWidth    float64
}

// TextOp draws a text label at (X, Y).
type TextOp struct {
	X, Y  float64
	Text  string
	Style ports.TextStyle
}

func (RectOp) op() {}
func (LineOp) op() {}
func (TextOp) op() {}

// Frame is the ordered draw-primitive list for one render, consumed by an
// external renderer through ExecuteFrame.
type Frame struct {
	Width  float64
	Height float64
	Ops    []Op
}

// ExecuteFrame replays a frame onto a rendering surface in order. Each call
// is independent and stateless; nothing is batched or deduplicated.
func ExecuteFrame(f *Frame, s ports.Surface) {
	for _, op := range f.Ops {
		switch o := op.(type) {
		case RectOp:
			s.FillRect(o.X, o.Y, o.W, o.H, o.Color)
		case LineOp:
			s.DrawLine(o.X1, o.Y1, o.X2, o.Y2, o.Color, o.StrokeWidth)
		case TextOp:
			s.DrawText(o.X, o.Y, o.Text, o.Style)
		}
	}
}

// BuildFrame walks the visible range once and emits the draw primitives for
// one frame: background, price grid, moving-average polyline, candle bodies
// and wicks in index order, volume bars, then axis time labels. It is a pure
// function of a single consistent snapshot of (series, state, canvas width);
// an empty visible range produces only the background.
func BuildFrame(series domain.Series, state ViewportState, opts Options, canvasWidthPx float64) *Frame {
	plotWidth := canvasWidthPx - opts.PriceAxisWidthPx
	paneBottom := opts.ChartHeightPx
	if opts.ShowVolume {
		paneBottom += opts.VolumeHeightPx
	}
	frame := &Frame{
		Width:  canvasWidthPx,
		Height: paneBottom + opts.TimeAxisHeightPx,
	}

	// 1. Background fill of the plot area.
	frame.Ops = append(frame.Ops, RectOp{X: 0, Y: 0, W: plotWidth, H: paneBottom, Color: opts.BackgroundColor})

	rng, ok := ComputeVisibleRange(series, state, canvasWidthPx, opts.PriceAxisWidthPx)
	if !ok {
		return frame
	}
	price := NewMapper(state, rng, opts.ChartHeightPx)
	labelStyle := ports.TextStyle{Color: opts.TextColor, FontSize: opts.LabelFontSize}

	// 2. Horizontal grid lines at each price tick, with the axis label.
	for _, tick := range AxisTicks(rng.MaxPrice, rng.MinPrice, opts.PriceTickCount) {
		y := price.PriceToY(tick)
		frame.Ops = append(frame.Ops,
			LineOp{X1: 0, Y1: y, X2: plotWidth, Y2: y, Color: opts.GridColor, StrokeWidth: 1},
			TextOp{X: plotWidth + axisLabelPadPx, Y: y + opts.LabelFontSize/2, Text: FormatTruncated(tick, opts.PricePrecision), Style: labelStyle},
		)
	}

	// 3. Moving-average polyline. Consecutive visible candles are connected
	// only when both have a defined moving average; a gap breaks the line
	// with no interpolation across it.
	if opts.ShowMovingAverage {
		hasPrev := false
		var prevX, prevY float64
		for i := rng.StartIndex; i <= rng.EndIndex; i++ {
			ma := series[i].MovingAverage
			if ma == nil {
				hasPrev = false
				continue
			}
			x := price.CandleCenterX(i)
			y := price.PriceToY(*ma)
			if hasPrev {
				frame.Ops = append(frame.Ops, LineOp{X1: prevX, Y1: prevY, X2: x, Y2: y, Color: opts.MAColor, StrokeWidth: opts.MAStrokeWidth})
			}
			prevX, prevY = x, y
			hasPrev = true
		}
	}

	// 4. Candle bodies and wicks, in index order. Both wicks of a candle are
	// drawn immediately after its body, never after a later candle's body.
	for i := rng.StartIndex; i <= rng.EndIndex; i++ {
		c := series[i]
		color := opts.BearColor
		if c.Direction() == domain.Bullish {
			color = opts.BullColor
		}
		bodyTop := price.PriceToY(c.BodyHigh())
		bodyBottom := price.PriceToY(c.BodyLow())
		bodyHeight := bodyBottom - bodyTop
		if bodyHeight < 1 {
			// Keep a doji visible.
			bodyHeight = 1
		}
		centerX := price.CandleCenterX(i)
		frame.Ops = append(frame.Ops,
			RectOp{X: price.IndexToX(i), Y: bodyTop, W: state.CandleWidthPx, H: bodyHeight, Color: color},
			LineOp{X1: centerX, Y1: price.PriceToY(c.High), X2: centerX, Y2: bodyTop, Color: color, StrokeWidth: 1},
			LineOp{X1: centerX, Y1: bodyBottom, X2: centerX, Y2: price.PriceToY(c.Low), Color: color, StrokeWidth: 1},
		)
	}

	// 5. Volume bars in a separate pane below, independent height scale but
	// shared X mapping and color rule.
	if opts.ShowVolume {
		volume := NewMapper(state, rng, opts.VolumeHeightPx)
		for i := rng.StartIndex; i <= rng.EndIndex; i++ {
			c := series[i]
			color := opts.VolumeDownColor
			if c.Direction() == domain.Bullish {
				color = opts.VolumeUpColor
			}
			barHeight := volume.VolumeToBarHeight(c.Volume)
			frame.Ops = append(frame.Ops, RectOp{
				X:     volume.IndexToX(i),
				Y:     opts.ChartHeightPx + (opts.VolumeHeightPx - barHeight),
				W:     state.CandleWidthPx,
				H:     barHeight,
				Color: color,
			})
		}
		for _, tick := range AxisTicks(rng.MaxVolume, 0, opts.VolumeTickCount) {
			y := opts.ChartHeightPx + (opts.VolumeHeightPx - volume.VolumeToBarHeight(tick))
			frame.Ops = append(frame.Ops, TextOp{X: plotWidth + axisLabelPadPx, Y: y + opts.LabelFontSize/2, Text: FormatTruncated(tick, 0), Style: labelStyle})
		}
	}

	// 6. Time-axis labels, one per visible candle.
	for i := rng.StartIndex; i <= rng.EndIndex; i++ {
		frame.Ops = append(frame.Ops, TextOp{
			X:     price.CandleCenterX(i),
			Y:     paneBottom + opts.TimeAxisHeightPx/2,
			Text:  TimeLabelFor(series[i].OpenTime).String(),
			Style: labelStyle,
		})
	}

	return frame
}

const axisLabelPadPx = 4.0
