package ports

// TextStyle describes how a text label is drawn.
type TextStyle struct {
	Color    string  // CSS-style color (e.g. "#26a69a")
	FontSize float64 // Font size in pixels
}

// Surface defines the minimal rendering surface the chart draws onto.
// It is intentionally small: a platform renderer only needs filled
// rectangles, line segments and text to display a frame.
type Surface interface {
	// FillRect draws a filled rectangle with its top-left corner at (x, y).
	FillRect(x, y, w, h float64, color string)
	// DrawLine draws a line segment from (x1, y1) to (x2, y2).
	DrawLine(x1, y1, x2, y2 float64, color string, strokeWidth float64)
	// DrawText draws a text label with its baseline starting at (x, y).
	DrawText(x, y float64, text string, style TextStyle)
}
