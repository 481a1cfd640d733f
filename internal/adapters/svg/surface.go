package svg

import (
	"bytes"
	"fmt"
	"os"

	"candleChart/internal/ports"
)

// Surface implements the ports.Surface interface by emitting an SVG document.
// Draw calls append elements in order, so later elements occlude earlier ones
// exactly as the frame's op order dictates.
type Surface struct {
	width  float64
	height float64
	buf    bytes.Buffer
}

// NewSurface creates an SVG surface of the given pixel size.
func NewSurface(width, height float64) *Surface {
	s := &Surface{width: width, height: height}
	fmt.Fprintf(&s.buf, "<svg xmlns='http://www.w3.org/2000/svg' width='%.0f' height='%.0f' viewBox='0 0 %.0f %.0f'>", width, height, width, height)
	return s
}

// FillRect draws a filled rectangle with its top-left corner at (x, y).
func (s *Surface) FillRect(x, y, w, h float64, color string) {
	fmt.Fprintf(&s.buf, "<rect x='%.2f' y='%.2f' width='%.2f' height='%.2f' fill='%s'/>", x, y, w, h, color)
}

// DrawLine draws a line segment from (x1, y1) to (x2, y2).
func (s *Surface) DrawLine(x1, y1, x2, y2 float64, color string, strokeWidth float64) {
	fmt.Fprintf(&s.buf, "<line x1='%.2f' y1='%.2f' x2='%.2f' y2='%.2f' stroke='%s' stroke-width='%.2f'/>", x1, y1, x2, y2, color, strokeWidth)
}

// DrawText draws a text label with its baseline starting at (x, y).
func (s *Surface) DrawText(x, y float64, text string, style ports.TextStyle) {
	fmt.Fprintf(&s.buf, "<text x='%.2f' y='%.2f' fill='%s' font-family='sans-serif' font-size='%.1f'>%s</text>", x, y, style.Color, style.FontSize, text)
}

// Bytes closes the document and returns the full SVG.
func (s *Surface) Bytes() []byte {
	out := make([]byte, s.buf.Len(), s.buf.Len()+len("</svg>"))
	copy(out, s.buf.Bytes())
	return append(out, "</svg>"...)
}

// WriteFile closes the document and writes it to path.
func (s *Surface) WriteFile(path string) error {
	if err := os.WriteFile(path, s.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write SVG to '%s': %w", path, err)
	}
	return nil
}
