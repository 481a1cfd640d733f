package svg

import (
	"candleChart/internal/chart"
)

// FileSink writes each rendered frame to a fixed SVG file path, replacing the
// previous frame.
type FileSink struct {
	path string
}

// NewFileSink creates a sink writing to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// WriteFrame replays the frame onto a fresh SVG surface and writes it out.
func (s *FileSink) WriteFrame(frame *chart.Frame) error {
	surface := NewSurface(frame.Width, frame.Height)
	chart.ExecuteFrame(frame, surface)
	return surface.WriteFile(s.path)
}
