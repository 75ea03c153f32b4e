// Package chart draws a lift's progress as a line plot.
//
// Rendering is a capability the core calls through Renderer, so callers pick
// the surface: an image file on disk, or nothing at all when running headless.
// Every renderer reports the plotted points, which is the chart's data
// contract regardless of the surface.
package chart

import (
	"errors"
	"path/filepath"
	"strings"
)

// DefaultPath is where the log command exports the chart unless told otherwise.
const DefaultPath = "progress.png"

var (
	// ErrNoData is returned when asked to chart an empty history.
	ErrNoData = errors.New("no samples to chart")

	// ErrUnsupportedFormat is returned for export paths that are not .png or .svg.
	ErrUnsupportedFormat = errors.New("unsupported chart format")
)

// Format names the surface a chart was rendered to.
type Format string

const (
	FormatNone Format = "none"
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
)

// FormatFor picks the export format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".svg":
		return FormatSVG, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Point is one plotted sample. X is the 1-based workout number.
type Point struct {
	X int     `json:"x"`
	Y float64 `json:"y"`
}

// Artifact describes what a render produced.
type Artifact struct {
	Format Format  `json:"format"`
	Path   string  `json:"path,omitempty"`
	Bytes  int     `json:"bytes,omitempty"`
	Points []Point `json:"points"`
}

// Renderer draws samples for a label.
type Renderer interface {
	Render(label string, samples []float64) (Artifact, error)
}

// Points maps samples to chart coordinates, numbering workouts from 1.
func Points(samples []float64) []Point {
	points := make([]Point, len(samples))
	for i, v := range samples {
		points[i] = Point{X: i + 1, Y: v}
	}
	return points
}

// Nop renders nothing. Used for headless runs and --no-chart.
type Nop struct{}

// Render returns the chart data without drawing it.
func (Nop) Render(label string, samples []float64) (Artifact, error) {
	if len(samples) == 0 {
		return Artifact{}, ErrNoData
	}
	return Artifact{Format: FormatNone, Points: Points(samples)}, nil
}
