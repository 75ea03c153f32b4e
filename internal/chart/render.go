package chart

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"gonum.org/v1/gonum/floats"

	"github.com/roach88/cyclops/internal/report"
	"github.com/roach88/cyclops/internal/store"
)

const (
	defaultWidth  = 1024
	defaultHeight = 512

	// maxXTicks bounds the labelled workout numbers on long histories.
	maxXTicks = 12

	// minYPad keeps a flat history (or a single session) off the plot edges.
	minYPad = 5.0
)

var (
	lineColor = drawing.ColorFromHex("1f77b4")
	gridColor = drawing.ColorFromHex("d9d9d9")
)

// FileRenderer exports the chart as an image file.
type FileRenderer struct {
	path   string
	format Format
	width  int
	height int
}

// NewFileRenderer returns a renderer writing to path.
// The format follows the extension: .png or .svg.
func NewFileRenderer(path string) (*FileRenderer, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", path, err)
	}
	return &FileRenderer{
		path:   path,
		format: format,
		width:  defaultWidth,
		height: defaultHeight,
	}, nil
}

// Path returns the export target.
func (r *FileRenderer) Path() string {
	return r.path
}

// Render draws the chart and atomically replaces the export file.
func (r *FileRenderer) Render(label string, samples []float64) (Artifact, error) {
	var buf bytes.Buffer
	if err := Write(&buf, r.format, label, samples, r.width, r.height); err != nil {
		return Artifact{}, err
	}

	if err := store.WriteFileAtomic(r.path, buf.Bytes()); err != nil {
		return Artifact{}, fmt.Errorf("write chart %s: %w", r.path, err)
	}

	return Artifact{
		Format: r.format,
		Path:   r.path,
		Bytes:  buf.Len(),
		Points: Points(samples),
	}, nil
}

// Write renders the progress chart for samples to w.
func Write(w io.Writer, format Format, label string, samples []float64, width, height int) error {
	if len(samples) == 0 {
		return ErrNoData
	}

	var provider gochart.RendererProvider
	switch format {
	case FormatPNG:
		provider = gochart.PNG
	case FormatSVG:
		provider = gochart.SVG
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	graph := newGraph(label, samples, width, height)
	if err := graph.Render(provider, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// newGraph builds a single line series with circle markers at every
// sample and a major grid on both axes.
func newGraph(label string, samples []float64, width, height int) gochart.Chart {
	n := len(samples)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i + 1)
	}

	// Explicit ranges: go-chart refuses a zero-width range, which a
	// single session or a flat history would otherwise produce.
	lo, hi := floats.Min(samples), floats.Max(samples)
	pad := math.Max((hi-lo)*0.1, minYPad)

	grid := gochart.Style{StrokeColor: gridColor, StrokeWidth: 1}

	return gochart.Chart{
		Title:  report.ChartTitle(label),
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 50, Left: 20, Right: 20, Bottom: 10},
		},
		XAxis: gochart.XAxis{
			Name:           "Workout Number",
			Range:          &gochart.ContinuousRange{Min: 0.5, Max: float64(n) + 0.5},
			Ticks:          workoutTicks(n),
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		YAxis: gochart.YAxis{
			Name:           fmt.Sprintf("Weight (%s)", report.Unit),
			Range:          &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad},
			ValueFormatter: weightFormatter,
			GridMajorStyle: grid,
			GridMinorStyle: grid,
		},
		Series: []gochart.Series{
			gochart.ContinuousSeries{
				Name:    report.Normalize(label),
				XValues: xs,
				YValues: samples,
				Style: gochart.Style{
					StrokeColor: lineColor,
					StrokeWidth: 2,
					DotColor:    lineColor,
					DotWidth:    4,
				},
			},
		},
	}
}

// workoutTicks labels workout numbers, thinning them on long histories.
// go-chart takes the x range from the tick span when ticks are set, so the
// list is bracketed by unlabelled ticks at the half-step bounds and always
// labels the newest workout.
func workoutTicks(n int) []gochart.Tick {
	step := 1
	if n > maxXTicks {
		step = int(math.Ceil(float64(n) / maxXTicks))
	}

	ticks := make([]gochart.Tick, 0, n/step+3)
	ticks = append(ticks, gochart.Tick{Value: 0.5})
	last := 0
	for i := 1; i <= n; i += step {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: strconv.Itoa(i)})
		last = i
	}
	if last != n {
		// Labels closer than half a step would overlap.
		if 2*(n-last) < step {
			ticks = ticks[:len(ticks)-1]
		}
		ticks = append(ticks, gochart.Tick{Value: float64(n), Label: strconv.Itoa(n)})
	}
	return append(ticks, gochart.Tick{Value: float64(n) + 0.5})
}

func weightFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return report.FormatWeight(math.Round(f*10) / 10)
	}
	return ""
}
