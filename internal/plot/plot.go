package plot

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"PriceLens/internal/model"
)

// Renderer draws one price-history line chart per filter substring.
type Renderer struct {
	OutputDir string
	Width     int
	Height    int
}

// NewRenderer creates a Renderer writing PNGs into outputDir.
func NewRenderer(outputDir string) *Renderer {
	return &Renderer{OutputDir: outputDir, Width: 1300, Height: 900}
}

// Match selects histories whose name contains the filter substring.
// Matching is case-sensitive and unnormalized.
func Match(filter string, groups []model.ProductHistory) []model.ProductHistory {
	var matched []model.ProductHistory
	for _, g := range groups {
		if strings.Contains(g.Name, filter) {
			matched = append(matched, g)
		}
	}
	return matched
}

// ParsePrices converts a history's serialized price texts to floats.
// Malformed price text is an error naming the offending product, never a
// silent drop.
func ParsePrices(name string, prices []string) ([]float64, error) {
	parsed := make([]float64, len(prices))
	for i, p := range prices {
		v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(p), ",", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("product %q: malformed price %q: %w", name, p, err)
		}
		parsed[i] = v
	}
	return parsed, nil
}

// RenderAll draws one chart per filter and returns the written file paths.
func (r *Renderer) RenderAll(filters []string, groups []model.ProductHistory) ([]string, error) {
	if err := os.MkdirAll(r.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	paths := make([]string, 0, len(filters))
	for _, filter := range filters {
		path, err := r.Render(filter, groups)
		if err != nil {
			return nil, fmt.Errorf("render %q: %w", filter, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// Render draws the chart for one filter: one line series per matched
// product over an index x-axis, every point annotated with its value.
// A filter with zero matches still produces a PNG so the gallery keeps a
// stable shape across runs.
func (r *Renderer) Render(filter string, groups []model.ProductHistory) (string, error) {
	matched := Match(filter, groups)

	var series []chart.Series
	var annotations []chart.Value2
	maxLen := 0
	yMin := 0.0
	yMax := 0.0
	first := true

	for _, g := range matched {
		prices, err := ParsePrices(g.Name, g.Prices)
		if err != nil {
			return "", err
		}
		if len(prices) == 0 {
			continue
		}
		xs := make([]float64, len(prices))
		for i, v := range prices {
			xs[i] = float64(i)
			if first || v < yMin {
				yMin = v
			}
			if first || v > yMax {
				yMax = v
			}
			first = false
			annotations = append(annotations, chart.Value2{
				XValue: float64(i),
				YValue: v,
				Label:  fmt.Sprintf("%.2f", v),
			})
		}
		if len(prices) > maxLen {
			maxLen = len(prices)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    g.Name,
			XValues: xs,
			YValues: prices,
			Style:   chart.Style{StrokeWidth: 2, DotWidth: 4},
		})
	}

	if len(series) == 0 {
		// go-chart refuses to render without a visible series; a transparent
		// stroke satisfies it while leaving the chart visually empty
		series = append(series, chart.ContinuousSeries{
			XValues: []float64{0, 1},
			YValues: []float64{0, 1},
			Style: chart.Style{
				StrokeColor: drawing.ColorTransparent,
				StrokeWidth: 1,
			},
		})
		maxLen = 2
		yMin, yMax = 0, 1
	}
	if len(annotations) > 0 {
		series = append(series, chart.AnnotationSeries{
			Annotations: annotations,
			Style:       chart.Style{FontSize: 9},
		})
	}

	// Explicit ranges: single-observation histories and flat price lines
	// would otherwise collapse a range to zero width.
	xMax := float64(maxLen - 1)
	if xMax < 1 {
		xMax = 1
	}
	if yMax <= yMin {
		yMax = yMin + 1
	}
	pad := (yMax - yMin) * 0.1

	graph := chart.Chart{
		Title:  "Price Variation Over Time - " + filter,
		Width:  r.Width,
		Height: r.Height,
		XAxis: chart.XAxis{
			Name:  "Time Points",
			Range: &chart.ContinuousRange{Min: 0, Max: xMax},
		},
		YAxis: chart.YAxis{
			Name:  "Price",
			Range: &chart.ContinuousRange{Min: yMin - pad, Max: yMax + pad},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	path := filepath.Join(r.OutputDir, filter+"_plot.png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return "", fmt.Errorf("render chart: %w", err)
	}
	return path, nil
}
