package graph

import (
	"errors"
	"fmt"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dayam8696/Graph-Pharma/src/dataset"
)

// ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("graph: dataset has no time points or no cohorts")

// SeriesPlan is the drawing plan of one cohort: its encoding and its unbroken runs.
type SeriesPlan struct {
	Cohort dataset.CohortSeries
	Color  drawing.Color
	Runs   int // number of line fragments, more than one when values are missing
	Points int // data points drawn with a marker
}

// Plan is the fully resolved chart for one dataset, config and size.
type Plan struct {
	Width, Height int // chart size, without container padding
	Labels        []string
	XTicks        []chart.Tick
	YTicks        []chart.Tick
	Domain        Domain
	Series        []SeriesPlan
	Chart         chart.Chart

	legend legendLayout
	plot   *chart.Box // filled in when the chart is rendered
}

// LegendRows returns the legend labels grouped by rendered row.
func (p Plan) LegendRows() [][]string { return p.legend.Rows() }

// ParseColor accepts "#rrggbb" or "rrggbb".
func ParseColor(hex string) (drawing.Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) != 6 && len(h) != 3 {
		return drawing.Color{}, fmt.Errorf("invalid color %q", hex)
	}
	for _, r := range h {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return drawing.Color{}, fmt.Errorf("invalid color %q", hex)
		}
	}
	return drawing.ColorFromHex(h), nil
}

func mustColor(hex string, fallback drawing.Color) drawing.Color {
	c, err := ParseColor(hex)
	if err != nil {
		return fallback
	}
	return c
}

// Build resolves ds and cfg into a go-chart chart of width x height pixels.
func Build(ds dataset.Dataset, cfg Config, width, height int) (Plan, error) {
	if ds.Len() == 0 || len(ds.Cohorts()) == 0 {
		return Plan{}, ErrNoData
	}
	fs, err := loadFonts()
	if err != nil {
		return Plan{}, err
	}
	lay := cfg.Layout
	bg := mustColor(cfg.Background, drawing.ColorWhite)
	axis := mustColor(cfg.AxisColor, drawing.ColorBlack)
	grid := mustColor(cfg.GridColor, chart.ColorLightGray)
	text := mustColor(cfg.TextColor, drawing.ColorBlack)

	labels := ds.Labels()
	xTicks, xAxisTicks := categoryTicks(labels)
	dom := YDomain(ds, cfg.Domain)
	yTicks := dom.Ticks()

	var series []chart.Series
	var plans []SeriesPlan
	var entries []LegendEntry
	for idx, c := range ds.Cohorts() {
		col := mustColor(c.Color, chart.GetDefaultColor(idx))
		sp := SeriesPlan{Cohort: c, Color: col}
		for _, r := range splitRuns(ds.Column(c.Key)) {
			sm := smooth(r, cfg.SamplesPerSegment)
			xs, ys := sm.X, sm.Y
			if len(xs) == 1 {
				// go-chart needs two values; repeat the lone point
				xs = []float64{xs[0], xs[0]}
				ys = []float64{ys[0], ys[0]}
			}
			series = append(series, chart.ContinuousSeries{
				Name:    c.DisplayName(),
				YAxis:   chart.YAxisSecondary,
				XValues: xs,
				YValues: ys,
				Style:   lineStyle(c, col, sm.Marks),
			})
			sp.Runs++
			sp.Points += len(r.X)
		}
		plans = append(plans, sp)
		entries = append(entries, LegendEntry{Label: c.DisplayName(), Color: col, StrokeWidth: c.StrokeWidth})
	}

	legend := layoutLegend(entries, width-lay.Margin.Left-lay.Margin.Right, lay, fs.bold)
	padBottom := lay.Margin.Bottom/2 + legend.height()
	legendTop := height - padBottom + lay.Margin.Bottom/4

	tickStyle := chart.Style{
		Font:        fs.bold,
		FontSize:    pxToPt(lay.TickFontSize),
		FontColor:   text,
		StrokeColor: axis,
		StrokeWidth: 1.5,
	}
	nameStyle := chart.Style{
		Font:      fs.bold,
		FontSize:  pxToPt(lay.AxisLabelFontSize),
		FontColor: text,
	}
	gridStyle := chart.Style{
		StrokeColor:     grid,
		StrokeWidth:     1,
		StrokeDashArray: []float64{3, 3},
	}

	ch := chart.Chart{
		Title: cfg.Title,
		TitleStyle: chart.Style{
			Font:      fs.bold,
			FontSize:  pxToPt(lay.TitleFontSize),
			FontColor: text,
		},
		Width:  width,
		Height: height,
		Font:   fs.regular,
		Background: chart.Style{
			FillColor: bg,
			Padding: chart.Box{
				Top:    lay.Margin.Top + textHeight(fs.bold, pxToPt(lay.TitleFontSize)),
				Left:   lay.Margin.Left,
				Right:  lay.Margin.Right,
				Bottom: padBottom,
			},
		},
		Canvas: chart.Style{FillColor: bg},
		XAxis: chart.XAxis{
			Name:           cfg.XAxisName,
			NameStyle:      nameStyle,
			Style:          tickStyle,
			Ticks:          xAxisTicks,
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
		// go-chart draws the secondary axis on the left. The hidden primary axis carries
		// the same ticks because go-chart sizes the secondary range from them.
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Ticks: yTicks,
			Range: &chart.ContinuousRange{Min: dom.Min, Max: dom.Max},
		},
		YAxisSecondary: chart.YAxis{
			Name:           cfg.YAxisName,
			NameStyle:      nameStyle,
			Style:          tickStyle,
			Ticks:          yTicks,
			Range:          &chart.ContinuousRange{Min: dom.Min, Max: dom.Max},
			GridMajorStyle: gridStyle,
			GridMinorStyle: gridStyle,
		},
		Series: series,
	}
	plot := new(chart.Box)
	ch.Elements = []chart.Renderable{
		legendRenderable(legend, legendTop, width, fs.bold),
		func(_ chart.Renderer, canvasBox chart.Box, _ chart.Style) { *plot = canvasBox },
	}

	return Plan{
		Width:  width,
		Height: height,
		Labels: labels,
		XTicks: xTicks,
		YTicks: yTicks,
		Domain: dom,
		Series: plans,
		Chart:  ch,
		legend: legend,
		plot:   plot,
	}, nil
}

// lineStyle draws the smoothed stroke and a marker only on real data points.
func lineStyle(c dataset.CohortSeries, col drawing.Color, marks map[int]bool) chart.Style {
	radius := c.DotRadius
	return chart.Style{
		StrokeColor: col,
		StrokeWidth: c.StrokeWidth,
		DotColor:    col,
		DotWidth:    radius,
		DotWidthProvider: func(_, _ chart.Range, index int, _, _ float64) float64 {
			if marks[index] {
				return radius
			}
			return 0
		},
	}
}
