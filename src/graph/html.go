package graph

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/dayam8696/Graph-Pharma/src/dataset"
)

// Tooltip formats one time point with every cohort value, in legend order.
// Missing values show as "n/a".
func Tooltip(ds dataset.Dataset, index int) (string, error) {
	pts := ds.Points()
	if index < 0 || index >= len(pts) {
		return "", fmt.Errorf("time point %d out of range [0,%d)", index, len(pts))
	}
	p := pts[index]
	var b strings.Builder
	b.WriteString(p.Label)
	for _, c := range ds.Cohorts() {
		b.WriteString("\n")
		b.WriteString(c.DisplayName())
		b.WriteString(": ")
		if v, ok := p.Value(c.Key); ok {
			b.WriteString(FormatGrams(v))
			b.WriteString(" g")
		} else {
			b.WriteString("n/a")
		}
	}
	return b.String(), nil
}

// NewLineChart builds the interactive rendition: smooth series, axis tooltip, legend,
// and the same Y domain as the raster chart.
func NewLineChart(ds dataset.Dataset, cfg Config) (*charts.Line, error) {
	if ds.Len() == 0 || len(ds.Cohorts()) == 0 {
		return nil, ErrNoData
	}
	dom := YDomain(ds, cfg.Domain)
	lay := cfg.Layout

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       cfg.Title,
			Width:           fmt.Sprintf("%dpx", lay.Width),
			Height:          fmt.Sprintf("%dpx", lay.Height),
			BackgroundColor: cfg.Background,
		}),
		charts.WithTitleOpts(opts.Title{Title: cfg.Title, Left: "center"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Bottom: "0"}),
		charts.WithXAxisOpts(opts.XAxis{Name: cfg.XAxisName}),
		charts.WithYAxisOpts(opts.YAxis{Name: cfg.YAxisName, Min: dom.Min, Max: dom.Max}),
	)
	line.SetXAxis(ds.Labels())
	for _, c := range ds.Cohorts() {
		col := ds.Column(c.Key)
		data := make([]opts.LineData, len(col))
		for i, v := range col {
			if math.IsNaN(v) {
				data[i] = opts.LineData{Value: "-"}
				continue
			}
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(c.DisplayName(), data,
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:       opts.Bool(true),
				ShowSymbol:   opts.Bool(true),
				SymbolSize:   c.DotRadius * 2,
				ConnectNulls: opts.Bool(false),
			}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: c.Color, Width: float32(c.StrokeWidth)}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: c.Color}),
		)
	}
	// go-echarts has no smoothMonotone option; set it on the live instance so the
	// curves do not overshoot between points, matching the raster chart.
	line.AddJSFuncStrs(types.FuncStr(monotoneJS))
	return line, nil
}

const monotoneJS = `%MY_ECHARTS%.setOption({series: %MY_ECHARTS%.getOption().series.map(function () { return {smoothMonotone: 'x'}; })});`

// RenderHTML writes a standalone HTML page with the interactive chart.
func RenderHTML(w io.Writer, ds dataset.Dataset, cfg Config) error {
	line, err := NewLineChart(ds, cfg)
	if err != nil {
		return err
	}
	if err := line.Render(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
