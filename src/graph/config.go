// Package graph turns a dataset.Dataset into the body weight line chart: a go-chart
// chart inside a padded container image, plus an interactive HTML rendition.
package graph

import (
	"fmt"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Layout carries the sizing constants of the chart container. All sizes are pixels.
type Layout struct {
	Name    string
	Width   int // default container width
	Height  int // default container height
	Padding int // container padding around the chart

	// Margin is the chart margin around the plot area; the legend is added below Bottom.
	Margin chart.Box

	TitleFontSize     float64
	TickFontSize      float64
	AxisLabelFontSize float64
	LegendFontSize    float64

	LegendIconWidth int
	LegendSpacing   int
}

// DefaultLayout matches the full size container (1000 px wide, title 22 px).
func DefaultLayout() Layout {
	return Layout{
		Name:              "default",
		Width:             1000,
		Height:            680,
		Padding:           10,
		Margin:            chart.Box{Top: 30, Right: 30, Bottom: 50, Left: 30},
		TitleFontSize:     22,
		TickFontSize:      12,
		AxisLabelFontSize: 14,
		LegendFontSize:    12,
		LegendIconWidth:   16,
		LegendSpacing:     18,
	}
}

// CompactLayout is the small embedded variant of the same chart.
func CompactLayout() Layout {
	return Layout{
		Name:              "compact",
		Width:             640,
		Height:            440,
		Padding:           8,
		Margin:            chart.Box{Top: 20, Right: 20, Bottom: 36, Left: 16},
		TitleFontSize:     18,
		TickFontSize:      10,
		AxisLabelFontSize: 12,
		LegendFontSize:    10,
		LegendIconWidth:   12,
		LegendSpacing:     12,
	}
}

// LayoutByName resolves a preset name ("default" or "compact").
func LayoutByName(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultLayout(), nil
	case "compact":
		return CompactLayout(), nil
	default:
		return Layout{}, fmt.Errorf("unknown layout %q (want default or compact)", name)
	}
}

// Config is the chart configuration handed to Build.
type Config struct {
	Title     string
	XAxisName string
	YAxisName string
	Layout    Layout
	Domain    DomainPolicy

	Background  string // container and chart fill
	GridColor   string
	AxisColor   string
	TextColor   string
	BorderColor string

	// SamplesPerSegment is the number of interpolated steps between two data points.
	SamplesPerSegment int
}

// DefaultConfig returns the body weight chart configuration with the default layout.
func DefaultConfig() Config {
	return Config{
		Title:             "Body Weight (g)",
		XAxisName:         "Time",
		YAxisName:         "Body Weight (g)",
		Layout:            DefaultLayout(),
		Domain:            DefaultDomainPolicy(),
		Background:        "#f9f9f9",
		GridColor:         "#cccccc",
		AxisColor:         "#333333",
		TextColor:         "#222222",
		BorderColor:       "#e2e2e2",
		SamplesPerSegment: 16,
	}
}

// pxToPt converts CSS pixel sizes to the point sizes go-chart expects at 96 DPI.
func pxToPt(px float64) float64 { return px * 72 / chart.DefaultDPI }
