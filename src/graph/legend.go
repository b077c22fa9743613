package graph

import (
	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// LegendEntry is one cohort in the legend: a short line icon and its display name.
type LegendEntry struct {
	Label       string
	Color       drawing.Color
	StrokeWidth float64
}

type legendItem struct {
	LegendEntry
	x     int // offset inside the row
	width int // icon + gap + text
}

type legendRow struct {
	items []legendItem
	width int
}

// legendLayout is the wrapped legend, rows centered under the plot.
type legendLayout struct {
	rows      []legendRow
	rowHeight int
	fontSize  float64 // points
	iconWidth int
}

func (l legendLayout) height() int { return len(l.rows) * l.rowHeight }

// Rows returns the legend labels per row, for callers inspecting the wrapping.
func (l legendLayout) Rows() [][]string {
	out := make([][]string, len(l.rows))
	for i, r := range l.rows {
		for _, it := range r.items {
			out[i] = append(out[i], it.Label)
		}
	}
	return out
}

const legendIconGap = 5

// layoutLegend wraps entries into rows no wider than maxWidth.
func layoutLegend(entries []LegendEntry, maxWidth int, lay Layout, f *truetype.Font) legendLayout {
	pt := pxToPt(lay.LegendFontSize)
	out := legendLayout{
		rowHeight: textHeight(f, pt) + 8,
		fontSize:  pt,
		iconWidth: lay.LegendIconWidth,
	}
	var cur legendRow
	for _, e := range entries {
		w := lay.LegendIconWidth + legendIconGap + textWidth(f, pt, e.Label)
		next := cur.width
		if len(cur.items) > 0 {
			next += lay.LegendSpacing
		}
		if len(cur.items) > 0 && next+w > maxWidth {
			out.rows = append(out.rows, cur)
			cur = legendRow{}
			next = 0
		}
		cur.items = append(cur.items, legendItem{LegendEntry: e, x: next, width: w})
		cur.width = next + w
	}
	if len(cur.items) > 0 {
		out.rows = append(out.rows, cur)
	}
	return out
}

// legendRenderable draws the legend with its first row at top, centered in chartWidth.
func legendRenderable(l legendLayout, top, chartWidth int, f *truetype.Font) chart.Renderable {
	return func(r chart.Renderer, _ chart.Box, defaults chart.Style) {
		ts := chart.Style{Font: f, FontSize: l.fontSize}.InheritFrom(defaults)
		for ri, row := range l.rows {
			y := top + ri*l.rowHeight
			mid := y + l.rowHeight/2
			left := (chartWidth - row.width) / 2
			for _, it := range row.items {
				x := left + it.x
				r.SetStrokeColor(it.Color)
				r.SetStrokeWidth(it.StrokeWidth)
				r.SetStrokeDashArray(nil)
				r.MoveTo(x, mid)
				r.LineTo(x+l.iconWidth, mid)
				r.Stroke()

				ts.WriteTextOptionsToRenderer(r)
				r.SetFontColor(it.Color)
				tb := r.MeasureText(it.Label)
				r.Text(it.Label, x+l.iconWidth+legendIconGap, mid+tb.Height()/2)
			}
		}
	}
}
