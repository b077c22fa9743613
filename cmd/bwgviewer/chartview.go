package main

import (
	"image"
	"strings"
	"sync/atomic"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/dayam8696/Graph-Pharma/cmd/bwgviewer/uihelpers"
	"github.com/dayam8696/Graph-Pharma/src/graph"
)

// chartView is the chart container: a raster redrawn at the current pixel size that
// reports the hovered time point to onHover ("" when the pointer leaves the plot).
type chartView struct {
	widget.BaseWidget
	state   *uiState
	raster  *canvas.Raster
	onHover func(string)
	hovered int

	// plot area of the last drawn raster, written by the painter
	frame atomic.Pointer[graph.Frame]
}

var _ desktop.Hoverable = (*chartView)(nil)

func newChartView(state *uiState, onHover func(string)) *chartView {
	v := &chartView{state: state, onHover: onHover, hovered: -1}
	v.raster = canvas.NewRaster(v.draw)
	v.ExtendBaseWidget(v)
	return v
}

func (v *chartView) draw(w, h int) image.Image {
	img, frame := renderContainer(v.state, w, h)
	v.frame.Store(&frame)
	return img
}

func (v *chartView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

func (v *chartView) MinSize() fyne.Size {
	return fyne.NewSize(uihelpers.MinWidth, uihelpers.MinHeight)
}

func (v *chartView) MouseIn(ev *desktop.MouseEvent) { v.MouseMoved(ev) }

func (v *chartView) MouseMoved(ev *desktop.MouseEvent) {
	scale := float32(1)
	if c := fyne.CurrentApp().Driver().CanvasForObject(v); c != nil {
		scale = c.Scale()
	}
	idx := -1
	if f := v.frame.Load(); f != nil {
		idx = f.HoverIndex(float64(ev.Position.X * scale))
	}
	v.setHovered(idx)
}

func (v *chartView) MouseOut() { v.setHovered(-1) }

func (v *chartView) setHovered(idx int) {
	if idx == v.hovered {
		return
	}
	v.hovered = idx
	if v.onHover == nil {
		return
	}
	if idx < 0 {
		v.onHover("")
		return
	}
	tip, err := graph.Tooltip(v.state.data, idx)
	if err != nil {
		v.onHover("")
		return
	}
	v.onHover(strings.ReplaceAll(tip, "\n", "  ·  "))
}
