package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"

	fyne "fyne.io/fyne/v2"
)

// windowSurface captures the on-screen pixels of one object (the chart container)
// out of a window. It reads the canvas at call time and keeps no state.
type windowSurface struct {
	window fyne.Window
	obj    fyne.CanvasObject
}

func (s windowSurface) Mounted() bool {
	if s.window == nil || s.obj == nil || !s.obj.Visible() {
		return false
	}
	if s.window.Canvas() == nil {
		return false
	}
	sz := s.obj.Size()
	return sz.Width >= 1 && sz.Height >= 1
}

func (s windowSurface) Capture(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c := s.window.Canvas()
	full := c.Capture()
	if full == nil {
		return nil, errors.New("canvas capture returned no image")
	}
	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(s.obj)
	x0, y0 := c.PixelCoordinateForPosition(pos)
	x1, y1 := c.PixelCoordinateForPosition(pos.Add(s.obj.Size()))
	r := image.Rect(x0, y0, x1, y1).Add(full.Bounds().Min).Intersect(full.Bounds())
	if r.Empty() {
		return nil, fmt.Errorf("chart container at %v is outside the captured canvas %v", image.Rect(x0, y0, x1, y1), full.Bounds())
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), full, r.Min, draw.Src)
	return out, nil
}
