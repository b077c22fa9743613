package graph

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/dayam8696/Graph-Pharma/src/dataset"
)

// minChartSide is the smallest chart area go-chart can lay axes into.
const minChartSide = 120

// Render draws the whole container (background, padding, title, axes, series, legend)
// into an image of exactly width x height pixels.
func Render(ds dataset.Dataset, cfg Config, width, height int) (image.Image, error) {
	img, _, err := RenderFrame(ds, cfg, width, height)
	return img, err
}

// RenderFrame is Render that also reports where go-chart placed the plot area.
func RenderFrame(ds dataset.Dataset, cfg Config, width, height int) (image.Image, Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, Frame{}, fmt.Errorf("graph: invalid container size %dx%d", width, height)
	}
	pad := cfg.Layout.Padding
	cw, chh := width-2*pad, height-2*pad
	if cw < minChartSide || chh < minChartSide {
		return nil, Frame{}, fmt.Errorf("graph: container %dx%d too small for chart", width, height)
	}
	plan, err := Build(ds, cfg, cw, chh)
	if err != nil {
		return nil, Frame{}, err
	}
	inner, err := plan.Image()
	if err != nil {
		return nil, Frame{}, err
	}
	frame := plan.Frame()
	frame.Plot = frame.Plot.Add(image.Pt(pad, pad))
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := mustColor(cfg.Background, chart.ColorWhite)
	draw.Draw(out, out.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(pad, pad, pad+cw, pad+chh), inner, inner.Bounds().Min, draw.Src)
	if border, err := ParseColor(cfg.BorderColor); err == nil {
		strokeRect(out, out.Bounds(), border)
	}
	return out, frame, nil
}

// Image renders the plan's chart through go-chart's PNG renderer.
func (p Plan) Image() (image.Image, error) {
	var buf bytes.Buffer
	if err := p.Chart.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}

// RenderPNG renders the container and encodes it as PNG.
func RenderPNG(ds dataset.Dataset, cfg Config, width, height int) ([]byte, error) {
	img, err := Render(ds, cfg, width, height)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}

// Blank is a plain container image used when the chart cannot be drawn, so the area
// stays visible.
func Blank(w, h int, bgHex string) image.Image {
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := mustColor(bgHex, chart.ColorWhite)
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

// DrawNotice writes a short message near the bottom-left corner of img.
func DrawNotice(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	pad := 6
	face := basicfont.Face7x13
	textCol := image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	dr := &font.Drawer{Dst: rgba, Src: textCol, Face: face}
	tw := dr.MeasureString(text).Ceil()
	x := b.Min.X + 8
	y := b.Max.Y - 8
	bg := image.NewUniform(color.RGBA{R: 0, G: 0, B: 0, A: 200})
	rect := image.Rect(x-pad, y-face.Metrics().Ascent.Ceil()-pad, x+tw+pad, y+pad/2)
	draw.Draw(rgba, rect, bg, image.Point{}, draw.Over)
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
	return rgba
}

// Frame is the plot area of a rendered chart in image pixels, with the number of time
// points laid out across it.
type Frame struct {
	Plot image.Rectangle
	N    int
}

// Frame reports the plot area of the last Image call; it is empty before rendering.
func (p Plan) Frame() Frame {
	f := Frame{N: len(p.Labels)}
	if p.plot != nil {
		f.Plot = image.Rect(p.plot.Left, p.plot.Top, p.plot.Right, p.plot.Bottom)
	}
	return f
}

// step is the pixel distance between neighbouring time points.
func (f Frame) step() float64 { return float64(f.Plot.Dx()) / float64(f.N) }

// X is the pixel column of time point i; the X range spans [0.5, n+0.5].
func (f Frame) X(i int) float64 {
	return float64(f.Plot.Min.X) + (float64(i)+0.5)*f.step()
}

// HoverIndex maps a pointer x to the nearest time point. It returns -1 outside the
// plot area.
func (f Frame) HoverIndex(x float64) int {
	if f.N <= 0 || f.Plot.Empty() || x < float64(f.Plot.Min.X) || x > float64(f.Plot.Max.X) {
		return -1
	}
	i := int(math.Floor((x - float64(f.Plot.Min.X)) / f.step()))
	if i < 0 {
		i = 0
	}
	if i >= f.N {
		i = f.N - 1
	}
	return i
}
