package graph

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type fontSet struct {
	regular *truetype.Font
	bold    *truetype.Font
}

var (
	fontsOnce sync.Once
	fonts     fontSet
	fontsErr  error
)

// loadFonts parses the embedded Go fonts once. Titles, ticks and the legend are bold.
func loadFonts() (fontSet, error) {
	fontsOnce.Do(func() {
		r, err := truetype.Parse(goregular.TTF)
		if err != nil {
			fontsErr = fmt.Errorf("parse regular font: %w", err)
			return
		}
		b, err := truetype.Parse(gobold.TTF)
		if err != nil {
			fontsErr = fmt.Errorf("parse bold font: %w", err)
			return
		}
		fonts = fontSet{regular: r, bold: b}
	})
	return fonts, fontsErr
}

// textWidth measures s in pixels for a point size, matching the renderer's DPI.
func textWidth(f *truetype.Font, pt float64, s string) int {
	face := truetype.NewFace(f, &truetype.Options{Size: pt, DPI: chart.DefaultDPI})
	defer face.Close()
	return font.MeasureString(face, s).Ceil()
}

// textHeight is the ascent+descent of the face in pixels.
func textHeight(f *truetype.Font, pt float64) int {
	face := truetype.NewFace(f, &truetype.Options{Size: pt, DPI: chart.DefaultDPI})
	defer face.Close()
	m := face.Metrics()
	return (m.Ascent + m.Descent).Ceil()
}
