package export

import (
	"context"
	"errors"
	"image"
	"sync/atomic"

	"github.com/dayam8696/Graph-Pharma/src/dataset"
	"github.com/dayam8696/Graph-Pharma/src/graph"
)

// RenderSurface is a headless chart container: it has no window, so Capture renders
// the container at its current size. It starts unmounted until Mount is called.
type RenderSurface struct {
	Data   dataset.Dataset
	Config graph.Config

	size atomic.Pointer[image.Point]
}

// NewRenderSurface returns an unmounted surface for ds.
func NewRenderSurface(ds dataset.Dataset, cfg graph.Config) *RenderSurface {
	return &RenderSurface{Data: ds, Config: cfg}
}

// Mount lays the container out at w x h pixels.
func (s *RenderSurface) Mount(w, h int) {
	p := image.Pt(w, h)
	s.size.Store(&p)
}

// Unmount removes the container; exports become no-ops.
func (s *RenderSurface) Unmount() { s.size.Store(nil) }

func (s *RenderSurface) Mounted() bool {
	p := s.size.Load()
	return p != nil && p.X > 0 && p.Y > 0
}

func (s *RenderSurface) Capture(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := s.size.Load()
	if p == nil {
		return nil, errNotLaidOut
	}
	return graph.Render(s.Data, s.Config, p.X, p.Y)
}

var errNotLaidOut = errors.New("surface has no layout")
