// Package export implements the "Download PNG" action: capture the mounted chart
// container, encode it as PNG and hand the bytes to a Saver under a fixed file name.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/dayam8696/Graph-Pharma/src/applog"
)

// DefaultFilename is the name every export is saved under.
const DefaultFilename = "body_weight_graph.png"

var (
	ErrCapture = errors.New("capture failed")
	ErrEncode  = errors.New("png encode failed")
	ErrSave    = errors.New("save failed")
)

// Surface is a rendered visual subtree that can be rasterized.
type Surface interface {
	// Mounted reports whether the surface exists and has been laid out.
	Mounted() bool
	// Capture returns the current pixels of the whole container.
	Capture(ctx context.Context) (image.Image, error)
}

// Saver triggers the host's native "save as file" flow for data.
type Saver interface {
	Save(ctx context.Context, name string, data []byte) error
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(ctx context.Context, name string, data []byte) error

func (f SaverFunc) Save(ctx context.Context, name string, data []byte) error {
	return f(ctx, name, data)
}

// Exporter holds no mutable state; concurrent Export calls are independent and each
// produces its own file.
type Exporter struct {
	Surface  Surface
	Saver    Saver
	Filename string
	// OnError, when set, is told about failed exports (e.g. to show a notice).
	OnError func(error)
}

// New returns an Exporter saving to DefaultFilename.
func New(s Surface, saver Saver) *Exporter {
	return &Exporter{Surface: s, Saver: saver, Filename: DefaultFilename}
}

func (e *Exporter) filename() string {
	if e.Filename == "" {
		return DefaultFilename
	}
	return e.Filename
}

// Export captures, encodes and saves once. An unmounted surface is a silent no-op
// returning nil.
func (e *Exporter) Export(ctx context.Context) error {
	if e == nil || e.Surface == nil || !e.Surface.Mounted() {
		applog.Debugf("export skipped: chart surface not mounted")
		return nil
	}
	img, err := capture(ctx, e.Surface)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCapture, err)
	}
	if img == nil {
		return fmt.Errorf("%w: surface returned no image", ErrCapture)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	if e.Saver == nil {
		return fmt.Errorf("%w: no saver configured", ErrSave)
	}
	name := e.filename()
	if err := e.Saver.Save(ctx, name, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSave, name, err)
	}
	b := img.Bounds()
	applog.Infof("exported %s (%dx%d, %d bytes)", name, b.Dx(), b.Dy(), buf.Len())
	return nil
}

// Trigger is the button handler: it runs Export and never lets a failure escape to
// the caller. Failures are logged and passed to OnError.
func (e *Exporter) Trigger(ctx context.Context) {
	if err := e.Export(ctx); err != nil {
		applog.Errorf("export failed: %v", err)
		if e.OnError != nil {
			e.OnError(err)
		}
	}
}

// capture turns a panicking rasterizer into an error so the host keeps running.
func capture(ctx context.Context, s Surface) (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during capture: %v", r)
		}
	}()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Capture(ctx)
}
