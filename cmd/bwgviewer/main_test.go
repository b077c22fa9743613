package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	_ "image/png" // register PNG decoder
	"strings"
	"testing"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/dayam8696/Graph-Pharma/cmd/bwgviewer/uihelpers"
	"github.com/dayam8696/Graph-Pharma/src/config"
	"github.com/dayam8696/Graph-Pharma/src/dataset"
	"github.com/dayam8696/Graph-Pharma/src/export"
	"github.com/dayam8696/Graph-Pharma/src/graph"
)

type memSaver struct {
	names []string
	data  [][]byte
}

func (m *memSaver) Save(_ context.Context, name string, data []byte) error {
	m.names = append(m.names, name)
	m.data = append(m.data, data)
	return nil
}

func near(a, b int) bool { return a-b <= 1 && b-a <= 1 }

func TestWindowSurface_NotMounted(t *testing.T) {
	if (windowSurface{}).Mounted() {
		t.Fatalf("zero surface must not be mounted")
	}
	test.NewTempApp(t)
	rect := canvas.NewRectangle(color.Black)
	rect.SetMinSize(fyne.NewSize(50, 50))
	w := test.NewWindow(container.NewCenter(rect))
	defer w.Close()
	s := windowSurface{window: w, obj: rect}
	if !s.Mounted() {
		t.Fatalf("visible object should be mounted")
	}
	rect.Hide()
	if s.Mounted() {
		t.Fatalf("hidden object must not be mounted")
	}
}

func TestWindowSurface_CaptureCropsToObject(t *testing.T) {
	test.NewTempApp(t)
	red := color.NRGBA{R: 0xff, A: 0xff}
	rect := canvas.NewRectangle(red)
	rect.SetMinSize(fyne.NewSize(200, 100))
	w := test.NewWindow(container.NewCenter(rect))
	defer w.Close()
	w.Resize(fyne.NewSize(400, 300))

	img, err := windowSurface{window: w, obj: rect}.Capture(context.Background())
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	b := img.Bounds()
	if !near(b.Dx(), 200) || !near(b.Dy(), 100) {
		t.Fatalf("captured %dx%d, want about 200x100", b.Dx(), b.Dy())
	}
	r, g, _, _ := img.At(b.Dx()/2, b.Dy()/2).RGBA()
	if r>>8 != 0xff || g>>8 != 0 {
		t.Fatalf("centre pixel is not the object's color")
	}
}

func TestWindowSurface_CaptureHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (windowSurface{}).Capture(ctx); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestExportFromWindow_SavesContainerPNG(t *testing.T) {
	test.NewTempApp(t)
	rect := canvas.NewRectangle(color.White)
	rect.SetMinSize(fyne.NewSize(320, 240))
	w := test.NewWindow(container.NewCenter(rect))
	defer w.Close()
	w.Resize(fyne.NewSize(500, 400))

	saver := &memSaver{}
	exp := export.New(windowSurface{window: w, obj: rect}, saver)
	exp.Trigger(context.Background())
	if len(saver.names) != 1 || saver.names[0] != "body_weight_graph.png" {
		t.Fatalf("unexpected saves: %v", saver.names)
	}
	img, _, err := image.Decode(bytes.NewReader(saver.data[0]))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !near(img.Bounds().Dx(), 320) || !near(img.Bounds().Dy(), 240) {
		t.Fatalf("exported %v, want about 320x240", img.Bounds())
	}
}

func TestRenderContainer_FallsBackToNotice(t *testing.T) {
	cfg := &config.Config{Graph: graph.DefaultConfig()}
	state := &uiState{cfg: cfg, data: dataset.BodyWeight()}
	img, frame := renderContainer(state, 40, 30)
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Fatalf("notice size %v", img.Bounds())
	}
	if frame.HoverIndex(20) != -1 {
		t.Fatalf("fallback image must not report a time point")
	}
	img, frame = renderContainer(state, 800, 560)
	if img.Bounds().Dx() != 800 || img.Bounds().Dy() != 560 {
		t.Fatalf("chart size %v", img.Bounds())
	}
	if frame.N != 4 || frame.Plot.Empty() {
		t.Fatalf("frame = %+v", frame)
	}
}

func TestChartLayout_CapsWidthAndCenters(t *testing.T) {
	rect := canvas.NewRectangle(color.Black)
	(&chartLayout{}).Layout([]fyne.CanvasObject{rect}, fyne.NewSize(1400, 900))
	if rect.Size().Width != uihelpers.MaxWidth {
		t.Fatalf("width %v, want %v", rect.Size().Width, uihelpers.MaxWidth)
	}
	if rect.Position().X != 200 {
		t.Fatalf("x offset %v, want 200", rect.Position().X)
	}
	if rect.Size().Height > 900 {
		t.Fatalf("height %v exceeds available", rect.Size().Height)
	}
}

func TestChartView_HoverReportsTooltip(t *testing.T) {
	test.NewTempApp(t)
	state := &uiState{cfg: &config.Config{Graph: graph.DefaultConfig()}, data: dataset.BodyWeight()}
	var got []string
	v := newChartView(state, func(s string) { got = append(got, s) })
	w := test.NewWindow(v)
	defer w.Close()
	w.Resize(fyne.NewSize(1000, 680))

	sz := v.Size()
	v.draw(int(sz.Width), int(sz.Height))
	frame := v.frame.Load()
	if frame == nil || frame.Plot.Empty() {
		t.Fatalf("no plot frame after drawing at %v", sz)
	}
	x := float32(frame.X(1))
	v.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, 100)}})
	v.MouseMoved(&desktop.MouseEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x+1, 100)}})
	v.MouseOut()

	if len(got) != 2 {
		t.Fatalf("expected one tooltip and one clear, got %q", got)
	}
	if !strings.HasPrefix(got[0], "0 Day") || !strings.Contains(got[0], "DIABETIC: 195.1 g") {
		t.Fatalf("unexpected tooltip %q", got[0])
	}
	if got[1] != "" {
		t.Fatalf("mouse out should clear the tooltip, got %q", got[1])
	}
}

type brokenSurface struct{}

func (brokenSurface) Mounted() bool { return true }
func (brokenSurface) Capture(context.Context) (image.Image, error) {
	return nil, errors.New("no rendering context")
}

type memFile struct {
	bytes.Buffer
	uri    fyne.URI
	closed int
}

func (f *memFile) Close() error  { f.closed++; return nil }
func (f *memFile) URI() fyne.URI { return f.uri }

func saveAsState(t *testing.T, s export.Surface) (*uiState, *[]error) {
	t.Helper()
	test.NewTempApp(t)
	var errs []error
	state := &uiState{cfg: &config.Config{Graph: graph.DefaultConfig()}, data: dataset.BodyWeight()}
	state.status = widget.NewLabel("")
	state.exporter = export.New(s, &memSaver{})
	state.exporter.OnError = func(err error) {
		errs = append(errs, err)
		state.status.SetText("Download failed")
	}
	return state, &errs
}

func TestSaveTo_WritesAndReportsPath(t *testing.T) {
	surface := export.NewRenderSurface(dataset.BodyWeight(), graph.DefaultConfig())
	surface.Mount(640, 440)
	state, errs := saveAsState(t, surface)
	f := &memFile{uri: storage.NewFileURI("/tmp/charts/body_weight_graph.png")}

	saveTo(context.Background(), state, f)

	if len(*errs) != 0 {
		t.Fatalf("unexpected errors: %v", *errs)
	}
	if f.closed != 1 {
		t.Fatalf("file closed %d times, want 1", f.closed)
	}
	img, _, err := image.Decode(bytes.NewReader(f.Bytes()))
	if err != nil || img.Bounds().Dx() != 640 {
		t.Fatalf("saved image: %v (%v)", err, img)
	}
	if !strings.HasPrefix(state.status.Text, "Saved ") || !strings.HasSuffix(state.status.Text, "body_weight_graph.png") {
		t.Fatalf("status = %q", state.status.Text)
	}
}

func TestSaveTo_CaptureFailureIsNotReportedAsSaved(t *testing.T) {
	state, errs := saveAsState(t, brokenSurface{})
	f := &memFile{uri: storage.NewFileURI("/tmp/charts/body_weight_graph.png")}

	saveTo(context.Background(), state, f)

	if len(*errs) != 1 || !errors.Is((*errs)[0], export.ErrCapture) {
		t.Fatalf("errors = %v, want one capture error", *errs)
	}
	if state.status.Text != "Download failed" {
		t.Fatalf("status = %q, want the failure notice", state.status.Text)
	}
	if f.closed != 1 || f.Len() != 0 {
		t.Fatalf("file closed %d times with %d bytes, want closed once and empty", f.closed, f.Len())
	}
}

func TestSaveTo_UnmountedClosesFile(t *testing.T) {
	surface := export.NewRenderSurface(dataset.BodyWeight(), graph.DefaultConfig())
	state, errs := saveAsState(t, surface)
	f := &memFile{uri: storage.NewFileURI("/tmp/charts/body_weight_graph.png")}

	saveTo(context.Background(), state, f)

	if len(*errs) != 0 {
		t.Fatalf("unexpected errors: %v", *errs)
	}
	if f.closed != 1 {
		t.Fatalf("file closed %d times, want 1", f.closed)
	}
	if strings.HasPrefix(state.status.Text, "Saved") {
		t.Fatalf("status = %q, nothing was saved", state.status.Text)
	}
}
