// Command bwgviewer shows the body weight graph in a window with a "Download PNG"
// button that saves the chart container as body_weight_graph.png.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dayam8696/Graph-Pharma/cmd/bwgviewer/uihelpers"
	"github.com/dayam8696/Graph-Pharma/src/applog"
	"github.com/dayam8696/Graph-Pharma/src/config"
	"github.com/dayam8696/Graph-Pharma/src/dataset"
	"github.com/dayam8696/Graph-Pharma/src/export"
	"github.com/dayam8696/Graph-Pharma/src/graph"
)

var accent = color.NRGBA{R: 0xff, G: 0x95, B: 0x00, A: 0xff}

type uiState struct {
	app    fyne.App
	window fyne.Window
	cfg    *config.Config
	data   dataset.Dataset

	chart    *chartView
	status   *widget.Label
	hover    *widget.Label
	exporter *export.Exporter

	saveDir string
}

// light theme with the download button in the chart's accent color
type accentTheme struct{}

func (a *accentTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return accent
	}
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}
func (a *accentTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (a *accentTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (a *accentTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

func main() {
	var cfgFile, screenshotsDir string
	flag.StringVar(&cfgFile, "config", "", "Path to config file (default .bwg.yaml in . or $HOME)")
	flag.StringVar(&screenshotsDir, "screenshots", "", "Render one PNG per layout into this directory and exit (no window)")
	flag.String(config.KeyLayout, "default", "Layout preset: default or compact")
	flag.String(config.KeyOutDir, "", "Directory downloads are saved to (default ~/Downloads)")
	flag.String(config.KeyFilename, export.DefaultFilename, "File name of the exported PNG")
	flag.String(config.KeyLogLevel, "info", "Log level (debug|info|warn|error)")
	flag.String(config.KeyColor, "auto", "Colored log prefixes (auto|yes|no)")
	flag.Parse()

	v := config.NewViper(cfgFile)
	// only flags given on the command line override file and env values
	flag.Visit(func(f *flag.Flag) {
		if f.Name != "config" && f.Name != "screenshots" {
			v.Set(f.Name, f.Value.String())
		}
	})
	cfg, err := config.Load(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	cfg.Apply()

	if screenshotsDir != "" {
		if _, err := RunScreenshotsMode(context.Background(), screenshotsDir, cfg.Filename, cfg.Graph); err != nil {
			applog.Errorf("screenshots: %v", err)
			os.Exit(1)
		}
		return
	}

	ds := dataset.BodyWeight()
	if err := ds.Validate(); err != nil {
		applog.Errorf("dataset: %v", err)
		os.Exit(1)
	}

	a := app.NewWithID("com.graphpharma.bwgviewer")
	a.Settings().SetTheme(&accentTheme{})
	w := a.NewWindow("Body Weight Graph")
	w.Resize(fyne.NewSize(float32(cfg.Graph.Layout.Width)+40, float32(cfg.Graph.Layout.Height)+120))

	state := &uiState{app: a, window: w, cfg: cfg, data: ds}
	state.saveDir = loadSaveDir(state)
	w.SetContent(buildContent(state))
	buildMenus(state)
	w.ShowAndRun()
}

// buildContent lays out the button above the chart container, with the hover and status lines below.
func buildContent(state *uiState) fyne.CanvasObject {
	state.hover = widget.NewLabel("")
	state.hover.Alignment = fyne.TextAlignCenter
	state.hover.Truncation = fyne.TextTruncateEllipsis
	state.chart = newChartView(state, state.hover.SetText)
	state.status = widget.NewLabel("")
	state.status.Alignment = fyne.TextAlignCenter

	surface := windowSurface{window: state.window, obj: state.chart}
	state.exporter = export.New(surface, export.DirSaver{Dir: state.saveDir, LastPath: func(p string) {
		state.status.SetText("Saved " + uihelpers.TruncatePath(p, 80))
	}})
	state.exporter.Filename = state.cfg.Filename
	state.exporter.OnError = func(err error) {
		state.status.SetText("Download failed")
		dialog.ShowError(err, state.window)
	}

	btn := widget.NewButtonWithIcon("Download PNG", theme.DownloadIcon(), func() {
		state.exporter.Trigger(context.Background())
	})
	btn.Importance = widget.HighImportance

	chartArea := container.New(&chartLayout{}, state.chart)
	return container.NewBorder(container.NewCenter(btn), container.NewVBox(state.hover, state.status), nil, nil, chartArea)
}

// renderContainer draws the chart at w x h pixels; it runs on every resize. The frame
// is empty when only the fallback notice could be drawn.
func renderContainer(state *uiState, w, h int) (image.Image, graph.Frame) {
	img, frame, err := graph.RenderFrame(state.data, state.cfg.Graph, w, h)
	if err != nil {
		applog.Warnf("chart render at %dx%d: %v", w, h, err)
		return graph.DrawNotice(graph.Blank(w, h, state.cfg.Graph.Background), "Chart unavailable: "+err.Error()), graph.Frame{}
	}
	return img, frame
}

// chartLayout centers its single object and sizes it with the container rules.
type chartLayout struct{}

func (l *chartLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	w, h := uihelpers.ComputeContainerSize(size.Width, size.Height)
	if h > size.Height {
		h = size.Height
	}
	for _, o := range objects {
		o.Resize(fyne.NewSize(w, h))
		o.Move(fyne.NewPos(uihelpers.CenterOffset(size.Width, w), 0))
	}
}

func (l *chartLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(uihelpers.MinWidth, uihelpers.MinHeight)
}

func buildMenus(state *uiState) {
	if state == nil || state.window == nil {
		return
	}
	download := func() { state.exporter.Trigger(context.Background()) }
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Download PNG", download),
		fyne.NewMenuItem("Save PNG As…", func() { saveAsDialog(state) }),
		fyne.NewMenuItem("Choose Download Folder…", func() { chooseSaveDir(state) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { state.window.Close() }),
	)
	state.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := state.window.Canvas()
	if canv != nil {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { download() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { download() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierSuper}, func(fyne.Shortcut) { state.window.Close() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) { state.window.Close() })
	}
}

// saveAsDialog lets the user pick the target file, then exports into it.
func saveAsDialog(state *uiState) {
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		saveTo(context.Background(), state, wc)
	}, state.window)
	fs.SetFileName(state.cfg.Filename)
	fs.Show()
}

// saveTo exports into wc and reports the outcome in the status line. wc is closed on
// every path, including an unmounted chart where nothing is written.
func saveTo(ctx context.Context, state *uiState, wc fyne.URIWriteCloser) {
	opened := false
	exp := export.New(state.exporter.Surface, export.WriterSaver{
		Open: func(context.Context, string) (io.WriteCloser, error) {
			opened = true
			return wc, nil
		},
	})
	exp.Filename = state.exporter.Filename
	err := exp.Export(ctx)
	if !opened {
		wc.Close()
	}
	switch {
	case err != nil:
		applog.Errorf("save as failed: %v", err)
		if state.exporter.OnError != nil {
			state.exporter.OnError(err)
		}
	case opened:
		state.status.SetText("Saved " + uihelpers.TruncatePath(wc.URI().Path(), 80))
	default:
		state.status.SetText("Nothing saved: chart is not on screen")
	}
}

func chooseSaveDir(state *uiState) {
	d := dialog.NewFolderOpen(func(lu fyne.ListableURI, err error) {
		if err != nil || lu == nil {
			return
		}
		state.saveDir = lu.Path()
		state.exporter.Saver = export.DirSaver{Dir: state.saveDir, LastPath: func(p string) {
			state.status.SetText("Saved " + uihelpers.TruncatePath(p, 80))
		}}
		state.app.Preferences().SetString("saveDir", state.saveDir)
		state.status.SetText("Downloads go to " + uihelpers.TruncatePath(state.saveDir, 80))
	}, state.window)
	d.Show()
}

// loadSaveDir prefers an explicit out-dir, then the remembered folder, then ~/Downloads.
func loadSaveDir(state *uiState) string {
	if dir := state.cfg.OutDir; dir != "" && dir != export.DefaultDownloadDir() {
		return dir
	}
	if state.app != nil {
		if dir := state.app.Preferences().String("saveDir"); dir != "" {
			if st, err := os.Stat(dir); err == nil && st.IsDir() {
				return filepath.Clean(dir)
			}
		}
	}
	return state.cfg.OutDir
}
