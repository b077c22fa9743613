package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dayam8696/Graph-Pharma/src/applog"
	"github.com/dayam8696/Graph-Pharma/src/dataset"
	"github.com/dayam8696/Graph-Pharma/src/export"
	"github.com/dayam8696/Graph-Pharma/src/graph"
)

// RunScreenshotsMode renders the chart container once per layout preset and writes the
// PNGs under outDir. It runs headlessly without creating a UI window.
func RunScreenshotsMode(ctx context.Context, outDir, filename string, base graph.Config) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create out dir: %w", err)
	}
	ds := dataset.BodyWeight()
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	var written []string
	for _, name := range []string{"default", "compact"} {
		layout, err := graph.LayoutByName(name)
		if err != nil {
			return written, err
		}
		cfg := base
		cfg.Layout = layout
		surface := export.NewRenderSurface(ds, cfg)
		surface.Mount(layout.Width, layout.Height)
		exp := export.New(surface, export.DirSaver{Dir: outDir, LastPath: func(p string) {
			written = append(written, p)
		}})
		exp.Filename = stem + "_" + name + ".png"
		if err := exp.Export(ctx); err != nil {
			return written, err
		}
	}
	applog.Infof("screenshots: wrote %d files to %s", len(written), outDir)
	return written, nil
}
