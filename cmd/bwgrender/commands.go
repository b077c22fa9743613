package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dayam8696/Graph-Pharma/src/applog"
	"github.com/dayam8696/Graph-Pharma/src/dataset"
	"github.com/dayam8696/Graph-Pharma/src/export"
)

func newPNGCmd(a *app) *cobra.Command {
	var repeat int
	cmd := &cobra.Command{
		Use:   "png",
		Short: "Export the chart container as PNG into the download directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			defer applog.TimeTrack(time.Now(), "png export")
			cfg := a.cfg
			ds := dataset.BodyWeight()
			if err := ds.Validate(); err != nil {
				return fmt.Errorf("dataset: %w", err)
			}
			surface := export.NewRenderSurface(ds, cfg.Graph)
			surface.Mount(cfg.Width, cfg.Height)
			saver := export.DirSaver{Dir: cfg.OutDir, LastPath: func(p string) {
				fmt.Fprintf(cmd.OutOrStdout(), "💾 Wrote %s\n", p)
			}}
			exp := export.New(surface, saver)
			exp.Filename = cfg.Filename
			for i := 0; i < repeat; i++ {
				if err := exp.Export(cmd.Context()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&repeat, "repeat", 1, "Number of independent downloads to produce")
	return cmd
}

func newHTMLCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "html",
		Short: "Write the interactive chart (tooltips, legend) as a standalone HTML page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			g := cfg.Graph
			g.Layout.Width, g.Layout.Height = cfg.Width, cfg.Height
			if output == "-" {
				return renderHTMLTo(cmd.OutOrStdout(), g)
			}
			if output == "" {
				stem := strings.TrimSuffix(cfg.Filename, filepath.Ext(cfg.Filename))
				output = filepath.Join(cfg.OutDir, stem+".html")
			}
			if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
				return fmt.Errorf("create out dir: %w", err)
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create %s: %w", output, err)
			}
			if err := renderHTMLTo(f, g); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "💾 Wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path, - for stdout (default <out-dir>/body_weight_graph.html)")
	return cmd
}

func newDataCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Print the body weight table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printDataset(cmd.OutOrStdout(), dataset.BodyWeight(), a.cfg.Format)
		},
	}
	cmd.Flags().String("format", "table", "Output format: table, csv or json")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bwgrender %s (%s)\n", version, commit)
		},
	}
}
