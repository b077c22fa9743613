package main

import (
	"github.com/spf13/cobra"

	"github.com/dayam8696/Graph-Pharma/src/config"
)

// All linker flags are set at build time.
var (
	version = "dev"
	commit  = "none"
)

// app carries the validated configuration from the root pre-run to subcommands.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "bwgrender",
		Short:         "Render the body weight graph without a window",
		Long:          "bwgrender draws the body weight chart of the bundled cohort table to PNG or HTML and prints the underlying measurements.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString(config.KeyConfig)
			v := config.NewViper(cfgFile)
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			cfg.Apply()
			a.cfg = cfg
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String(config.KeyConfig, "", "Path to config file (default .bwg.yaml in . or $HOME)")
	pf.String(config.KeyLayout, "default", "Layout preset: default or compact")
	pf.Int(config.KeyWidth, 0, "Container width in pixels (0 = layout default)")
	pf.Int(config.KeyHeight, 0, "Container height in pixels (0 = layout default)")
	pf.String(config.KeyOutDir, "", "Directory downloads are written to (default ~/Downloads or .)")
	pf.String(config.KeyFilename, "body_weight_graph.png", "File name of the exported PNG")
	pf.String(config.KeyLogLevel, "info", "Log level (debug|info|warn|error)")
	pf.String(config.KeyColor, "auto", "Colored log prefixes (auto|yes|no)")

	root.AddCommand(newPNGCmd(a), newHTMLCmd(a), newDataCmd(a), newVersionCmd())
	return root
}
