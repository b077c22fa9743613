// Package config resolves runtime settings from defaults, an optional YAML file,
// BWG_* environment variables and command line flags, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/viper"

	"github.com/dayam8696/Graph-Pharma/src/applog"
	"github.com/dayam8696/Graph-Pharma/src/export"
	"github.com/dayam8696/Graph-Pharma/src/graph"
)

const (
	EnvPrefix     = "BWG"
	ConfigName    = ".bwg"
	DefaultFormat = "table"
	KeyConfig     = "config"
	KeyLayout     = "layout"
	KeyWidth      = "width"
	KeyHeight     = "height"
	KeyOutDir     = "out-dir"
	KeyFilename   = "filename"
	KeyLogLevel   = "log-level"
	KeyColor      = "color"
	KeyFormat     = "format"
)

// RawInput mirrors the keys as they arrive, before validation.
type RawInput struct {
	Layout   string `mapstructure:"layout"`
	Width    int    `mapstructure:"width"`
	Height   int    `mapstructure:"height"`
	OutDir   string `mapstructure:"out-dir"`
	Filename string `mapstructure:"filename"`
	LogLevel string `mapstructure:"log-level"`
	Color    string `mapstructure:"color"`
	Format   string `mapstructure:"format"`
}

// Config is the validated configuration.
type Config struct {
	Graph    graph.Config
	Width    int // container width in pixels
	Height   int // container height in pixels
	OutDir   string
	Filename string
	LogLevel string
	Color    bool
	Format   string // table, csv or json
}

// SetDefaults registers every key's default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLayout, "default")
	v.SetDefault(KeyWidth, 0)
	v.SetDefault(KeyHeight, 0)
	v.SetDefault(KeyOutDir, "")
	v.SetDefault(KeyFilename, export.DefaultFilename)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyColor, "auto")
	v.SetDefault(KeyFormat, DefaultFormat)
}

// NewViper returns a viper instance wired for env vars and the optional config file.
// configFile, when non-empty, replaces the .bwg.yaml search in . and $HOME.
func NewViper(configFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file (a missing file is fine) and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	var in RawInput
	if err := v.Unmarshal(&in); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return Validate(&in)
}

// Validate turns raw input into a Config. Zero width/height take the layout's size.
func Validate(in *RawInput) (*Config, error) {
	lay, err := graph.LayoutByName(in.Layout)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Graph:    graph.DefaultConfig(),
		Width:    in.Width,
		Height:   in.Height,
		OutDir:   strings.TrimSpace(in.OutDir),
		Filename: strings.TrimSpace(in.Filename),
		Format:   strings.ToLower(strings.TrimSpace(in.Format)),
	}
	cfg.Graph.Layout = lay
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("width and height must not be negative (got %dx%d)", cfg.Width, cfg.Height)
	}
	if cfg.Width == 0 {
		cfg.Width = lay.Width
	}
	if cfg.Height == 0 {
		cfg.Height = lay.Height
	}
	if cfg.Filename == "" {
		cfg.Filename = export.DefaultFilename
	}
	if strings.ContainsAny(cfg.Filename, `/\`) {
		return nil, fmt.Errorf("filename %q must not contain a path", cfg.Filename)
	}
	if cfg.OutDir == "" {
		cfg.OutDir = export.DefaultDownloadDir()
	}
	level := strings.TrimSpace(in.LogLevel)
	if level == "" {
		level = "info"
	}
	if _, ok := applog.ParseLevel(level); !ok {
		return nil, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", in.LogLevel)
	}
	cfg.LogLevel = level
	useColor, err := parseColorMode(in.Color)
	if err != nil {
		return nil, err
	}
	cfg.Color = useColor
	switch cfg.Format {
	case "":
		cfg.Format = DefaultFormat
	case "table", "csv", "json":
	default:
		return nil, fmt.Errorf("unknown format %q (want table|csv|json)", in.Format)
	}
	return cfg, nil
}

// Apply pushes logging settings into applog.
func (c *Config) Apply() {
	applog.SetLogLevel(c.LogLevel)
	applog.SetColor(c.Color)
}

// parseColorMode accepts yes/no/true/false/1/0 and auto (follow the terminal).
func parseColorMode(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return !colorDisabledByTerminal(), nil
	case "yes", "true", "1", "on":
		return true, nil
	case "no", "false", "0", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid color mode %q", s)
	}
}

// terminalNoColor is fatih/color's verdict at startup (NO_COLOR, dumb terminal, not a TTY),
// taken before SetColor can overwrite it.
var terminalNoColor = color.NoColor

func colorDisabledByTerminal() bool { return terminalNoColor }
