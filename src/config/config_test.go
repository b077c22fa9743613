package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dayam8696/Graph-Pharma/src/export"
)

func TestValidate(t *testing.T) {
	t.Run("defaults take layout size", func(t *testing.T) {
		cfg, err := Validate(&RawInput{Layout: "default", OutDir: "out", Color: "no"})
		require.NoError(t, err)
		assert.Equal(t, 1000, cfg.Width)
		assert.Equal(t, 680, cfg.Height)
		assert.Equal(t, export.DefaultFilename, cfg.Filename)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, DefaultFormat, cfg.Format)
		assert.False(t, cfg.Color)
		assert.Equal(t, "Body Weight (g)", cfg.Graph.Title)
	})

	t.Run("compact layout with explicit size", func(t *testing.T) {
		cfg, err := Validate(&RawInput{Layout: "compact", Width: 500, Height: 300, OutDir: "out", Format: "CSV", Color: "yes"})
		require.NoError(t, err)
		assert.Equal(t, "compact", cfg.Graph.Layout.Name)
		assert.Equal(t, 500, cfg.Width)
		assert.Equal(t, 300, cfg.Height)
		assert.Equal(t, "csv", cfg.Format)
		assert.True(t, cfg.Color)
	})

	failures := map[string]RawInput{
		"unknown layout":    {Layout: "poster"},
		"negative width":    {Width: -1},
		"path in filename":  {Filename: "../x.png"},
		"unknown log level": {LogLevel: "chatty"},
		"bad color mode":    {Color: "sometimes"},
		"unknown format":    {Format: "xml"},
	}
	for name, in := range failures {
		in := in
		t.Run(name, func(t *testing.T) {
			_, err := Validate(&in)
			require.Error(t, err)
		})
	}
}

func TestLoad_FileEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "bwg.yaml")
	require.NoError(t, os.WriteFile(file, []byte("layout: compact\nwidth: 720\nformat: json\nout-dir: "+dir+"\n"), 0o644))

	t.Setenv("BWG_WIDTH", "900")

	v := NewViper(file)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "compact", cfg.Graph.Layout.Name)
	assert.Equal(t, 900, cfg.Width, "env must override the config file")
	assert.Equal(t, 440, cfg.Height, "height falls back to the compact layout")
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, dir, cfg.OutDir)
}

func TestLoad_MissingSearchedFileIsFine(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load(NewViper(""))
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Graph.Layout.Name)
}
