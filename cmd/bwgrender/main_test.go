package main

import (
	"bytes"
	"encoding/json"
	"image"
	_ "image/png" // register PNG decoder
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPNGCommand_WritesContainerSizedImage(t *testing.T) {
	dir := t.TempDir()
	out, err := runCmd(t, "png", "--out-dir", dir, "--width", "900", "--height", "600", "--color", "no")
	require.NoError(t, err)
	assert.Contains(t, out, "body_weight_graph.png")

	f, err := os.Open(filepath.Join(dir, "body_weight_graph.png"))
	require.NoError(t, err)
	defer f.Close()
	img, _, err := image.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 900, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestPNGCommand_RepeatProducesSeparateDownloads(t *testing.T) {
	dir := t.TempDir()
	_, err := runCmd(t, "png", "--out-dir", dir, "--layout", "compact", "--repeat", "2", "--color", "no")
	require.NoError(t, err)
	for _, name := range []string{"body_weight_graph.png", "body_weight_graph (1).png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "expected %s", name)
	}
}

func TestHTMLCommand_Stdout(t *testing.T) {
	out, err := runCmd(t, "html", "-o", "-", "--out-dir", t.TempDir(), "--color", "no")
	require.NoError(t, err)
	assert.Contains(t, out, "Body Weight (g)")
	assert.Contains(t, out, "DIABETIC")
}

func TestDataCommand_Formats(t *testing.T) {
	csvOut, err := runCmd(t, "data", "--format", "csv", "--out-dir", t.TempDir(), "--color", "no")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(csvOut), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "Time,Normal Control,Diabetic Control"))
	assert.True(t, strings.HasPrefix(lines[3], "3rd Week,162.3,201.1"))

	jsonOut, err := runCmd(t, "data", "--format", "json", "--out-dir", t.TempDir(), "--color", "no")
	require.NoError(t, err)
	var decoded jsonDataset
	require.NoError(t, json.Unmarshal([]byte(jsonOut), &decoded))
	require.Len(t, decoded.Cohorts, 7)
	require.Len(t, decoded.Points, 4)
	assert.Equal(t, "#ff9500", decoded.Cohorts[0].Color)
	require.NotNil(t, decoded.Points[0].Values["Normal Control"])
	assert.Equal(t, 108.0, *decoded.Points[0].Values["Normal Control"])

	tableOut, err := runCmd(t, "data", "--out-dir", t.TempDir(), "--color", "no")
	require.NoError(t, err)
	assert.Contains(t, tableOut, "6th Week")
	assert.Contains(t, tableOut, "211.5")
}

func TestRoot_RejectsBadLayout(t *testing.T) {
	_, err := runCmd(t, "png", "--layout", "poster", "--out-dir", t.TempDir())
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bwgrender dev")
}
