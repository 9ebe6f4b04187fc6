package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camera-sketch/internal/algorithms"
	"camera-sketch/internal/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 20*time.Millisecond, cfg.TickInterval())
	assert.Equal(t, algorithms.DefaultParams(), cfg.FilterParams())
	assert.Equal(t, core.ColorSpaceRGB, cfg.ColorSpaceValue())

	style := cfg.Style()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, style.Color)
	assert.Equal(t, 2, style.Width)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
color_space = "hsv"

[camera]
source = "testdata/frame.png"

[pen]
color = "#00f"
width = 4

[filters]
canny_low = 50.0
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "testdata/frame.png", cfg.CameraOptions().Source)
	assert.Equal(t, 20, cfg.Camera.TickMS)
	assert.Equal(t, 960, cfg.Window.Width)
	assert.Equal(t, core.ColorSpaceHSV, cfg.ColorSpaceValue())
	assert.Equal(t, color.RGBA{B: 255, A: 255}, cfg.Style().Color)
	assert.Equal(t, 4, cfg.Style().Width)
	assert.Equal(t, float32(50), cfg.FilterParams().CannyLow)
	assert.Equal(t, float32(200), cfg.FilterParams().CannyHigh)
}

func TestLoadRejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "[camera]\nfps = 30\n",
		"bad color":    "[pen]\ncolor = \"red\"\n",
		"zero width":   "[pen]\nwidth = 0\n",
		"color space":  "color_space = \"YUV\"\n",
		"tick":         "[camera]\ntick_ms = 0\n",
		"window":       "[window]\nwidth = -1\n",
		"sketch scale": "[filters]\nsketch_scale = 0.0\n",
	}
	for name, body := range cases {
		_, err := Load(writeConfig(t, body))
		assert.ErrorIs(t, err, ErrInvalid, name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestParseColor(t *testing.T) {
	cases := map[string]color.RGBA{
		"#ff0000":   {R: 255, A: 255},
		"0f0":       {G: 255, A: 255},
		"#11223344": {R: 0x04, G: 0x09, B: 0x0d, A: 0x44},
		"#ff000080": {R: 0x80, A: 0x80},
		"#00000000": {},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	// premultiplied: no channel may exceed alpha
	for _, in := range []string{"#ffffff01", "#abcdef7f", "#ff8000c0"} {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.LessOrEqual(t, got.R, got.A, in)
		assert.LessOrEqual(t, got.G, got.A, in)
		assert.LessOrEqual(t, got.B, got.A, in)
	}

	for _, in := range []string{"", "#12", "#gggggg", "red"} {
		_, err := ParseColor(in)
		assert.ErrorIs(t, err, ErrInvalid, in)
	}
}
