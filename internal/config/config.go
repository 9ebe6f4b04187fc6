// internal/config/config.go
// Application settings: defaults, TOML file overlay and validation
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"camera-sketch/internal/algorithms"
	"camera-sketch/internal/camera"
	"camera-sketch/internal/canvas"
	"camera-sketch/internal/core"
)

var ErrInvalid = errors.New("invalid configuration")

type Config struct {
	Camera     Camera  `toml:"camera"`
	Window     Window  `toml:"window"`
	Pen        Pen     `toml:"pen"`
	Filters    Filters `toml:"filters"`
	ColorSpace string  `toml:"color_space"`
}

type Camera struct {
	Device int    `toml:"device"`
	Source string `toml:"source"`
	TickMS int    `toml:"tick_ms"`
}

type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type Pen struct {
	Color    string  `toml:"color"`
	Width    int     `toml:"width"`
	TextSize float64 `toml:"text_size"`
}

type Filters struct {
	GaussianKernel  int     `toml:"gaussian_kernel"`
	CannyLow        float32 `toml:"canny_low"`
	CannyHigh       float32 `toml:"canny_high"`
	SketchKernel    int     `toml:"sketch_kernel"`
	SketchScale     float32 `toml:"sketch_scale"`
	SketchThreshold float32 `toml:"sketch_threshold"`
}

// Default returns the stock settings: device 0, a 20ms tick, a 960x720
// window and a red 2px pen
func Default() Config {
	p := algorithms.DefaultParams()
	return Config{
		Camera: Camera{Device: 0, TickMS: 20},
		Window: Window{Width: 960, Height: 720},
		Pen:    Pen{Color: "#ff0000", Width: 2, TextSize: 16},
		Filters: Filters{
			GaussianKernel:  p.GaussianKernel,
			CannyLow:        p.CannyLow,
			CannyHigh:       p.CannyHigh,
			SketchKernel:    p.SketchKernel,
			SketchScale:     p.SketchScale,
			SketchThreshold: p.SketchThreshold,
		},
		ColorSpace: core.ColorSpaceRGB.String(),
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges and parses the textual fields
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Camera.Device >= 0, "camera.device must be >= 0, got %d", c.Camera.Device)
	check(c.Camera.TickMS > 0, "camera.tick_ms must be > 0, got %d", c.Camera.TickMS)
	check(c.Window.Width > 0 && c.Window.Height > 0, "window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	check(c.Pen.Width > 0, "pen.width must be > 0, got %d", c.Pen.Width)
	check(c.Pen.TextSize >= 0, "pen.text_size must be >= 0, got %g", c.Pen.TextSize)
	check(c.Filters.GaussianKernel > 0, "filters.gaussian_kernel must be > 0, got %d", c.Filters.GaussianKernel)
	check(c.Filters.SketchKernel > 0, "filters.sketch_kernel must be > 0, got %d", c.Filters.SketchKernel)
	check(c.Filters.CannyLow >= 0 && c.Filters.CannyHigh >= 0, "canny thresholds must be >= 0")
	check(c.Filters.SketchScale > 0, "filters.sketch_scale must be > 0, got %g", c.Filters.SketchScale)

	if _, err := ParseColor(c.Pen.Color); err != nil {
		errs = append(errs, err)
	}
	if _, err := core.ParseColorSpace(c.ColorSpace); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalid, err))
	}

	return errors.Join(errs...)
}

// TickInterval is the camera polling period
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Camera.TickMS) * time.Millisecond
}

// CameraOptions selects the frame source
func (c Config) CameraOptions() camera.Options {
	return camera.Options{Device: c.Camera.Device, Source: c.Camera.Source}
}

// FilterParams returns the construction parameters for the filter registry
func (c Config) FilterParams() algorithms.Params {
	return algorithms.Params{
		GaussianKernel:  c.Filters.GaussianKernel,
		CannyLow:        c.Filters.CannyLow,
		CannyHigh:       c.Filters.CannyHigh,
		SketchKernel:    c.Filters.SketchKernel,
		SketchScale:     c.Filters.SketchScale,
		SketchThreshold: c.Filters.SketchThreshold,
	}
}

// Style returns the canvas pen. Call Validate first; a bad color falls back
// to the default.
func (c Config) Style() canvas.Style {
	style := canvas.DefaultStyle()
	if col, err := ParseColor(c.Pen.Color); err == nil {
		style.Color = col
	}
	style.Width = c.Pen.Width
	style.TextSize = c.Pen.TextSize
	return style
}

// ColorSpaceValue returns the parsed color space, RGB when unparseable
func (c Config) ColorSpaceValue() core.ColorSpace {
	cs, err := core.ParseColorSpace(c.ColorSpace)
	if err != nil {
		return core.ColorSpaceRGB
	}
	return cs
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa. The result is alpha
// premultiplied, as color.RGBA requires.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("%w: pen color %q", ErrInvalid, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: pen color %q", ErrInvalid, s)
	}
	nrgba := color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}
