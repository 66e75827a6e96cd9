package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Settings is the complete runtime configuration.
type Settings struct {
	Frame  Frame  `yaml:"frame"`
	Script Script `yaml:"script"`
	Turtle Turtle `yaml:"turtle"`
	Render Render `yaml:"render"`
	Log    Log    `yaml:"log"`
}

// Frame describes the display surface and the loop cadence.
type Frame struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
	// Frames stops the loop after this many cycles; 0 runs until cancelled.
	Frames int `yaml:"frames"`
}

// Script describes where the program comes from and how it is read.
type Script struct {
	Path string `yaml:"path"`
	// ReloadEvery is the number of frames between modification checks.
	ReloadEvery int    `yaml:"reload_every"`
	Indent      string `yaml:"indent"`
}

// Turtle holds the turtle's construction parameters.
type Turtle struct {
	// Start is the [x, y] starting position; empty means the frame center.
	Start         []float64 `yaml:"start"`
	IndicatorSize float64   `yaml:"indicator_size"`
	SegmentLimit  int       `yaml:"segment_limit"`
}

// Render selects the presenter and the overlays drawn over the path.
type Render struct {
	Output          string  `yaml:"output"`
	PNGPath         string  `yaml:"png_path"`
	HollowIndicator bool    `yaml:"hollow_indicator"`
	Bounds          bool    `yaml:"bounds"`
	StartMarker     float64 `yaml:"start_marker"`
	HeadingRay      float64 `yaml:"heading_ray"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MaxMarkerRadius bounds the start marker circle, which is drawn in full.
const MaxMarkerRadius = 4096

// Output names.
const (
	OutputText = "text"
	OutputPNG  = "png"
	OutputNone = "none"
)

// Default returns the settings used when nothing else is configured: a
// 640×360 frame at 60 fps, reloading ./main.turtle every 120 frames.
func Default() Settings {
	return Settings{
		Frame:  Frame{Width: 640, Height: 360, FPS: 60},
		Script: Script{Path: "./main.turtle", ReloadEvery: 120, Indent: "\t"},
		Turtle: Turtle{IndicatorSize: 8, SegmentLimit: 1 << 20},
		Render: Render{Output: OutputText, PNGPath: "frame.png"},
		Log:    Log{Level: "info", Format: "text"},
	}
}

// StartPosition resolves the turtle start to x, y.
func (s Settings) StartPosition() (float64, float64) {
	if len(s.Turtle.Start) == 2 {
		return s.Turtle.Start[0], s.Turtle.Start[1]
	}
	return float64(s.Frame.Width / 2), float64(s.Frame.Height / 2)
}

// FrameInterval is the time between two frame cycles.
func (s Settings) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.Frame.FPS)
}

// Validate reports every invalid field at once.
func (s Settings) Validate() error {
	var errs []error
	if s.Frame.Width <= 0 || s.Frame.Height <= 0 {
		errs = append(errs, fmt.Errorf("frame size must be positive, got %dx%d", s.Frame.Width, s.Frame.Height))
	}
	if s.Frame.FPS <= 0 || s.Frame.FPS > 1000 {
		errs = append(errs, fmt.Errorf("fps must be within 1..1000, got %d", s.Frame.FPS))
	}
	if s.Frame.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames must not be negative, got %d", s.Frame.Frames))
	}
	if s.Script.Path == "" {
		errs = append(errs, errors.New("script path is required"))
	}
	if s.Script.ReloadEvery <= 0 {
		errs = append(errs, fmt.Errorf("reload_every must be positive, got %d", s.Script.ReloadEvery))
	}
	if s.Script.Indent == "" || strings.TrimLeft(s.Script.Indent, " \t") != "" {
		errs = append(errs, fmt.Errorf("indent must be non-empty whitespace, got %q", s.Script.Indent))
	}
	if n := len(s.Turtle.Start); n != 0 && n != 2 {
		errs = append(errs, fmt.Errorf("turtle start must be [x, y], got %d values", n))
	}
	if s.Turtle.IndicatorSize <= 0 {
		errs = append(errs, fmt.Errorf("indicator_size must be positive, got %g", s.Turtle.IndicatorSize))
	}
	if s.Render.StartMarker < 0 || s.Render.StartMarker > MaxMarkerRadius {
		errs = append(errs, fmt.Errorf("start_marker must be within 0..%d, got %g", MaxMarkerRadius, s.Render.StartMarker))
	}
	switch s.Render.Output {
	case OutputText, OutputNone:
	case OutputPNG:
		if s.Render.PNGPath == "" {
			errs = append(errs, errors.New("png output needs png_path"))
		}
	default:
		errs = append(errs, fmt.Errorf("invalid output %q: must be 'text', 'png' or 'none'", s.Render.Output))
	}
	switch s.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q", s.Log.Level))
	}
	if s.Log.Format != "text" && s.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", s.Log.Format))
	}
	return errors.Join(errs...)
}
