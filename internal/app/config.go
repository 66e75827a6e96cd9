package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/turtlego/internal/config"
	"github.com/vk/turtlego/internal/hcl"
	"github.com/vk/turtlego/internal/yamlcfg"
)

// Config holds the command-line view of the settings. Zero values mean "not
// given" and leave the settings file or the defaults in charge.
type Config struct {
	ScriptPath string // .turtle script
	ConfigPath string // .hcl/.yaml file or a directory of .hcl files

	Width  int
	Height int
	FPS    int
	Frames int

	Output  string
	PNGPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates the values that can be checked without loading any
// file.
func NewConfig(cfg Config) (*Config, error) {
	var errs []error
	if cfg.Width < 0 || cfg.Height < 0 {
		errs = append(errs, fmt.Errorf("frame size must not be negative, got %dx%d", cfg.Width, cfg.Height))
	}
	if cfg.FPS < 0 {
		errs = append(errs, fmt.Errorf("fps must not be negative, got %d", cfg.FPS))
	}
	if cfg.Frames < 0 {
		errs = append(errs, fmt.Errorf("frames must not be negative, got %d", cfg.Frames))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyTo overrides s with every value given on the command line.
func (c *Config) applyTo(s *config.Settings) {
	setString(&s.Script.Path, c.ScriptPath)
	setInt(&s.Frame.Width, c.Width)
	setInt(&s.Frame.Height, c.Height)
	setInt(&s.Frame.FPS, c.FPS)
	setInt(&s.Frame.Frames, c.Frames)
	setString(&s.Render.Output, c.Output)
	setString(&s.Render.PNGPath, c.PNGPath)
	setString(&s.Log.Level, c.LogLevel)
	setString(&s.Log.Format, c.LogFormat)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

// loaderFor picks the settings loader from the file extension. Directories
// are read as HCL.
func loaderFor(path string, isDir bool) (config.Loader, error) {
	if isDir {
		return hcl.NewLoader(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".yaml", ".yml":
		return yamlcfg.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported settings file %s: expected .hcl, .yaml or .yml", path)
	}
}
