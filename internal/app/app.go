package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/vk/turtlego/internal/config"
	"github.com/vk/turtlego/internal/ctxlog"
	"github.com/vk/turtlego/internal/frame"
	"github.com/vk/turtlego/internal/fsutil"
	"github.com/vk/turtlego/internal/geometry"
	"github.com/vk/turtlego/internal/raster"
	"github.com/vk/turtlego/internal/script"
	"github.com/vk/turtlego/internal/turtle"
)

// App encapsulates the renderer's dependencies, settings and frame state.
type App struct {
	logger   *slog.Logger
	settings config.Settings

	watcher   *fsutil.Watcher
	parser    *script.Parser
	turtle    *turtle.Turtle
	program   *script.Program
	frame     *frame.Buffer
	presenter frame.Presenter
	overlays  raster.Options
}

// NewApp resolves the settings and wires every component. Frames go to outW,
// logs to logW. Startup problems (bad settings, missing script) are returned
// as errors; nothing is rendered yet.
func NewApp(outW, logW io.Writer, appConfig *Config) (*App, error) {
	// Bootstrap logger for settings loading, replaced once the settings are known.
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	settings, err := loadSettings(ctx, appConfig)
	if err != nil {
		return nil, err
	}
	logger = newLogger(settings.Log.Level, settings.Log.Format, logW).With("run_id", uuid.NewString())
	logger.Debug("Settings resolved.", "settings", settings)

	watcher, err := fsutil.NewWatcher(settings.Script.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to watch script: %w", err)
	}

	buf, err := frame.New(settings.Frame.Width, settings.Frame.Height)
	if err != nil {
		return nil, err
	}

	presenter, err := newPresenter(settings.Render, outW)
	if err != nil {
		return nil, err
	}

	x, y := settings.StartPosition()
	t := turtle.New(geometry.V(x, y),
		turtle.WithIndicatorSize(settings.Turtle.IndicatorSize),
		turtle.WithSegmentLimit(settings.Turtle.SegmentLimit),
	)

	return &App{
		logger:    logger,
		settings:  settings,
		watcher:   watcher,
		parser:    script.NewParser(script.WithIndent(settings.Script.Indent)),
		turtle:    t,
		frame:     buf,
		presenter: presenter,
		overlays: raster.Options{
			HollowIndicator: settings.Render.HollowIndicator,
			Bounds:          settings.Render.Bounds,
			StartMarker:     settings.Render.StartMarker,
			HeadingRay:      settings.Render.HeadingRay,
			Clip:            buf.Bounds(),
		},
	}, nil
}

func loadSettings(ctx context.Context, appConfig *Config) (config.Settings, error) {
	settings := config.Default()
	if path := appConfig.ConfigPath; path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return settings, fmt.Errorf("failed to load settings: %w", err)
		}
		loader, err := loaderFor(path, info.IsDir())
		if err != nil {
			return settings, err
		}
		if settings, err = loader.Load(ctx, settings, path); err != nil {
			return settings, fmt.Errorf("failed to load settings: %w", err)
		}
	}
	appConfig.applyTo(&settings)
	if err := settings.Validate(); err != nil {
		return settings, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

func newPresenter(r config.Render, outW io.Writer) (frame.Presenter, error) {
	switch r.Output {
	case config.OutputText:
		return frame.NewTextPresenter(outW, true), nil
	case config.OutputPNG:
		return &frame.PNGPresenter{Path: r.PNGPath}, nil
	case config.OutputNone:
		return frame.Discard{}, nil
	default:
		return nil, fmt.Errorf("unknown output %q", r.Output)
	}
}

// Settings returns the resolved settings.
func (a *App) Settings() config.Settings { return a.settings }

// Turtle returns the application's turtle. This is primarily for testing.
func (a *App) Turtle() *turtle.Turtle { return a.turtle }

// Frame returns the frame buffer as of the last redraw.
func (a *App) Frame() *frame.Buffer { return a.frame }

// Program returns the active program, or nil before the first good parse.
func (a *App) Program() *script.Program { return a.program }
