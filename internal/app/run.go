package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vk/turtlego/internal/ctxlog"
	"github.com/vk/turtlego/internal/raster"
	"github.com/vk/turtlego/internal/script"
	"github.com/vk/turtlego/internal/turtle"
)

// Run drives the frame loop: every reload_every cycles check the script, then
// redraw. It returns nil when ctx is cancelled or the frame budget is spent,
// and an error only when a frame cannot be presented.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	a.logger.Info("🐢 Watching script", "path", a.watcher.Path(), "fps", a.settings.Frame.FPS)

	ticker := time.NewTicker(a.settings.FrameInterval())
	defer ticker.Stop()

	for cycle := 0; ; cycle++ {
		if cycle%a.settings.Script.ReloadEvery == 0 {
			// Reload failures are logged inside and never stop the loop.
			_ = a.Reload(ctx)
		}
		if err := a.Redraw(); err != nil {
			return fmt.Errorf("redraw failed: %w", err)
		}
		if n := a.settings.Frame.Frames; n > 0 && cycle+1 >= n {
			a.logger.Info("🏁 Frame budget reached.", "frames", n)
			return nil
		}

		select {
		case <-ctx.Done():
			a.logger.Info("🏁 Stopping.", "frames", cycle+1)
			return nil
		case <-ticker.C:
		}
	}
}

// Reload checks the script for changes. New text is parsed and executed from
// a reset turtle; only when both succeed does it become the active program.
// On any failure the previous program and its path stay in place.
func (a *App) Reload(ctx context.Context) error {
	ctx = ctxlog.With(ctx, "path", a.watcher.Path())
	logger := ctxlog.FromContext(ctx)

	text, changed, err := a.watcher.CheckForChange()
	if err != nil {
		logger.Warn("Script check failed.", "error", err)
		return err
	}
	if !changed {
		return nil
	}

	prog, err := a.parser.Parse(text)
	if err != nil {
		var perr *script.ParseError
		if errors.As(err, &perr) {
			logger.Warn("⚠️ Script rejected, keeping previous program.", "line", perr.Line, "error", perr.Reason)
		} else {
			logger.Warn("⚠️ Script rejected, keeping previous program.", "error", err)
		}
		return err
	}

	if err := a.turtle.Execute(ctx, prog); err != nil {
		var execErr *turtle.ExecutionError
		if errors.As(err, &execErr) {
			logger.Warn("⚠️ Script failed to run, keeping previous path.", "line", execErr.Line, "error", execErr.Reason)
		} else {
			logger.Warn("⚠️ Script failed to run, keeping previous path.", "error", err)
		}
		return err
	}

	a.program = prog
	logger.Info("✅ Script loaded.", "commands", prog.Len(), "segments", a.turtle.Segments())
	return nil
}

// Redraw clears the frame, rasterizes the current turtle state into it and
// presents the result.
func (a *App) Redraw() error {
	a.frame.Clear()
	points := raster.Scene(a.snapshot(), a.overlays)
	drawn := a.frame.Plot(points)
	a.logger.Debug("Frame drawn.", "points", len(points), "in_frame", drawn, "lit", a.frame.Count())
	return a.presenter.Present(a.frame)
}

func (a *App) snapshot() raster.Snapshot {
	return raster.Snapshot{
		Start:     a.turtle.Start(),
		Position:  a.turtle.Position(),
		Heading:   a.turtle.Direction(),
		Path:      a.turtle.Path(),
		Indicator: a.turtle.Indicator(),
	}
}
