package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/turtlego/internal/app"
	"github.com/vk/turtlego/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Flags left unset stay zero so the settings file and defaults apply.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("turtlego", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
turtlego - a live turtle-graphics renderer.

Usage:
  turtlego [options] [SCRIPT]

Arguments:
  SCRIPT
    Path to the turtle script. It is re-read whenever it changes.

Options:
`)
		flagSet.PrintDefaults()
	}

	scriptFlag := flagSet.String("script", "", "Path to the turtle script (overrides the positional argument).")
	configFlag := flagSet.String("config", "", "Settings file (.hcl, .yaml, .yml) or a directory of .hcl files.")
	widthFlag := flagSet.Int("width", 0, "Frame width in pixels. 0 keeps the configured value.")
	heightFlag := flagSet.Int("height", 0, "Frame height in pixels. 0 keeps the configured value.")
	fpsFlag := flagSet.Int("fps", 0, "Frames per second. 0 keeps the configured value.")
	framesFlag := flagSet.Int("frames", 0, "Stop after this many frames. 0 runs until interrupted.")
	outputFlag := flagSet.String("output", "", "Frame output. Options: 'text', 'png' or 'none'.")
	pngFlag := flagSet.String("png", "", "PNG file written when -output=png.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := *scriptFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if flagSet.NArg() > 1 {
		return nil, false, usageError("expected at most one script argument, got %d", flagSet.NArg())
	}
	slog.Debug("Script path determined.", "path", path)

	outputMode := strings.ToLower(*outputFlag)
	switch outputMode {
	case "", config.OutputText, config.OutputPNG, config.OutputNone:
	default:
		return nil, false, usageError("invalid output: must be 'text', 'png' or 'none'")
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "" && logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		ScriptPath: path,
		ConfigPath: *configFlag,
		Width:      *widthFlag,
		Height:     *heightFlag,
		FPS:        *fpsFlag,
		Frames:     *framesFlag,
		Output:     outputMode,
		PNGPath:    *pngFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
