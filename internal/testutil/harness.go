package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/turtlego/internal/app"
)

// ScriptFile and ConfigFile are the conventional names inside a harness
// directory. When present they are passed to the app as -script and -config.
const (
	ScriptFile = "main.turtle"
	ConfigFile = "turtle.hcl"
)

// Harness holds an App built over a temp directory of files, with its log
// and frame output captured.
type Harness struct {
	Dir string
	App *app.App
	Err error

	logs *app.SafeBuffer
	out  *bytes.Buffer
}

// LogOutput is everything logged so far.
func (h *Harness) LogOutput() string { return h.logs.String() }

// Output is everything presented so far (text output only).
func (h *Harness) Output() string { return h.out.String() }

// Path resolves a harness-relative file name.
func (h *Harness) Path(name string) string {
	return filepath.Join(h.Dir, name)
}

func (h *Harness) resolve(path *string) {
	if *path != "" && !filepath.IsAbs(*path) {
		*path = h.Path(*path)
	}
}

// WriteFiles lays out files (relative name to content) under a fresh temp
// directory and returns it.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

// NewHarness writes files and builds an App over them without running it.
// Relative paths in cfg are resolved against the harness directory. Unset
// fields default to debug logging, no frame output and a fast loop of one
// frame.
func NewHarness(t *testing.T, files map[string]string, cfg app.Config) *Harness {
	t.Helper()

	h := &Harness{
		Dir:  WriteFiles(t, files),
		logs: &app.SafeBuffer{},
		out:  &bytes.Buffer{},
	}
	if _, ok := files[ScriptFile]; ok && cfg.ScriptPath == "" {
		cfg.ScriptPath = ScriptFile
	}
	if _, ok := files[ConfigFile]; ok && cfg.ConfigPath == "" {
		cfg.ConfigPath = ConfigFile
	}
	h.resolve(&cfg.ScriptPath)
	h.resolve(&cfg.ConfigPath)
	h.resolve(&cfg.PNGPath)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.Output == "" {
		cfg.Output = "none"
	}
	if cfg.Frames == 0 {
		cfg.Frames = 1
	}
	if cfg.FPS == 0 {
		cfg.FPS = 1000
	}

	h.App, h.Err = app.NewApp(h.out, h.logs, &cfg)

	t.Cleanup(func() {
		if os.Getenv("TURTLEGO_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), h.logs.String())
		}
	})
	return h
}

// RunIntegrationTest builds an App over files and runs its frame loop to the
// end of the frame budget. Startup errors land in Err and skip the run.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config) *Harness {
	t.Helper()
	h := NewHarness(t, files, cfg)
	if h.Err == nil {
		h.Err = h.App.Run(context.Background())
	}
	return h
}
