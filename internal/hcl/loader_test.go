package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/turtlego/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeFile(t, t.TempDir(), "turtle.hcl", `
frame {
  width  = 200
  height = 100
}

script {
  path         = "square.turtle"
  reload_every = 30
  indent       = "  "
}

turtle {
  start          = [floor(frame.width / 3), frame.height / 2]
  indicator_size = max(4, 6)
}

render {
  output       = "png"
  png_path     = "out.png"
  bounds       = true
  start_marker = abs(-3)
}

log {
  level = "debug"
}
`)

	got, err := NewLoader().Load(context.Background(), config.Default(), path)
	require.NoError(t, err)

	want := config.Default()
	want.Frame.Width = 200
	want.Frame.Height = 100
	want.Script = config.Script{Path: "square.turtle", ReloadEvery: 30, Indent: "  "}
	want.Turtle.Start = []float64{66, 50}
	want.Turtle.IndicatorSize = 6
	want.Render.Output = config.OutputPNG
	want.Render.PNGPath = "out.png"
	want.Render.Bounds = true
	want.Render.StartMarker = 3
	want.Log.Level = "debug"

	assert.Equal(t, want, got)
	assert.NoError(t, got.Validate())
}

func TestLoader_EmptyFileKeepsBase(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.hcl", "")

	got, err := NewLoader().Load(context.Background(), config.Default(), path)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), got)
}

func TestLoader_DirectoryInLexicalOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "10-frame.hcl", "frame {\n  fps = 30\n}\n")
	writeFile(t, dir, "20-override.hcl", "frame {\n  fps = 24\n}\nlog {\n  format = \"json\"\n}\n")
	writeFile(t, dir, "notes.txt", "not hcl")

	got, err := NewLoader().Load(context.Background(), config.Default(), dir)
	require.NoError(t, err)
	assert.Equal(t, 24, got.Frame.FPS)
	assert.Equal(t, "json", got.Log.Format)
}

func TestLoader_Errors(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "frame {\n  width = \n", "failed to parse HCL file"},
		{"unknown block", "window {\n}\n", "failed to decode HCL file"},
		{"unknown attribute", "script {\n  speed = 3\n}\n", "failed to decode HCL file"},
		{"wrong type", "frame {\n  width = \"wide\"\n}\n", "failed to decode HCL file"},
		{"fractional integer", "frame {\n  width = 641\n}\nscript {\n  reload_every = frame.width / 2\n}\n", "failed to decode HCL file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, tc.name+".hcl", tc.content)
			got, err := NewLoader().Load(context.Background(), config.Default(), path)
			assert.ErrorContains(t, err, tc.want)
			assert.Equal(t, config.Default(), got, "a failed load returns the base unchanged")
		})
	}

	t.Run("missing path", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), config.Default(), filepath.Join(dir, "nope.hcl"))
		assert.ErrorContains(t, err, "error accessing path")
	})
}
