package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/turtlego/internal/cli"
)

func TestRun_StartupError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A settings file with a syntax error must fail before the loop starts.
	tempDir := t.TempDir()
	scriptPath := filepath.Join(tempDir, "main.turtle")
	require.NoError(t, os.WriteFile(scriptPath, []byte("move 10\n"), 0o600))
	cfgPath := filepath.Join(tempDir, "turtle.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte("frame {\n  width = \n"), 0o600))

	args := []string{"-config", cfgPath, scriptPath}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	runErr := run(context.Background(), out, errOut, args)

	// --- Assert ---
	require.Error(t, runErr)
	assert.Contains(t, runErr.Error(), "startup failed")
	assert.Contains(t, runErr.Error(), "failed to load settings")
	assert.Empty(t, out.String(), "nothing is rendered when startup fails")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	errOut := &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, errOut, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, errOut.String(), "Usage:", "Expected help text to be printed to the error output")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{"--this-is-not-a-valid-flag"}

	// --- Act ---
	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, args)

	// --- Assert ---
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_RendersFrames(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	scriptPath := filepath.Join(t.TempDir(), "square.turtle")
	require.NoError(t, os.WriteFile(scriptPath, []byte("move 4\nturn 90\nrepeat 4\n"), 0o600))
	args := []string{"-width", "16", "-height", "16", "-fps", "1000", "-frames", "2", scriptPath}
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := run(context.Background(), out, errOut, args)

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out.String(), "\x1b[H", "text frames start with the cursor-home sequence")
	assert.Contains(t, errOut.String(), "Script loaded.")
}
