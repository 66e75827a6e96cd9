package app

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// WriteScript writes a script into a fresh temp dir and returns its path.
func WriteScript(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.turtle")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600), "failed to set up script file")
	return path
}

// SetupAppTest creates an App with debug logging and no frame output. Set
// TURTLEGO_TEST_LOGS=true to dump the captured log after the test.
func SetupAppTest(t *testing.T, appConfig *Config) (*App, *SafeBuffer) {
	t.Helper()

	logBuffer := &SafeBuffer{}
	appConfig.LogLevel = "debug"
	if appConfig.Output == "" {
		appConfig.Output = "none"
	}
	testApp, err := NewApp(&bytes.Buffer{}, logBuffer, appConfig)
	require.NoError(t, err, "failed to create app")

	t.Cleanup(func() {
		if os.Getenv("TURTLEGO_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, logBuffer
}
