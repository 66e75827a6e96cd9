package fsutil

import (
	"fmt"
	"os"
	"time"
)

// Watcher polls a single file and hands out its contents whenever the
// modification time changes.
type Watcher struct {
	path    string
	lastMod time.Time
	seen    bool
}

// NewWatcher checks that path is a regular file and returns a watcher whose
// first CheckForChange reports the current contents.
func NewWatcher(path string) (*Watcher, error) {
	if _, err := statFile(path); err != nil {
		return nil, err
	}
	return &Watcher{path: path}, nil
}

// Path is the watched file.
func (w *Watcher) Path() string { return w.path }

// CheckForChange returns the file contents and true when the modification time
// differs from the one observed last. The marker only advances once the file
// has been read, so a failed read is retried on the next call.
func (w *Watcher) CheckForChange() (string, bool, error) {
	info, err := statFile(w.path)
	if err != nil {
		return "", false, err
	}
	mod := info.ModTime()
	if w.seen && mod.Equal(w.lastMod) {
		return "", false, nil
	}

	data, err := os.ReadFile(w.path)
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", w.path, err)
	}
	w.lastMod = mod
	w.seen = true
	return string(data), true, nil
}

func statFile(path string) (os.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat script: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("script path %s is a directory", path)
	}
	return info, nil
}
