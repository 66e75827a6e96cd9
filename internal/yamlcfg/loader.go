// Package yamlcfg provides a YAML implementation of config.Loader, for users
// who would rather not write HCL. Keys mirror the HCL block and attribute
// names:
//
//	frame:
//	  width: 320
//	script:
//	  path: square.turtle
//
// Unlike HCL there are no expressions; every value is a literal.
package yamlcfg

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/vk/turtlego/internal/config"
	"github.com/vk/turtlego/internal/ctxlog"
)

// Loader reads YAML settings files.
type Loader struct{}

// NewLoader creates a YAML settings loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// Load applies each file on top of base. Unknown keys are rejected so typos
// do not silently fall back to defaults.
func (l *Loader) Load(ctx context.Context, base config.Settings, paths ...string) (config.Settings, error) {
	logger := ctxlog.FromContext(ctx)

	settings := base
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return base, fmt.Errorf("failed to read YAML file %s: %w", path, err)
		}
		if len(bytes.TrimSpace(data)) == 0 {
			logger.Debug("Skipping empty settings file.", "file", path)
			continue
		}
		if err := yaml.UnmarshalStrict(data, &settings); err != nil {
			return base, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
		}
		logger.Debug("Applied settings file.", "file", path)
	}
	return settings, nil
}
